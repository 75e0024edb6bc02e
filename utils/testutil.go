package utils

import (
	"testing"

	"logitrack-api/database"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// SetupTestDB opens a private in-memory database, runs the migrations and
// returns the handle. Each call gets an isolated database.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dialector, err := database.SQLiteDialector(":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}
