package database

import (
	"database/sql"
	"fmt"
	"log"

	"logitrack-api/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	_ "modernc.org/sqlite" // pure Go SQLite driver
)

// Open connects to the configured database.
func Open() (*gorm.DB, error) {
	dialector, err := getDialector(config.DBName)
	if err != nil {
		return nil, err
	}
	return gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
}

func getDialector(dbName string) (gorm.Dialector, error) {
	switch config.DBDriver {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			config.DBUser, config.DBPassword, config.DBHost, config.DBPort, dbName)
		return mysql.Open(dsn), nil
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			config.DBHost, config.DBUser, config.DBPassword, dbName, config.DBPort)
		return postgres.Open(dsn), nil
	case "mssql":
		dsn := fmt.Sprintf("sqlserver://%s:%s@%s:%s?database=%s",
			config.DBUser, config.DBPassword, config.DBHost, config.DBPort, dbName)
		return sqlserver.Open(dsn), nil
	case "sqlite":
		return SQLiteDialector(config.SQLitePath)
	default:
		log.Printf("Unsupported DB_DRIVER: %s", config.DBDriver)
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s", config.DBDriver)
	}
}

// SQLiteDialector opens a SQLite database through the cgo-free modernc
// driver and wraps it for GORM.
func SQLiteDialector(path string) (gorm.Dialector, error) {
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	// A single connection keeps every session on the same database file,
	// which in-memory databases require.
	sqlDB.SetMaxOpenConns(1)
	return sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        path,
		Conn:       sqlDB,
	}, nil
}
