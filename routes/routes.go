package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes registers every route group of the API.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	SetupAuthRoutes(app, db)
	SetupUserRoutes(app, db)
	SetupDictRoutes(app, db)
	SetupEnquiryRoutes(app, db)
	SetupStatsRoutes(app, db)
}
