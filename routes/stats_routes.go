package routes

import (
	"logitrack-api/config"
	"logitrack-api/controllers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupStatsRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES + "/stats")
	statsController := controllers.NewStatsController(db)

	api.Get("/dashboard", statsController.GetDashboard)
}
