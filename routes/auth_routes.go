package routes

import (
	"logitrack-api/config"
	"logitrack-api/controllers"
	"logitrack-api/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES + "/auth")
	authController := controllers.NewAuthController(db)

	api.Post("/login", authController.Login)
	api.Get("/me", middleware.AuthMiddleware, authController.Me)
}
