package routes

import (
	"logitrack-api/config"
	"logitrack-api/controllers"
	"logitrack-api/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUserRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES+"/users", middleware.AuthMiddleware)
	userController := controllers.NewUserController(db)

	api.Get("/", userController.GetUsers)
	api.Post("/", userController.CreateUser)
	api.Get("/:id", userController.GetUserByID)
	api.Put("/:id", userController.UpdateUser)
	api.Delete("/:id", userController.DeleteUser)
}
