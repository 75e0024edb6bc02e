package main

import (
	"logitrack-api/config"
	"logitrack-api/database"
	"logitrack-api/idgen"
	"logitrack-api/pkg/logger"
	"logitrack-api/routes"

	"github.com/gofiber/fiber/v2"
)

func main() {
	config.LoadConfig()

	logger.Init(logger.Options{
		Level:  config.LogLevel,
		Pretty: config.LogPretty,
	})
	log := logger.Get()

	idgen.Init()

	db, err := database.Open()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}
	database.RunSeeders(db)

	app := fiber.New(fiber.Config{
		AppName: "logitrack-api",
	})

	config.SetupCORS(app)
	routes.SetupRoutes(app, db)

	log.Info().Str("port", config.APP_PORT).Msg("Starting server")
	if err := app.Listen(":" + config.APP_PORT); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
