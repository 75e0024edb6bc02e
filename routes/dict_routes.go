package routes

import (
	"logitrack-api/config"
	"logitrack-api/controllers"
	"logitrack-api/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDictRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES + "/dict")
	dictController := controllers.NewDictController(db)

	api.Get("/countries", dictController.GetCountries)
	api.Get("/ports", dictController.GetPorts)
	api.Get("/ports/search", dictController.SearchPorts)
	api.Get("/ports/country/:code", dictController.GetPortsByCountry)
	api.Get("/sales-pics", dictController.GetSalesPics)
	api.Get("/sales-pics/country/:code", dictController.GetSalesPicsByCountry)
	api.Get("/sales-offices", dictController.GetSalesOffices)
	api.Get("/cn-offices", dictController.GetCnOffices)
	api.Get("/container-types", dictController.GetContainerTypes)
	api.Get("/cargo-types", dictController.GetCargoTypes)
	api.Get("/cargo-types/offer-type/:offerType", dictController.GetCargoTypesByOfferType)
	api.Get("/products", dictController.GetProducts)

	// Reference data mutation stays behind auth.
	api.Post("/ports/upload-excel", middleware.AuthMiddleware, dictController.CreatePortsFromExcel)
}
