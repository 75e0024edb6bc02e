package routes

import (
	"logitrack-api/config"
	"logitrack-api/controllers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupEnquiryRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group(config.MAIN_ROUTES + "/enquiries")
	enquiryController := controllers.NewEnquiryController(db)
	offerController := controllers.NewOfferController(db)

	api.Get("/", enquiryController.GetEnquiries)
	api.Get("/all", enquiryController.GetAllEnquiries)
	api.Post("/", enquiryController.CreateEnquiry)
	api.Get("/status/:status", enquiryController.GetEnquiriesByStatus)
	api.Get("/:id", enquiryController.GetEnquiryByID)
	api.Put("/:id", enquiryController.UpdateEnquiry)
	api.Delete("/:id", enquiryController.DeleteEnquiry)
	api.Post("/:id/copy", enquiryController.CopyEnquiry)

	api.Get("/:id/offers", offerController.GetOffers)
	api.Post("/:id/offers", offerController.CreateOffer)

	// offer rounds are addressed directly once created
	offers := app.Group(config.MAIN_ROUTES + "/offers")
	offers.Put("/:id", offerController.UpdateOffer)
	offers.Delete("/:id", offerController.DeleteOffer)
}
