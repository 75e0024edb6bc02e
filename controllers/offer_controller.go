package controllers

import (
	"errors"

	"logitrack-api/models"
	"logitrack-api/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type OfferController struct {
	Service *services.OfferService
}

func NewOfferController(DB *gorm.DB) *OfferController {
	return &OfferController{Service: services.NewOfferService(DB)}
}

func (c *OfferController) GetOffers(ctx *fiber.Ctx) error {
	enquiryID, err := parseID(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid enquiry id",
		})
	}

	offers, err := c.Service.GetOffersByEnquiry(enquiryID)
	if err != nil {
		return offerError(ctx, err)
	}
	return ctx.JSON(offers)
}

func (c *OfferController) CreateOffer(ctx *fiber.Ctx) error {
	enquiryID, err := parseID(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid enquiry id",
		})
	}

	var offer models.Offer
	if err := ctx.BodyParser(&offer); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := c.Service.CreateOffer(enquiryID, &offer); err != nil {
		return offerError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(offer)
}

func (c *OfferController) UpdateOffer(ctx *fiber.Ctx) error {
	offerID, err := parseID(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid offer id",
		})
	}

	var draft models.Offer
	if err := ctx.BodyParser(&draft); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	updated, err := c.Service.UpdateOffer(offerID, &draft)
	if err != nil {
		return offerError(ctx, err)
	}
	return ctx.JSON(updated)
}

func (c *OfferController) DeleteOffer(ctx *fiber.Ctx) error {
	offerID, err := parseID(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid offer id",
		})
	}

	if err := c.Service.DeleteOffer(offerID); err != nil {
		return offerError(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func offerError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrEnquiryNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Enquiry not found",
		})
	case errors.Is(err, services.ErrOfferNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Offer not found",
		})
	case errors.Is(err, services.ErrInvalidOfferType):
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid offer type",
		})
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": err.Error(),
	})
}
