package controllers

import (
	"errors"
	"strconv"

	"logitrack-api/models"
	"logitrack-api/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type EnquiryController struct {
	Service *services.EnquiryService
}

func NewEnquiryController(DB *gorm.DB) *EnquiryController {
	return &EnquiryController{Service: services.NewEnquiryService(DB)}
}

// Page is the envelope returned by paged list endpoints. Number is the
// 0-based page index.
type Page struct {
	Content       interface{} `json:"content"`
	TotalElements int64       `json:"totalElements"`
	TotalPages    int         `json:"totalPages"`
	Size          int         `json:"size"`
	Number        int         `json:"number"`
}

func NewPage(content interface{}, total int64, page, size int) Page {
	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}
	return Page{
		Content:       content,
		TotalElements: total,
		TotalPages:    totalPages,
		Size:          size,
		Number:        page,
	}
}

func (c *EnquiryController) GetEnquiries(ctx *fiber.Ctx) error {
	params := services.SearchParams{
		Page:      ctx.QueryInt("page", 0),
		Size:      ctx.QueryInt("size", 20),
		Keyword:   ctx.Query("keyword"),
		SortBy:    ctx.Query("sortBy"),
		SortOrder: ctx.Query("sortOrder"),
	}
	if params.Page < 0 {
		params.Page = 0
	}
	if params.Size < 1 {
		params.Size = 20
	}

	enquiries, total, err := c.Service.GetEnquiries(params)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch enquiries",
		})
	}
	return ctx.JSON(NewPage(enquiries, total, params.Page, params.Size))
}

func (c *EnquiryController) GetAllEnquiries(ctx *fiber.Ctx) error {
	enquiries, err := c.Service.GetAllEnquiries()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch enquiries",
		})
	}
	return ctx.JSON(enquiries)
}

func (c *EnquiryController) GetEnquiryByID(ctx *fiber.Ctx) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid enquiry id",
		})
	}

	enquiry, err := c.Service.GetEnquiryByID(id)
	if err != nil {
		return enquiryError(ctx, err)
	}
	return ctx.JSON(enquiry)
}

func (c *EnquiryController) GetEnquiriesByStatus(ctx *fiber.Ctx) error {
	enquiries, err := c.Service.GetEnquiriesByStatus(ctx.Params("status"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid enquiry status: " + ctx.Params("status"),
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch enquiries",
		})
	}
	return ctx.JSON(enquiries)
}

func (c *EnquiryController) CreateEnquiry(ctx *fiber.Ctx) error {
	var enquiry models.Enquiry
	if err := ctx.BodyParser(&enquiry); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := c.Service.CreateEnquiry(&enquiry); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create enquiry",
		})
	}

	created, err := c.Service.GetEnquiryByID(enquiry.ID)
	if err != nil {
		return enquiryError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(created)
}

func (c *EnquiryController) UpdateEnquiry(ctx *fiber.Ctx) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid enquiry id",
		})
	}

	var draft models.Enquiry
	if err := ctx.BodyParser(&draft); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	updated, err := c.Service.UpdateEnquiry(id, &draft)
	if err != nil {
		return enquiryError(ctx, err)
	}
	return ctx.JSON(updated)
}

func (c *EnquiryController) DeleteEnquiry(ctx *fiber.Ctx) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid enquiry id",
		})
	}

	if err := c.Service.DeleteEnquiry(id); err != nil {
		return enquiryError(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

// CopyEnquiry duplicates an enquiry as a fresh draft with a new
// reference number.
func (c *EnquiryController) CopyEnquiry(ctx *fiber.Ctx) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid enquiry id",
		})
	}

	duplicate, err := c.Service.CopyEnquiry(id)
	if err != nil {
		return enquiryError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(duplicate)
}

func parseID(ctx *fiber.Ctx, name string) (int64, error) {
	return strconv.ParseInt(ctx.Params(name), 10, 64)
}

func enquiryError(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrEnquiryNotFound) {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Enquiry not found",
		})
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": err.Error(),
	})
}
