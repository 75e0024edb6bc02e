package controllers

import (
	"logitrack-api/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type StatsController struct {
	Service *services.StatsService
}

func NewStatsController(DB *gorm.DB) *StatsController {
	return &StatsController{Service: services.NewStatsService(DB)}
}

func (c *StatsController) GetDashboard(ctx *fiber.Ctx) error {
	stats, err := c.Service.Dashboard()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to compute dashboard stats",
		})
	}
	return ctx.JSON(stats)
}
