package handlers

import (
	"github.com/mentorhub/career_mentor/database"
	"github.com/mentorhub/career_mentor/models"
	"github.com/gofiber/fiber/v2"
)

func ListAllBookings(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 50)
	if page < 1 {
		page = 1
	}

	query := database.DB.Model(&models.Booking{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to count bookings"})
	}

	var bookings []models.Booking
	err := query.
		Preload("Mentor.User").
		Preload("Seeker").
		Preload("Service").
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&bookings).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve bookings"})
	}

	return c.JSON(fiber.Map{
		"data":  bookings,
		"count": total,
		"page":  page,
		"limit": limit,
	})
}

func ListAllUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.DB.Order("created_at desc").Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve users"})
	}
	return c.JSON(users)
}
