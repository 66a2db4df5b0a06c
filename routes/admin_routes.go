package routes

import (
	"github.com/mentorhub/career_mentor/handlers"
	"github.com/mentorhub/career_mentor/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())
	admin.Get("/bookings", handlers.ListAllBookings)
	admin.Get("/users", handlers.ListAllUsers)
}
