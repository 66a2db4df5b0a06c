package routes

import (
	"github.com/mentorhub/career_mentor/handlers"
	"github.com/mentorhub/career_mentor/middleware"
	"github.com/gofiber/fiber/v2"
)

func MentorRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/mentors", handlers.SearchMentors)
	api.Get("/mentors/:mentorId", handlers.GetMentorProfile)
	api.Get("/mentors/:mentorId/slots", handlers.GetMentorSlots)
	api.Get("/service-types", handlers.ListServiceTypes)

	mentor := api.Group("/mentor", middleware.Protected())
	mentor.Post("/apply", handlers.ApplyToBeAMentor)

	profile := mentor.Group("/profile", middleware.MentorRequired())
	profile.Get("/me", handlers.GetMyMentorProfile)
	profile.Put("/me", handlers.UpdateMyMentorProfile)

	service := mentor.Group("/services", middleware.MentorRequired())
	service.Post("", handlers.CreateService)
	service.Put("/:serviceId", handlers.UpdateService)
	service.Delete("/:serviceId", handlers.DeleteService)

	availability := mentor.Group("/availability", middleware.MentorRequired())
	availability.Post("", handlers.CreateAvailabilityWindow)
	availability.Get("/me", handlers.GetMyAvailability)
	availability.Delete("/:windowId", handlers.DeleteAvailabilityWindow)

	mentorBookings := mentor.Group("/bookings", middleware.MentorRequired())
	mentorBookings.Get("", handlers.GetMyMentorBookings)
	mentorBookings.Patch("/:bookingId/status", handlers.UpdateBookingStatus)
}
