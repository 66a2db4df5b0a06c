package routes

import (
	"github.com/mentorhub/career_mentor/handlers"
	"github.com/mentorhub/career_mentor/middleware"
	"github.com/gofiber/fiber/v2"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// The wizard steps are public reads driven entirely by the URL; only
	// the final confirmation requires a signed-in seeker.
	flow := api.Group("/booking/:mentorId")
	flow.Get("/flow", handlers.GetBookingFlow)
	flow.Get("/success", handlers.GetBookingSuccess)
	flow.Post("/confirm", middleware.Protected(), handlers.ConfirmBooking)

	booking := api.Group("/bookings", middleware.Protected())
	booking.Get("/me", handlers.GetMyBookings)
	booking.Post("", handlers.CreateBooking)
	booking.Post("/:bookingId/cancel", handlers.CancelBooking)
	booking.Post("/:bookingId/review", handlers.CreateReview)
}
