package handlers

import (
	"errors"
	"time"

	"github.com/mentorhub/career_mentor/database"
	"github.com/mentorhub/career_mentor/models"
	"github.com/mentorhub/career_mentor/notifications"
	"github.com/mentorhub/career_mentor/utils"
	"github.com/mentorhub/career_mentor/wizard"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CreateBookingRequest struct {
	MentorID    string  `json:"mentor_id" validate:"required,uuid"`
	ServiceID   string  `json:"service_id" validate:"required,uuid"`
	ScheduledAt string  `json:"scheduled_at" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Notes       *string `json:"notes,omitempty"`
}

func CreateBooking(c *fiber.Ctx) error {
	seekerID := userIDFromToken(c)

	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var mentor models.MentorProfile
	if err := database.DB.Preload("User").Preload("Services").First(&mentor, "id = ?", req.MentorID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mentor not found"})
	}

	svc := wizard.FindService(&mentor, req.ServiceID)
	if svc == nil || !svc.IsActive {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Invalid booking details"})
	}

	scheduledAt, _ := time.Parse(time.RFC3339, req.ScheduledAt)
	if scheduledAt.Before(time.Now()) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Bookings cannot be scheduled in the past"})
	}

	booking := models.Booking{
		MentorID:        mentor.ID,
		SeekerID:        seekerID,
		ServiceID:       svc.ID,
		ScheduledAt:     scheduledAt,
		DurationMinutes: svc.DurationMinutes,
		Status:          models.BookingPending,
		AmountCents:     wizard.ResolvePriceCents(svc, &mentor),
		Notes:           req.Notes,
	}
	if err := database.DB.Create(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create booking"})
	}

	go notifications.SendEmail(mentor.User.FullName, mentor.User.Email, "You Have a New Booking Request!",
		"<h1>New Booking Request</h1><p>A seeker has requested a session with you. Please confirm it from your dashboard.</p>")

	return c.Status(fiber.StatusCreated).JSON(booking)
}

func GetMyBookings(c *fiber.Ctx) error {
	seekerID := userIDFromToken(c)

	var bookings []models.Booking
	database.DB.
		Preload("Mentor.User").
		Preload("Service").
		Where("seeker_id = ?", seekerID).
		Order("scheduled_at desc").
		Find(&bookings)

	return c.JSON(bookings)
}

func CancelBooking(c *fiber.Ctx) error {
	seekerID := userIDFromToken(c)
	bookingID := c.Params("bookingId")

	var booking models.Booking
	if err := database.DB.First(&booking, "id = ?", bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}
	if booking.SeekerID != seekerID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "This is not your booking"})
	}
	if booking.Status != models.BookingPending && booking.Status != models.BookingConfirmed {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Only pending or confirmed bookings can be cancelled"})
	}
	if booking.ScheduledAt.Before(time.Now()) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot cancel a session that has already started"})
	}

	booking.Status = models.BookingCancelled
	if err := database.DB.Save(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to cancel booking"})
	}

	return c.JSON(booking)
}

type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

func CreateReview(c *fiber.Ctx) error {
	seekerID := userIDFromToken(c)
	bookingID := c.Params("bookingId")

	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var newReview models.Review
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, "id = ?", bookingID).Error; err != nil {
			return errors.New("booking not found")
		}
		if booking.SeekerID != seekerID {
			return errors.New("you are not the seeker for this booking")
		}
		if booking.Status != models.BookingCompleted {
			return errors.New("reviews can only be submitted for completed sessions")
		}

		var existingReview models.Review
		if err := tx.Where("booking_id = ?", bookingID).First(&existingReview).Error; err == nil {
			return errors.New("a review for this booking has already been submitted")
		}

		newReview = models.Review{
			BookingID: booking.ID,
			SeekerID:  seekerID,
			MentorID:  booking.MentorID,
			Rating:    req.Rating,
			Comment:   req.Comment,
		}
		if err := tx.Create(&newReview).Error; err != nil {
			return err
		}

		var result struct {
			Avg float64
		}
		tx.Model(&models.Review{}).Where("mentor_id = ?", booking.MentorID).Select("avg(rating) as avg").Scan(&result)

		return tx.Model(&models.MentorProfile{}).Where("id = ?", booking.MentorID).Update("avg_rating", result.Avg).Error
	})

	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(newReview)
}

func GetMyMentorBookings(c *fiber.Ctx) error {
	mentor, err := mentorFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mentor profile not found"})
	}

	var bookings []models.Booking
	database.DB.
		Preload("Seeker").
		Preload("Service").
		Where("mentor_id = ?", mentor.ID).
		Order("scheduled_at desc").
		Find(&bookings)

	return c.JSON(bookings)
}

type UpdateBookingStatusRequest struct {
	Status      string  `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
	MeetingLink *string `json:"meeting_link,omitempty"`
}

// allowedTransitions encodes the booking lifecycle: pending -> confirmed ->
// completed, with cancellation possible until completion.
var allowedTransitions = map[string][]string{
	models.BookingPending:   {models.BookingConfirmed, models.BookingCancelled},
	models.BookingConfirmed: {models.BookingCompleted, models.BookingCancelled},
}

func transitionAllowed(from, to string) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func UpdateBookingStatus(c *fiber.Ctx) error {
	mentor, err := mentorFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mentor profile not found"})
	}
	bookingID := c.Params("bookingId")

	var req UpdateBookingStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var booking models.Booking
	if err := database.DB.Preload("Seeker").First(&booking, "id = ?", bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}
	if booking.MentorID != mentor.ID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "This is not your booking to manage"})
	}

	if !transitionAllowed(booking.Status, req.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status transition"})
	}
	if req.Status == models.BookingCompleted && booking.ScheduledAt.Add(time.Duration(booking.DurationMinutes)*time.Minute).After(time.Now()) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot mark a session as complete before it has ended"})
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		booking.Status = req.Status
		if req.MeetingLink != nil {
			booking.MeetingLink = req.MeetingLink
		}
		if req.Status == models.BookingConfirmed && booking.MeetingLink == nil {
			link := utils.GenerateMeetingLink()
			booking.MeetingLink = &link
		}
		if err := tx.Save(&booking).Error; err != nil {
			return err
		}

		if req.Status == models.BookingCompleted {
			return tx.Model(&models.MentorProfile{}).Where("id = ?", booking.MentorID).
				Update("total_sessions", gorm.Expr("total_sessions + ?", 1)).Error
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update booking"})
	}

	if req.Status == models.BookingConfirmed {
		go notifications.SendEmail(booking.Seeker.FullName, booking.Seeker.Email, "Your Booking is Confirmed!",
			"<h1>Booking Confirmed</h1><p>Your mentor has confirmed the session. The meeting link is available in your dashboard.</p>")
	}
	if req.Status == models.BookingCancelled {
		go notifications.SendEmail(booking.Seeker.FullName, booking.Seeker.Email, "Your Booking Was Cancelled",
			"<h1>Booking Cancelled</h1><p>Your mentor has cancelled the session. You have not been charged.</p>")
	}

	return c.JSON(booking)
}
