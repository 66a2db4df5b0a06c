package handlers

import (
	"fmt"
	"net/url"
	"time"

	"github.com/mentorhub/career_mentor/database"
	"github.com/mentorhub/career_mentor/models"
	"github.com/mentorhub/career_mentor/notifications"
	"github.com/mentorhub/career_mentor/services"
	"github.com/mentorhub/career_mentor/wizard"
	"github.com/gofiber/fiber/v2"
)

func queryValues(c *fiber.Ctx) url.Values {
	q := url.Values{}
	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		q.Set(string(key), string(value))
	})
	return q
}

func mentorSummary(mentor *models.MentorProfile) fiber.Map {
	return fiber.Map{
		"id":       mentor.ID,
		"name":     mentor.User.FullName,
		"headline": mentor.Headline,
	}
}

func servicePayload(svc *models.MentorService, mentor *models.MentorProfile) fiber.Map {
	cents := wizard.ResolvePriceCents(svc, mentor)
	return fiber.Map{
		"id":               svc.ID,
		"service_type":     svc.ServiceType,
		"description":      svc.Description,
		"duration_minutes": svc.DurationMinutes,
		"price_cents":      cents,
		"price":            wizard.FormatCents(cents),
	}
}

// GetBookingFlow resolves one wizard step entirely from the request URL.
// Every step re-fetches the mentor and re-validates its parameters, so any
// step is reachable from a shared link or a refresh.
func GetBookingFlow(c *fiber.Ctx) error {
	mentorID := c.Params("mentorId")

	var mentor models.MentorProfile
	err := database.DB.Preload("User").Preload("Services").First(&mentor, "id = ?", mentorID).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mentor not found"})
	}

	state := wizard.ParseQuery(mentorID, queryValues(c))
	if err := wizard.Validate(state, &mentor, time.Now()); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Invalid booking details"})
	}

	switch state.Step {
	case wizard.StepSchedule:
		svc := wizard.FindService(&mentor, state.ServiceID)

		payload := fiber.Map{
			"step":    2,
			"query":   state.Query().Encode(),
			"mentor":  mentorSummary(&mentor),
			"service": servicePayload(svc, &mentor),
		}
		if state.Date != "" {
			date, err := state.ParseDate()
			if err != nil {
				return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Invalid booking details"})
			}
			var windows []models.AvailabilityWindow
			database.DB.Where("mentor_id = ?", mentor.ID).Find(&windows)
			payload["date"] = state.Date
			payload["available_slots"] = services.AvailableSlots(windows, date, time.Now())
		}
		return c.JSON(payload)

	case wizard.StepConfirm:
		svc := wizard.FindService(&mentor, state.ServiceID)
		scheduledAt, err := state.ScheduledAt()
		if err != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Invalid booking details"})
		}
		cents := wizard.ResolvePriceCents(svc, &mentor)

		return c.JSON(fiber.Map{
			"step":         3,
			"query":        state.Query().Encode(),
			"mentor":       mentorSummary(&mentor),
			"service":      servicePayload(svc, &mentor),
			"date":         state.Date,
			"time":         state.Time,
			"scheduled_at": scheduledAt,
			"amount_cents": cents,
			"amount":       wizard.FormatCents(cents),
		})

	default:
		active := []fiber.Map{}
		for i := range mentor.Services {
			if mentor.Services[i].IsActive {
				active = append(active, servicePayload(&mentor.Services[i], &mentor))
			}
		}
		return c.JSON(fiber.Map{
			"step":     1,
			"query":    state.Query().Encode(),
			"mentor":   mentorSummary(&mentor),
			"services": active,
		})
	}
}

type ConfirmBookingRequest struct {
	ServiceID    string  `json:"service" validate:"required,uuid"`
	Date         string  `json:"date" validate:"required,datetime=2006-01-02"`
	Time         string  `json:"time" validate:"required,datetime=15:04"`
	AgreeToTerms bool    `json:"agree_to_terms"`
	Notes        *string `json:"notes,omitempty"`
}

// ConfirmBooking is the terminal transition of the wizard: it re-validates
// the complete state, requires the terms agreement, and persists the booking
// at the resolved price.
func ConfirmBooking(c *fiber.Ctx) error {
	seekerID := userIDFromToken(c)
	mentorID := c.Params("mentorId")

	var req ConfirmBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if !req.AgreeToTerms {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "You must agree to the terms and conditions"})
	}

	var mentor models.MentorProfile
	if err := database.DB.Preload("User").Preload("Services").First(&mentor, "id = ?", mentorID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mentor not found"})
	}

	state := wizard.State{
		MentorID:  mentorID,
		Step:      wizard.StepConfirm,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Time:      req.Time,
	}
	now := time.Now()
	if err := wizard.Validate(state, &mentor, now); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Invalid booking details"})
	}
	if _, err := wizard.Next(state, wizard.Event{Kind: wizard.EventConfirm}, now); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Invalid booking details"})
	}

	scheduledAt, err := state.ScheduledAt()
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Invalid booking details"})
	}
	if scheduledAt.Before(now) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Bookings cannot be scheduled in the past"})
	}

	svc := wizard.FindService(&mentor, state.ServiceID)
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

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"booking":  booking,
		"redirect": fmt.Sprintf("/booking/%s/success", mentor.ID),
	})
}

// GetBookingSuccess renders the terminal step. The flow ends here; the only
// ways out are plain navigation.
func GetBookingSuccess(c *fiber.Ctx) error {
	mentorID := c.Params("mentorId")

	var mentor models.MentorProfile
	if err := database.DB.Preload("User").First(&mentor, "id = ?", mentorID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mentor not found"})
	}

	return c.JSON(fiber.Map{
		"message": "Your session has been successfully booked. You will receive a confirmation email with all the details.",
		"mentor":  mentorSummary(&mentor),
		"links": fiber.Map{
			"home":           "/",
			"mentor_profile": fmt.Sprintf("/mentors/%s", mentor.ID),
		},
	})
}
