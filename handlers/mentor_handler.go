package handlers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/mentorhub/career_mentor/database"
	"github.com/mentorhub/career_mentor/models"
	"github.com/mentorhub/career_mentor/search"
	"github.com/mentorhub/career_mentor/services"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// parseFilter decodes the /mentors query surface into a search.Filter.
// List parameters are comma separated, prices are whole dollars.
func parseFilter(c *fiber.Ctx) search.Filter {
	f := search.Filter{
		SearchQuery: c.Query("q"),
		Companies:   splitList(c.Query("companies")),
		JobTitles:   splitList(c.Query("job_titles")),
		Services:    splitList(c.Query("services")),
		SortBy:      c.Query("sort_by"),
		Page:        c.QueryInt("page", search.DefaultPage),
		Limit:       c.QueryInt("limit", search.DefaultLimit),
	}

	if v, err := strconv.Atoi(c.Query("min_years")); err == nil {
		f.YearsOfExp.Min = &v
	}
	if v, err := strconv.Atoi(c.Query("max_years")); err == nil {
		f.YearsOfExp.Max = &v
	}
	if v, err := strconv.Atoi(c.Query("min_price")); err == nil {
		f.PriceRange.Min = &v
	}
	if v, err := strconv.Atoi(c.Query("max_price")); err == nil {
		f.PriceRange.Max = &v
	}
	if v, err := strconv.ParseFloat(c.Query("min_rating"), 64); err == nil {
		f.MinRating = v
	}

	return f
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func SearchMentors(c *fiber.Ctx) error {
	result, err := search.Run(database.DB, parseFilter(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to search mentors",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    result.Mentors,
		"count":   result.TotalCount,
		"page":    result.Page,
		"limit":   result.Limit,
	})
}

func GetMentorProfile(c *fiber.Ctx) error {
	mentorID := c.Params("mentorId")

	var mentor models.MentorProfile
	err := database.DB.
		Preload("User").
		Preload("Services").
		Preload("Reviews.Seeker").
		First(&mentor, "id = ?", mentorID).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mentor not found"})
	}

	return c.JSON(mentor)
}

func GetMentorSlots(c *fiber.Ctx) error {
	mentorID := c.Params("mentorId")

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "A date query parameter in YYYY-MM-DD format is required"})
	}

	var mentor models.MentorProfile
	if err := database.DB.First(&mentor, "id = ?", mentorID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mentor not found"})
	}

	var windows []models.AvailabilityWindow
	database.DB.Where("mentor_id = ?", mentor.ID).Find(&windows)

	return c.JSON(fiber.Map{
		"date":  c.Query("date"),
		"slots": services.AvailableSlots(windows, date, time.Now()),
	})
}

func ListServiceTypes(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"service_types": models.ServiceTypes})
}

type MentorApplicationRequest struct {
	Headline          string   `json:"headline" validate:"required"`
	Company           string   `json:"company" validate:"required"`
	JobTitle          string   `json:"job_title" validate:"required"`
	YearsOfExperience int      `json:"years_of_experience" validate:"required,min=0"`
	Bio               string   `json:"bio" validate:"required"`
	ExpertiseTags     []string `json:"expertise_tags"`
	SessionPriceCents int64    `json:"session_price_cents" validate:"required,min=1"`
}

func ApplyToBeAMentor(c *fiber.Ctx) error {
	userID := userIDFromToken(c)

	var req MentorApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var existing models.MentorProfile
	err := database.DB.Where("user_id = ?", userID).First(&existing).Error
	if err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "You already have a mentor profile."})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	var profile models.MentorProfile
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		profile = models.MentorProfile{
			UserID:            userID,
			Headline:          req.Headline,
			Company:           req.Company,
			JobTitle:          req.JobTitle,
			YearsOfExperience: req.YearsOfExperience,
			Bio:               req.Bio,
			ExpertiseTags:     pq.StringArray(req.ExpertiseTags),
			SessionPriceCents: req.SessionPriceCents,
			IsAvailable:       true,
		}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("id = ?", userID).Update("role", "mentor").Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create mentor profile"})
	}

	return c.Status(fiber.StatusCreated).JSON(profile)
}

// mentorFromToken resolves the authenticated user's mentor profile.
func mentorFromToken(c *fiber.Ctx) (*models.MentorProfile, error) {
	userID := userIDFromToken(c)

	var mentor models.MentorProfile
	if err := database.DB.Where("user_id = ?", userID).First(&mentor).Error; err != nil {
		return nil, err
	}
	return &mentor, nil
}

func GetMyMentorProfile(c *fiber.Ctx) error {
	userID := userIDFromToken(c)

	var mentor models.MentorProfile
	err := database.DB.Preload("User").Preload("Services").First(&mentor, "user_id = ?", userID).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mentor profile not found"})
	}
	return c.JSON(mentor)
}

type UpdateMentorProfileRequest struct {
	Headline          *string  `json:"headline"`
	Company           *string  `json:"company"`
	JobTitle          *string  `json:"job_title"`
	YearsOfExperience *int     `json:"years_of_experience"`
	Bio               *string  `json:"bio"`
	ExpertiseTags     []string `json:"expertise_tags"`
	SessionPriceCents *int64   `json:"session_price_cents"`
	IsAvailable       *bool    `json:"is_available"`
}

func UpdateMyMentorProfile(c *fiber.Ctx) error {
	mentor, err := mentorFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mentor profile not found"})
	}

	var req UpdateMentorProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if req.Headline != nil {
		mentor.Headline = *req.Headline
	}
	if req.Company != nil {
		mentor.Company = *req.Company
	}
	if req.JobTitle != nil {
		mentor.JobTitle = *req.JobTitle
	}
	if req.YearsOfExperience != nil {
		mentor.YearsOfExperience = *req.YearsOfExperience
	}
	if req.Bio != nil {
		mentor.Bio = *req.Bio
	}
	if req.ExpertiseTags != nil {
		mentor.ExpertiseTags = pq.StringArray(req.ExpertiseTags)
	}
	if req.SessionPriceCents != nil {
		if *req.SessionPriceCents < 1 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Session price must be positive"})
		}
		mentor.SessionPriceCents = *req.SessionPriceCents
	}
	if req.IsAvailable != nil {
		mentor.IsAvailable = *req.IsAvailable
	}

	if err := database.DB.Save(mentor).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update mentor profile"})
	}

	return c.JSON(mentor)
}

// ServiceRequest is the full representation of a service; updates replace
// the whole record. Omitting price_override_cents on an update clears an
// existing override, reverting the service to the profile's base price.
type ServiceRequest struct {
	ServiceType        string `json:"service_type" validate:"required"`
	Description        string `json:"description"`
	DurationMinutes    int    `json:"duration_minutes" validate:"required"`
	PriceOverrideCents *int64 `json:"price_override_cents"`
	IsActive           *bool  `json:"is_active"`
}

func validateServiceRequest(req ServiceRequest) string {
	if !models.IsValidServiceType(req.ServiceType) {
		return "Unknown service type"
	}
	if req.DurationMinutes <= 0 || req.DurationMinutes%15 != 0 {
		return "Duration must be a positive multiple of 15 minutes"
	}
	if req.PriceOverrideCents != nil && *req.PriceOverrideCents < 1 {
		return "Price override must be positive"
	}
	return ""
}

func CreateService(c *fiber.Ctx) error {
	mentor, err := mentorFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mentor profile not found"})
	}

	var req ServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if msg := validateServiceRequest(req); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	svc := models.MentorService{
		MentorID:           mentor.ID,
		ServiceType:        req.ServiceType,
		Description:        req.Description,
		DurationMinutes:    req.DurationMinutes,
		PriceOverrideCents: req.PriceOverrideCents,
		IsActive:           true,
	}
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}

	if err := database.DB.Create(&svc).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create service"})
	}

	return c.Status(fiber.StatusCreated).JSON(svc)
}

func UpdateService(c *fiber.Ctx) error {
	mentor, err := mentorFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mentor profile not found"})
	}
	serviceID := c.Params("serviceId")

	var svc models.MentorService
	if err := database.DB.First(&svc, "id = ? AND mentor_id = ?", serviceID, mentor.ID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
	}

	var req ServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if msg := validateServiceRequest(req); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	svc.ServiceType = req.ServiceType
	svc.Description = req.Description
	svc.DurationMinutes = req.DurationMinutes
	svc.PriceOverrideCents = req.PriceOverrideCents
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}

	if err := database.DB.Save(&svc).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update service"})
	}

	return c.JSON(svc)
}

func DeleteService(c *fiber.Ctx) error {
	mentor, err := mentorFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mentor profile not found"})
	}
	serviceID := c.Params("serviceId")

	var svc models.MentorService
	if err := database.DB.First(&svc, "id = ? AND mentor_id = ?", serviceID, mentor.ID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
	}

	// Bookings reference services by id, so a booked service is only
	// deactivated, never removed.
	var bookingCount int64
	database.DB.Model(&models.Booking{}).Where("service_id = ?", svc.ID).Count(&bookingCount)
	if bookingCount > 0 {
		svc.IsActive = false
		if err := database.DB.Save(&svc).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to deactivate service"})
		}
		return c.JSON(fiber.Map{"message": "Service has existing bookings and was deactivated instead of deleted."})
	}

	database.DB.Delete(&svc)
	return c.SendStatus(fiber.StatusNoContent)
}

type AvailabilityWindowRequest struct {
	DayOfWeek int    `json:"day_of_week" validate:"min=0,max=6"`
	StartTime string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string `json:"end_time" validate:"required,datetime=15:04"`
	TimeZone  string `json:"timezone"`
}

func CreateAvailabilityWindow(c *fiber.Ctx) error {
	mentor, err := mentorFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mentor profile not found"})
	}

	var req AvailabilityWindowRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.StartTime >= req.EndTime {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Start time must be before end time"})
	}

	window := models.AvailabilityWindow{
		MentorID:  mentor.ID,
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		TimeZone:  req.TimeZone,
		IsActive:  true,
	}
	if window.TimeZone == "" {
		window.TimeZone = "UTC"
	}

	if err := database.DB.Create(&window).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create availability window"})
	}

	return c.Status(fiber.StatusCreated).JSON(window)
}

func GetMyAvailability(c *fiber.Ctx) error {
	mentor, err := mentorFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mentor profile not found"})
	}

	var windows []models.AvailabilityWindow
	database.DB.Where("mentor_id = ?", mentor.ID).Order("day_of_week asc, start_time asc").Find(&windows)

	return c.JSON(windows)
}

func DeleteAvailabilityWindow(c *fiber.Ctx) error {
	mentor, err := mentorFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mentor profile not found"})
	}
	windowID := c.Params("windowId")

	var window models.AvailabilityWindow
	if err := database.DB.First(&window, "id = ? AND mentor_id = ?", windowID, mentor.ID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Availability window not found"})
	}

	database.DB.Delete(&window)
	return c.SendStatus(fiber.StatusNoContent)
}
