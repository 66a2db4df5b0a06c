package jobs

import (
	"log"
	"time"

	"github.com/mentorhub/career_mentor/database"
	"github.com/mentorhub/career_mentor/models"
)

// ExpireStalePendingBookings cancels bookings the mentor never confirmed
// before their scheduled time came and went.
func ExpireStalePendingBookings() {
	log.Println("Running job: ExpireStalePendingBookings...")

	var staleBookings []models.Booking

	err := database.DB.
		Where("status = ? AND scheduled_at < ?", models.BookingPending, time.Now()).
		Find(&staleBookings).Error

	if err != nil {
		log.Printf("Error checking for stale pending bookings: %v", err)
		return
	}

	if len(staleBookings) == 0 {
		return
	}

	for _, booking := range staleBookings {
		booking.Status = models.BookingCancelled
		database.DB.Save(&booking)
	}

	log.Printf("Cancelled %d stale pending booking(s).", len(staleBookings))
}
