package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/mentorhub/career_mentor/database"
	"github.com/mentorhub/career_mentor/models"
	"github.com/mentorhub/career_mentor/notifications"
)

func SendSessionReminders() {
	log.Println("Running job: SendSessionReminders...")

	now := time.Now()
	lowerBound := now.Add(60 * time.Minute)
	upperBound := now.Add(65 * time.Minute)

	var upcomingBookings []models.Booking

	err := database.DB.
		Preload("Seeker").
		Preload("Mentor.User").
		Where("status = ? AND scheduled_at BETWEEN ? AND ?", models.BookingConfirmed, lowerBound, upperBound).
		Find(&upcomingBookings).Error

	if err != nil {
		log.Printf("Error checking for upcoming sessions: %v", err)
		return
	}

	if len(upcomingBookings) == 0 {
		return
	}

	for _, booking := range upcomingBookings {
		log.Printf("Sending reminder for booking ID: %s", booking.ID)

		meetingLink := "your dashboard"
		if booking.MeetingLink != nil {
			meetingLink = *booking.MeetingLink
		}

		emailSubject := "Reminder: Your Session Starts in 1 Hour!"
		emailBody := fmt.Sprintf(
			"<h1>Session Reminder</h1><p>Hi there,</p><p>This is a friendly reminder that your session is scheduled to start in one hour at %s.</p><p><b>Meeting Link:</b> %s</p>",
			booking.ScheduledAt.Format(time.Kitchen),
			meetingLink,
		)

		go notifications.SendEmail(booking.Seeker.FullName, booking.Seeker.Email, emailSubject, emailBody)
		go notifications.SendEmail(booking.Mentor.User.FullName, booking.Mentor.User.Email, emailSubject, emailBody)
	}
}
