package database

import (
	"log"

	config "github.com/mentorhub/career_mentor/configs"
	"github.com/mentorhub/career_mentor/models"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type demoMentor struct {
	fullName string
	email    string
	headline string
	company  string
	jobTitle string
	years    int
	bio      string
	tags     []string

	priceCents int64
	avgRating  float64
	sessions   int

	services []demoService
}

type demoService struct {
	serviceType   string
	description   string
	duration      int
	overrideCents *int64
}

// demoMentors is the single source for demo data; the API serves it through
// the same models and queries as real rows, so there is no second code path
// to drift from.
var demoMentors = []demoMentor{
	{
		fullName: "John Doe", email: "john@example.com",
		headline: "Senior Software Engineer at Google",
		company:  "Google", jobTitle: "Senior Software Engineer", years: 8,
		bio:        "I help developers level up their skills",
		tags:       []string{"JavaScript", "React", "Node.js"},
		priceCents: 10000, avgRating: 4.8, sessions: 50,
		services: []demoService{
			{serviceType: models.ServiceResumeReview, description: "Get feedback on your resume", duration: 30},
			{serviceType: models.ServiceMockInterview, description: "Practice coding interviews", duration: 60},
		},
	},
	{
		fullName: "Jane Smith", email: "jane@example.com",
		headline: "Product Manager at Microsoft",
		company:  "Microsoft", jobTitle: "Product Manager", years: 6,
		bio:        "I help product managers succeed",
		tags:       []string{"Product Management", "Agile", "User Research"},
		priceCents: 15000, avgRating: 4.5, sessions: 30,
		services: []demoService{
			{serviceType: models.ServiceCareerGuidance, description: "Plan your career path", duration: 60},
			{serviceType: models.ServiceCertificationPrep, description: "Learn product management", duration: 90},
		},
	},
	{
		fullName: "Bob Johnson", email: "bob@example.com",
		headline: "Data Scientist at Amazon",
		company:  "Amazon", jobTitle: "Data Scientist", years: 5,
		bio:        "I help data scientists excel",
		tags:       []string{"Machine Learning", "Data Analysis", "Python"},
		priceCents: 12000, avgRating: 4.7, sessions: 40,
		services: []demoService{
			{serviceType: models.ServiceProjectReview, description: "Learn ML concepts", duration: 60},
			{serviceType: models.ServiceOther, description: "Master data visualization", duration: 30},
		},
	},
}

// SeedDemoMentors loads the demo fixture set when SEED_DEMO_DATA is enabled.
// Idempotent: mentors are keyed by their user's email.
func SeedDemoMentors() {
	if config.Config("SEED_DEMO_DATA") != "true" {
		return
	}

	for _, dm := range demoMentors {
		var count int64
		if err := DB.Model(&models.User{}).Where("email = ?", dm.email).Count(&count).Error; err != nil {
			log.Printf("🔥 Failed to check for demo mentor %s: %v", dm.email, err)
			continue
		}
		if count > 0 {
			continue
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(config.Config("DEMO_USER_PASSWORD")), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("🔥 Failed to hash demo password: %v", err)
			return
		}

		dm := dm
		err = DB.Transaction(func(tx *gorm.DB) error {
			user := models.User{
				FullName: dm.fullName,
				Email:    dm.email,
				Password: string(hashedPassword),
				Role:     "mentor",
				Verified: true,
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}

			profile := models.MentorProfile{
				UserID:            user.ID,
				Headline:          dm.headline,
				Company:           dm.company,
				JobTitle:          dm.jobTitle,
				YearsOfExperience: dm.years,
				Bio:               dm.bio,
				ExpertiseTags:     pq.StringArray(dm.tags),
				AvgRating:         dm.avgRating,
				TotalSessions:     dm.sessions,
				SessionPriceCents: dm.priceCents,
				IsAvailable:       true,
			}
			if err := tx.Create(&profile).Error; err != nil {
				return err
			}

			for _, ds := range dm.services {
				svc := models.MentorService{
					MentorID:           profile.ID,
					ServiceType:        ds.serviceType,
					Description:        ds.description,
					DurationMinutes:    ds.duration,
					PriceOverrideCents: ds.overrideCents,
					IsActive:           true,
				}
				if err := tx.Create(&svc).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			log.Printf("🔥 Failed to seed demo mentor %s: %v", dm.email, err)
			return
		}
	}

	log.Println("✅ Demo mentors seeded successfully")
}
