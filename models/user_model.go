package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FullName string    `gorm:"size:255;not null" json:"full_name"`
	Email    string    `gorm:"size:255;not null;unique" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Role     string    `gorm:"size:20;not null;default:'seeker'" json:"role"`

	AvatarURL  *string `gorm:"size:255" json:"avatar_url"`
	TimeZone   *string `gorm:"size:100" json:"time_zone"`
	LinkedinID *string `gorm:"size:100" json:"linkedin_id"`
	Verified   bool    `gorm:"default:false" json:"verified"`

	ResetPasswordToken          *string    `gorm:"size:255;unique" json:"-"`
	ResetPasswordTokenExpiresAt *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
