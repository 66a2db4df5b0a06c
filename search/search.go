package search

import (
	"github.com/mentorhub/career_mentor/models"
	"gorm.io/gorm"
)

// Result is one page of mentors plus the pre-pagination match count, so
// callers can compute total pages as ceil(TotalCount / Limit).
type Result struct {
	Mentors    []models.MentorProfile `json:"data"`
	TotalCount int64                  `json:"count"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
}

// Run executes a filter against the store: count first, then the ordered,
// paginated page with nested services and user. A single failed query is
// surfaced immediately, no retries.
func Run(db *gorm.DB, f Filter) (Result, error) {
	f = f.Normalized()
	clauses := BuildClauses(f)

	base := Apply(db.Model(&models.MentorProfile{}), clauses)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return Result{}, err
	}

	var mentors []models.MentorProfile
	err := base.Session(&gorm.Session{}).
		Preload("User").
		Preload("Services").
		Order(OrderExpr(f.SortBy)).
		Offset(f.Offset()).
		Limit(f.Limit).
		Find(&mentors).Error
	if err != nil {
		return Result{}, err
	}

	return Result{Mentors: mentors, TotalCount: total, Page: f.Page, Limit: f.Limit}, nil
}
