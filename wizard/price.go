package wizard

import (
	"fmt"

	"github.com/mentorhub/career_mentor/models"
)

// ResolvePriceCents applies the pricing rule used everywhere a price is
// shown or charged: a non-nil service override wins, otherwise the mentor's
// base session price applies. Both operands stay in cents; formatting is the
// only place a division by 100 happens.
func ResolvePriceCents(svc *models.MentorService, profile *models.MentorProfile) int64 {
	if svc != nil && svc.PriceOverrideCents != nil {
		return *svc.PriceOverrideCents
	}
	return profile.SessionPriceCents
}

// FormatCents renders a cent amount as whole currency with two decimals.
func FormatCents(cents int64) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100)
}
