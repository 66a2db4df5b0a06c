package search

import (
	"strings"

	"github.com/mentorhub/career_mentor/models"
	"gorm.io/gorm"
)

type ClauseKind int

const (
	ClauseAvailable ClauseKind = iota
	ClauseCompanyIn
	ClauseJobTitleIn
	ClauseYearsMin
	ClauseYearsMax
	ClausePriceMinCents
	ClausePriceMaxCents
	ClauseRatingMin
	ClauseServiceTypeIn
	ClauseTextSearch
)

// Clause is one conjunctive predicate of a mentor search. The full query is
// the AND of all clauses; multi-valued clauses carry IN-semantics.
type Clause struct {
	Kind   ClauseKind
	Values []string
	Number int64
	Rating float64
	Text   string
}

// BuildClauses maps a filter onto its predicate list. The availability
// restriction is always present. Pure: no database access.
func BuildClauses(f Filter) []Clause {
	clauses := []Clause{{Kind: ClauseAvailable}}

	if len(f.Companies) > 0 {
		clauses = append(clauses, Clause{Kind: ClauseCompanyIn, Values: f.Companies})
	}
	if len(f.JobTitles) > 0 {
		clauses = append(clauses, Clause{Kind: ClauseJobTitleIn, Values: f.JobTitles})
	}
	if f.YearsOfExp.Min != nil {
		clauses = append(clauses, Clause{Kind: ClauseYearsMin, Number: int64(*f.YearsOfExp.Min)})
	}
	if f.YearsOfExp.Max != nil {
		clauses = append(clauses, Clause{Kind: ClauseYearsMax, Number: int64(*f.YearsOfExp.Max)})
	}
	if f.PriceRange.Min != nil {
		clauses = append(clauses, Clause{Kind: ClausePriceMinCents, Number: int64(*f.PriceRange.Min) * 100})
	}
	if f.PriceRange.Max != nil {
		clauses = append(clauses, Clause{Kind: ClausePriceMaxCents, Number: int64(*f.PriceRange.Max) * 100})
	}
	if f.MinRating > 0 {
		clauses = append(clauses, Clause{Kind: ClauseRatingMin, Rating: f.MinRating})
	}
	if len(f.Services) > 0 {
		clauses = append(clauses, Clause{Kind: ClauseServiceTypeIn, Values: f.Services})
	}
	if q := strings.TrimSpace(f.SearchQuery); q != "" {
		clauses = append(clauses, Clause{Kind: ClauseTextSearch, Text: q})
	}

	return clauses
}

// Matches evaluates the clause against a profile in memory. It mirrors Apply
// exactly so the filter-to-predicate mapping is testable without a database.
func (c Clause) Matches(p *models.MentorProfile) bool {
	switch c.Kind {
	case ClauseAvailable:
		return p.IsAvailable
	case ClauseCompanyIn:
		return containsString(c.Values, p.Company)
	case ClauseJobTitleIn:
		return containsString(c.Values, p.JobTitle)
	case ClauseYearsMin:
		return int64(p.YearsOfExperience) >= c.Number
	case ClauseYearsMax:
		return int64(p.YearsOfExperience) <= c.Number
	case ClausePriceMinCents:
		return p.SessionPriceCents >= c.Number
	case ClausePriceMaxCents:
		return p.SessionPriceCents <= c.Number
	case ClauseRatingMin:
		return p.AvgRating >= c.Rating
	case ClauseServiceTypeIn:
		for _, s := range p.Services {
			if s.IsActive && containsString(c.Values, s.ServiceType) {
				return true
			}
		}
		return false
	case ClauseTextSearch:
		q := strings.ToLower(c.Text)
		for _, field := range []string{p.Headline, p.Company, p.JobTitle, p.Bio} {
			if strings.Contains(strings.ToLower(field), q) {
				return true
			}
		}
		return false
	}
	return false
}

// MatchesAll reports whether a profile satisfies every clause.
func MatchesAll(clauses []Clause, p *models.MentorProfile) bool {
	for _, c := range clauses {
		if !c.Matches(p) {
			return false
		}
	}
	return true
}

// Apply folds the clause list into a GORM query. This is the only place the
// predicate list touches the storage boundary.
func Apply(db *gorm.DB, clauses []Clause) *gorm.DB {
	for _, c := range clauses {
		switch c.Kind {
		case ClauseAvailable:
			db = db.Where("is_available = ?", true)
		case ClauseCompanyIn:
			db = db.Where("company IN ?", c.Values)
		case ClauseJobTitleIn:
			db = db.Where("job_title IN ?", c.Values)
		case ClauseYearsMin:
			db = db.Where("years_of_experience >= ?", c.Number)
		case ClauseYearsMax:
			db = db.Where("years_of_experience <= ?", c.Number)
		case ClausePriceMinCents:
			db = db.Where("session_price_cents >= ?", c.Number)
		case ClausePriceMaxCents:
			db = db.Where("session_price_cents <= ?", c.Number)
		case ClauseRatingMin:
			db = db.Where("avg_rating >= ?", c.Rating)
		case ClauseServiceTypeIn:
			db = db.Where(
				"EXISTS (SELECT 1 FROM mentor_services WHERE mentor_services.mentor_id = mentor_profiles.id AND mentor_services.is_active = true AND mentor_services.service_type IN ?)",
				c.Values,
			)
		case ClauseTextSearch:
			like := "%" + escapeLike(c.Text) + "%"
			db = db.Where(
				"(headline ILIKE ? OR company ILIKE ? OR job_title ILIKE ? OR bio ILIKE ?)",
				like, like, like, like,
			)
		}
	}
	return db
}

// OrderExpr selects the sort for a given key: price ascends, rating (the
// default) descends, anything else falls back to recency. The id tiebreak
// keeps pagination stable across pages.
func OrderExpr(sortBy string) string {
	switch sortBy {
	case SortByPrice:
		return "session_price_cents asc, id asc"
	case SortByRating:
		return "avg_rating desc, id asc"
	default:
		return "created_at desc, id asc"
	}
}

// escapeLike neutralizes LIKE metacharacters so query text is matched
// literally, the same way the in-memory path does.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

func containsString(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
