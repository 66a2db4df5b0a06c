package search

import (
	"testing"

	"github.com/mentorhub/career_mentor/models"
)

func intPtr(v int) *int { return &v }

func fixtureProfiles() []models.MentorProfile {
	return []models.MentorProfile{
		{
			Headline:          "Senior Software Engineer at Google",
			Company:           "Google",
			JobTitle:          "Senior Software Engineer",
			YearsOfExperience: 8,
			Bio:               "I help developers level up their skills",
			SessionPriceCents: 10000,
			AvgRating:         4.8,
			TotalSessions:     50,
			IsAvailable:       true,
			Services: []models.MentorService{
				{ServiceType: models.ServiceResumeReview, IsActive: true},
				{ServiceType: models.ServiceMockInterview, IsActive: true},
			},
		},
		{
			Headline:          "Product Manager at Microsoft",
			Company:           "Microsoft",
			JobTitle:          "Product Manager",
			YearsOfExperience: 6,
			Bio:               "I help product managers succeed",
			SessionPriceCents: 15000,
			AvgRating:         4.5,
			TotalSessions:     30,
			IsAvailable:       true,
			Services: []models.MentorService{
				{ServiceType: models.ServiceCareerGuidance, IsActive: true},
			},
		},
		{
			Headline:          "Data Scientist at Amazon",
			Company:           "Amazon",
			JobTitle:          "Data Scientist",
			YearsOfExperience: 5,
			Bio:               "I help data scientists excel",
			SessionPriceCents: 12000,
			AvgRating:         4.7,
			TotalSessions:     40,
			IsAvailable:       true,
			Services: []models.MentorService{
				{ServiceType: models.ServiceProjectReview, IsActive: true},
				{ServiceType: models.ServiceOther, IsActive: false},
			},
		},
		{
			Headline:          "Staff Engineer at Google",
			Company:           "Google",
			JobTitle:          "Staff Engineer",
			YearsOfExperience: 12,
			SessionPriceCents: 20000,
			AvgRating:         4.9,
			IsAvailable:       false,
		},
	}
}

func matchingProfiles(t *testing.T, f Filter) []models.MentorProfile {
	t.Helper()
	clauses := BuildClauses(f)
	var out []models.MentorProfile
	for _, p := range fixtureProfiles() {
		p := p
		if MatchesAll(clauses, &p) {
			out = append(out, p)
		}
	}
	return out
}

func TestBuildClausesAlwaysRestrictsToAvailable(t *testing.T) {
	for _, f := range []Filter{{}, {Companies: []string{"Google"}}, {MinRating: 4}} {
		clauses := BuildClauses(f)
		if len(clauses) == 0 || clauses[0].Kind != ClauseAvailable {
			t.Fatalf("expected availability clause first, got %+v", clauses)
		}
	}
}

func TestUnavailableProfilesNeverMatch(t *testing.T) {
	matched := matchingProfiles(t, Filter{Companies: []string{"Google"}})
	if len(matched) != 1 {
		t.Fatalf("expected 1 available Google mentor, got %d", len(matched))
	}
	if matched[0].JobTitle != "Senior Software Engineer" {
		t.Fatalf("unexpected match: %s", matched[0].JobTitle)
	}
}

func TestCompanyAndTitleFiltersUseInSemantics(t *testing.T) {
	matched := matchingProfiles(t, Filter{Companies: []string{"Google", "Amazon"}})
	if len(matched) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matched))
	}

	matched = matchingProfiles(t, Filter{JobTitles: []string{"Product Manager"}})
	if len(matched) != 1 || matched[0].Company != "Microsoft" {
		t.Fatalf("job title filter failed: %+v", matched)
	}
}

func TestYearsOfExperienceBounds(t *testing.T) {
	cases := []struct {
		name     string
		min, max *int
		expected int
	}{
		{"min only", intPtr(6), nil, 2},
		{"max only", nil, intPtr(5), 1},
		{"closed range", intPtr(5), intPtr(6), 2},
		{"empty range", intPtr(9), intPtr(10), 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			matched := matchingProfiles(t, Filter{YearsOfExp: Range{Min: c.min, Max: c.max}})
			if len(matched) != c.expected {
				t.Fatalf("expected %d matches, got %d", c.expected, len(matched))
			}
		})
	}
}

func TestPriceRangeIsConvertedToCents(t *testing.T) {
	f := Filter{PriceRange: Range{Min: intPtr(100), Max: intPtr(130)}}

	clauses := BuildClauses(f)
	var minCents, maxCents int64
	for _, c := range clauses {
		switch c.Kind {
		case ClausePriceMinCents:
			minCents = c.Number
		case ClausePriceMaxCents:
			maxCents = c.Number
		}
	}
	if minCents != 10000 || maxCents != 13000 {
		t.Fatalf("expected 10000/13000 cents, got %d/%d", minCents, maxCents)
	}

	for _, p := range matchingProfiles(t, f) {
		if p.SessionPriceCents < 10000 || p.SessionPriceCents > 13000 {
			t.Fatalf("profile price %d outside requested range", p.SessionPriceCents)
		}
	}
}

func TestMinRatingThreshold(t *testing.T) {
	matched := matchingProfiles(t, Filter{MinRating: 4.7})
	if len(matched) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matched))
	}
	for _, p := range matched {
		if p.AvgRating < 4.7 {
			t.Fatalf("profile rating %.1f below threshold", p.AvgRating)
		}
	}
}

func TestMinRatingIncludesExactThreshold(t *testing.T) {
	// The bound is inclusive, so a rating exactly at the threshold must
	// match without any precision loss.
	p := models.MentorProfile{AvgRating: 4.7, IsAvailable: true}
	clauses := BuildClauses(Filter{MinRating: 4.7})
	if !MatchesAll(clauses, &p) {
		t.Fatalf("rating %v must satisfy threshold %v", p.AvgRating, 4.7)
	}
}

func TestServiceTypeFilterIgnoresInactiveServices(t *testing.T) {
	matched := matchingProfiles(t, Filter{Services: []string{models.ServiceOther}})
	if len(matched) != 0 {
		t.Fatalf("inactive service should not match, got %d", len(matched))
	}

	matched = matchingProfiles(t, Filter{Services: []string{models.ServiceProjectReview}})
	if len(matched) != 1 || matched[0].Company != "Amazon" {
		t.Fatalf("active service filter failed: %+v", matched)
	}
}

func TestTextSearchMatchesProfileFields(t *testing.T) {
	cases := []struct {
		query    string
		expected int
	}{
		{"google", 1},
		{"data scientists excel", 1},
		{"manager", 1},
		{"blockchain", 0},
		{"100%", 0}, // metacharacters are literal, not wildcards
	}

	for _, c := range cases {
		matched := matchingProfiles(t, Filter{SearchQuery: c.query})
		if len(matched) != c.expected {
			t.Fatalf("query %q: expected %d matches, got %d", c.query, c.expected, len(matched))
		}
	}
}

func TestFiltersCompose(t *testing.T) {
	f := Filter{
		Companies:  []string{"Google", "Microsoft", "Amazon"},
		MinRating:  4.6,
		PriceRange: Range{Max: intPtr(120)},
	}
	matched := matchingProfiles(t, f)
	if len(matched) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matched))
	}
	for _, p := range matched {
		if p.Company == "Microsoft" {
			t.Fatal("Microsoft mentor fails the rating and price bounds")
		}
	}
}

func TestNormalizedDefaults(t *testing.T) {
	f := Filter{}.Normalized()
	if f.Page != 1 || f.Limit != 20 || f.SortBy != SortByRating {
		t.Fatalf("unexpected defaults: %+v", f)
	}
}

func TestOffsetIsZeroBased(t *testing.T) {
	cases := []struct {
		page, limit, offset int
	}{
		{1, 20, 0},
		{2, 20, 20},
		{3, 10, 20},
		{0, 0, 0}, // unset falls back to page 1
	}
	for _, c := range cases {
		f := Filter{Page: c.page, Limit: c.limit}
		if got := f.Offset(); got != c.offset {
			t.Fatalf("page=%d limit=%d: expected offset %d, got %d", c.page, c.limit, c.offset, got)
		}
	}
}

func TestOrderExprPerSortKey(t *testing.T) {
	cases := []struct {
		sortBy   string
		expected string
	}{
		{SortByPrice, "session_price_cents asc, id asc"},
		{SortByRating, "avg_rating desc, id asc"},
		{SortByRecent, "created_at desc, id asc"},
		{SortByPopular, "created_at desc, id asc"},
		{"anything-else", "created_at desc, id asc"},
	}
	for _, c := range cases {
		if got := OrderExpr(c.sortBy); got != c.expected {
			t.Fatalf("sortBy=%q: expected %q, got %q", c.sortBy, c.expected, got)
		}
	}
}

func TestLikeMetacharactersAreEscaped(t *testing.T) {
	cases := []struct {
		in, out string
	}{
		{"google", "google"},
		{"100%", `100\%`},
		{"snake_case", `snake\_case`},
		{`back\slash`, `back\\slash`},
	}
	for _, c := range cases {
		if got := escapeLike(c.in); got != c.out {
			t.Fatalf("escapeLike(%q): expected %q, got %q", c.in, c.out, got)
		}
	}
}
