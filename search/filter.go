package search

const (
	DefaultPage  = 1
	DefaultLimit = 20

	SortByRating  = "rating"
	SortByPrice   = "price"
	SortByRecent  = "recent"
	SortByPopular = "popular"
)

// Range is an open-ended numeric bound; a nil side means unbounded.
type Range struct {
	Min *int `json:"min,omitempty"`
	Max *int `json:"max,omitempty"`
}

// Filter describes one mentor search. All fields are optional; Page, Limit
// and SortBy fall back to defaults when unset. PriceRange is expressed in
// whole dollars and converted to cents when clauses are built.
type Filter struct {
	SearchQuery string   `json:"search_query,omitempty"`
	Companies   []string `json:"companies,omitempty"`
	JobTitles   []string `json:"job_titles,omitempty"`
	YearsOfExp  Range    `json:"years_of_exp,omitempty"`
	Services    []string `json:"services,omitempty"`
	PriceRange  Range    `json:"price_range,omitempty"`
	MinRating   float64  `json:"min_rating,omitempty"`
	SortBy      string   `json:"sort_by,omitempty"`
	Page        int      `json:"page,omitempty"`
	Limit       int      `json:"limit,omitempty"`
}

// Normalized returns a copy with defaults applied.
func (f Filter) Normalized() Filter {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.Limit < 1 {
		f.Limit = DefaultLimit
	}
	if f.SortBy == "" {
		f.SortBy = SortByRating
	}
	return f
}

// Offset is the zero-based row offset for the normalized page.
func (f Filter) Offset() int {
	n := f.Normalized()
	return (n.Page - 1) * n.Limit
}
