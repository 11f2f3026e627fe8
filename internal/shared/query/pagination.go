package query

const (
	DefaultPerPage = 15
	MaxPerPage     = 100
)

// Pagination is a normalized page request.
type Pagination struct {
	Page    int
	PerPage int
}

// NewPagination applies defaults and clamps per_page to sane bounds.
func NewPagination(page, perPage int) Pagination {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return Pagination{Page: page, PerPage: perPage}
}

func (p Pagination) Limit() int {
	return p.PerPage
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Meta is the pagination block returned alongside every list page.
type Meta struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
	LastPage    int `json:"last_page"`
}

// BuildMeta computes last_page as ceil(total/per_page), never below 1 so
// an empty result set still reports page 1 of 1.
func (p Pagination) BuildMeta(total int) Meta {
	lastPage := (total + p.PerPage - 1) / p.PerPage
	if lastPage < 1 {
		lastPage = 1
	}
	return Meta{
		CurrentPage: p.Page,
		PerPage:     p.PerPage,
		Total:       total,
		LastPage:    lastPage,
	}
}
