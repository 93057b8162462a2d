package query

import "github.com/flatfinder/rentals-backend-go/internal/models"

// PageSize is fixed: the table renders ten rows per page.
const PageSize = 10

// NavEvent is a page navigation request.
type NavEvent string

const (
	NavNone NavEvent = "none"
	NavPrev NavEvent = "prev"
	NavNext NavEvent = "next"
)

// Paginator tracks the current table page across view computations.
// Initial state is page 1; there is no terminal state.
type Paginator struct {
	current int
}

// NewPaginator creates a paginator on page 1.
func NewPaginator() *Paginator {
	return &Paginator{current: 1}
}

// Reset returns to the first page. Called whenever the filter criteria,
// the display mode or the applied distance query change.
func (p *Paginator) Reset() {
	p.current = 1
}

// Current returns the current page number.
func (p *Paginator) Current() int {
	return p.current
}

// Apply advances the page for nav, then clamps it against the current item
// count. Clamping runs on every computation, not only after navigation:
// a shrinking result set can silently move the effective page.
func (p *Paginator) Apply(nav NavEvent, totalItems int) models.PageInfo {
	switch nav {
	case NavNext:
		p.current++
	case NavPrev:
		p.current = max(1, p.current-1)
	}

	totalPages := TotalPages(totalItems)
	if p.current > totalPages {
		p.current = totalPages
	}
	if p.current < 1 {
		p.current = 1
	}

	start := (p.current - 1) * PageSize
	end := min(start+PageSize, totalItems)

	return models.PageInfo{
		CurrentPage: p.current,
		TotalPages:  totalPages,
		StartIndex:  start,
		EndIndex:    end,
		TotalItems:  totalItems,
	}
}

// TotalPages returns max(1, ceil(totalItems/PageSize)).
func TotalPages(totalItems int) int {
	pages := (totalItems + PageSize - 1) / PageSize
	return max(1, pages)
}
