package query

// Pagination contains metadata for paginated listings.
type Pagination struct {
	Page          int
	PageSize      int
	TotalFiltered int
	TotalPages    int
}

// NewPagination computes pagination metadata and clamps page to
// [1, TotalPages]. A non-positive pageSize puts everything on one page.
func NewPagination(page, pageSize, total int) Pagination {
	if total < 0 {
		total = 0
	}
	totalPages := 1
	if pageSize > 0 && total > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	return Pagination{Page: page, PageSize: pageSize, TotalFiltered: total, TotalPages: totalPages}
}

// Bounds returns the half-open [start, end) window of the current page.
func (p Pagination) Bounds() (int, int) {
	if p.PageSize <= 0 {
		return 0, p.TotalFiltered
	}
	start := (p.Page - 1) * p.PageSize
	end := start + p.PageSize
	if start > p.TotalFiltered {
		start = p.TotalFiltered
	}
	if end > p.TotalFiltered {
		end = p.TotalFiltered
	}
	return start, end
}

// HasPrev reports whether a previous page exists.
func (p Pagination) HasPrev() bool { return p.Page > 1 }

// HasNext reports whether a following page exists.
func (p Pagination) HasNext() bool { return p.Page < p.TotalPages }

// Prev returns the previous page number.
func (p Pagination) Prev() int { return p.Page - 1 }

// Next returns the following page number.
func (p Pagination) Next() int { return p.Page + 1 }
