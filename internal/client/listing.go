package client

import (
	"cmp"
	"slices"
	"time"

	response "motomind/internal/adapter/http/dto/response"
)

// ListingQuery is the dashboard's current page and date filter.
type ListingQuery struct {
	Page      int
	StartDate *time.Time
	EndDate   *time.Time
}

func FirstPage() ListingQuery {
	return ListingQuery{Page: 1}
}

// WithDateRange replaces the filter. Pagination restarts at page 1.
func (q ListingQuery) WithDateRange(start, end *time.Time) ListingQuery {
	return ListingQuery{Page: 1, StartDate: dayPtr(start), EndDate: dayPtr(end)}
}

func (q ListingQuery) WithPage(page int) ListingQuery {
	if page < 1 {
		page = 1
	}
	q.Page = page
	return q
}

func (q ListingQuery) Equal(o ListingQuery) bool {
	return q.Page == o.Page && sameDay(q.StartDate, o.StartDate) && sameDay(q.EndDate, o.EndDate)
}

func (q ListingQuery) params() ListParams {
	return ListParams{Page: max(q.Page, 1), StartDate: q.StartDate, EndDate: q.EndDate}
}

func dayPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}

func sameDay(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

// ResolveHasNext prefers the server's exact flag. Without it a full page is
// taken to mean there is another one, which can be wrong at the exact
// boundary.
func ResolveHasNext(exact *bool, returned, pageSize int) bool {
	if exact != nil {
		return *exact
	}
	return pageSize > 0 && returned >= pageSize
}

// SortNewestFirst orders records by service date, then creation time, both
// descending. Store ordering is not trusted.
func SortNewestFirst(records []response.RecordResponse) {
	slices.SortStableFunc(records, func(a, b response.RecordResponse) int {
		if c := cmp.Compare(b.ServiceDate, a.ServiceDate); c != 0 {
			return c
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}
