package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MrAnandSharan/spacex-launch-tracker/pkg/launch"
)

const dateOnly = "2006-01-02"

// parseDate accepts RFC 3339 timestamps and bare dates. A bare date used as
// an upper bound covers the whole day.
func parseDate(value string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(dateOnly, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected RFC 3339 or YYYY-MM-DD", value)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t.UTC(), nil
}

// parseFilter builds a launch filter from request query parameters.
func (h *Handler) parseFilter(r *http.Request) (launch.Filter, error) {
	q := r.URL.Query()
	f := launch.Filter{
		Rocket:    q.Get("rocket"),
		Launchpad: q.Get("launchpad"),
		Mode:      h.cfg.MatchMode,
	}

	if v := q.Get("start_date"); v != "" {
		t, err := parseDate(v, false)
		if err != nil {
			return launch.Filter{}, fmt.Errorf("start_date: %w", err)
		}
		f.StartDate = &t
	}
	if v := q.Get("end_date"); v != "" {
		t, err := parseDate(v, true)
		if err != nil {
			return launch.Filter{}, fmt.Errorf("end_date: %w", err)
		}
		f.EndDate = &t
	}
	if v := q.Get("success"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return launch.Filter{}, fmt.Errorf("success: expected true or false, got %q", v)
		}
		f.Success = &b
	}

	switch v := q.Get("sort"); v {
	case "", "none":
		f.Sort = launch.SortNone
	case "asc":
		f.Sort = launch.SortDateAsc
	case "desc":
		f.Sort = launch.SortDateDesc
	default:
		return launch.Filter{}, fmt.Errorf("sort: expected asc or desc, got %q", v)
	}

	return f, nil
}

// parsePagination resolves page and page_size with configured defaults and
// the configured upper bound on page size.
func (h *Handler) parsePagination(r *http.Request) (pageSize, page int, err error) {
	q := r.URL.Query()

	page = 1
	if v := q.Get("page"); v != "" {
		page, err = strconv.Atoi(v)
		if err != nil || page < 1 {
			return 0, 0, fmt.Errorf("page: expected a positive integer, got %q", v)
		}
	}

	pageSize = h.cfg.DefaultPageSize
	if v := q.Get("page_size"); v != "" {
		pageSize, err = strconv.Atoi(v)
		if err != nil || pageSize < 1 {
			return 0, 0, fmt.Errorf("page_size: expected a positive integer, got %q", v)
		}
		if pageSize > h.cfg.MaxPageSize {
			return 0, 0, fmt.Errorf("page_size: must not exceed %d, got %d", h.cfg.MaxPageSize, pageSize)
		}
	}

	return pageSize, page, nil
}
