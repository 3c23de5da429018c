package launch

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

// ErrInvalidPage indicates pagination parameters a caller can correct.
var ErrInvalidPage = errors.New("invalid pagination parameters")

// Page is one page of an ordered sequence with link metadata. Next is nil
// on or past the last page; Previous is nil on the first page.
type Page[T any] struct {
	Total    int     `json:"total"`
	PageSize int     `json:"page_size"`
	Page     int     `json:"page"`
	Data     []T     `json:"data"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
}

// Paginate slices items to the half-open range
// [(page-1)*pageSize, page*pageSize) and builds next/previous links from
// baseURL and query with the page parameter adjusted. Pages are 1-based.
func Paginate[T any](items []T, pageSize, page int, baseURL string, query url.Values) (Page[T], error) {
	if pageSize <= 0 || page < 1 {
		return Page[T]{}, fmt.Errorf("%w: page_size=%d page=%d", ErrInvalidPage, pageSize, page)
	}

	total := len(items)
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	pageLink := func(n int) *string {
		// A link exists only when the target page starts inside the
		// sequence.
		if n < 1 || (n-1)*pageSize >= total {
			return nil
		}
		q := url.Values{}
		for k, vs := range query {
			q[k] = append([]string(nil), vs...)
		}
		q.Set("page", strconv.Itoa(n))
		q.Set("page_size", strconv.Itoa(pageSize))
		link := baseURL + "?" + q.Encode()
		return &link
	}

	return Page[T]{
		Total:    total,
		PageSize: pageSize,
		Page:     page,
		Data:     items[start:end],
		Next:     pageLink(page + 1),
		Previous: pageLink(page - 1),
	}, nil
}
