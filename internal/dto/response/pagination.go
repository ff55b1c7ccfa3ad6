package response

import (
	"net/url"
	"strconv"

	"yamdb/pkg/utils"
)

// PaginatedResponse is the list envelope: total count, neighbour page links and the page itself.
type PaginatedResponse[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`

	page     int
	pageSize int
}

func NewPaginatedResponse[T any](results []T, page, pageSize int, total int64) *PaginatedResponse[T] {
	if results == nil {
		results = []T{}
	}
	return &PaginatedResponse[T]{
		Count:    total,
		Results:  results,
		page:     page,
		pageSize: pageSize,
	}
}

// TotalPages rounds up; an empty collection has zero pages.
func (p *PaginatedResponse[T]) TotalPages() int {
	return utils.CalculateTotalPages(p.Count, p.pageSize)
}

// SetLinks fills Next and Previous from the request URL, keeping its other query parameters.
func (p *PaginatedResponse[T]) SetLinks(base *url.URL) {
	p.Next, p.Previous = nil, nil
	if base == nil {
		return
	}

	link := func(page int) *string {
		u := *base
		q := u.Query()
		q.Set("page", strconv.Itoa(page))
		q.Set("page_size", strconv.Itoa(p.pageSize))
		u.RawQuery = q.Encode()
		s := u.String()
		return &s
	}

	if p.page < p.TotalPages() {
		p.Next = link(p.page + 1)
	}
	if p.page > 1 {
		p.Previous = link(p.page - 1)
	}
}
