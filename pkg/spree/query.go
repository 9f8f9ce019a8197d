package spree

import (
	"net/url"
	"strconv"
)

// DefaultPerPage is the page size used when a listing does not specify one.
const DefaultPerPage = 25

// Filters maps ransack predicates to values, e.g. {"name_cont": "shirt"}.
// Keys and values are passed through to the server unmodified; the client
// only wraps each key in the q[...] query convention.
type Filters map[string]string

// QueryParams represents query parameters for list requests.
type QueryParams struct {
	Page    int     `json:"page,omitempty"     yaml:"page,omitempty"`
	PerPage int     `json:"per_page,omitempty" yaml:"per_page,omitempty"`
	Filters Filters `json:"filters,omitempty"  yaml:"filters,omitempty"`
}

// NewQueryParams creates a new QueryParams with initialized maps.
func NewQueryParams() *QueryParams {
	return &QueryParams{
		Filters: Filters{},
	}
}

// WithPage sets the page number.
func (q *QueryParams) WithPage(page int) *QueryParams {
	q.Page = page

	return q
}

// WithPerPage sets the page size.
func (q *QueryParams) WithPerPage(perPage int) *QueryParams {
	q.PerPage = perPage

	return q
}

// WithFilter sets a ransack filter, e.g. WithFilter("name_cont", "shirt")
// produces q[name_cont]=shirt.
func (q *QueryParams) WithFilter(predicate, value string) *QueryParams {
	if q.Filters == nil {
		q.Filters = Filters{}
	}

	q.Filters[predicate] = value

	return q
}

// ToValues converts QueryParams to url.Values.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}

	if q.PerPage > 0 {
		values.Set("per_page", strconv.Itoa(q.PerPage))
	}

	for predicate, value := range q.Filters {
		values.Set("q["+predicate+"]", value)
	}

	return values
}

// Form is a caller-supplied payload sent through unmodified, for resources
// that apply no shaping of their own (orders, stock locations, variants).
// Keys must already be in the server's nested-bracket form where applicable.
type Form url.Values

// Values implements PayloadShaper.
func (f Form) Values() url.Values {
	return url.Values(f)
}
