package spree

import (
	"context"
	"encoding/json"
	"fmt"
)

// PageFetcher fetches one page of a listing. Resource clients supply an
// implementation that re-issues the originating list request, preserving its
// filters, with the given page number.
type PageFetcher[T any] func(ctx context.Context, page int) (*Page[T], error)

// Page wraps one page of a Spree list response. List endpoints nest their
// items under a resource-specific key next to count/current_page/pages
// metadata; UnmarshalPage extracts both.
//
// A Page carries a single item cursor: NextItem advances it until Count items
// have been yielded and then keeps returning ErrNoMoreItems. The cursor never
// crosses into the next HTTP page; call NextPage to fetch more and iterate
// the new Page. Indexed access goes through the Items slice directly.
type Page[T any] struct {
	Count       int `json:"count"        yaml:"count"`
	CurrentPage int `json:"current_page" yaml:"current_page"`
	Pages       int `json:"pages"        yaml:"pages"`
	Items       []T `json:"items"        yaml:"items"`

	index int
	fetch PageFetcher[T]
}

// UnmarshalPage decodes a list envelope, taking the item array from itemKey.
func UnmarshalPage[T any](body []byte, itemKey string) (*Page[T], error) {
	var meta struct {
		Count       int `json:"count"`
		CurrentPage int `json:"current_page"`
		Pages       int `json:"pages"`
	}

	err := json.Unmarshal(body, &meta)
	if err != nil {
		return nil, fmt.Errorf("parsing page metadata: %w", err)
	}

	var raw map[string]json.RawMessage

	err = json.Unmarshal(body, &raw)
	if err != nil {
		return nil, fmt.Errorf("parsing page envelope: %w", err)
	}

	page := &Page[T]{
		Count:       meta.Count,
		CurrentPage: meta.CurrentPage,
		Pages:       meta.Pages,
	}

	if items, ok := raw[itemKey]; ok {
		err = json.Unmarshal(items, &page.Items)
		if err != nil {
			return nil, fmt.Errorf("parsing %q items: %w", itemKey, err)
		}
	}

	return page, nil
}

// SetFetcher attaches the fetch function used by NextPage. Resource clients
// call this after decoding; it is exported for use by client implementations
// outside this package.
func (p *Page[T]) SetFetcher(fetch PageFetcher[T]) {
	p.fetch = fetch
}

// HasNext reports whether a further HTTP page exists.
func (p *Page[T]) HasNext() bool {
	return p.Pages > p.CurrentPage
}

// NextPage fetches the following page with the same filters as the request
// that produced this one. It returns ErrNoMorePages when this is the last
// page, and when no fetcher is attached.
func (p *Page[T]) NextPage(ctx context.Context) (*Page[T], error) {
	if !p.HasNext() || p.fetch == nil {
		return nil, ErrNoMorePages
	}

	return p.fetch(ctx, p.CurrentPage+1)
}

// NextItem yields the next item of this page, advancing the page's cursor.
// It returns ErrNoMoreItems once Count items have been yielded; the cursor
// does not reset, so further calls keep returning ErrNoMoreItems. If the
// server reported more items than the page actually carries, the shortfall
// surfaces as ErrPageIncomplete.
func (p *Page[T]) NextItem() (T, error) {
	var zero T

	if p.index >= p.Count {
		return zero, ErrNoMoreItems
	}

	if p.index >= len(p.Items) {
		return zero, fmt.Errorf("%w: item %d of reported %d", ErrPageIncomplete, p.index, p.Count)
	}

	item := p.Items[p.index]
	p.index++

	return item, nil
}
