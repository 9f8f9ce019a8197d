package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/openlabs/spree-go/internal/http"
	"github.com/openlabs/spree-go/pkg/spree"
)

// resource implements the operations every Spree resource shares: paginated
// listing, fetch by id, create, update, delete. Concrete clients embed it,
// parametrized by collection path and the key the list envelope nests items
// under.
type resource[T any] struct {
	httpClient *http.Client
	path       string
	itemKey    string
	singular   string
	plural     string
	perPage    int
}

func newResource[T any](httpClient *http.Client, path, itemKey, singular, plural string, perPage int) resource[T] {
	if perPage <= 0 {
		perPage = spree.DefaultPerPage
	}

	return resource[T]{
		httpClient: httpClient,
		path:       path,
		itemKey:    itemKey,
		singular:   singular,
		plural:     plural,
		perPage:    perPage,
	}
}

// list fetches one page. Page and per-page default to 1 and the client's page
// size when the caller leaves them unset; filters pass through untouched. The
// returned Page re-issues this request, filters included, when NextPage is
// called.
func (r *resource[T]) list(ctx context.Context, params *spree.QueryParams) (*spree.Page[T], error) {
	effective := spree.NewQueryParams()

	if params != nil {
		effective.Page = params.Page
		effective.PerPage = params.PerPage

		for predicate, value := range params.Filters {
			effective.Filters[predicate] = value
		}
	}

	if effective.Page <= 0 {
		effective.Page = 1
	}

	if effective.PerPage <= 0 {
		effective.PerPage = r.perPage
	}

	resp, err := r.httpClient.Get(ctx, r.path, effective.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", r.plural, err)
	}

	page, err := spree.UnmarshalPage[T](resp.Body, r.itemKey)
	if err != nil {
		return nil, fmt.Errorf("parsing %s list: %w", r.plural, err)
	}

	page.SetFetcher(func(ctx context.Context, pageNum int) (*spree.Page[T], error) {
		next := *effective
		next.Page = pageNum

		return r.list(ctx, &next)
	})

	return page, nil
}

// get fetches a single resource by its path id.
func (r *resource[T]) get(ctx context.Context, id string) (*T, error) {
	resp, err := r.httpClient.Get(ctx, r.path+"/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", r.singular, err)
	}

	return decode[T](resp.Body, r.singular)
}

// create POSTs the shaped payload as a form body.
func (r *resource[T]) create(ctx context.Context, payload spree.PayloadShaper) (*T, error) {
	resp, err := r.httpClient.PostForm(ctx, r.path, shapedValues(payload))
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", r.singular, err)
	}

	return decode[T](resp.Body, r.singular)
}

// update PUTs the shaped payload as a form body.
func (r *resource[T]) update(ctx context.Context, id string, payload spree.PayloadShaper) (*T, error) {
	resp, err := r.httpClient.PutForm(ctx, r.path+"/"+id, shapedValues(payload))
	if err != nil {
		return nil, fmt.Errorf("updating %s: %w", r.singular, err)
	}

	return decode[T](resp.Body, r.singular)
}

// del removes a resource and returns the server's representation of it.
func (r *resource[T]) del(ctx context.Context, id string) (*T, error) {
	resp, err := r.httpClient.Delete(ctx, r.path+"/"+id)
	if err != nil {
		return nil, fmt.Errorf("deleting %s: %w", r.singular, err)
	}

	return decode[T](resp.Body, r.singular)
}

// decode parses a single-object response body. Some endpoints answer a
// delete with an empty body; that decodes to the zero value rather than an
// error.
func decode[T any](body []byte, label string) (*T, error) {
	var out T

	if len(body) == 0 {
		return &out, nil
	}

	err := json.Unmarshal(body, &out)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", label, err)
	}

	return &out, nil
}

func shapedValues(payload spree.PayloadShaper) url.Values {
	if payload == nil {
		return url.Values{}
	}

	return payload.Values()
}
