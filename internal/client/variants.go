package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/openlabs/spree-go/internal/http"
	"github.com/openlabs/spree-go/pkg/spree"
)

// VariantsClient implements spree.VariantsClient, scoped to one product or
// unscoped across the whole catalog when the product id is zero.
type VariantsClient struct {
	resource[spree.Variant]
	scoped bool
}

// NewVariantsClient creates a new variants client. A zero productID yields an
// unscoped client over /variants.
func NewVariantsClient(httpClient *http.Client, productID int64, perPage int) *VariantsClient {
	path := "/variants"
	scoped := productID > 0

	if scoped {
		path = fmt.Sprintf("/products/%d/variants", productID)
	}

	return &VariantsClient{
		resource: newResource[spree.Variant](httpClient, path, "variants", "variant", "variants", perPage),
		scoped:   scoped,
	}
}

// List implements spree.VariantsClient.List.
func (c *VariantsClient) List(ctx context.Context, params *spree.QueryParams) (*spree.Page[spree.Variant], error) {
	return c.list(ctx, params)
}

// Get implements spree.VariantsClient.Get. The unscoped variants endpoint has
// no show route, so an unscoped Get resolves through a q[id_eq] listing and
// requires the result to hold exactly one variant.
func (c *VariantsClient) Get(ctx context.Context, id int64) (*spree.Variant, error) {
	if c.scoped {
		return c.get(ctx, strconv.FormatInt(id, 10))
	}

	params := spree.NewQueryParams().WithFilter("id_eq", strconv.FormatInt(id, 10))

	page, err := c.list(ctx, params)
	if err != nil {
		return nil, err
	}

	if len(page.Items) != 1 {
		return nil, fmt.Errorf("%w: id %d matched %d variants", spree.ErrAmbiguousVariant, id, len(page.Items))
	}

	variant := page.Items[0]

	return &variant, nil
}

// Create implements spree.VariantsClient.Create.
func (c *VariantsClient) Create(ctx context.Context, form spree.Form) (*spree.Variant, error) {
	return c.create(ctx, form)
}

// Update implements spree.VariantsClient.Update.
func (c *VariantsClient) Update(ctx context.Context, id int64, form spree.Form) (*spree.Variant, error) {
	return c.update(ctx, strconv.FormatInt(id, 10), form)
}

// Delete implements spree.VariantsClient.Delete.
func (c *VariantsClient) Delete(ctx context.Context, id int64) (*spree.Variant, error) {
	return c.del(ctx, strconv.FormatInt(id, 10))
}
