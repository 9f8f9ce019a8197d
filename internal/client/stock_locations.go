package client

import (
	"context"
	"strconv"

	"github.com/openlabs/spree-go/internal/http"
	"github.com/openlabs/spree-go/pkg/spree"
)

// StockLocationsClient implements spree.StockLocationsClient.
type StockLocationsClient struct {
	resource[spree.StockLocation]
}

// NewStockLocationsClient creates a new stock locations client.
func NewStockLocationsClient(httpClient *http.Client, perPage int) *StockLocationsClient {
	return &StockLocationsClient{
		resource: newResource[spree.StockLocation](httpClient, "/stock_locations", "stock_locations", "stock location", "stock locations", perPage),
	}
}

// List implements spree.StockLocationsClient.List.
func (c *StockLocationsClient) List(ctx context.Context, params *spree.QueryParams) (*spree.Page[spree.StockLocation], error) {
	return c.list(ctx, params)
}

// Get implements spree.StockLocationsClient.Get.
func (c *StockLocationsClient) Get(ctx context.Context, id int64) (*spree.StockLocation, error) {
	return c.get(ctx, strconv.FormatInt(id, 10))
}

// Create implements spree.StockLocationsClient.Create.
func (c *StockLocationsClient) Create(ctx context.Context, form spree.Form) (*spree.StockLocation, error) {
	return c.create(ctx, form)
}

// Update implements spree.StockLocationsClient.Update.
func (c *StockLocationsClient) Update(ctx context.Context, id int64, form spree.Form) (*spree.StockLocation, error) {
	return c.update(ctx, strconv.FormatInt(id, 10), form)
}

// Delete implements spree.StockLocationsClient.Delete.
func (c *StockLocationsClient) Delete(ctx context.Context, id int64) (*spree.StockLocation, error) {
	return c.del(ctx, strconv.FormatInt(id, 10))
}
