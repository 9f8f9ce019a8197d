package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/openlabs/spree-go/internal/http"
	"github.com/openlabs/spree-go/pkg/spree"
)

// StockItemsClient implements spree.StockItemsClient for the stock items of
// one stock location.
type StockItemsClient struct {
	resource[spree.StockItem]
}

// NewStockItemsClient creates a new stock items client scoped to the given
// stock location.
func NewStockItemsClient(httpClient *http.Client, locationID int64, perPage int) *StockItemsClient {
	path := fmt.Sprintf("/stock_locations/%d/stock_items", locationID)

	return &StockItemsClient{
		resource: newResource[spree.StockItem](httpClient, path, "stock_items", "stock item", "stock items", perPage),
	}
}

// List implements spree.StockItemsClient.List.
func (c *StockItemsClient) List(ctx context.Context, params *spree.QueryParams) (*spree.Page[spree.StockItem], error) {
	return c.list(ctx, params)
}

// Get implements spree.StockItemsClient.Get.
func (c *StockItemsClient) Get(ctx context.Context, id int64) (*spree.StockItem, error) {
	return c.get(ctx, strconv.FormatInt(id, 10))
}

// Create implements spree.StockItemsClient.Create.
func (c *StockItemsClient) Create(ctx context.Context, request *spree.StockItemUpdateRequest) (*spree.StockItem, error) {
	return c.create(ctx, request)
}

// Update implements spree.StockItemsClient.Update.
func (c *StockItemsClient) Update(ctx context.Context, id int64, request *spree.StockItemUpdateRequest) (*spree.StockItem, error) {
	return c.update(ctx, strconv.FormatInt(id, 10), request)
}

// Delete implements spree.StockItemsClient.Delete.
func (c *StockItemsClient) Delete(ctx context.Context, id int64) (*spree.StockItem, error) {
	return c.del(ctx, strconv.FormatInt(id, 10))
}
