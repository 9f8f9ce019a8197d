package client

import (
	"context"

	"github.com/openlabs/spree-go/internal/http"
	"github.com/openlabs/spree-go/pkg/spree"
)

// OrdersClient implements spree.OrdersClient. Orders are addressed by their
// number ("R" followed by digits), not their numeric id, and take
// pass-through form payloads.
type OrdersClient struct {
	resource[spree.Order]
}

// NewOrdersClient creates a new orders client.
func NewOrdersClient(httpClient *http.Client, perPage int) *OrdersClient {
	return &OrdersClient{
		resource: newResource[spree.Order](httpClient, "/orders", "orders", "order", "orders", perPage),
	}
}

// List implements spree.OrdersClient.List.
func (c *OrdersClient) List(ctx context.Context, params *spree.QueryParams) (*spree.Page[spree.Order], error) {
	return c.list(ctx, params)
}

// Get implements spree.OrdersClient.Get.
func (c *OrdersClient) Get(ctx context.Context, number string) (*spree.Order, error) {
	return c.get(ctx, number)
}

// Create implements spree.OrdersClient.Create.
func (c *OrdersClient) Create(ctx context.Context, form spree.Form) (*spree.Order, error) {
	return c.create(ctx, form)
}

// Update implements spree.OrdersClient.Update.
func (c *OrdersClient) Update(ctx context.Context, number string, form spree.Form) (*spree.Order, error) {
	return c.update(ctx, number, form)
}

// Delete implements spree.OrdersClient.Delete.
func (c *OrdersClient) Delete(ctx context.Context, number string) (*spree.Order, error) {
	return c.del(ctx, number)
}
