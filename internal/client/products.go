package client

import (
	"context"
	"strconv"

	"github.com/openlabs/spree-go/internal/http"
	"github.com/openlabs/spree-go/pkg/spree"
)

// ProductsClient implements spree.ProductsClient.
type ProductsClient struct {
	resource[spree.Product]
}

// NewProductsClient creates a new products client.
func NewProductsClient(httpClient *http.Client, perPage int) *ProductsClient {
	return &ProductsClient{
		resource: newResource[spree.Product](httpClient, "/products", "products", "product", "products", perPage),
	}
}

// List implements spree.ProductsClient.List.
func (c *ProductsClient) List(ctx context.Context, params *spree.QueryParams) (*spree.Page[spree.Product], error) {
	return c.list(ctx, params)
}

// Get implements spree.ProductsClient.Get.
func (c *ProductsClient) Get(ctx context.Context, id int64) (*spree.Product, error) {
	return c.get(ctx, strconv.FormatInt(id, 10))
}

// Create implements spree.ProductsClient.Create.
func (c *ProductsClient) Create(ctx context.Context, request *spree.ProductCreateRequest) (*spree.Product, error) {
	return c.create(ctx, request)
}

// Update implements spree.ProductsClient.Update.
func (c *ProductsClient) Update(ctx context.Context, id int64, request *spree.ProductUpdateRequest) (*spree.Product, error) {
	return c.update(ctx, strconv.FormatInt(id, 10), request)
}

// Delete implements spree.ProductsClient.Delete.
func (c *ProductsClient) Delete(ctx context.Context, id int64) (*spree.Product, error) {
	return c.del(ctx, strconv.FormatInt(id, 10))
}
