package spree

import (
	"context"
	"time"
)

// ProductsClient provides access to the products resource.
type ProductsClient interface {
	List(ctx context.Context, params *QueryParams) (*Page[Product], error)
	Get(ctx context.Context, id int64) (*Product, error)
	Create(ctx context.Context, request *ProductCreateRequest) (*Product, error)
	Update(ctx context.Context, id int64, request *ProductUpdateRequest) (*Product, error)
	Delete(ctx context.Context, id int64) (*Product, error)
}

// OrdersClient provides access to the orders resource. Orders apply no
// payload shaping; create/update take a pass-through Form.
type OrdersClient interface {
	List(ctx context.Context, params *QueryParams) (*Page[Order], error)
	Get(ctx context.Context, number string) (*Order, error)
	Create(ctx context.Context, form Form) (*Order, error)
	Update(ctx context.Context, number string, form Form) (*Order, error)
	Delete(ctx context.Context, number string) (*Order, error)
}

// StockLocationsClient provides access to the stock locations resource.
type StockLocationsClient interface {
	List(ctx context.Context, params *QueryParams) (*Page[StockLocation], error)
	Get(ctx context.Context, id int64) (*StockLocation, error)
	Create(ctx context.Context, form Form) (*StockLocation, error)
	Update(ctx context.Context, id int64, form Form) (*StockLocation, error)
	Delete(ctx context.Context, id int64) (*StockLocation, error)
}

// StockItemsClient provides access to the stock items of one stock location.
type StockItemsClient interface {
	List(ctx context.Context, params *QueryParams) (*Page[StockItem], error)
	Get(ctx context.Context, id int64) (*StockItem, error)
	Create(ctx context.Context, request *StockItemUpdateRequest) (*StockItem, error)
	Update(ctx context.Context, id int64, request *StockItemUpdateRequest) (*StockItem, error)
	Delete(ctx context.Context, id int64) (*StockItem, error)
}

// VariantsClient provides access to variants, either scoped to one product or
// unscoped across the whole catalog. An unscoped Get resolves the variant
// through a q[id_eq] listing and requires exactly one match.
type VariantsClient interface {
	List(ctx context.Context, params *QueryParams) (*Page[Variant], error)
	Get(ctx context.Context, id int64) (*Variant, error)
	Create(ctx context.Context, form Form) (*Variant, error)
	Update(ctx context.Context, id int64, form Form) (*Variant, error)
	Delete(ctx context.Context, id int64) (*Variant, error)
}

// ShipmentsClient provides access to the shipments of one order, including
// the ready/ship/add/remove state transitions. Update and the transition
// helpers send the shaped payload as query parameters, which is what the
// Spree shipment endpoints expect.
type ShipmentsClient interface {
	List(ctx context.Context, params *QueryParams) (*Page[Shipment], error)
	Get(ctx context.Context, number string) (*Shipment, error)
	Update(ctx context.Context, number string, request *ShipmentUpdateRequest) (*Shipment, error)
	Ready(ctx context.Context, number string, request *ShipmentUpdateRequest) (*Shipment, error)
	Ship(ctx context.Context, number string, request *ShipmentUpdateRequest) (*Shipment, error)
	Add(ctx context.Context, number string, request *ShipmentItemRequest) (*Shipment, error)
	Remove(ctx context.Context, number string, request *ShipmentItemRequest) (*Shipment, error)
}

// Client is the entry point to the Spree API. Accessors return fresh handles
// on every call; handles are cheap, stateless, and safe to discard.
type Client interface {
	Products() ProductsClient
	Orders() OrdersClient
	StockLocations() StockLocationsClient
	StockItems(locationID int64) StockItemsClient
	// Variants returns a handle scoped to the given product, or an unscoped
	// handle when productID is zero.
	Variants(productID int64) VariantsClient
	Shipments(orderNumber string) ShipmentsClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a spree.Client.
//
// Endpoint and Token are required: the token is supplied by the caller and
// attached to every request as the X-Spree-Token header. Token acquisition is
// out of scope for this library.
//
// The client performs no retries by default; set RetryMax to opt in to
// transport-level retries for 5xx and connection failures. Per-request
// timeouts are controlled through the context passed to client methods.
type Config struct {
	// Endpoint is the base URL of the Spree API, e.g.
	// "https://store.example.com/api".
	Endpoint string

	// Token is the value sent in the X-Spree-Token header.
	Token string

	// PerPage overrides the default page size (25) used by listings that do
	// not specify one.
	PerPage int

	// HTTPTimeout is an optional default timeout applied by the transport.
	HTTPTimeout time.Duration

	// RetryMax is the maximum number of transport retries. 0 disables
	// retrying entirely.
	RetryMax int
	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries.
	RetryWaitMax time.Duration

	// Debug enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool
	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string
}
