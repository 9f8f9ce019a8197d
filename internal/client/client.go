package client

import (
	"strings"
	"time"

	"github.com/openlabs/spree-go/internal/http"
	"github.com/openlabs/spree-go/pkg/spree"
)

const defaultRetryWaitMax = 30 * time.Second

// Client implements the spree.Client interface.
type Client struct {
	httpClient *http.Client
	perPage    int
}

// New creates a new Spree API client. The token in config is attached to
// every request as the X-Spree-Token header.
func New(config *spree.Config) (*Client, error) {
	if config == nil {
		return nil, spree.ErrConfigRequired
	}

	if config.Endpoint == "" {
		return nil, spree.ErrEndpointRequired
	}

	if config.Token == "" {
		return nil, spree.ErrTokenRequired
	}

	httpOpts := buildHTTPClientOptions(config)
	httpClient := http.NewClient(strings.TrimSuffix(config.Endpoint, "/"), config.Token, httpOpts...)

	perPage := config.PerPage
	if perPage <= 0 {
		perPage = spree.DefaultPerPage
	}

	return &Client{
		httpClient: httpClient,
		perPage:    perPage,
	}, nil
}

// buildHTTPClientOptions builds HTTP client options from config.
func buildHTTPClientOptions(config *spree.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := 1 * time.Second
		retryWaitMax := defaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// Resource client accessors. Each call returns a fresh handle; handles are
// stateless and cheap to construct.

// Products implements spree.Client.Products.
func (c *Client) Products() spree.ProductsClient {
	return NewProductsClient(c.httpClient, c.perPage)
}

// Orders implements spree.Client.Orders.
func (c *Client) Orders() spree.OrdersClient {
	return NewOrdersClient(c.httpClient, c.perPage)
}

// StockLocations implements spree.Client.StockLocations.
func (c *Client) StockLocations() spree.StockLocationsClient {
	return NewStockLocationsClient(c.httpClient, c.perPage)
}

// StockItems implements spree.Client.StockItems.
func (c *Client) StockItems(locationID int64) spree.StockItemsClient {
	return NewStockItemsClient(c.httpClient, locationID, c.perPage)
}

// Variants implements spree.Client.Variants.
func (c *Client) Variants(productID int64) spree.VariantsClient {
	return NewVariantsClient(c.httpClient, productID, c.perPage)
}

// Shipments implements spree.Client.Shipments.
func (c *Client) Shipments(orderNumber string) spree.ShipmentsClient {
	return NewShipmentsClient(c.httpClient, orderNumber, c.perPage)
}

// loggerAdapter adapts spree.Logger to http.Logger.
type loggerAdapter struct {
	logger spree.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
