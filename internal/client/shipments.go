package client

import (
	"context"
	"fmt"

	"github.com/openlabs/spree-go/internal/http"
	"github.com/openlabs/spree-go/pkg/spree"
)

// ShipmentsClient implements spree.ShipmentsClient for the shipments of one
// order. The shipment endpoints expect their PUT payloads as query
// parameters rather than a form body; every mutation here goes through
// PutQuery.
type ShipmentsClient struct {
	resource[spree.Shipment]
}

// NewShipmentsClient creates a new shipments client scoped to the given
// order number.
func NewShipmentsClient(httpClient *http.Client, orderNumber string, perPage int) *ShipmentsClient {
	path := "/orders/" + orderNumber + "/shipments"

	return &ShipmentsClient{
		resource: newResource[spree.Shipment](httpClient, path, "shipments", "shipment", "shipments", perPage),
	}
}

// List implements spree.ShipmentsClient.List.
func (c *ShipmentsClient) List(ctx context.Context, params *spree.QueryParams) (*spree.Page[spree.Shipment], error) {
	return c.list(ctx, params)
}

// Get implements spree.ShipmentsClient.Get.
func (c *ShipmentsClient) Get(ctx context.Context, number string) (*spree.Shipment, error) {
	return c.get(ctx, number)
}

// Update implements spree.ShipmentsClient.Update.
func (c *ShipmentsClient) Update(ctx context.Context, number string, request *spree.ShipmentUpdateRequest) (*spree.Shipment, error) {
	return c.putAction(ctx, c.path+"/"+number, request, "updating")
}

// Ready implements spree.ShipmentsClient.Ready, transitioning the shipment to
// the ready state.
func (c *ShipmentsClient) Ready(ctx context.Context, number string, request *spree.ShipmentUpdateRequest) (*spree.Shipment, error) {
	return c.putAction(ctx, c.path+"/"+number+"/ready", request, "readying")
}

// Ship implements spree.ShipmentsClient.Ship, transitioning the shipment to
// the shipped state.
func (c *ShipmentsClient) Ship(ctx context.Context, number string, request *spree.ShipmentUpdateRequest) (*spree.Shipment, error) {
	return c.putAction(ctx, c.path+"/"+number+"/ship", request, "shipping")
}

// Add implements spree.ShipmentsClient.Add, adding a variant quantity to the
// shipment.
func (c *ShipmentsClient) Add(ctx context.Context, number string, request *spree.ShipmentItemRequest) (*spree.Shipment, error) {
	return c.putAction(ctx, c.path+"/"+number+"/add", request, "adding to")
}

// Remove implements spree.ShipmentsClient.Remove, removing a variant quantity
// from the shipment.
func (c *ShipmentsClient) Remove(ctx context.Context, number string, request *spree.ShipmentItemRequest) (*spree.Shipment, error) {
	return c.putAction(ctx, c.path+"/"+number+"/remove", request, "removing from")
}

func (c *ShipmentsClient) putAction(ctx context.Context, path string, payload spree.PayloadShaper, action string) (*spree.Shipment, error) {
	resp, err := c.httpClient.PutQuery(ctx, path, shapedValues(payload))
	if err != nil {
		return nil, fmt.Errorf("%s shipment: %w", action, err)
	}

	return decode[spree.Shipment](resp.Body, "shipment")
}
