// Package spreeclient provides the main entry point for creating Spree API clients
package spreeclient

import (
	"fmt"
	"strings"

	"github.com/openlabs/spree-go/internal/client"
	"github.com/openlabs/spree-go/pkg/spree"
)

// New creates a new Spree API client from config. The endpoint is normalized:
// a trailing slash is trimmed and a missing scheme defaults to https.
func New(config *spree.Config) (spree.Client, error) {
	if config == nil {
		return nil, spree.ErrConfigRequired
	}

	if config.Endpoint == "" {
		return nil, spree.ErrEndpointRequired
	}

	if config.Token == "" {
		return nil, spree.ErrTokenRequired
	}

	endpoint := strings.TrimSuffix(config.Endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	config.Endpoint = endpoint

	spreeClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return spreeClient, nil
}

// NewWithToken creates a new client with an API endpoint and token.
func NewWithToken(endpoint, token string) (spree.Client, error) {
	return New(&spree.Config{
		Endpoint: endpoint,
		Token:    token,
	})
}
