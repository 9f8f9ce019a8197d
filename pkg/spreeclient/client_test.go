package spreeclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlabs/spree-go/pkg/spree"
	"github.com/openlabs/spree-go/pkg/spreeclient"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("creates client with config", func(t *testing.T) {
		t.Parallel()

		config := &spree.Config{
			Endpoint: "https://store.example.com/api",
			Token:    "secret-token",
		}

		client, err := spreeclient.New(config)
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("requires config", func(t *testing.T) {
		t.Parallel()

		client, err := spreeclient.New(nil)
		require.ErrorIs(t, err, spree.ErrConfigRequired)
		assert.Nil(t, client)
	})

	t.Run("requires endpoint", func(t *testing.T) {
		t.Parallel()

		client, err := spreeclient.New(&spree.Config{Token: "secret-token"})
		require.ErrorIs(t, err, spree.ErrEndpointRequired)
		assert.Nil(t, client)
	})

	t.Run("requires token", func(t *testing.T) {
		t.Parallel()

		client, err := spreeclient.New(&spree.Config{Endpoint: "https://store.example.com/api"})
		require.ErrorIs(t, err, spree.ErrTokenRequired)
		assert.Nil(t, client)
	})

	t.Run("normalizes endpoint", func(t *testing.T) {
		t.Parallel()

		config := &spree.Config{
			Endpoint: "store.example.com/api/",
			Token:    "secret-token",
		}

		client, err := spreeclient.New(config)
		require.NoError(t, err)
		assert.NotNil(t, client)
		assert.Equal(t, "https://store.example.com/api", config.Endpoint)
	})
}

func TestNewWithToken(t *testing.T) {
	t.Parallel()

	client, err := spreeclient.NewWithToken("https://store.example.com/api", "secret-token")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestClientIntegration(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.Path {
		case "/products/42":
			assert.Equal(t, "secret-token", request.Header.Get("X-Spree-Token"))

			product := spree.Product{ID: 42, Name: "Ruby T-Shirt", Price: "19.99"}
			_ = json.NewEncoder(writer).Encode(product)
		default:
			writer.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client, err := spreeclient.NewWithToken(server.URL, "secret-token")
	require.NoError(t, err)

	product, err := client.Products().Get(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "Ruby T-Shirt", product.Name)

	_, err = client.Products().Get(context.Background(), 7)
	require.Error(t, err)
	assert.True(t, spree.IsNotFound(err))
}
