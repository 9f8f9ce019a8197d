package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlabs/spree-go/pkg/spree"
)

func TestOrdersClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "complete", r.URL.Query().Get("q[state_eq]"))

		response := listEnvelope("orders", 1, 1, 1, []spree.Order{
			{ID: 7, Number: "R123456789", State: "complete", Total: "45.00"},
		})

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	orders := NewOrdersClient(newTestHTTPClient(server.URL), 0)

	params := spree.NewQueryParams().WithFilter("state_eq", "complete")

	page, err := orders.List(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "R123456789", page.Items[0].Number)
}

func TestOrdersClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/R123456789", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		order := spree.Order{ID: 7, Number: "R123456789", State: "complete", Email: "buyer@example.com"}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(order)
	}))
	defer server.Close()

	orders := NewOrdersClient(newTestHTTPClient(server.URL), 0)

	order, err := orders.Get(context.Background(), "R123456789")
	require.NoError(t, err)
	assert.Equal(t, "R123456789", order.Number)
	assert.Equal(t, "buyer@example.com", order.Email)
}

func TestOrdersClient_Create_PassThroughForm(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		assert.NoError(t, r.ParseForm())
		// The form goes through untouched, keys included.
		assert.Equal(t, "buyer@example.com", r.PostForm.Get("order[email]"))
		assert.Equal(t, "USD", r.PostForm.Get("order[currency]"))

		order := spree.Order{ID: 8, Number: "R987654321", State: "cart", Email: "buyer@example.com"}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(order)
	}))
	defer server.Close()

	orders := NewOrdersClient(newTestHTTPClient(server.URL), 0)

	form := spree.Form{
		"order[email]":    {"buyer@example.com"},
		"order[currency]": {"USD"},
	}

	order, err := orders.Create(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, "R987654321", order.Number)
}

func TestOrdersClient_Update(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/R987654321", r.URL.Path)
		assert.Equal(t, "PUT", r.Method)

		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "new@example.com", r.PostForm.Get("order[email]"))

		order := spree.Order{ID: 8, Number: "R987654321", Email: "new@example.com"}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(order)
	}))
	defer server.Close()

	orders := NewOrdersClient(newTestHTTPClient(server.URL), 0)

	order, err := orders.Update(context.Background(), "R987654321", spree.Form{
		"order[email]": {"new@example.com"},
	})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", order.Email)
}

func TestOrdersClient_Delete(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/R987654321", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	orders := NewOrdersClient(newTestHTTPClient(server.URL), 0)

	order, err := orders.Delete(context.Background(), "R987654321")
	require.NoError(t, err)
	require.NotNil(t, order)
}
