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

func TestVariantsClient_List_Scoped(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/5/variants", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		response := listEnvelope("variants", 2, 1, 1, []spree.Variant{
			{ID: 21, SKU: "RUB-100-S", ProductID: 5},
			{ID: 22, SKU: "RUB-100-M", ProductID: 5},
		})

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	variants := NewVariantsClient(newTestHTTPClient(server.URL), 5, 0)

	page, err := variants.List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "RUB-100-S", page.Items[0].SKU)
}

func TestVariantsClient_List_Unscoped(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/variants", r.URL.Path)

		response := listEnvelope("variants", 1, 1, 1, []spree.Variant{
			{ID: 21, SKU: "RUB-100-S", ProductID: 5},
		})

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	variants := NewVariantsClient(newTestHTTPClient(server.URL), 0, 0)

	page, err := variants.List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
}

func TestVariantsClient_Get_Scoped(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/5/variants/21", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		variant := spree.Variant{ID: 21, SKU: "RUB-100-S", ProductID: 5}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(variant)
	}))
	defer server.Close()

	variants := NewVariantsClient(newTestHTTPClient(server.URL), 5, 0)

	variant, err := variants.Get(context.Background(), 21)
	require.NoError(t, err)
	assert.Equal(t, "RUB-100-S", variant.SKU)
}

func TestVariantsClient_Get_UnscopedResolvesThroughFilter(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/variants", r.URL.Path)
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "21", r.URL.Query().Get("q[id_eq]"))

		response := listEnvelope("variants", 1, 1, 1, []spree.Variant{
			{ID: 21, SKU: "RUB-100-S", ProductID: 5},
		})

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	variants := NewVariantsClient(newTestHTTPClient(server.URL), 0, 0)

	variant, err := variants.Get(context.Background(), 21)
	require.NoError(t, err)
	assert.Equal(t, int64(21), variant.ID)
	assert.Equal(t, "RUB-100-S", variant.SKU)
}

func TestVariantsClient_Get_UnscopedNoMatch(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := listEnvelope("variants", 0, 1, 1, []spree.Variant{})

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	variants := NewVariantsClient(newTestHTTPClient(server.URL), 0, 0)

	variant, err := variants.Get(context.Background(), 999)
	require.ErrorIs(t, err, spree.ErrAmbiguousVariant)
	assert.Nil(t, variant)
}

func TestVariantsClient_Get_UnscopedMultipleMatches(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := listEnvelope("variants", 2, 1, 1, []spree.Variant{
			{ID: 21, SKU: "RUB-100-S"},
			{ID: 21, SKU: "RUB-100-S-DUP"},
		})

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	variants := NewVariantsClient(newTestHTTPClient(server.URL), 0, 0)

	variant, err := variants.Get(context.Background(), 21)
	require.ErrorIs(t, err, spree.ErrAmbiguousVariant)
	assert.Nil(t, variant)
}

func TestVariantsClient_Create(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/5/variants", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "RUB-100-L", r.PostForm.Get("variant[sku]"))

		variant := spree.Variant{ID: 23, SKU: "RUB-100-L", ProductID: 5}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(variant)
	}))
	defer server.Close()

	variants := NewVariantsClient(newTestHTTPClient(server.URL), 5, 0)

	variant, err := variants.Create(context.Background(), spree.Form{
		"variant[sku]": {"RUB-100-L"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(23), variant.ID)
}

func TestVariantsClient_Delete(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/5/variants/23", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)

		variant := spree.Variant{ID: 23, SKU: "RUB-100-L"}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(variant)
	}))
	defer server.Close()

	variants := NewVariantsClient(newTestHTTPClient(server.URL), 5, 0)

	variant, err := variants.Delete(context.Background(), 23)
	require.NoError(t, err)
	assert.Equal(t, int64(23), variant.ID)
}
