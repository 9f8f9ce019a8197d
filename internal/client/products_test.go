package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlabs/spree-go/pkg/spree"
)

func TestProductsClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, testToken, r.Header.Get("X-Spree-Token"))
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "25", r.URL.Query().Get("per_page"))

		response := listEnvelope("products", 2, 1, 1, []spree.Product{
			{ID: 1, Name: "Ruby T-Shirt", Price: "19.99"},
			{ID: 2, Name: "Ruby Mug", Price: "9.99"},
		})

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	products := NewProductsClient(newTestHTTPClient(server.URL), 0)

	page, err := products.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Count)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 1, page.Pages)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Ruby T-Shirt", page.Items[0].Name)
	assert.False(t, page.HasNext())
}

func TestProductsClient_List_WithParams(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("per_page"))
		assert.Equal(t, "shirt", r.URL.Query().Get("q[name_cont]"))

		response := listEnvelope("products", 25, 3, 3, []spree.Product{
			{ID: 21, Name: "Spree T-Shirt"},
		})

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	products := NewProductsClient(newTestHTTPClient(server.URL), 0)

	params := spree.NewQueryParams().WithPage(3).WithPerPage(10).WithFilter("name_cont", "shirt")

	page, err := products.List(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, 3, page.CurrentPage)
	assert.False(t, page.HasNext())
}

func TestProductsClient_List_NextPagePreservesFilters(t *testing.T) {
	t.Parallel()

	var pagesServed []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pagesServed = append(pagesServed, r.URL.Query().Get("page"))
		assert.Equal(t, "shirt", r.URL.Query().Get("q[name_cont]"))
		assert.Equal(t, "1", r.URL.Query().Get("per_page"))

		page := 1
		if r.URL.Query().Get("page") == "2" {
			page = 2
		}

		items := [][]spree.Product{
			{{ID: 1, Name: "First Shirt"}},
			{{ID: 2, Name: "Second Shirt"}},
		}

		response := listEnvelope("products", 2, page, 2, items[page-1])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	products := NewProductsClient(newTestHTTPClient(server.URL), 0)

	params := spree.NewQueryParams().WithPerPage(1).WithFilter("name_cont", "shirt")

	page, err := products.List(context.Background(), params)
	require.NoError(t, err)
	require.True(t, page.HasNext())

	next, err := page.NextPage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, next.CurrentPage)
	require.Len(t, next.Items, 1)
	assert.Equal(t, int64(2), next.Items[0].ID)
	assert.Equal(t, []string{"1", "2"}, pagesServed)

	_, err = next.NextPage(context.Background())
	require.ErrorIs(t, err, spree.ErrNoMorePages)
}

func TestProductsClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/42", r.URL.Path)
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, testToken, r.Header.Get("X-Spree-Token"))

		product := spree.Product{ID: 42, Name: "Ruby T-Shirt", Price: "19.99", Slug: "ruby-t-shirt"}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(product)
	}))
	defer server.Close()

	products := NewProductsClient(newTestHTTPClient(server.URL), 0)

	product, err := products.Get(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), product.ID)
	assert.Equal(t, "Ruby T-Shirt", product.Name)
}

func TestProductsClient_Get_NotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"The resource you were looking for could not be found."}`))
	}))
	defer server.Close()

	products := NewProductsClient(newTestHTTPClient(server.URL), 0)

	product, err := products.Get(context.Background(), 999)
	require.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, spree.IsNotFound(err))

	apiErr := &spree.APIError{}
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Contains(t, apiErr.Detail, "could not be found")
}

func TestProductsClient_Create(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "Ruby T-Shirt", r.PostForm.Get("product[name]"))
		assert.Equal(t, "19.99", r.PostForm.Get("product[price]"))
		// Unset optional fields must not appear in the payload at all.
		assert.NotContains(t, r.PostForm, "product[description]")
		assert.NotContains(t, r.PostForm, "product[sku]")

		product := spree.Product{ID: 42, Name: "Ruby T-Shirt", Price: "19.99"}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(product)
	}))
	defer server.Close()

	products := NewProductsClient(newTestHTTPClient(server.URL), 0)

	request := &spree.ProductCreateRequest{
		Name:  "Ruby T-Shirt",
		Price: spree.String("19.99"),
	}

	product, err := products.Create(context.Background(), request)
	require.NoError(t, err)
	assert.Equal(t, int64(42), product.ID)
}

func TestProductsClient_Create_ValidationError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":"Invalid resource. Please fix errors and try again.","errors":{"name":["can't be blank"]}}`))
	}))
	defer server.Close()

	products := NewProductsClient(newTestHTTPClient(server.URL), 0)

	product, err := products.Create(context.Background(), &spree.ProductCreateRequest{})
	require.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, spree.IsUnprocessable(err))

	apiErr := &spree.APIError{}
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, []string{"can't be blank"}, apiErr.Errors["name"])
}

func TestProductsClient_Update(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/42", r.URL.Path)
		assert.Equal(t, "PUT", r.Method)

		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "29.99", r.PostForm.Get("product[price]"))
		assert.NotContains(t, r.PostForm, "product[name]")

		product := spree.Product{ID: 42, Name: "Ruby T-Shirt", Price: "29.99"}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(product)
	}))
	defer server.Close()

	products := NewProductsClient(newTestHTTPClient(server.URL), 0)

	request := &spree.ProductUpdateRequest{Price: spree.String("29.99")}

	product, err := products.Update(context.Background(), 42, request)
	require.NoError(t, err)
	assert.Equal(t, "29.99", product.Price)
}

func TestProductsClient_Delete(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/42", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)

		product := spree.Product{ID: 42, Name: "Ruby T-Shirt"}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(product)
	}))
	defer server.Close()

	products := NewProductsClient(newTestHTTPClient(server.URL), 0)

	product, err := products.Delete(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), product.ID)
}

func TestProductsClient_List_PageIteration(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := listEnvelope("products", 2, 1, 1, []spree.Product{
			{ID: 1, Name: "First"},
			{ID: 2, Name: "Second"},
		})

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	products := NewProductsClient(newTestHTTPClient(server.URL), 0)

	page, err := products.List(context.Background(), nil)
	require.NoError(t, err)

	first, err := page.NextItem()
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)

	second, err := page.NextItem()
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)

	// The cursor does not restart once exhausted.
	for i := 0; i < 2; i++ {
		_, err = page.NextItem()
		require.True(t, errors.Is(err, spree.ErrNoMoreItems))
	}
}
