// Package spree provides types, interfaces, and helpers for working with the
// Spree Commerce REST API.
//
// # Overview
//
// The spree package defines the domain types (Product, Order, Variant,
// StockLocation, StockItem, Shipment) and the interfaces for resource-oriented
// clients (ProductsClient, OrdersClient, and so on). A concrete implementation
// is provided by the spreeclient package, which wires configuration and
// transport. Most consumers should import spreeclient to construct a client
// and then interact with the resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/openlabs/spree-go/pkg/spree"
//	  "github.com/openlabs/spree-go/pkg/spreeclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := spreeclient.NewWithToken("https://store.example.com/api", "secret-token")
//	  if err != nil { log.Fatal(err) }
//
//	  // List the first page of products
//	  page, err := cli.Products().List(ctx, spree.NewQueryParams().WithPerPage(50))
//	  if err != nil { log.Fatal(err) }
//	  _ = page
//	}
//
// # Queries and pagination
//
// Use QueryParams to express page, per_page, and ransack filters
// (WithFilter("name_cont", "shirt") becomes q[name_cont]=shirt on the wire).
// List operations return a Page whose item cursor is confined to that page:
//
//	page, err := cli.Products().List(ctx, nil)
//	for {
//	  product, err := page.NextItem()
//	  if errors.Is(err, spree.ErrNoMoreItems) { break }
//	  if err != nil { /* handle error */ }
//	  _ = product
//	}
//	if page.HasNext() {
//	  next, err := page.NextPage(ctx)
//	  _ = next
//	  _ = err
//	}
//
// # Errors
//
// API errors are represented by APIError, carrying the HTTP status and the
// raw body. Helpers such as IsNotFound and IsUnauthorized make it easy to
// branch on common cases. The library performs no retries and no suppression;
// every operation either returns a decoded value or an error.
package spree
