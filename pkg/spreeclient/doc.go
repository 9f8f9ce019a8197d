// Package spreeclient provides the primary entry point for constructing a
// Spree Commerce API client that implements the spree.Client interface.
//
// It layers configuration and HTTP transport on top of the resource
// interfaces and types defined in the spree package. Most applications should
// import spreeclient to build a client, then use the returned spree.Client to
// access resource-specific clients, for example Products(), Orders(),
// Shipments(orderNumber), etc.
//
// Quick start
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
//
//	  cli, err := spreeclient.NewWithToken("https://store.example.com/api", "secret-token")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with a full config:
//	  cli, err = spreeclient.New(&spree.Config{
//	    Endpoint: "https://store.example.com/api",
//	    Token:    "secret-token",
//	    PerPage:  50,
//	    RetryMax: 3,
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  products, err := cli.Products().List(ctx, spree.NewQueryParams().WithPerPage(10))
//	  if err != nil { log.Fatal(err) }
//	  _ = products
//	}
//
// The token is sent with every request in the X-Spree-Token header. Obtaining
// a token (Spree admin UI, user API keys) is outside the scope of this
// package.
package spreeclient
