package client

import (
	internalhttp "github.com/openlabs/spree-go/internal/http"
)

const testToken = "test-token"

// newTestHTTPClient builds an HTTP client pointed at a test server,
// authenticating with the fixed test token.
func newTestHTTPClient(serverURL string) *internalhttp.Client {
	return internalhttp.NewClient(serverURL, testToken)
}

// listEnvelope builds the envelope Spree list endpoints answer with:
// count/current_page/pages metadata next to the items nested under itemKey.
func listEnvelope(itemKey string, count, currentPage, pages int, items interface{}) map[string]interface{} {
	return map[string]interface{}{
		"count":        count,
		"current_page": currentPage,
		"pages":        pages,
		itemKey:        items,
	}
}
