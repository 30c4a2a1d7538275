// Package checkout talks to the external checkout-session service that
// turns a cabin selection into a hosted payment page.
package checkout

import (
	"context"

	"bluevoyager/internal/domain/models"
)

// Result is the successful response: the URL the visitor is sent to.
type Result struct {
	URL string `json:"url"`
}

// Client creates checkout sessions. Implementations must return a
// domain.UnavailableError whenever no usable redirect URL was obtained,
// so callers never redirect on a bad response.
type Client interface {
	CreateSession(ctx context.Context, payload models.CheckoutPayload) (Result, error)
}
