package domain

import (
	"errors"
	"fmt"
)

// Common domain errors
var (
	// ErrMissingCredential is returned when a command requires an auth
	// credential and none was supplied. Not a system fault: executors
	// turn it into a "please log in" reply.
	ErrMissingCredential = errors.New("missing authentication credential")
	// ErrCatalogUnavailable is returned when the gateway currency catalog
	// cannot be fetched. Fatal to the resolution, never retried.
	ErrCatalogUnavailable = errors.New("currency catalog unavailable")
	// ErrCurrencyNotFound is returned when a symbol is absent from the catalog.
	ErrCurrencyNotFound = errors.New("currency not found")
	// ErrPriceUnavailable is returned when an order cannot be priced because
	// no source yielded a strictly positive price.
	ErrPriceUnavailable = errors.New("price unavailable")
)

// GatewayError carries the status code and response body of a failed
// downstream gateway call. Transport failures wrap the underlying error
// and leave Status at zero.
type GatewayError struct {
	Status int
	Body   string
	Err    error
}

func (e *GatewayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gateway call failed: %v", e.Err)
	}
	return fmt.Sprintf("gateway returned %d: %s", e.Status, e.Body)
}

func (e *GatewayError) Unwrap() error { return e.Err }
