package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidAddress = errors.New("delivery address is empty")
var ErrEmptyCart = errors.New("cart is empty")
var ErrNotAuthenticated = errors.New("not authenticated")
var ErrForbidden = errors.New("access forbidden")
var ErrNoTransition = errors.New("no further status transition available")
var ErrGoodNotFound = errors.New("good not found")
var ErrOutOfStock = errors.New("good is out of stock")
var ErrInvalidCredentials = errors.New("invalid credentials")

// RemoteError is returned when a call to the tea-shop API fails, either at
// the transport level or with a non-2xx response. Local state is never
// mutated when one is returned, so the failed operation is retriable.
type RemoteError struct {
	Op         string // logical operation, e.g. "create order"
	StatusCode int    // upstream HTTP status, 0 on transport failure
	Message    string
	Err        error // underlying transport error, if any
}

func (e *RemoteError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: upstream returned %d: %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}
