package breach

import (
	"errors"
	"fmt"
)

// ErrInvalidEndpoint is wrapped by a TransportError when the client was
// built without a usable endpoint URL.
var ErrInvalidEndpoint = errors.New("invalid check endpoint")

// APIError is a non-success HTTP reply from the backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return "Unknown error"
	}
	return e.Message
}

// TransportError covers every failure before a usable reply was obtained:
// building the request, connecting, reading the body or decoding it.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
