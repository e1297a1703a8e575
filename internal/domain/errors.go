package domain

import "fmt"

// ValidationError is a local, user-correctable reason an order cannot yet be
// submitted. It never reaches the transport layer.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// RequestKind distinguishes how a backend request failed.
type RequestKind string

const (
	KindNetwork RequestKind = "network"
	KindServer  RequestKind = "server"
	KindTimeout RequestKind = "timeout"
)

// RequestError is a failed call to the distribution backend. Op names the
// operation ("creating order", "fetching clients") so the surfaced message
// identifies what went wrong. Status is set only for server rejections.
type RequestError struct {
	Op     string
	Kind   RequestKind
	Status int
	Err    error
}

func (e *RequestError) Error() string {
	switch e.Kind {
	case KindServer:
		// The backend's error body is not parsed here; the status code is
		// the whole message.
		return fmt.Sprintf("Error %s: status %d", e.Op, e.Status)
	case KindTimeout:
		return fmt.Sprintf("Error %s: request timed out", e.Op)
	default:
		return fmt.Sprintf("Error %s: %v", e.Op, e.Err)
	}
}

func (e *RequestError) Unwrap() error {
	return e.Err
}
