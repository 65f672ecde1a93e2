package core

import "fmt"

// ValidationError reports bad or missing CLI input. It is always raised
// before any network call.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return "invalid input: " + e.Msg
}

func Validationf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NetworkError is a transport-level failure talking to a remote endpoint.
// Not retried; the run ends here.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: connection failed: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// APIError means the search provider answered, but with a non-2xx status
// or a body this tool could not make sense of.
type APIError struct {
	Op     string
	Status int
	Msg    string
}

func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: provider returned status %d: %s", e.Op, e.Status, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

// NoResultsError is a valid query with an empty result set.
type NoResultsError struct {
	Origin      string
	Destination string
}

func (e *NoResultsError) Error() string {
	return fmt.Sprintf("no suitable flights were found from %s to %s", e.Origin, e.Destination)
}

// BookingError means the booking endpoint rejected the request.
type BookingError struct {
	Status int
	Reason string
}

func (e *BookingError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("booking rejected (status %d): %s", e.Status, e.Reason)
	}
	return "booking rejected: " + e.Reason
}
