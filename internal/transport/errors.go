package transport

import "fmt"

// Error reports a request that could not be completed: network unreachable,
// DNS failure, refused connection. A response with an error status is not an Error.
type Error struct {
	Method string
	URL    string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
