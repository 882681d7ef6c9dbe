package server

import "fmt"

// MalformedRequestError reports a request line that cannot be served.
// It is always answered with 400 Bad Request.
type MalformedRequestError struct {
	// Line is the request line without its terminator
	Line string
	// Reason describes what is wrong with it
	Reason string
	// Err is the underlying read error, if any
	Err error
}

func (e *MalformedRequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed request line %q: %s: %v", e.Line, e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed request line %q: %s", e.Line, e.Reason)
}

func (e *MalformedRequestError) Unwrap() error {
	return e.Err
}
