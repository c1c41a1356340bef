package protocol

import "fmt"

// ParseError represents a malformed reply from the server.
// The stream position is unreliable after a parse error, so the
// connection should be closed.
type ParseError struct {
	Message string
	Err     error // underlying error, if any
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return "parse error: " + e.Message + ": " + e.Err.Error()
	}
	return "parse error: " + e.Message
}

// Unwrap returns the underlying error for error chain inspection.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// UnexpectedStatusError is returned when a reply carries a well-formed
// status line whose code is not the one the command's grammar requires.
type UnexpectedStatusError struct {
	Want   int
	Status Status
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("unexpected status %d %q (want %d)", e.Status.Code, e.Status.Message, e.Want)
}
