package dict

import (
	"errors"
	"fmt"
)

var (
	// ErrConnectionClosed is returned by operations issued after Close.
	ErrConnectionClosed = errors.New("dict: connection closed")
)

// ConnectionError reports a failure to establish a usable session: the
// dial failed, the greeting could not be read, or the greeting code was
// not 220. The connection is closed and unusable.
type ConnectionError struct {
	Op  string // "dial" or "greeting"
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("dict: %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error chain inspection.
func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// ProtocolError reports a reply that does not match the expected grammar
// for the in-flight command, or a transport failure mid-exchange. The
// stream may be desynchronized afterward; callers should not issue
// further commands on the connection.
//
// Note that a 552 "no match" reply is not an error: operations report it
// as a successful call with an empty result.
type ProtocolError struct {
	Cmd     string // command verb the failure occurred under
	Message string
	Err     error // underlying I/O or parse error, if any
}

func (e *ProtocolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("dict: %s: %s: %v", e.Cmd, e.Message, e.Err)
	}
	return fmt.Sprintf("dict: %s: %s", e.Cmd, e.Message)
}

// Unwrap returns the underlying error for error chain inspection.
func (e *ProtocolError) Unwrap() error {
	return e.Err
}
