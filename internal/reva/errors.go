package reva

import (
	"errors"
	"fmt"
)

// ErrMalformedTimestamp is matched with errors.Is for any timestamp that
// violates the "YYYY-MM-DD HH:mm:ss" contract.
var ErrMalformedTimestamp = errors.New("malformed timestamp")

// MalformedTimestampError carries the offending value.
type MalformedTimestampError struct {
	Value string
}

func (e *MalformedTimestampError) Error() string {
	return fmt.Sprintf("malformed timestamp %q: want \"YYYY-MM-DD HH:mm:ss\"", e.Value)
}

func (e *MalformedTimestampError) Unwrap() error {
	return ErrMalformedTimestamp
}

// FetchError is the only modeled upstream failure: transport, auth, and
// payload decoding problems all surface as one. Callers catch it and fall
// back to a neutral display rather than crashing the operator's list.
type FetchError struct {
	Op         string // "request", "status", "decode"
	URL        string
	StatusCode int // zero when the request never completed
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("reva %s %s: status %d: %v", e.Op, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("reva %s %s: %v", e.Op, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsFetchError reports whether err is (or wraps) a *FetchError.
func IsFetchError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}
