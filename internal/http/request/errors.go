package request

import (
	"errors"
	"fmt"
)

var (
	ErrIO                   = errors.New("reading request failed")
	ErrMalformedRequestLine = errors.New("malformed request line")
	ErrInvalidTarget        = errors.New("invalid request target")
	ErrUnsupportedVersion   = errors.New("unsupported protocol version")
	ErrTruncatedBody        = errors.New("truncated body")
)

// ParseError is the single failure category returned by the parser. The
// cause keeps the specific sentinel reachable through errors.Is.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("request parse: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
