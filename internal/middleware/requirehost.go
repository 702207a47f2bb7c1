package middleware

import (
	"fmt"

	"reqparse/internal/http/request"
)

// RequireHost rejects HTTP/1.1 and later requests that carry no Host field.
type RequireHost struct{}

func NewRequireHost() *RequireHost {
	return &RequireHost{}
}

func (rh *RequireHost) HandleRequest(req *request.Request) error {
	version, ok := req.Version()
	if !ok || (version.Major == 1 && version.Minor == 0) || version.Major < 1 {
		return nil
	}
	if _, ok := req.Host(); !ok {
		return fmt.Errorf("%w: %s %s", ErrMissingHost, req.Method(), req.Target())
	}
	return nil
}
