package middleware

import (
	"errors"

	"reqparse/internal/http/request"
)

var (
	ErrMissingHost      = errors.New("missing Host header")
	ErrMethodNotAllowed = errors.New("method not allowed")
)

type RequestMiddleware interface {
	HandleRequest(req *request.Request) error
}

// Apply runs every middleware in order and stops at the first error.
func Apply(req *request.Request, mws ...RequestMiddleware) error {
	for _, m := range mws {
		if err := m.HandleRequest(req); err != nil {
			return err
		}
	}
	return nil
}
