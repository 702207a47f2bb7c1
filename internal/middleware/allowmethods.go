package middleware

import (
	"fmt"

	"reqparse/internal/http/request"
)

type AllowMethods struct {
	allowed map[request.Method]struct{}
}

// NewAllowMethods allows only the given methods. With no methods every
// request passes.
func NewAllowMethods(methods ...request.Method) *AllowMethods {
	allowed := make(map[request.Method]struct{}, len(methods))
	for _, m := range methods {
		allowed[m] = struct{}{}
	}
	return &AllowMethods{allowed: allowed}
}

func (am *AllowMethods) HandleRequest(req *request.Request) error {
	if len(am.allowed) == 0 {
		return nil
	}
	if _, ok := am.allowed[req.Method()]; !ok {
		return fmt.Errorf("%w: %s", ErrMethodNotAllowed, req.Method())
	}
	return nil
}
