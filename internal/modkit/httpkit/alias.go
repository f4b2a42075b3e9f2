// Package httpkit is the HTTP surface modules program against. It re-exports
// the platform types and adds route sugar, so modules never import
// internal/platform/net/http themselves
package httpkit

import (
	"net/http"

	phttp "termswap/internal/platform/net/http"
	"termswap/internal/platform/net/http/bind"
)

type (
	Envelope    = phttp.Envelope
	Response    = phttp.Response
	Handler     = phttp.Handler
	Router      = phttp.Router
	JSONOptions = bind.JSONOptions
)

// OK wraps data in a 200 response
func OK(data any) Response { return phttp.OK(data) }

// Error wraps err; the envelope status follows its code
func Error(err error) Response { return phttp.Error(err) }

// Call adapts fn to a Handler. A Response returned as data is written
// unchanged, anything else becomes the envelope's data
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.Handle(func(r *http.Request) Response {
		out, err := fn(r)
		switch v := out.(type) {
		case nil:
			if err != nil {
				return Error(err)
			}
			return OK(nil)
		case Response:
			return v
		default:
			if err != nil {
				return Error(err)
			}
			return OK(v)
		}
	})
}

// Get registers fn for GET path
func Get(r Router, path string, fn func(*http.Request) (any, error)) {
	r.Get(path, Call(fn))
}

// PostJSON registers fn for POST path; the body is decoded into T and
// validated before fn runs
func PostJSON[T any](r Router, path string, fn func(*http.Request, T) (any, error), opts ...JSONOptions) {
	phttp.PostJSON(r, path, fn, opts...)
}
