package http

import (
	"net/http"

	"termswap/internal/platform/net/http/bind"
)

func result(out any, err error) Response {
	if err != nil {
		return Error(err)
	}
	return OK(out)
}

// JSONHandler binds the body into T and hands it to fn. Binding failures
// never reach fn
func JSONHandler[T any](fn func(*http.Request, T) (any, error), opts ...bind.JSONOptions) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r, opts...)
		if err != nil {
			return Error(err)
		}
		return result(fn(r, in))
	})
}

func GetJSON(r Router, path string, fn func(*http.Request) (any, error)) {
	r.Get(path, Handle(func(req *http.Request) Response { return result(fn(req)) }))
}

func PostJSON[T any](r Router, path string, fn func(*http.Request, T) (any, error), opts ...bind.JSONOptions) {
	r.Post(path, JSONHandler(fn, opts...))
}
