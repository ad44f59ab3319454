package http

import (
	"net/http"

	"tutorhub/internal/platform/net/http/bind"
)

// result turns a handler's (out, err) into a Response
// handlers may return a Response themselves to pick the status
func result(out any, err error) Response {
	if err != nil {
		return Error(err)
	}
	if resp, ok := out.(Response); ok {
		return resp
	}
	return OK(out)
}

// JSONHandler binds and validates the body into T, then calls fn
func JSONHandler[T any](fn func(*http.Request, T) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r)
		if err != nil {
			return Error(err)
		}
		return result(fn(r, in))
	})
}

// JSONHandlerNoBody calls fn without reading a request body
func JSONHandlerNoBody(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		return result(fn(r))
	})
}
