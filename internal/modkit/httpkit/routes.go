package httpkit

import (
	"net/http"
	"strings"

	"tutorhub/internal/platform/net/middleware"
)

// Middlewares is an ordered chain applied to a subrouter
type Middlewares = []func(http.Handler) http.Handler

// Get mounts a bodiless handler under GET
func Get(r Router, path string, h func(*http.Request) (any, error)) { r.Get(path, Call(h)) }

// Post mounts a bodiless handler under POST
func Post(r Router, path string, h func(*http.Request) (any, error)) { r.Post(path, Call(h)) }

// PostJSON decodes and validates T before calling h
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, JSON(h))
}

// PatchJSON decodes and validates T before calling h
func PatchJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Patch(path, JSON(h))
}

// MountUnder opens a subrouter at prefix with mw applied ahead of mount
func MountUnder(r Router, prefix string, mw Middlewares, mount func(Router)) {
	r.Route(prefix, func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	})
}

// MountAPI mounts under /api/{version}
//
//	httpkit.MountAPI(r, "v1", httpkit.CommonStack(opts), func(api httpkit.Router) {
//	  httpkit.Protected(api, port, mountClasses)
//	})
func MountAPI(r Router, version string, mw Middlewares, mount func(Router)) {
	MountUnder(r, "/api/"+strings.Trim(version, "/ "), mw, mount)
}

// MountAPIV1 is MountAPI pinned to v1
func MountAPIV1(r Router, mw Middlewares, mount func(Router)) { MountAPI(r, "v1", mw, mount) }

// Protected groups routes behind bearer auth; a nil port leaves them open
func Protected(r Router, p middleware.AuthPort, fn func(Router)) {
	r.Group(func(gr Router) {
		if p != nil {
			gr.Use(Auth(p))
		}
		fn(gr)
	})
}
