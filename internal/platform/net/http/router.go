package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler is the platform handler type used everywhere
type Handler = func(http.ResponseWriter, *http.Request)

// Router is what modules mount against; chi backs it in production
// it carries only the verbs the API serves
type Router interface {
	Get(path string, h Handler)
	Post(path string, h Handler)
	Patch(path string, h Handler)

	Handle(path string, h http.Handler)
	Use(mw ...func(http.Handler) http.Handler)

	// Group shares the path but scopes middleware, Route nests under pattern
	Group(fn func(Router))
	Route(pattern string, fn func(Router))
}

// chiRouter serves both the root mux and every nested router
type chiRouter struct{ r chi.Router }

// AdaptChi adapts a *chi.Mux to a Router
func AdaptChi(m *chi.Mux) Router { return chiRouter{r: m} }

func (c chiRouter) method(m, p string, h Handler) { c.r.Method(m, p, http.HandlerFunc(h)) }

func (c chiRouter) Get(p string, h Handler)   { c.method(http.MethodGet, p, h) }
func (c chiRouter) Post(p string, h Handler)  { c.method(http.MethodPost, p, h) }
func (c chiRouter) Patch(p string, h Handler) { c.method(http.MethodPatch, p, h) }

func (c chiRouter) Handle(p string, h http.Handler)           { c.r.Handle(p, h) }
func (c chiRouter) Use(mw ...func(http.Handler) http.Handler) { c.r.Use(mw...) }

func (c chiRouter) Group(fn func(Router)) {
	c.r.Group(func(sub chi.Router) { fn(chiRouter{r: sub}) })
}

func (c chiRouter) Route(pattern string, fn func(Router)) {
	c.r.Route(pattern, func(sub chi.Router) { fn(chiRouter{r: sub}) })
}

// URLParam returns a path parameter captured by the router
func URLParam(r *http.Request, key string) string { return chi.URLParam(r, key) }
