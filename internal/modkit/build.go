package modkit

import (
	"net/http"

	"tutorhub/internal/modkit/httpkit"
	str "tutorhub/internal/platform/strings"
)

// Built is the resolved option set
type Built struct {
	Name     string
	Prefix   string
	Mw       []func(http.Handler) http.Handler
	Ports    any
	Register func(httpkit.Router)
}

// Build applies options over defaults; later options win
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	return Built{
		Name:     c.name,
		Prefix:   c.prefix,
		Mw:       append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:    c.ports,
		Register: c.register,
	}
}

// Base is the route plumbing every module repeats; modules embed it and add Ports
type Base struct {
	name     string
	prefix   string
	mws      []func(http.Handler) http.Handler
	register func(httpkit.Router)
}

// NewBase mounts own first, then any external register hook from options
func NewBase(b Built, own func(httpkit.Router)) Base {
	external := b.Register
	return Base{
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		register: func(r httpkit.Router) {
			if own != nil {
				own(r)
			}
			if external != nil {
				external(r)
			}
		},
	}
}

// MountRoutes mounts the module under its prefix with its middlewares
func (b Base) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, b.Prefix(), b.mws, b.register)
}

// Name returns the module name
func (b Base) Name() string { return str.MustString(b.name, "module name") }

// Prefix returns the normalized route prefix
func (b Base) Prefix() string { return str.MustPrefix(b.prefix) }

// Middlewares returns the module middlewares
func (b Base) Middlewares() []func(http.Handler) http.Handler { return b.mws }
