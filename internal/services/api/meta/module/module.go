// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"tutorhub/internal/core/version"
	modkit "tutorhub/internal/modkit"
	"tutorhub/internal/modkit/httpkit"
	metahttp "tutorhub/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	modkit.Base
	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	m := &Module{startedAt: deps.Clock()()}

	m.Base = modkit.NewBase(b, func(r httpkit.Router) {
		metahttp.Register(r, metahttp.Deps{
			ServiceName: version.Service,
			StartedAt:   m.startedAt,
			PG:          deps.PG,
			CH:          deps.CH,
			Now:         deps.Clock(),
		})
	})
	return m
}

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
