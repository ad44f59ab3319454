// Package module wires classes into the API using modkit
package module

import (
	modkit "tutorhub/internal/modkit"
	"tutorhub/internal/modkit/httpkit"
	classeshttp "tutorhub/internal/services/api/classes/http"
	"tutorhub/internal/services/api/classes/journal"
	classesrepo "tutorhub/internal/services/api/classes/repo"
	classessvc "tutorhub/internal/services/api/classes/service"
)

// Module implements the modkit.Module interface
type Module struct {
	modkit.Base

	svc   classessvc.Service
	ports Ports
}

// New constructs a classes module with the provided dependencies and options
// CLASSES_RECENT_WINDOW under the deps config tunes how far back tutors see open classes
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("classes"), modkit.WithPrefix("/classes")}, opts...)...)

	log := deps.Logger("classes")
	j := journal.New(deps.CH, log)
	svc := classessvc.New(deps.PG, classesrepo.NewPG(),
		classessvc.WithWindow(deps.Cfg.Prefix("CLASSES_").MayDuration("RECENT_WINDOW", classessvc.DefaultWindow)),
		classessvc.WithClock(deps.Clock()),
		classessvc.WithJournal(j),
		classessvc.WithLogger(log),
	)

	m := &Module{svc: svc}
	m.ports = Ports{Classes: adaptClassesPort{svc: svc}, Journal: j}
	m.Base = modkit.NewBase(b, func(r httpkit.Router) { classeshttp.Register(r, m.svc) })
	return m
}
