package module

import (
	"context"

	classesdom "tutorhub/internal/services/api/classes/domain"
	"tutorhub/internal/services/api/classes/journal"
	classessvc "tutorhub/internal/services/api/classes/service"
)

// Ports is what the classes module offers other modules
type Ports struct {
	Classes classesdom.ServicePort
	Journal *journal.Writer
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptClassesPort adapts the classes service to the domain port interface
type adaptClassesPort struct{ svc classessvc.Service }

var _ classesdom.ServicePort = adaptClassesPort{}

func (a adaptClassesPort) Exists(ctx context.Context, id int) error { return a.svc.Exists(ctx, id) }

func (a adaptClassesPort) TutorClasses(ctx context.Context, discordID string) ([]classesdom.TutorClass, error) {
	return a.svc.TutorClasses(ctx, discordID)
}

func (a adaptClassesPort) Create(ctx context.Context, in classesdom.CreateClassInput) (classesdom.Class, error) {
	return a.svc.Create(ctx, in)
}

func (a adaptClassesPort) Get(ctx context.Context, id int) (classesdom.Class, error) {
	return a.svc.Get(ctx, id)
}

func (a adaptClassesPort) UpdateStatus(ctx context.Context, id int, in classesdom.UpdateStatusInput) (classesdom.Class, error) {
	return a.svc.UpdateStatus(ctx, id, in)
}

func (a adaptClassesPort) History(ctx context.Context, id int) ([]classesdom.Event, error) {
	return a.svc.History(ctx, id)
}
