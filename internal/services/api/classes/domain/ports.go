package domain

import "context"

// ServicePort is the class service contract other layers depend on
type ServicePort interface {
	// Exists is nil only when exactly one class has id
	Exists(ctx context.Context, id int) error
	TutorClasses(ctx context.Context, discordID string) ([]TutorClass, error)
	Create(ctx context.Context, in CreateClassInput) (Class, error)
	Get(ctx context.Context, id int) (Class, error)
	UpdateStatus(ctx context.Context, id int, in UpdateStatusInput) (Class, error)
	History(ctx context.Context, id int) ([]Event, error)
}

// Journal records class events; Record never fails the caller
type Journal interface {
	Record(ctx context.Context, e Event)
	// History returns the newest events of one class first
	History(ctx context.Context, classID, limit int) ([]Event, error)
}

// NopJournal drops every event
type NopJournal struct{}

// Record implements Journal
func (NopJournal) Record(context.Context, Event) {}

// History implements Journal
func (NopJournal) History(context.Context, int, int) ([]Event, error) { return []Event{}, nil }
