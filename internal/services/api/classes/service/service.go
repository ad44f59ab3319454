// Package service contains classes workflows
package service

import (
	"context"
	"time"

	"tutorhub/internal/core/normalize"
	"tutorhub/internal/modkit/repokit"
	perr "tutorhub/internal/platform/errors"
	"tutorhub/internal/platform/logger"
	pnet "tutorhub/internal/platform/net"
	"tutorhub/internal/services/api/classes/domain"
	"tutorhub/internal/services/api/classes/repo"
)

// DefaultWindow is how far back a tutor still sees an open class
const DefaultWindow = 10 * 24 * time.Hour

// DefaultStatementTimeout bounds each statement of a status change
const DefaultStatementTimeout = 5 * time.Second

// StatusTxAttempts is how often a status change runs when Postgres reports
// a serialization failure, deadlock or lock timeout
const StatusTxAttempts = 3

// Service defines the service contract for classes
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	window  time.Duration
	now     func() time.Time
	journal domain.Journal
	log     *logger.Logger
}

// Option configures the service
type Option func(*Svc)

// WithWindow sets the recent window; non positive values keep the default
func WithWindow(d time.Duration) Option {
	return func(s *Svc) {
		if d > 0 {
			s.window = d
		}
	}
}

// WithClock injects the time source
func WithClock(now func() time.Time) Option {
	return func(s *Svc) {
		if now != nil {
			s.now = now
		}
	}
}

// WithJournal sets where class events go
func WithJournal(j domain.Journal) Option {
	return func(s *Svc) {
		if j != nil {
			s.journal = j
		}
	}
}

// WithLogger sets the service logger
func WithLogger(l *logger.Logger) Option {
	return func(s *Svc) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates a new classes service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], opts ...Option) *Svc {
	if db == nil {
		panic("classes.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("classes.Service requires a non nil Repo binder")
	}
	s := &Svc{
		Repo:    binder.Bind(db),
		binder:  binder,
		db:      db,
		window:  DefaultWindow,
		now:     time.Now,
		journal: domain.NopJournal{},
		log:     logger.Named("classes"),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Exists is nil when exactly one class has id
func (s *Svc) Exists(ctx context.Context, id int) error {
	n, err := s.Repo.CountByID(ctx, id)
	if err != nil {
		return perr.WithOp(perr.Wrapf(err, perr.ErrorCodeBadRequest, "count class %d", id), "classes.exists")
	}
	if n != 1 {
		return perr.Preconditionf(domain.MsgNoSuchClass)
	}
	return nil
}

// TutorClasses lists the tutor's open classes dated inside the recent window or later
func (s *Svc) TutorClasses(ctx context.Context, discordID string) ([]domain.TutorClass, error) {
	handle := normalize.DiscordHandle(discordID)
	if handle == "" {
		return nil, perr.WithField(perr.Validationf("discord id is required"), "discordID")
	}

	rows, err := s.Repo.ByTutorDiscordID(ctx, handle)
	if err != nil {
		return nil, perr.WithOp(perr.Wrap(err, perr.ErrorCodeBadRequest, "query tutor classes"), "classes.tutor")
	}

	now := s.now()
	out := make([]domain.TutorClass, 0, len(rows))
	for _, r := range rows {
		if now.Sub(r.Date) >= s.window {
			continue
		}
		out = append(out, domain.TutorClass{
			Name:    normalize.Label(r.Level, r.Subject),
			Student: r.FirstName + ", " + r.LastName,
			Date:    r.Date.Format(domain.DateLayout),
			ID:      r.ID,
		})
	}
	return out, nil
}

// Create inserts an Empty unpaid class
func (s *Svc) Create(ctx context.Context, in domain.CreateClassInput) (domain.Class, error) {
	date, err := time.Parse(domain.DateLayout, in.Date)
	if err != nil {
		return domain.Class{}, perr.WithField(perr.Validationf("date must be YYYY-MM-DD"), "date")
	}
	day := normalize.Label(in.Day)
	if day == "" {
		day = date.Weekday().String()
	}

	row, err := s.Repo.Insert(ctx, repo.RowNewClass{
		CourseID: in.CourseID,
		Week:     in.Week,
		Date:     date,
		Day:      day,
	})
	if err != nil {
		return domain.Class{}, perr.WithOp(perr.FromPostgresWithField(err, "insert class"), "classes.create")
	}

	c := toClass(row)
	s.record(ctx, domain.EventCreated, c)
	return c, nil
}

// Get returns one class
func (s *Svc) Get(ctx context.Context, id int) (domain.Class, error) {
	row, err := s.Repo.ByID(ctx, id)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return domain.Class{}, perr.Preconditionf(domain.MsgNoSuchClass)
		}
		return domain.Class{}, perr.WithOp(perr.FromPostgres(err, "get class"), "classes.get")
	}
	return toClass(row), nil
}

// UpdateStatus sets the status and returns the updated class
func (s *Svc) UpdateStatus(ctx context.Context, id int, in domain.UpdateStatusInput) (domain.Class, error) {
	if !in.Status.Valid() {
		return domain.Class{}, perr.WithField(perr.Validationf("unknown status %q", in.Status), "status")
	}

	var row repo.RowClass
	tx := repokit.WithBeginHooks(s.db, repokit.StatementTimeout(DefaultStatementTimeout))
	change := func(r repo.Repo) error {
		n, err := r.SetStatus(ctx, id, string(in.Status))
		if err != nil {
			return perr.FromPostgresWithField(err, "update class status")
		}
		if n == 0 {
			return perr.Preconditionf(domain.MsgNoSuchClass)
		}
		row, err = r.ByID(ctx, id)
		if err != nil {
			return perr.FromPostgres(err, "reload class")
		}
		return nil
	}

	var err error
	for attempt := 1; ; attempt++ {
		err = repokit.InTx(ctx, tx, s.binder, change)
		if err == nil || attempt >= StatusTxAttempts || !perr.IsRetryable(err) {
			break
		}
		s.log.Warn().Err(err).Int("class_id", id).Int("attempt", attempt).Msg("status change retried")
	}
	if err != nil {
		return domain.Class{}, perr.WithOp(err, "classes.update_status")
	}

	c := toClass(row)
	s.record(ctx, domain.EventStatusChanged, c)
	return c, nil
}

// HistoryLimit caps how many journal events History returns
const HistoryLimit = 100

// History returns the class's journal, newest first
func (s *Svc) History(ctx context.Context, id int) ([]domain.Event, error) {
	evs, err := s.journal.History(ctx, id, HistoryLimit)
	if err != nil {
		return nil, perr.WithOp(perr.Wrap(err, perr.ErrorCodeUnavailable, "read class journal"), "classes.history")
	}
	if evs == nil {
		evs = []domain.Event{}
	}
	return evs, nil
}

func (s *Svc) record(ctx context.Context, kind domain.EventKind, c domain.Class) {
	s.journal.Record(ctx, domain.Event{
		Kind:     kind,
		ClassID:  c.ID,
		CourseID: c.CourseID,
		Status:   c.Status,
		Actor:    pnet.Actor(ctx),
		At:       s.now().UTC(),
	})
	s.log.Debug().Str("kind", string(kind)).Int("class_id", c.ID).Msg("class event")
}

func toClass(r repo.RowClass) domain.Class {
	return domain.Class{
		ID:       r.ID,
		CourseID: r.CourseID,
		Status:   domain.Status(r.Status),
		Week:     r.Week,
		Date:     r.Date.Format(domain.DateLayout),
		IsPaid:   r.IsPaid,
		Day:      r.Day,
	}
}
