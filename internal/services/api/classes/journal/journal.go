// Package journal appends class events to ClickHouse
package journal

import (
	"context"
	"time"

	"tutorhub/internal/platform/logger"
	"tutorhub/internal/platform/store"
	"tutorhub/internal/services/api/classes/domain"

	"github.com/google/uuid"
)

// Table is the ClickHouse table holding class events
const Table = "class_events"

const ddl = `
CREATE TABLE IF NOT EXISTS ` + Table + ` (
	event_id  UUID,
	kind      LowCardinality(String),
	class_id  Int32,
	course_id Int32,
	status    LowCardinality(String),
	actor     String,
	at        DateTime64(3, 'UTC')
) ENGINE = MergeTree
ORDER BY (class_id, at)
`

// newID is swapped in tests
var newID = uuid.NewString

// Writer records class events; a nil ClickHouse makes it a no-op
type Writer struct {
	ch  store.Clickhouse
	log *logger.Logger
}

var _ domain.Journal = (*Writer)(nil)

// New builds a journal over ch, which may be nil
func New(ch store.Clickhouse, log *logger.Logger) *Writer {
	if log == nil {
		log = logger.Named("classes.journal")
	}
	return &Writer{ch: ch, log: log}
}

// Enabled reports whether events are persisted
func (w *Writer) Enabled() bool { return w != nil && w.ch != nil }

// EnsureTable creates the events table when missing
func (w *Writer) EnsureTable(ctx context.Context) error {
	if !w.Enabled() {
		return nil
	}
	return w.ch.Exec(ctx, ddl)
}

// Record appends e; failures are logged and dropped
func (w *Writer) Record(ctx context.Context, e domain.Event) {
	if !w.Enabled() {
		return
	}
	if e.ID == "" {
		e.ID = newID()
	}
	if e.At.IsZero() {
		e.At = time.Now().UTC()
	}
	row := []any{e.ID, string(e.Kind), int32(e.ClassID), int32(e.CourseID), string(e.Status), e.Actor, e.At}
	if err := w.ch.Insert(ctx, Table, row); err != nil {
		w.log.Warn().Err(err).
			Str("kind", string(e.Kind)).
			Int("class_id", e.ClassID).
			Msg("journal insert failed")
	}
}

// History reads up to limit events of one class, newest first
func (w *Writer) History(ctx context.Context, classID, limit int) ([]domain.Event, error) {
	out := make([]domain.Event, 0)
	if !w.Enabled() {
		return out, nil
	}
	rows, err := w.ch.Query(ctx, `
SELECT toString(event_id), kind, class_id, course_id, status, actor, at
FROM `+Table+`
WHERE class_id = ?
ORDER BY at DESC
LIMIT ?`, int32(classID), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			e            domain.Event
			kind, status string
			cid, course  int32
		)
		if err := rows.Scan(&e.ID, &kind, &cid, &course, &status, &e.Actor, &e.At); err != nil {
			return nil, err
		}
		e.Kind = domain.EventKind(kind)
		e.Status = domain.Status(status)
		e.ClassID = int(cid)
		e.CourseID = int(course)
		out = append(out, e)
	}
	return out, rows.Err()
}
