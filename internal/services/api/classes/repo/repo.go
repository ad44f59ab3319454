// Package repo provides postgres access for classes
package repo

import (
	"context"
	"time"

	"tutorhub/internal/modkit/repokit"
	"tutorhub/internal/platform/store"
)

// Repo defines the repository contract for classes
type Repo interface {
	CountByID(ctx context.Context, id int) (int64, error)
	// ByTutorDiscordID returns the tutor's open classes; discordID must already be folded
	ByTutorDiscordID(ctx context.Context, discordID string) ([]RowTutorClass, error)
	Insert(ctx context.Context, in RowNewClass) (RowClass, error)
	ByID(ctx context.Context, id int) (RowClass, error)
	SetStatus(ctx context.Context, id int, status string) (int64, error)
}

// RowClass is a classes row
type RowClass struct {
	ID       int
	CourseID int
	Status   string
	Week     int
	Date     time.Time
	IsPaid   bool
	Day      string
}

// RowNewClass is what Insert writes; status and is_paid take their defaults
type RowNewClass struct {
	CourseID int
	Week     int
	Date     time.Time
	Day      string
}

// RowTutorClass is a class joined to its course, student and level
type RowTutorClass struct {
	ID        int
	Date      time.Time
	Level     string
	Subject   string
	FirstName string
	LastName  string
}

type (
	// PG implements the Repo binder using Postgres
	PG struct{}

	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const classCols = `id, course_id, status, week, date, is_paid, day`

func scanClass(r store.Row) (RowClass, error) {
	var c RowClass
	err := r.Scan(&c.ID, &c.CourseID, &c.Status, &c.Week, &c.Date, &c.IsPaid, &c.Day)
	return c, err
}

func (r *queries) CountByID(ctx context.Context, id int) (int64, error) {
	return store.Scalar[int64](ctx, r.q, `SELECT COUNT(id) FROM classes WHERE id = $1`, id)
}

func (r *queries) ByTutorDiscordID(ctx context.Context, discordID string) ([]RowTutorClass, error) {
	const sql = `
SELECT c.id, c.date, l.name, co.subject, s.first_name, s.last_name
FROM classes c
JOIN courses co ON co.id = c.course_id
JOIN students s ON s.id = co.student_id
JOIN levels l ON l.id = co.level_id
JOIN tutors t ON t.id = co.tutor_id
WHERE lower(t.discord_id) = lower($1)
AND c.status IN ('Empty', 'Rescheduled')
ORDER BY c.date, c.id
`
	return store.Many(ctx, r.q, func(row store.Row) (RowTutorClass, error) {
		var tc RowTutorClass
		err := row.Scan(&tc.ID, &tc.Date, &tc.Level, &tc.Subject, &tc.FirstName, &tc.LastName)
		return tc, err
	}, sql, discordID)
}

func (r *queries) Insert(ctx context.Context, in RowNewClass) (RowClass, error) {
	const sql = `
INSERT INTO classes (course_id, status, week, date, is_paid, day)
VALUES ($1, 'Empty', $2, $3, FALSE, $4)
RETURNING ` + classCols
	return store.One(ctx, r.q, scanClass, sql, in.CourseID, in.Week, in.Date, in.Day)
}

func (r *queries) ByID(ctx context.Context, id int) (RowClass, error) {
	return store.One(ctx, r.q, scanClass, `SELECT `+classCols+` FROM classes WHERE id = $1`, id)
}

func (r *queries) SetStatus(ctx context.Context, id int, status string) (int64, error) {
	tag, err := store.Exec(ctx, r.q, `UPDATE classes SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
