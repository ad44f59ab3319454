// Package migrate applies the embedded, versioned schema migrations
// files are named NNNN_name.up.sql / NNNN_name.down.sql and applied in version order
package migrate

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strconv"

	perr "tutorhub/internal/platform/errors"
	"tutorhub/internal/platform/logger"
	"tutorhub/internal/platform/store"
)

//go:embed sql/*.sql
var embedded embed.FS

// lockKey serializes concurrent migrators on one database
const lockKey int64 = 0x7475746f72 // "tutor"

var fileRe = regexp.MustCompile(`^(\d+)_(.+)\.(up|down)\.sql$`)

// Migration is one versioned schema step
type Migration struct {
	Version int
	Name    string
	Up      string
	Down    string
}

// Load reads migrations from the root of fsys, sorted by version
// files that do not match the naming scheme are ignored
func Load(fsys fs.FS) ([]Migration, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read migrations: %w", err)
	}
	byVersion := map[int]*Migration{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := fileRe.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		ver, _ := strconv.Atoi(m[1])
		data, err := fs.ReadFile(fsys, e.Name())
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", e.Name(), err)
		}
		mig, ok := byVersion[ver]
		if !ok {
			mig = &Migration{Version: ver, Name: m[2]}
			byVersion[ver] = mig
		} else if mig.Name != m[2] {
			return nil, fmt.Errorf("migration %04d has two names: %q and %q", ver, mig.Name, m[2])
		}
		if m[3] == "up" {
			mig.Up = string(data)
		} else {
			mig.Down = string(data)
		}
	}

	out := make([]Migration, 0, len(byVersion))
	for _, mig := range byVersion {
		if mig.Up == "" {
			return nil, fmt.Errorf("migration %04d_%s has no up file", mig.Version, mig.Name)
		}
		out = append(out, *mig)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })
	return out, nil
}

// Embedded returns the migrations compiled into the binary
func Embedded() ([]Migration, error) {
	sub, err := fs.Sub(embedded, "sql")
	if err != nil {
		return nil, err
	}
	return Load(sub)
}

// Runner applies migrations through a store.TxRunner
type Runner struct {
	db   store.TxRunner
	migs []Migration
	log  *logger.Logger
}

// New returns a Runner over the embedded migrations
func New(db store.TxRunner) (*Runner, error) {
	migs, err := Embedded()
	if err != nil {
		return nil, err
	}
	return NewWith(db, migs), nil
}

// NewWith returns a Runner over an explicit migration set
func NewWith(db store.TxRunner, migs []Migration) *Runner {
	if db == nil {
		panic("migrate: nil db")
	}
	return &Runner{db: db, migs: migs, log: logger.Named("migrate")}
}

// Migrations returns the known migrations in order
func (r *Runner) Migrations() []Migration { return append([]Migration(nil), r.migs...) }

func (r *Runner) ensureTable(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    INT PRIMARY KEY,
			name       TEXT NOT NULL,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	return perr.FromPostgres(err, "create schema_migrations")
}

// Version returns the highest applied version, 0 when nothing is applied
func (r *Runner) Version(ctx context.Context) (int, error) {
	if err := r.ensureTable(ctx); err != nil {
		return 0, err
	}
	return currentVersion(ctx, r.db)
}

func currentVersion(ctx context.Context, q store.RowQuerier) (int, error) {
	v, err := store.Scalar[int](ctx, q, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`)
	if err != nil {
		return 0, perr.FromPostgres(err, "read schema version")
	}
	return v, nil
}

// Up applies every pending migration, each in its own transaction
// it returns how many were applied
func (r *Runner) Up(ctx context.Context) (int, error) {
	if err := r.ensureTable(ctx); err != nil {
		return 0, err
	}
	applied := 0
	for _, mig := range r.migs {
		done := false
		err := r.db.Tx(ctx, func(q store.RowQuerier) error {
			if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, lockKey); err != nil {
				return perr.FromPostgres(err, "lock schema_migrations")
			}
			cur, err := currentVersion(ctx, q)
			if err != nil {
				return err
			}
			if mig.Version <= cur {
				return nil
			}
			if _, err := q.Exec(ctx, mig.Up); err != nil {
				return perr.FromPostgresf(err, "apply %04d_%s", mig.Version, mig.Name)
			}
			if _, err := q.Exec(ctx,
				`INSERT INTO schema_migrations (version, name) VALUES ($1, $2)`,
				mig.Version, mig.Name); err != nil {
				return perr.FromPostgresf(err, "record %04d", mig.Version)
			}
			done = true
			return nil
		})
		if err != nil {
			return applied, err
		}
		if done {
			applied++
			r.log.Info().Int("version", mig.Version).Str("name", mig.Name).Msg("migration applied")
		}
	}
	return applied, nil
}

// Down rolls back the latest applied migration and returns it
// ok is false when nothing is applied
func (r *Runner) Down(ctx context.Context) (mig Migration, ok bool, err error) {
	if err := r.ensureTable(ctx); err != nil {
		return Migration{}, false, err
	}
	err = r.db.Tx(ctx, func(q store.RowQuerier) error {
		if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, lockKey); err != nil {
			return perr.FromPostgres(err, "lock schema_migrations")
		}
		cur, err := currentVersion(ctx, q)
		if err != nil || cur == 0 {
			return err
		}
		found := false
		for _, m := range r.migs {
			if m.Version == cur {
				mig, found = m, true
				break
			}
		}
		if !found {
			return perr.Newf(perr.ErrorCodeConflict, "applied version %04d is unknown to this binary", cur)
		}
		if mig.Down == "" {
			return perr.Newf(perr.ErrorCodeConflict, "migration %04d_%s has no down file", mig.Version, mig.Name)
		}
		if _, err := q.Exec(ctx, mig.Down); err != nil {
			return perr.FromPostgresf(err, "revert %04d_%s", mig.Version, mig.Name)
		}
		if _, err := q.Exec(ctx, `DELETE FROM schema_migrations WHERE version = $1`, mig.Version); err != nil {
			return perr.FromPostgresf(err, "unrecord %04d", mig.Version)
		}
		ok = true
		return nil
	})
	if err != nil || !ok {
		return Migration{}, false, err
	}
	r.log.Info().Int("version", mig.Version).Str("name", mig.Name).Msg("migration reverted")
	return mig, true, nil
}

// File returns the canonical file name of a migration direction
func (m Migration) File(dir string) string {
	return fmt.Sprintf("%04d_%s.%s.sql", m.Version, m.Name, dir)
}
