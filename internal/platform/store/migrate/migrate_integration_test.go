//go:build integration_pg

package migrate

import (
	"context"
	"testing"

	"tutorhub/internal/platform/store"
	"tutorhub/internal/platform/testkit/pgtc"

	"github.com/stretchr/testify/require"
)

func TestEmbedded_UpDown_Integration(t *testing.T) {
	ctx := context.Background()
	st, err := store.Open(ctx, store.Config{PG: store.PGConfig{Enabled: true, URL: pgtc.Start(t)}})
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close(ctx) })

	r, err := New(st.PG)
	require.NoError(t, err)

	n, err := r.Up(ctx)
	require.NoError(t, err)
	require.Equal(t, len(r.Migrations()), n)

	// schema is usable and its constraints are live
	_, err = st.PG.Exec(ctx, `INSERT INTO levels (name) VALUES ('A1')`)
	require.NoError(t, err)
	_, err = st.PG.Exec(ctx, `INSERT INTO classes (course_id, status, week, date) VALUES (1, 'Bogus', 1, '2024-01-01')`)
	require.Error(t, err)

	n, err = r.Up(ctx)
	require.NoError(t, err)
	require.Zero(t, n)

	for range r.Migrations() {
		_, ok, err := r.Down(ctx)
		require.NoError(t, err)
		require.True(t, ok)
	}
	v, err := r.Version(ctx)
	require.NoError(t, err)
	require.Zero(t, v)
}
