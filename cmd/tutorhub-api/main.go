// @title         tutorhub API
// @version       1.0
// @description   Tutoring classes: schedules, creation and status changes
// @BasePath      /api/v1

package main

import (
	"context"
	"os/signal"
	"syscall"

	"tutorhub/internal/modkit/repokit"
	"tutorhub/internal/platform/config"
	"tutorhub/internal/platform/logger"
	phttp "tutorhub/internal/platform/net/http"
	"tutorhub/internal/platform/net/middleware"
	"tutorhub/internal/platform/store"
	"tutorhub/internal/platform/store/migrate"

	"tutorhub/internal/services/api"

	"github.com/go-chi/chi/v5"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()

	// postgres is required, clickhouse only when SERVICE_CLICKHOUSE_DBURL is set
	st, err := store.Open(ctx, store.FromConf(root, "tutorhub", "api"), store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	repokit.MustGuard(ctx, st)

	if apiCfg.MayBool("MIGRATE", false) {
		r, err := migrate.New(st.PG)
		if err != nil {
			l.Panic().Err(err).Msg("load migrations")
		}
		n, err := r.Up(ctx)
		if err != nil {
			l.Panic().Err(err).Msg("migrate up")
		}
		l.Info().Int("applied", n).Msg("migrations applied")
	}

	// http server (reads CORE_API_PORT / CORE_API_ADDR and the timeouts)
	srv := phttp.NewServer(phttp.ServerConfigFrom(apiCfg), func(m *chi.Mux) {
		m.Use(middleware.Heartbeat("/healthz"))
	})

	opts := api.OptionsFrom(apiCfg, st)
	opts.Logger = l
	a, err := api.Mount(srv.Router(), opts)
	if err != nil {
		l.Panic().Err(err).Msg("api mount failed")
	}
	if err := a.Prepare(ctx); err != nil {
		// the journal is optional, serving goes on without it
		l.Warn().Err(err).Msg("class journal unavailable")
	}

	l.Info().Str("addr", srv.Addr()).Bool("auth", opts.BotToken != "").Msg("tutorhub api listening")
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
