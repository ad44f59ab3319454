// Command tutorhub-migrate applies or rolls back the embedded schema migrations
//
//	tutorhub-migrate up|down|version
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tutorhub/internal/platform/config"
	"tutorhub/internal/platform/logger"
	"tutorhub/internal/platform/store"
	"tutorhub/internal/platform/store/migrate"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: tutorhub-migrate up|down|version")
		flag.PrintDefaults()
	}
	steps := flag.Int("steps", 1, "migrations to roll back with down")
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	l := logger.Named("migrate")

	cfg := store.FromConf(config.New(), "tutorhub", "migrate")
	cfg.CH.Enabled = false
	st, err := store.Open(ctx, cfg, store.WithLogger(*l))
	if err != nil {
		l.Fatal().Err(err).Msg("store.Open failed")
	}
	defer func() { _ = st.Close(context.Background()) }()

	r, err := migrate.New(st.PG)
	if err != nil {
		l.Fatal().Err(err).Msg("load migrations")
	}

	if err := run(ctx, r, flag.Arg(0), *steps, l); err != nil {
		l.Error().Err(err).Str("cmd", flag.Arg(0)).Msg("migrate failed")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, r *migrate.Runner, cmd string, steps int, l *logger.Logger) error {
	switch cmd {
	case "up":
		n, err := r.Up(ctx)
		if err != nil {
			return err
		}
		l.Info().Int("applied", n).Msg("up")
	case "down":
		for i := 0; i < steps; i++ {
			mig, ok, err := r.Down(ctx)
			if err != nil {
				return err
			}
			if !ok {
				l.Info().Msg("nothing to roll back")
				break
			}
			l.Info().Int("version", mig.Version).Str("name", mig.Name).Msg("down")
		}
	case "version":
		v, err := r.Version(ctx)
		if err != nil {
			return err
		}
		fmt.Println(v)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}
