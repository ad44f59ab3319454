// Package api provides the HTTP API for the application
package api

import (
	"context"
	"time"

	perr "tutorhub/internal/platform/errors"

	"tutorhub/internal/platform/config"
	"tutorhub/internal/platform/logger"
	phttp "tutorhub/internal/platform/net/http"
	"tutorhub/internal/platform/net/middleware"
	"tutorhub/internal/platform/store"

	"tutorhub/internal/modkit"
	"tutorhub/internal/modkit/httpkit"
	"tutorhub/internal/modkit/module"
	"tutorhub/internal/modkit/swaggerkit"

	classesmod "tutorhub/internal/services/api/classes/module"
	metamod "tutorhub/internal/services/api/meta/module"
)

// BotActor is the actor name bearer callers are logged under
const BotActor = "tutorbot"

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool

	// BotToken guards /api/v1 with a bearer secret, empty leaves it open
	BotToken string
	Origins  []string

	Timeout     time.Duration
	SlowRequest time.Duration

	// Now overrides the clock, tests only
	Now func() time.Time
}

// API is the mounted service
type API struct {
	open    []module.Module // meta stays open for health checks
	guarded []module.Module
}

// tableEnsurer is a port that needs its storage created before serving
type tableEnsurer interface {
	EnsureTable(ctx context.Context) error
}

// OptionsFrom reads API options from cfg (already prefixed, e.g. CORE_API_)
func OptionsFrom(cfg config.Conf, st *store.Store) Options {
	return Options{
		Config:         cfg,
		Store:          st,
		EnableSwagger:  cfg.MayBool("SWAGGER", true),
		EnableProfiler: cfg.MayBool("PROFILER", false),
		BotToken:       cfg.MayString("BOT_TOKEN", ""),
		Origins:        cfg.MayCSV("CORS_ORIGINS", nil),
		Timeout:        cfg.MayDuration("REQUEST_TIMEOUT", 30*time.Second),
		SlowRequest:    cfg.MayDuration("SLOW_REQUEST", time.Second),
	}
}

// ErrNoPostgres is returned by Mount when the store has no postgres seam
var ErrNoPostgres = perr.New(perr.ErrorCodeUnavailable, "api requires a postgres store")

// Mount mounts the API service onto the given router
// classes cannot run without postgres, so a store without it is refused
func Mount(r phttp.Router, opt Options) (*API, error) {
	st := opt.Store
	if st == nil || st.PG == nil {
		return nil, ErrNoPostgres
	}

	// shared deps for modules
	deps := modkit.Deps{
		Log: opt.Logger,
		Cfg: opt.Config,
		PG:  st.PG,
		CH:  st.CH,
		Now: opt.Now,
	}

	a := &API{
		open:    []module.Module{metamod.New(deps)},
		guarded: []module.Module{classesmod.New(deps)},
	}

	var auth middleware.AuthPort
	if opt.BotToken != "" {
		auth = httpkit.NewPortFunc(httpkit.StaticToken(opt.BotToken, BotActor))
		swaggerkit.Register(swaggerkit.BearerAuth)
	}

	// swagger and profiler sit outside the versioned stack
	swaggerkit.Mount(r, "/api/v1", opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	stack := httpkit.CommonStack(httpkit.StackOptions{
		Origins:     opt.Origins,
		Timeout:     opt.Timeout,
		SlowRequest: opt.SlowRequest,
	})
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range a.open {
			m.MountRoutes(api)
		}
		httpkit.Protected(api, auth, func(pr httpkit.Router) {
			for _, m := range a.guarded {
				m.MountRoutes(pr)
			}
		})
	})
	log := opt.Logger
	if log == nil {
		log = logger.Named("api")
	}
	log.Info().Strs("modules", a.Names()).Bool("auth", auth != nil).Msg("api mounted")
	return a, nil
}

func (a *API) modules() []module.Module {
	return append(append([]module.Module{}, a.open...), a.guarded...)
}

// Names lists the mounted modules, open ones first
func (a *API) Names() []string {
	ms := a.modules()
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.Name())
	}
	return out
}

// Prepare runs one time boot work the modules need before serving
// every module port that owns a table gets it created, the first failure wins
func (a *API) Prepare(ctx context.Context) error {
	for _, m := range a.modules() {
		te, ok := module.PortsOf[tableEnsurer](m)
		if !ok {
			continue
		}
		if err := te.EnsureTable(ctx); err != nil {
			return perr.WithOp(perr.Wrapf(err, perr.ErrorCodeUnavailable, "prepare %s", m.Name()), "api.prepare")
		}
	}
	return nil
}
