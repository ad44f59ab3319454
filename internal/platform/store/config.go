package store

import (
	"time"

	"tutorhub/internal/platform/config"
)

// Config aggregates per backend configuration
type Config struct {
	AppName string

	PG PGConfig
	CH CHConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	ConnectRetries   int           // ping attempts before giving up, default 20
	PingTimeout      time.Duration // per attempt, default 3s
	StatementTimeout time.Duration // session default, 0 keeps the server's
}

// CHConfig configures clickhouse connectivity
type CHConfig struct {
	Enabled    bool
	URL        string
	ClientName string
	ClientTag  string
}

// FromConf reads SERVICE_PGSQL_* and SERVICE_CLICKHOUSE_* from root
// postgres is required, clickhouse is enabled only when its DBURL is set
func FromConf(root config.Conf, appName, role string) Config {
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_")
	return Config{
		AppName: appName,
		PG: PGConfig{
			Enabled:          true,
			URL:              pgCfg.MustString("DBURL"),
			MaxConns:         int32(pgCfg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs:      pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:           pgCfg.MayBool("LOG_SQL", false),
			ConnectRetries:   pgCfg.MayInt("CONNECT_RETRIES", 20),
			PingTimeout:      pgCfg.MayDuration("PING_TIMEOUT", 3*time.Second),
			StatementTimeout: pgCfg.MayDuration("STATEMENT_TIMEOUT", 0),
		},
		CH: CHConfig{
			Enabled:    chCfg.Has("DBURL"),
			URL:        chCfg.MayString("DBURL", ""),
			ClientName: appName,
			ClientTag:  role,
		},
	}
}
