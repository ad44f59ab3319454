package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	phttp "tutorhub/internal/platform/net/http"
	"tutorhub/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	Origins     []string
	Timeout     time.Duration
	SlowRequest time.Duration
}

// CommonStack returns the baseline middleware for the versioned API
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return []func(http.Handler) http.Handler{
		middleware.RealIP(),
		middleware.RequestID(),
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.SlowRequest}),
		middleware.RecoverJSON,
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.Origins}),
		middleware.NoCache(),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes(),
		middleware.Timeout(timeout),
	}
}

// Auth wires the auth middleware to the platform JSON writer
func Auth(p middleware.AuthPort) func(http.Handler) http.Handler {
	return middleware.Auth(p, phttp.JSON)
}
