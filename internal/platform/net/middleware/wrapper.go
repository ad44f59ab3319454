// Package middleware provides thin adapters over chi middleware without leaking chi types
package middleware

import (
	"compress/flate"
	"net/http"
	"time"

	pnet "tutorhub/internal/platform/net"
	pstrings "tutorhub/internal/platform/strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// Middleware is the stdlib middleware shape
type Middleware = func(http.Handler) http.Handler

// RequestID attaches or propagates X-Request-ID, mirrors it on the response
// and seeds the logger context with it
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return chimw.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := chimw.GetReqID(r.Context())
			w.Header().Set(chimw.RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(pnet.WithRequest(r.Context(), id, "")))
		}))
	}
}

// RealIP sets RemoteAddr to the upstream IP based on X-Forwarded-For headers
func RealIP() Middleware { return chimw.RealIP }

// Timeout cancels the request context after d
func Timeout(d time.Duration) Middleware { return chimw.Timeout(d) }

// NoCache sets headers to disable client and proxy caching
func NoCache() Middleware { return chimw.NoCache }

// Compress wraps chi's compressor. level usually flate.DefaultCompression or flate.BestSpeed
func Compress(level int) Middleware {
	c := chimw.NewCompressor(level)
	return func(next http.Handler) http.Handler { return c.Handler(next) }
}

// StripSlashes strips a trailing slash from the request path
func StripSlashes() Middleware { return chimw.StripSlashes }

// Heartbeat replies with 200 OK to GET path, useful for LB health checks
func Heartbeat(path string) Middleware { return chimw.Heartbeat(path) }

// CORSOptions is a narrow surface over go-chi/cors
type CORSOptions struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

// CORS wraps go-chi/cors with defaults for the class API
func CORS(o CORSOptions) Middleware {
	return chicors.Handler(chicors.Options{
		AllowedOrigins: pstrings.IfEmpty(o.AllowedOrigins, []string{"*"}),
		AllowedMethods: pstrings.IfEmpty(o.AllowedMethods, []string{"GET", "POST", "PATCH", "OPTIONS"}),
		AllowedHeaders: pstrings.IfEmpty(o.AllowedHeaders, []string{
			"Accept",
			"Authorization",
			"Content-Type",
			chimw.RequestIDHeader,
		}),
		ExposedHeaders:   pstrings.IfEmpty(o.ExposedHeaders, []string{chimw.RequestIDHeader}),
		AllowCredentials: o.AllowCredentials,
		MaxAge:           o.MaxAge,
	})
}

// Defaults is the base chain every server mounts first
func Defaults(timeout time.Duration) []Middleware {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return []Middleware{
		RealIP(),
		RequestID(),
		RecoverJSON,
		Timeout(timeout),
		Compress(flate.DefaultCompression),
		NoCache(),
	}
}
