package middleware

import (
	"net/http"

	pnet "tutorhub/internal/platform/net"
)

// AuthPort resolves the calling actor from a request
type AuthPort interface {
	Parse(r *http.Request) (actor string, err error)
}

// Writer writes a status and body; phttp.JSON fits
type Writer func(w http.ResponseWriter, status int, body any)

// Auth rejects requests the port cannot resolve and stores the actor on context
// a nil port lets every request through
func Auth(p AuthPort, write Writer) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			actor, err := p.Parse(r)
			if err != nil {
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			ctx := pnet.WithRequest(r.Context(), pnet.RequestID(r.Context()), actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
