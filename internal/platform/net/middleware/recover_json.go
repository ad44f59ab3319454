package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	perr "tutorhub/internal/platform/errors"
	"tutorhub/internal/platform/logger"
	pnet "tutorhub/internal/platform/net"
)

// RecoverJSON converts panics into an enveloped 500 and logs the stack
// http.ErrAbortHandler is re-raised so net/http can abort the connection
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}
			reqID := pnet.RequestID(r.Context())
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Str("path", r.URL.Path).
				Msg("panic recovered")

			status, body := pnet.Error(perr.PanicErrf("panic recovered"), reqID)
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(status)
			_ = json.NewEncoder(w).Encode(body)
		}()
		next.ServeHTTP(w, r)
	})
}
