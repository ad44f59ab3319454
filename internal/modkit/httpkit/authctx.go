package httpkit

import (
	"net/http"
	"strings"

	perrs "tutorhub/internal/platform/errors"
	pnet "tutorhub/internal/platform/net"
)

// Actor returns the authenticated caller stored by the auth middleware
func Actor(r *http.Request) (string, error) {
	a := pnet.Actor(r.Context())
	if a == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	return a, nil
}

// BearerToken returns the raw token from a case-insensitive "Bearer <token>" header
func BearerToken(r *http.Request) (string, error) {
	s := strings.TrimSpace(r.Header.Get("Authorization"))
	const prefix = "bearer "
	if len(s) <= len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	raw := strings.TrimSpace(s[len(prefix):])
	if raw == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	return raw, nil
}
