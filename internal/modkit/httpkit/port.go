package httpkit

import (
	"crypto/subtle"
	"net/http"

	perrs "tutorhub/internal/platform/errors"
)

// TokenFunc resolves a bearer token to an actor name
type TokenFunc func(token string) (actor string, err error)

// Port implements middleware.AuthPort by reading Authorization and delegating to a TokenFunc
type Port struct {
	parse TokenFunc
}

// NewPortFunc builds a Port from a parser function
func NewPortFunc(fn TokenFunc) *Port { return &Port{parse: fn} }

// Parse returns unauthorized when the header is missing or malformed or the parser rejects the token
func (p *Port) Parse(r *http.Request) (string, error) {
	raw, err := BearerToken(r)
	if err != nil {
		return "", err
	}
	if p == nil || p.parse == nil {
		return "", perrs.Unauthorizedf("invalid bearer token")
	}
	actor, err := p.parse(raw)
	if err != nil {
		return "", perrs.Unauthorizedf("invalid bearer token")
	}
	return actor, nil
}

// StaticToken accepts exactly one shared secret and names the caller actor
func StaticToken(secret, actor string) TokenFunc {
	want := []byte(secret)
	return func(token string) (string, error) {
		if len(want) == 0 || subtle.ConstantTimeCompare([]byte(token), want) != 1 {
			return "", perrs.Unauthorizedf("invalid bearer token")
		}
		return actor, nil
	}
}
