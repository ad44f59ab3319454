package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tutorhub/internal/modkit/httpkit"
	phttp "tutorhub/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

var (
	started = time.Date(2025, 9, 3, 13, 0, 0, 0, time.UTC)
	now     = started.Add(5 * time.Minute)
)

func serve(t *testing.T, d Deps, path string, out any) {
	t.Helper()
	d.ServiceName = "tutorhub-api"
	d.StartedAt = started
	d.Now = func() time.Time { return now }

	m := chi.NewRouter()
	phttp.AdaptChi(m).Route("/meta", func(r httpkit.Router) { Register(r, d) })

	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var env struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func TestHealthAndService(t *testing.T) {
	var h HealthResponse
	serve(t, Deps{}, "/meta/health", &h)
	require.True(t, h.OK)
	require.Equal(t, "tutorhub-api", h.Service)
	require.Equal(t, "2025-09-03T13:05:00Z", h.Now)

	var s ServiceResponse
	serve(t, Deps{}, "/meta/service", &s)
	require.EqualValues(t, 300, s.Uptime)

	var v map[string]string
	serve(t, Deps{}, "/meta/version", &v)
	require.Equal(t, "tutorhub-api", v["service"])
}

func TestReady(t *testing.T) {
	cases := []struct {
		name   string
		pg, ch any
		want   string
	}{
		{"all ok", pinger{}, pinger{}, "ok"},
		{"no clickhouse", pinger{}, nil, "ok"},
		{"no postgres", nil, pinger{}, "degraded"},
		{"not a pinger", pinger{}, struct{}{}, "degraded"},
		{"pg down", pinger{err: errors.New("refused")}, pinger{}, "fail"},
		{"ch down", pinger{}, pinger{err: errors.New("refused")}, "fail"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var r ReadyResponse
			serve(t, Deps{PG: c.pg, CH: c.ch}, "/meta/ready", &r)
			require.Equal(t, c.want, r.Status)
			require.Len(t, r.Checks, 2)
		})
	}
}
