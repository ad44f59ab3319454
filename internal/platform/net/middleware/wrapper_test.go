package middleware_test

import (
	"compress/flate"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	pnet "tutorhub/internal/platform/net"
	"tutorhub/internal/platform/net/middleware"
)

func TestRequestID_SeedsContextAndHeader(t *testing.T) {
	var seen string
	h := middleware.RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = pnet.RequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/classes/1", nil)
	req.Header.Set("X-Request-Id", "upstream-7")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if seen != "upstream-7" || rr.Header().Get("X-Request-Id") != "upstream-7" {
		t.Fatalf("propagated id = %q header = %q", seen, rr.Header().Get("X-Request-Id"))
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if seen == "" || rr.Header().Get("X-Request-Id") != seen {
		t.Fatalf("generated id = %q header = %q", seen, rr.Header().Get("X-Request-Id"))
	}
}

func TestWrappers_ReturnHandlers(t *testing.T) {
	if middleware.RealIP() == nil ||
		middleware.Timeout(time.Second) == nil ||
		middleware.NoCache() == nil ||
		middleware.StripSlashes() == nil ||
		middleware.Heartbeat("/healthz") == nil {
		t.Fatal("expected non nil handlers from wrappers")
	}
	if got := len(middleware.Defaults(0)); got != 6 {
		t.Fatalf("Defaults len = %d", got)
	}
}

func TestCompress_GzipWhenAccepted(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, strings.Repeat("a", 4<<10))
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	middleware.Compress(flate.DefaultCompression)(h).ServeHTTP(rr, req)
	if rr.Result().Header.Get("Content-Encoding") == "" {
		t.Fatalf("expected Content-Encoding to be set")
	}
}

func TestCORS_Preflight(t *testing.T) {
	cors := middleware.CORS(middleware.CORSOptions{AllowedOrigins: []string{"https://tutors.example"}})
	h := cors(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }))

	req := httptest.NewRequest(http.MethodOptions, "/classes", nil)
	req.Header.Set("Origin", "https://tutors.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Authorization")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK && rr.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d", rr.Code)
	}
	if rr.Header().Get("Access-Control-Allow-Origin") != "https://tutors.example" {
		t.Fatalf("allow origin = %q", rr.Header().Get("Access-Control-Allow-Origin"))
	}
	if rr.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Fatal("expected Access-Control-Allow-Methods to be set")
	}
}
