package http

import (
	stdhttp "net/http"
	"strings"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// MountProfiler serves pprof at prefix/pprof/ when enabled; an empty prefix means /debug
func MountProfiler(r Router, prefix string, enabled bool) {
	if !enabled {
		return
	}
	prefix = "/" + strings.Trim(prefix, "/")
	if prefix == "/" {
		prefix = "/debug"
	}
	pprof := stdhttp.StripPrefix(prefix, chimw.Profiler())
	r.Handle(prefix, pprof)
	r.Handle(prefix+"/*", pprof)
}
