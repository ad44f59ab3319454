// Package swaggerkit mounts the Swagger UI and the OpenAPI document
package swaggerkit

import (
	"net/http"

	phttp "tutorhub/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Mount serves the UI under /api/docs and the document at /api/docs/doc.json
// basePath is the server url written into the document, e.g. /api/v1
func Mount(r phttp.Router, basePath string, enabled bool) {
	if !enabled {
		return
	}
	r.Get("/api/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/api/docs/doc.json", serveDocJSON(basePath))
	r.Handle("/api/docs/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL("/api/docs/doc.json"),
	))
}
