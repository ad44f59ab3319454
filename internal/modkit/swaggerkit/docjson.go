package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"tutorhub/internal/platform/logger"

	docs "tutorhub/internal/services/api/docs"

	"github.com/swaggo/swag/v2"
)

// SpecMutator lets modules tweak the parsed spec before it is served
type SpecMutator func(map[string]any)

var (
	mu       sync.RWMutex
	mutators []SpecMutator
)

// docReader is a seam so tests can inject invalid JSON
var docReader = func() (string, error) { return swag.ReadDoc(docs.SwaggerInfo.InstanceName()) }

// Register adds a spec mutator, applied in registration order
func Register(m SpecMutator) {
	if m == nil {
		return
	}
	mu.Lock()
	mutators = append(mutators, m)
	mu.Unlock()
}

// reset clears mutators for tests
func reset() {
	mu.Lock()
	mutators = nil
	mu.Unlock()
}

// BearerAuth marks every operation as requiring the bearer scheme
func BearerAuth(spec map[string]any) {
	comps := child(spec, "components")
	child(comps, "securitySchemes")["bearerAuth"] = map[string]any{
		"type":   "http",
		"scheme": "bearer",
	}
	spec["security"] = []any{map[string]any{"bearerAuth": []any{}}}
}

// serveDocJSON serves the registered document with servers and error responses filled in
func serveDocJSON(basePath string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := docReader()
		var spec map[string]any
		if err == nil {
			err = json.Unmarshal([]byte(raw), &spec)
		}
		if err != nil {
			logger.C(r.Context()).Error().Err(err).Msg("swagger spec unreadable")
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}

		ensureServers(spec, basePath)
		ensureErrorResponse(spec)
		addDefaultResponses(spec)

		mu.RLock()
		for _, m := range mutators {
			m(spec)
		}
		mu.RUnlock()

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// child returns parent[key] as a map, creating it when missing
func child(parent map[string]any, key string) map[string]any {
	m, ok := parent[key].(map[string]any)
	if !ok {
		m = map[string]any{}
		parent[key] = m
	}
	return m
}

// ensureServers keeps the document on OAS 3.0.x (the UI cannot render 3.1) and sets servers
func ensureServers(spec map[string]any, url string) {
	if _, hasSwagger := spec["swagger"]; hasSwagger {
		delete(spec, "swagger")
	}
	if v, ok := spec["openapi"].(string); !ok || strings.HasPrefix(v, "3.1") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": url}}
	}
}

// ensureErrorResponse adds the error envelope schema mirroring pnet.Wire
func ensureErrorResponse(spec map[string]any) {
	schemas := child(child(spec, "components"), "schemas")
	if _, ok := schemas["ErrorResponse"]; ok {
		return
	}
	schemas["ErrorResponse"] = map[string]any{
		"type":        "object",
		"description": "Standard error response",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer", "format": "int32"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "integer", "format": "int32"},
			"error":       map[string]any{"type": "string"},
			"field":       map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
		},
		"required": []any{"status_code", "status"},
	}
}

func errorExample(status int, text string, code int, msg string) map[string]any {
	return map[string]any{
		"description": text,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": map[string]any{
					"status_code": status,
					"status":      text,
					"code":        code,
					"error":       msg,
					"request_id":  "579f33bf50b1/abc-000001",
				},
			},
		},
	}
}

// addDefaultResponses injects 400 and 500 on every operation that lacks them
func addDefaultResponses(spec map[string]any) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	defaults := map[string]map[string]any{
		"400": errorExample(http.StatusBadRequest, "Bad Request", 7, "course_id is a required field"),
		"500": errorExample(http.StatusInternalServerError, "Internal Server Error", 1, "panic recovered"),
	}
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			resps := child(op, "responses")
			for code, body := range defaults {
				if _, exists := resps[code]; !exists {
					resps[code] = body
				}
			}
		}
	}
}
