// Package version reports the build version of the service
package version

// BuildInfo holds version information about the service build
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Set via -ldflags "-X 'tutorhub/internal/core/version.version=v0.1.0'
// -X 'tutorhub/internal/core/version.commit=abcd' -X 'tutorhub/internal/core/version.date=2026-10-19'"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Service is the name the API reports about itself
const Service = "tutorhub-api"

// Info returns the build information
func Info() BuildInfo {
	return BuildInfo{
		Service: Service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}
