package handler

import (
	"net/http"
	"runtime"
)

// VersionInfo contains version and build information
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	BuildTime string `json:"build_time,omitempty"`
	GitCommit string `json:"git_commit,omitempty"`
}

// Build-time variables, injected with -ldflags "-X ...".
var (
	BuildTime = "unknown"
	GitCommit = "unset"
)

// HandleVersion reports the running build. version comes from configuration
// and is used when the binary was built without one.
func HandleVersion(version string) http.HandlerFunc {
	info := VersionInfo{
		Version:   version,
		GoVersion: runtime.Version(),
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	}
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, info)
	}
}
