package version

import (
	"fmt"
	"runtime"
)

// Build information. Populated at build time via -ldflags; the defaults
// apply for a plain `go build`.
var (
	Version = "1.0.0"
	Commit  = "unknown"
	Date    = "unknown"
)

// ServiceName is the canonical name used in logs, health reports, and
// history records
const ServiceName = "latexp"

// Information holds the full build and runtime version information
type Information struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Info returns the full version information
func Info() Information {
	return Information{
		Service:   ServiceName,
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns a single-line version string
func (i Information) String() string {
	return fmt.Sprintf("%s %s (commit %s, built %s, %s, %s)",
		i.Service, i.Version, i.Commit, i.Date, i.GoVersion, i.Platform)
}
