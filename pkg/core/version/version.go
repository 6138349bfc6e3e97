// ============================================================================
// fixstr - Fixed-length immutable strings
// ============================================================================
//
// Package:     version
// Description: Build and release information for the fixstr tools
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version is the release of the fixstr library and CLI.
const Version = "0.1.0"

// Set at link time with -ldflags "-X github.com/msto63/fixstr/pkg/core/version.GitCommit=...".
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// Info describes the running binary
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the build information of the running binary
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a one-line summary such as "fixstr v0.1.0 (development)"
func (i Info) String() string {
	return fmt.Sprintf("fixstr v%s (%s)", i.Version, i.GitCommit)
}
