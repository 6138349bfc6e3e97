package version

import (
	"regexp"
	"runtime"
	"strings"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionFormat(t *testing.T) {
	if !semverRegex.MatchString(Version) {
		t.Errorf("Version %q does not match semver format (x.y.z)", Version)
	}
}

func TestGet(t *testing.T) {
	info := Get()

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"version", info.Version, Version},
		{"commit", info.GitCommit, GitCommit},
		{"go version", info.GoVersion, runtime.Version()},
		{"platform", info.Platform, runtime.GOOS + "/" + runtime.GOARCH},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("Get().%s = %q, want %q", tt.name, tt.got, tt.expected)
			}
		})
	}

	if s := info.String(); !strings.HasPrefix(s, "fixstr v"+Version) {
		t.Errorf("String() = %q", s)
	}
}
