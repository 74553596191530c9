// ============================================================================
// textkit - Text Engine
// ============================================================================
//
// Package:     version
// Description: Version numbers of the textkit components
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for the textkit components
const (
	// Release version of the command line tool
	Release = "0.2.0"

	// Component versions
	Engine   = "0.2.0" // foundation/utils/stringx
	Registry = "0.1.0"
	Settings = "0.1.0"
)

// Set by the linker: -ldflags "-X .../version.GitCommit=abc123"
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a component name
func ComponentVersion(name string) string {
	switch name {
	case "engine", "stringx":
		return Engine
	case "registry":
		return Registry
	case "settings":
		return Settings
	default:
		return Release
	}
}

// Info collects build information for display
type Info struct {
	Release   string            `json:"release"`
	GitCommit string            `json:"git_commit"`
	BuildDate string            `json:"build_date"`
	GoVersion string            `json:"go_version"`
	Platform  string            `json:"platform"`
	Parts     map[string]string `json:"components"`
}

// Current returns the build information of the running binary
func Current() Info {
	return Info{
		Release:   Release,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		Parts:     parts(),
	}
}

func parts() map[string]string {
	result := make(map[string]string, 3)
	for _, name := range []string{"engine", "registry", "settings"} {
		result[name] = ComponentVersion(name)
	}
	return result
}
