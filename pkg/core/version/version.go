// ============================================================================
// faultlab - Error Condition Catalog
// ============================================================================
//
// Package:     version
// Description: Central version management for the CLI and its components
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for faultlab and its components
const (
	// Release version of the faultlab CLI
	Faultlab = "0.1.0"

	// Component versions
	Catalog    = "1.0.0"
	Cases      = "1.0.0"
	Foundation = "0.2.0"
)

// Build metadata, overridden with -ldflags "-X ...=..."
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "catalog":
		return Catalog
	case "cases":
		return Cases
	case "foundation":
		return Foundation
	default:
		return Faultlab
	}
}

// Info describes the running binary
type Info struct {
	Version    string `json:"version"`
	Catalog    string `json:"catalog"`
	Cases      string `json:"cases"`
	Foundation string `json:"foundation"`
	GitCommit  string `json:"git_commit"`
	BuildDate  string `json:"build_date"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

// Get returns the version information of the running binary
func Get() Info {
	return Info{
		Version:    Faultlab,
		Catalog:    ComponentVersion("catalog"),
		Cases:      ComponentVersion("cases"),
		Foundation: ComponentVersion("foundation"),
		GitCommit:  GitCommit,
		BuildDate:  BuildDate,
		GoVersion:  runtime.Version(),
		Platform:   fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns a one line description such as "faultlab v0.1.0 (development)"
func (i Info) String() string {
	return fmt.Sprintf("faultlab v%s (%s)", i.Version, i.GitCommit)
}
