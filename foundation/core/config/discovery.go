// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Finds a configuration file across a list of directories,
//              base names and extensions.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2026-10-18 v0.2.0: Discover falls back to Empty when nothing is required

package config

import (
	"os"
	"path/filepath"
	"strings"

	flerror "github.com/msto63/faultlab/foundation/core/error"
	"github.com/msto63/faultlab/foundation/core/errors"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string               // Directories to search for config files
	Filenames  []string               // Base filenames to look for (without extension)
	Extensions []string               // File extensions to try (.toml, .yaml, .yml)
	EnvPrefix  string                 // Environment variable prefix for overrides
	Defaults   map[string]interface{} // Default values
	Required   bool                   // Whether finding a config file is required
}

// Discover loads the first configuration file found. Paths are searched in
// order, then filenames, then extensions. When nothing is found and the file
// is not required, an Empty config is returned.
func Discover(options DiscoveryOptions) (*Config, error) {
	if len(options.Paths) == 0 {
		options.Paths = []string{"."}
	}
	if len(options.Filenames) == 0 {
		options.Filenames = []string{"config"}
	}
	if len(options.Extensions) == 0 {
		options.Extensions = []string{".toml", ".yaml", ".yml"}
	}

	candidates := ListPossibleConfigFiles(options)
	for _, configPath := range candidates {
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return LoadWithOptions(configPath, LoadOptions{
				Format:    FormatAuto,
				EnvPrefix: options.EnvPrefix,
				Defaults:  options.Defaults,
			})
		}
	}

	if options.Required {
		return nil, errors.NewErrorBuilder(errors.ModuleConfig).
			Operation("discover").
			Messagef("no configuration file found in: %s", strings.Join(candidates, ", ")).
			Code(flerror.CodeConfigError).
			Detail("search_paths", candidates).
			Build()
	}

	return Empty(options.EnvPrefix, options.Defaults), nil
}

// ListPossibleConfigFiles returns a list of all possible configuration file paths
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var paths []string
	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(path, filename+ext))
			}
		}
	}
	return paths
}
