// Package config loads faultlab configuration from TOML or YAML files.
//
// Package: config
// Title: Configuration Management
// Description: File-based configuration with dotted-key access, defaults
//              and environment variable overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-18 v0.2.0: Reduced to loading, discovery and typed getters
//
// Lookup order for a key is environment variable, file value, default
// registered at load time, then the default passed to the getter.
// Environment names are the key upper-cased with dots replaced by
// underscores, behind the optional prefix:
//
//	cfg, err := config.LoadWithOptions("faultlab.toml", config.LoadOptions{
//	    Format:    config.FormatAuto,
//	    EnvPrefix: "FAULTLAB",
//	})
//	level := cfg.GetString("log.level", "info") // FAULTLAB_LOG_LEVEL wins
package config
