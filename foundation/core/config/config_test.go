// File: config_test.go
// Title: Configuration Module Tests
// Description: Tests for TOML/YAML parsing, defaults, environment variable
//              overrides, discovery and error codes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18

package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	flerror "github.com/msto63/faultlab/foundation/core/error"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("load TOML config", func(t *testing.T) {
		path := writeFile(t, tempDir, "faultlab.toml", `
[log]
level = "debug"
format = "json"

[session]
logged_in = true

[limits]
cases = 12
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}
		if cfg.Format() != FormatTOML {
			t.Errorf("Format() = %v, want toml", cfg.Format())
		}
		if got := cfg.GetString("log.level"); got != "debug" {
			t.Errorf("log.level = %q, want debug", got)
		}
		if !cfg.GetBool("session.logged_in") {
			t.Error("session.logged_in should be true")
		}
		if got := cfg.GetInt("limits.cases"); got != 12 {
			t.Errorf("limits.cases = %d, want 12", got)
		}
		if cfg.FilePath() != path {
			t.Errorf("FilePath() = %q, want %q", cfg.FilePath(), path)
		}
	})

	t.Run("load YAML config", func(t *testing.T) {
		path := writeFile(t, tempDir, "faultlab.yaml", `
log:
  level: warn
output:
  format: json
limits:
  cases: 3
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}
		if cfg.Format() != FormatYAML {
			t.Errorf("Format() = %v, want yaml", cfg.Format())
		}
		if got := cfg.GetString("output.format"); got != "json" {
			t.Errorf("output.format = %q, want json", got)
		}
		if got := cfg.GetInt("limits.cases"); got != 3 {
			t.Errorf("limits.cases = %d, want 3", got)
		}
	})
}

func TestLoadErrors(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(tempDir, "absent.toml"))
		if !flerror.HasCode(err, flerror.CodeConfigError) {
			t.Fatalf("error = %v, want CONFIG_ERROR", err)
		}
		if !stderrors.Is(err, fs.ErrNotExist) {
			t.Error("missing file error should unwrap to fs.ErrNotExist")
		}
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := Load("  ")
		if !flerror.HasCode(err, flerror.CodeConfigError) {
			t.Fatalf("error = %v, want CONFIG_ERROR", err)
		}
	})

	t.Run("invalid TOML", func(t *testing.T) {
		path := writeFile(t, tempDir, "broken.toml", "[log\nlevel = ")
		_, err := Load(path)
		if !flerror.HasCode(err, flerror.CodeInvalidConfig) {
			t.Fatalf("error = %v, want INVALID_CONFIG", err)
		}
	})

	t.Run("invalid YAML", func(t *testing.T) {
		path := writeFile(t, tempDir, "broken.yml", "log: [unterminated")
		_, err := Load(path)
		if !flerror.HasCode(err, flerror.CodeInvalidConfig) {
			t.Fatalf("error = %v, want INVALID_CONFIG", err)
		}
	})
}

func TestLoadFromString(t *testing.T) {
	cfg, err := LoadFromString("log:\n  format: text\n", FormatYAML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}
	if got := cfg.GetString("log.format"); got != "text" {
		t.Errorf("log.format = %q, want text", got)
	}

	if _, err := LoadFromString("= nope", FormatAuto); !flerror.HasCode(err, flerror.CodeInvalidConfig) {
		t.Errorf("error = %v, want INVALID_CONFIG", err)
	}
}

func TestDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "c.toml", "[log]\nlevel = \"error\"\n")
	cfg, err := LoadWithOptions(path, LoadOptions{
		Format: FormatAuto,
		Defaults: map[string]interface{}{
			"log.level":         "info",
			"log.format":        "text",
			"session.logged_in": false,
		},
	})
	if err != nil {
		t.Fatalf("LoadWithOptions() error = %v", err)
	}

	if got := cfg.GetString("log.level"); got != "error" {
		t.Errorf("file value should win over default, got %q", got)
	}
	if got := cfg.GetString("log.format"); got != "text" {
		t.Errorf("log.format = %q, want default text", got)
	}
	if !cfg.Has("session.logged_in") {
		t.Error("default key should be present")
	}
	if got := cfg.GetString("missing.key", "fallback"); got != "fallback" {
		t.Errorf("getter default = %q, want fallback", got)
	}
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("FAULTLAB_LOG_LEVEL", "trace")
	t.Setenv("FAULTLAB_SESSION_LOGGED_IN", "true")
	t.Setenv("FAULTLAB_LIMITS_CASES", "not-a-number")

	cfg := Empty("faultlab", map[string]interface{}{
		"log.level":         "info",
		"session.logged_in": false,
		"limits.cases":      5,
	})

	if got := cfg.GetString("log.level"); got != "trace" {
		t.Errorf("log.level = %q, want trace from environment", got)
	}
	if !cfg.GetBool("session.logged_in") {
		t.Error("session.logged_in should be overridden to true")
	}
	if got := cfg.GetInt("limits.cases"); got != 5 {
		t.Errorf("unparsable env value should be ignored, got %d", got)
	}
}

func TestSetAndHas(t *testing.T) {
	cfg := Empty("", nil)
	if cfg.Has("output.format") {
		t.Error("empty config should not have keys")
	}
	cfg.Set("output.format", "json")
	if got := cfg.GetString("output.format"); got != "json" {
		t.Errorf("output.format = %q, want json", got)
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "faultlab.yaml", "log:\n  level: debug\n")

	cfg, err := Discover(DiscoveryOptions{
		Paths:     []string{filepath.Join(dir, "missing"), dir},
		Filenames: []string{"faultlab"},
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if got := cfg.GetString("log.level"); got != "debug" {
		t.Errorf("log.level = %q, want debug", got)
	}

	cfg, err = Discover(DiscoveryOptions{Paths: []string{filepath.Join(dir, "missing")}})
	if err != nil {
		t.Fatalf("Discover() without file error = %v", err)
	}
	if cfg.FilePath() != "" {
		t.Error("fallback config should have no file path")
	}

	_, err = Discover(DiscoveryOptions{Paths: []string{filepath.Join(dir, "missing")}, Required: true})
	if !flerror.HasCode(err, flerror.CodeConfigError) {
		t.Errorf("required discovery error = %v, want CONFIG_ERROR", err)
	}
}

func TestFormatString(t *testing.T) {
	if FormatTOML.String() != "toml" || FormatYAML.String() != "yaml" || FormatAuto.String() != "auto" {
		t.Error("Format.String() mismatch")
	}
	if detectFormat("a.YML") != FormatYAML || detectFormat("a.conf") != FormatTOML {
		t.Error("detectFormat() mismatch")
	}
}
