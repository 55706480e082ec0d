package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.MaxSizeGB != 10.0 {
		t.Errorf("MaxSizeGB = %g, want 10", cfg.MaxSizeGB)
	}
	if cfg.ArchiveName != "dataset.zip" {
		t.Errorf("ArchiveName = %q, want dataset.zip", cfg.ArchiveName)
	}
	if cfg.ArchiveFolder != ".mdf" {
		t.Errorf("ArchiveFolder = %q, want .mdf", cfg.ArchiveFolder)
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
	if cfg.LogFormat != FormatConsole {
		t.Errorf("LogFormat = %q, want console", cfg.LogFormat)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"zero max size", func(s *Settings) { s.MaxSizeGB = 0 }},
		{"negative max size", func(s *Settings) { s.MaxSizeGB = -1 }},
		{"zero workers", func(s *Settings) { s.Workers = 0 }},
		{"empty archive name", func(s *Settings) { s.ArchiveName = "" }},
		{"archive name with separator", func(s *Settings) { s.ArchiveName = "a/b.zip" }},
		{"empty archive folder", func(s *Settings) { s.ArchiveFolder = "" }},
		{"archive folder with separator", func(s *Settings) { s.ArchiveFolder = "a/b" }},
		{"bad log format", func(s *Settings) { s.LogFormat = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() accepted invalid settings")
			}
		})
	}
}

func TestArchivePath(t *testing.T) {
	cfg := Default()
	got := cfg.ArchivePath(filepath.Join("data", "experiment1"))
	want := filepath.Join("data", "experiment1", ".mdf", "dataset.zip")
	if got != want {
		t.Errorf("ArchivePath() = %q, want %q", got, want)
	}
}

func TestResolveRoot(t *testing.T) {
	t.Run("existing directory", func(t *testing.T) {
		dir := t.TempDir()
		got, err := ResolveRoot(dir)
		if err != nil {
			t.Fatalf("ResolveRoot() error: %v", err)
		}
		if !filepath.IsAbs(got) {
			t.Errorf("ResolveRoot() = %q, want absolute path", got)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		if _, err := ResolveRoot(filepath.Join(t.TempDir(), "nope")); err == nil {
			t.Error("ResolveRoot() accepted a missing path")
		}
	})

	t.Run("regular file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "file.txt")
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}
		if _, err := ResolveRoot(path); err == nil {
			t.Error("ResolveRoot() accepted a regular file")
		}
	})
}

func TestLoad(t *testing.T) {
	writeConfig := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to write config file: %v", err)
		}
		return path
	}

	t.Run("overlay keeps unset defaults", func(t *testing.T) {
		path := writeConfig(t, "maxSizeGB: 2.5\nworkers: 8\n")
		cfg, err := Load(path, Default())
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		if cfg.MaxSizeGB != 2.5 || cfg.Workers != 8 {
			t.Errorf("overridden values = %g/%d, want 2.5/8", cfg.MaxSizeGB, cfg.Workers)
		}
		if cfg.ArchiveName != "dataset.zip" || cfg.ArchiveFolder != ".mdf" {
			t.Errorf("defaults lost: %q/%q", cfg.ArchiveName, cfg.ArchiveFolder)
		}
	})

	t.Run("env expansion", func(t *testing.T) {
		t.Setenv("MDFZIP_TEST_LOG", "/var/log/mdfzip.json")
		path := writeConfig(t, "logFile: $(MDFZIP_TEST_LOG)\n")
		cfg, err := Load(path, Default())
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		if cfg.LedgerPath != "/var/log/mdfzip.json" {
			t.Errorf("LedgerPath = %q, want expanded value", cfg.LedgerPath)
		}
	})

	t.Run("unset env expands empty", func(t *testing.T) {
		path := writeConfig(t, "archiveName: $(MDFZIP_TEST_UNSET_VAR)x.zip\n")
		cfg, err := Load(path, Default())
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		if cfg.ArchiveName != "x.zip" {
			t.Errorf("ArchiveName = %q, want x.zip", cfg.ArchiveName)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "none.yaml"), Default()); err == nil {
			t.Error("Load() succeeded on a missing file")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "workers: [not a number\n")
		_, err := Load(path, Default())
		if err == nil {
			t.Error("Load() accepted malformed yaml")
		}
		if err != nil && !strings.Contains(err.Error(), "yaml") {
			t.Errorf("error does not mention yaml: %v", err)
		}
	})
}
