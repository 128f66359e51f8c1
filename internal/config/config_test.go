package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/fontkit/fontls/internal/fontdir"
)

func TestInit(t *testing.T) {
	viper.Reset()

	Init()

	if got := viper.GetStringSlice("default_scopes"); len(got) != 1 || got[0] != "user" {
		t.Errorf("expected default_scopes [user], got %v", got)
	}
	if got := viper.GetStringSlice("default_patterns"); len(got) != 1 || got[0] != "*" {
		t.Errorf("expected default_patterns [*], got %v", got)
	}
	if got := viper.GetString("format"); got != "table" {
		t.Errorf("expected format table, got %q", got)
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	viper.Reset()

	// Run from an empty directory so no stray config.yaml is picked up.
	t.Chdir(t.TempDir())

	Init()

	cfg, err := Load("")
	if err != nil {
		t.Errorf("Load() with no config file should not error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected config to be returned")
	}

	scopes, err := cfg.Scopes()
	if err != nil {
		t.Fatalf("Scopes() error: %v", err)
	}
	if len(scopes) != 1 || scopes[0] != fontdir.CurrentUser {
		t.Errorf("expected default scope CurrentUser, got %v", scopes)
	}
}

func TestLoad_WithConfigFile(t *testing.T) {
	viper.Reset()

	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := []byte("default_scopes:\n  - user\n  - system\nformat: json\n")
	if err := os.WriteFile(configPath, content, 0600); err != nil {
		t.Fatal(err)
	}

	Init()

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if len(cfg.DefaultScopes) != 2 {
		t.Errorf("expected 2 scopes, got %d", len(cfg.DefaultScopes))
	}
	if cfg.Format != "json" {
		t.Errorf("expected format json, got %q", cfg.Format)
	}

	scopes, err := cfg.Scopes()
	if err != nil {
		t.Fatalf("Scopes() error: %v", err)
	}
	if scopes[0] != fontdir.CurrentUser || scopes[1] != fontdir.AllUsers {
		t.Errorf("unexpected scopes: %v", scopes)
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	viper.Reset()
	Init()

	if _, err := Load("/non/existent/path/config.yaml"); err == nil {
		t.Error("Load() with non-existent explicit path should error")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "bad scope",
			content: "default_scopes:\n  - galactic\n",
		},
		{
			name:    "bad format",
			content: "format: xml\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()

			dir := t.TempDir()
			configPath := filepath.Join(dir, "config.yaml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}

			Init()

			if _, err := Load(configPath); err == nil {
				t.Error("Load() should reject invalid config")
			}
		})
	}
}
