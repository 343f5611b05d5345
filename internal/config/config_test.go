//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}
	return path
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/lyrifi.db",
			expected: filepath.Join(home, "lyrifi.db"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/var/lib/lyrifi.db",
			expected: "/var/lib/lyrifi.db",
		},
		{
			name:     "relative path unchanged",
			input:    "data/lyrifi.db",
			expected: "data/lyrifi.db",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) == 0 {
		t.Fatal("getConfigPaths() returned empty slice")
	}

	// Last path should be local config.toml
	if last := paths[len(paths)-1]; last != "config.toml" {
		t.Errorf("last config path = %q, want %q", last, "config.toml")
	}

	if home, err := os.UserHomeDir(); err == nil {
		expectedFirst := filepath.Join(home, ".config", "lyrifi", "config.toml")
		if paths[0] != expectedFirst {
			t.Errorf("first config path = %q, want %q", paths[0], expectedFirst)
		}
	}
}

func TestLoadFrom_MissingFiles(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Database != "" || cfg.Listen != "" {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestLoadFrom_BasicConfig(t *testing.T) {
	path := writeConfig(t, `
database = "~/music/lyrifi.db"
listen = ":8080"
server_url = "http://catalog.local:8080/"
namespace = "test-ns"
icons = "unicode"

[log]
level = "debug"
json = true

[redis]
addr = "localhost:6379"
ttl_seconds = 60

[youtube]
api_key = "yt-key"

[mpv]
path = "/usr/local/bin/mpv"
`)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, "music", "lyrifi.db"); cfg.Database != want {
		t.Errorf("Database = %q, want %q", cfg.Database, want)
	}
	if cfg.ListenAddr() != ":8080" {
		t.Errorf("ListenAddr() = %q, want %q", cfg.ListenAddr(), ":8080")
	}
	// Trailing slash is removed
	if cfg.CatalogURL() != "http://catalog.local:8080" {
		t.Errorf("CatalogURL() = %q, want %q", cfg.CatalogURL(), "http://catalog.local:8080")
	}
	if cfg.PlayerNamespace() != "test-ns" {
		t.Errorf("PlayerNamespace() = %q, want %q", cfg.PlayerNamespace(), "test-ns")
	}
	if cfg.Icons != "unicode" {
		t.Errorf("Icons = %q, want %q", cfg.Icons, "unicode")
	}
	if cfg.Log.Level != "debug" || !cfg.Log.JSON {
		t.Errorf("Log = %+v, want level debug and json", cfg.Log)
	}
	if !cfg.HasRedisConfig() {
		t.Error("HasRedisConfig() = false, want true")
	}
	if cfg.CacheTTL() != time.Minute {
		t.Errorf("CacheTTL() = %v, want 1m", cfg.CacheTTL())
	}
	if !cfg.HasYouTubeConfig() {
		t.Error("HasYouTubeConfig() = false, want true")
	}
	if cfg.MPVPath() != "/usr/local/bin/mpv" {
		t.Errorf("MPVPath() = %q, want %q", cfg.MPVPath(), "/usr/local/bin/mpv")
	}
}

func TestLoadFrom_LastFileWins(t *testing.T) {
	first := writeConfig(t, `
listen = ":1111"
namespace = "first"
`)
	second := writeConfig(t, `listen = ":2222"`)

	cfg, err := LoadFrom(first, second)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Listen != ":2222" {
		t.Errorf("Listen = %q, want %q", cfg.Listen, ":2222")
	}
	if cfg.Namespace != "first" {
		t.Errorf("Namespace = %q, want %q (kept from first file)", cfg.Namespace, "first")
	}
}

func TestLoadFrom_InvalidToml(t *testing.T) {
	path := writeConfig(t, "invalid = [[[")

	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom() expected error for invalid TOML, got nil")
	}
}

func TestDefaults(t *testing.T) {
	cfg := &Config{}

	if cfg.ListenAddr() != defaultListen {
		t.Errorf("ListenAddr() = %q, want %q", cfg.ListenAddr(), defaultListen)
	}
	if cfg.CatalogURL() != defaultServerURL {
		t.Errorf("CatalogURL() = %q, want %q", cfg.CatalogURL(), defaultServerURL)
	}
	if cfg.PlayerNamespace() != DefaultNamespace {
		t.Errorf("PlayerNamespace() = %q, want %q", cfg.PlayerNamespace(), DefaultNamespace)
	}
	if cfg.MPVPath() != "mpv" {
		t.Errorf("MPVPath() = %q, want mpv", cfg.MPVPath())
	}
	if cfg.CacheTTL() != defaultCacheTTL {
		t.Errorf("CacheTTL() = %v, want %v", cfg.CacheTTL(), defaultCacheTTL)
	}
	if cfg.HasRedisConfig() || cfg.HasYouTubeConfig() {
		t.Error("empty config should not enable redis or youtube")
	}
}

func TestDatabasePath_Explicit(t *testing.T) {
	cfg := &Config{Database: "/tmp/catalog.db"}

	path, err := cfg.DatabasePath()
	if err != nil {
		t.Fatalf("DatabasePath() error = %v", err)
	}
	if path != "/tmp/catalog.db" {
		t.Errorf("DatabasePath() = %q, want /tmp/catalog.db", path)
	}
}
