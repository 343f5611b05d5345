package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	appName = "lyrifi"

	// DefaultNamespace is the storage key the player state is persisted under.
	DefaultNamespace = "lyrifi-player-storage"

	defaultListen    = "127.0.0.1:3000"
	defaultServerURL = "http://127.0.0.1:3000"
	defaultCacheTTL  = 5 * time.Minute
)

type Config struct {
	Database  string `koanf:"database"`   // catalog + player state sqlite file
	Listen    string `koanf:"listen"`     // address for `lyrifi serve`
	ServerURL string `koanf:"server_url"` // catalog service used by `lyrifi play`
	Namespace string `koanf:"namespace"`  // player state storage key
	Icons     string `koanf:"icons"`      // "nerd", "unicode", or "none"

	Log     LogConfig     `koanf:"log"`
	Redis   RedisConfig   `koanf:"redis"`
	YouTube YouTubeConfig `koanf:"youtube"`
	MPV     MPVConfig     `koanf:"mpv"`
}

// LogConfig controls the logrus setup.
type LogConfig struct {
	Level string `koanf:"level"` // logrus level name (default: info)
	JSON  bool   `koanf:"json"`  // JSON formatter instead of text
	File  string `koanf:"file"`  // log file; empty means stderr for serve, state dir for play
}

// RedisConfig enables the search result cache when Addr is set.
type RedisConfig struct {
	Addr       string `koanf:"addr"`        // e.g., "localhost:6379"
	Password   string `koanf:"password"`    // optional
	DB         int    `koanf:"db"`          // database index
	TTLSeconds int    `koanf:"ttl_seconds"` // cache TTL (default: 300)
}

// YouTubeConfig holds the Data API key used to find missing video ids.
type YouTubeConfig struct {
	APIKey string `koanf:"api_key"`
}

// MPVConfig configures the mpv video widget.
type MPVConfig struct {
	Path string `koanf:"path"` // mpv binary (default: "mpv" from PATH)
}

// Load reads the config files in priority order (last wins).
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given config files, skipping the ones that don't exist.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.Database != "" {
		cfg.Database = expandPath(cfg.Database)
	}
	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}
	if cfg.MPV.Path != "" {
		cfg.MPV.Path = expandPath(cfg.MPV.Path)
	}

	// Normalize server URL (remove trailing slash)
	cfg.ServerURL = strings.TrimSuffix(cfg.ServerURL, "/")

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/lyrifi/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// DatabasePath returns the sqlite file, defaulting to the XDG data dir.
func (c *Config) DatabasePath() (string, error) {
	if c.Database != "" {
		return c.Database, nil
	}
	return xdg.DataFile(filepath.Join(appName, appName+".db"))
}

// LogPath returns the log file for interactive sessions, defaulting to the XDG state dir.
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	return xdg.StateFile(filepath.Join(appName, appName+".log"))
}

// ListenAddr returns the HTTP listen address with its default applied.
func (c *Config) ListenAddr() string {
	if c.Listen == "" {
		return defaultListen
	}
	return c.Listen
}

// CatalogURL returns the catalog service base URL with its default applied.
func (c *Config) CatalogURL() string {
	if c.ServerURL == "" {
		return defaultServerURL
	}
	return c.ServerURL
}

// PlayerNamespace returns the player storage namespace with its default applied.
func (c *Config) PlayerNamespace() string {
	if c.Namespace == "" {
		return DefaultNamespace
	}
	return c.Namespace
}

// MPVPath returns the mpv binary to run.
func (c *Config) MPVPath() string {
	if c.MPV.Path == "" {
		return "mpv"
	}
	return c.MPV.Path
}

// HasRedisConfig returns true if the search cache is configured.
func (c *Config) HasRedisConfig() bool {
	return c.Redis.Addr != ""
}

// HasYouTubeConfig returns true if missing video ids can be looked up.
func (c *Config) HasYouTubeConfig() bool {
	return c.YouTube.APIKey != ""
}

// CacheTTL returns the search cache TTL with its default applied.
func (c *Config) CacheTTL() time.Duration {
	if c.Redis.TTLSeconds <= 0 {
		return defaultCacheTTL
	}
	return time.Duration(c.Redis.TTLSeconds) * time.Second
}
