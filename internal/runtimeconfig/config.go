package runtimeconfig

import (
	"errors"
	"strings"
	"time"

	urlkit "github.com/goliatone/go-urlkit"
)

var ErrDefaultLocaleRequired = errors.New("studio config: default locale is required")
var ErrDefaultLocaleUnlisted = errors.New("studio config: default locale must be listed in locales")
var ErrStorageDriverUnknown = errors.New("studio config: storage driver is invalid")
var ErrStorageDSNRequired = errors.New("studio config: storage DSN is required when storage is enabled")
var ErrCacheTTLInvalid = errors.New("studio config: cache TTL must be zero or positive")
var ErrLoggingLevelInvalid = errors.New("studio config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("studio config: logging format is invalid")
var ErrMarkdownContentDirRequired = errors.New("studio config: markdown content directory is required when markdown is enabled")

// Config aggregates feature flags and adapter bindings for the studio module.
// Fields use simple types so host applications can extend them later.
type Config struct {
	Enabled       bool
	DefaultLocale string
	Locales       []string
	Storage       StorageConfig
	Cache         CacheConfig
	Navigation    NavigationConfig
	Markdown      MarkdownConfig
	Logging       LoggingConfig
	Features      Features
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	Enabled bool
	Driver  string
	DSN     string
}

// CacheConfig captures repository cache behaviour.
type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// NavigationConfig captures routing configuration for public URL resolution.
type NavigationConfig struct {
	RouteConfig  *urlkit.Config
	DefaultGroup string
	LocaleGroups map[string]string
	ProjectRoute string
	SlugParam    string
	LocaleParam  string
}

// MarkdownConfig captures filesystem behaviour for case-study ingestion.
type MarkdownConfig struct {
	Enabled    bool
	ContentDir string
	Pattern    string
	Recursive  bool
}

// LoggingConfig captures provider options for runtime logging.
type LoggingConfig struct {
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// Features toggles module functionality.
type Features struct {
	Activity bool
	Markdown bool
	Logger   bool
}

// DefaultConfig returns the opinionated defaults for the studio site.
func DefaultConfig() Config {
	return Config{
		Enabled:       true,
		DefaultLocale: "uk",
		Locales:       []string{"uk", "en", "de"},
		Storage: StorageConfig{
			Enabled: false,
			Driver:  "sqlite3",
		},
		Cache: CacheConfig{
			Enabled:    true,
			DefaultTTL: time.Minute,
		},
		Navigation: NavigationConfig{
			DefaultGroup: "public",
			ProjectRoute: "project.detail",
			SlugParam:    "slug",
		},
		Markdown: MarkdownConfig{
			ContentDir: "content",
			Pattern:    "*.md",
			Recursive:  true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "",
		},
		Features: Features{
			Activity: true,
		},
	}
}

// Validate checks cross-field consistency.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DefaultLocale) == "" {
		return ErrDefaultLocaleRequired
	}
	if len(c.Locales) > 0 && !containsFold(c.Locales, c.DefaultLocale) {
		return ErrDefaultLocaleUnlisted
	}

	if c.Storage.Enabled {
		switch c.Storage.Driver {
		case "sqlite3", "postgres":
		default:
			return ErrStorageDriverUnknown
		}
		if strings.TrimSpace(c.Storage.DSN) == "" {
			return ErrStorageDSNRequired
		}
	}

	if c.Cache.DefaultTTL < 0 {
		return ErrCacheTTLInvalid
	}

	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return ErrLoggingLevelInvalid
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "json", "console", "text", "pretty":
	default:
		return ErrLoggingFormatInvalid
	}

	if c.Features.Markdown && strings.TrimSpace(c.Markdown.ContentDir) == "" {
		return ErrMarkdownContentDirRequired
	}

	return nil
}

func containsFold(values []string, wanted string) bool {
	for _, value := range values {
		if strings.EqualFold(value, wanted) {
			return true
		}
	}
	return false
}
