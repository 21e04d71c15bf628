package i18n

import "strings"

// Config captures the locales the site serves. The default locale is the
// authoring locale; every other locale renders as an overlay on top of it.
type Config struct {
	DefaultLocale string
	Locales       []string
}

// DefaultConfig matches the studio site: Ukrainian content with English and
// German overlays.
func DefaultConfig() Config {
	return Config{
		DefaultLocale: "uk",
		Locales:       []string{"uk", "en", "de"},
	}
}

// Normalize lowercases a locale key and falls back to the default when empty.
func (c Config) Normalize(locale string) string {
	normalized := strings.ToLower(strings.TrimSpace(locale))
	if normalized == "" {
		return c.DefaultLocale
	}
	return normalized
}

// IsSupported reports whether the locale is served by the site.
func (c Config) IsSupported(locale string) bool {
	normalized := strings.ToLower(strings.TrimSpace(locale))
	for _, candidate := range c.Locales {
		if strings.EqualFold(candidate, normalized) {
			return true
		}
	}
	return false
}
