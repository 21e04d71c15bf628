package bootstrap

import (
	"fmt"
	"strings"

	studiocms "github.com/buro710/studio-cms"
	"github.com/buro710/studio-cms/internal/di"
	"github.com/buro710/studio-cms/internal/markdown"
	"github.com/buro710/studio-cms/pkg/interfaces"
)

// Options captures configuration for the markdown CLI bootstraps.
type Options struct {
	ContentDir     string
	Pattern        string
	Recursive      bool
	DefaultLocale  string
	Locales        []string
	StorageDriver  string
	StorageDSN     string
	DryRun         bool
	LoggerProvider interfaces.LoggerProvider
}

// Module wraps the studio module plus the loader and importer the markdown
// commands operate with.
type Module struct {
	Module   *studiocms.Module
	Importer *markdown.Importer
	Parser   *markdown.GoldmarkParser
	Logger   interfaces.Logger
}

// BuildModule constructs a studio module configured for markdown ingestion.
func BuildModule(opts Options) (*Module, error) {
	cfg := studiocms.DefaultConfig()
	cfg.Features.Markdown = true
	cfg.Markdown.Enabled = true
	cfg.Markdown.ContentDir = strings.TrimSpace(opts.ContentDir)
	if cfg.Markdown.ContentDir == "" {
		cfg.Markdown.ContentDir = "content"
	}
	if trimmed := strings.TrimSpace(opts.Pattern); trimmed != "" {
		cfg.Markdown.Pattern = trimmed
	}
	cfg.Markdown.Recursive = opts.Recursive

	if defaultLocale := strings.TrimSpace(opts.DefaultLocale); defaultLocale != "" {
		cfg.DefaultLocale = defaultLocale
	}
	if len(opts.Locales) > 0 {
		cfg.Locales = cloneStrings(opts.Locales)
	}
	if !contains(cfg.Locales, cfg.DefaultLocale) {
		cfg.Locales = append(cfg.Locales, cfg.DefaultLocale)
	}

	if dsn := strings.TrimSpace(opts.StorageDSN); dsn != "" {
		cfg.Storage.Enabled = true
		cfg.Storage.DSN = dsn
		if driver := strings.TrimSpace(opts.StorageDriver); driver != "" {
			cfg.Storage.Driver = driver
		}
	}

	diOpts := []di.Option{}
	if opts.LoggerProvider != nil {
		diOpts = append(diOpts, di.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := studiocms.New(cfg, diOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise studio module: %w", err)
	}

	parser := markdown.NewGoldmarkParser()
	logger := module.Container().Logger("markdown")

	importer, err := markdown.NewImporter(markdown.ImporterConfig{
		Projects:      module.Projects(),
		Parser:        parser,
		DefaultLocale: cfg.DefaultLocale,
		Logger:        logger,
		DryRun:        opts.DryRun,
	})
	if err != nil {
		return nil, fmt.Errorf("configure importer: %w", err)
	}

	return &Module{
		Module:   module,
		Importer: importer,
		Parser:   parser,
		Logger:   logger,
	}, nil
}

// LoaderConfig derives the loader configuration matching the bootstrap options.
func (o Options) LoaderConfig(defaultLocale string, locales []string) markdown.LoaderConfig {
	return markdown.LoaderConfig{
		DefaultLocale: defaultLocale,
		Locales:       locales,
		Pattern:       o.Pattern,
		Recursive:     o.Recursive,
	}
}

// SplitLocales parses a comma separated locale list into a trimmed slice.
func SplitLocales(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	locales := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			locales = append(locales, trimmed)
		}
	}
	return locales
}

func contains(values []string, target string) bool {
	for _, value := range values {
		if strings.EqualFold(value, target) {
			return true
		}
	}
	return false
}

func cloneStrings(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}
