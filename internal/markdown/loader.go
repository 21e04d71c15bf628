package markdown

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// LoaderConfig configures how case study files are discovered.
type LoaderConfig struct {
	// DefaultLocale is used when no locale can be inferred from the file path.
	DefaultLocale string
	// Locales enumerates the known locales for directory matching.
	Locales []string
	// Pattern limits discovered files to the supplied glob (defaults to "*.md").
	Pattern string
	// Recursive controls whether sub-directories are traversed.
	Recursive bool
}

// Loader turns filesystem paths into parsed case studies.
type Loader struct {
	fs            fs.FS
	defaultLocale string
	locales       []string
	pattern       string
	recursive     bool
}

// Document is a parsed case study file.
type Document struct {
	Path   string
	Locale string
	Meta   CaseStudyMeta
	Body   []byte
}

// NewLoader constructs a Loader over the provided filesystem.
func NewLoader(filesystem fs.FS, cfg LoaderConfig) *Loader {
	pattern := cfg.Pattern
	if strings.TrimSpace(pattern) == "" {
		pattern = "*.md"
	}

	return &Loader{
		fs:            filesystem,
		defaultLocale: cfg.DefaultLocale,
		locales:       append([]string(nil), cfg.Locales...),
		pattern:       pattern,
		recursive:     cfg.Recursive,
	}
}

// LoadFile reads and parses a single case study.
func (l *Loader) LoadFile(ctx context.Context, path string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rel := filepath.ToSlash(filepath.Clean(path))
	data, err := fs.ReadFile(l.fs, rel)
	if err != nil {
		return nil, fmt.Errorf("markdown loader read %s: %w", rel, err)
	}

	meta, body, err := ParseCaseStudy(data)
	if err != nil {
		return nil, fmt.Errorf("markdown loader parse %s: %w", rel, err)
	}

	return &Document{
		Path:   rel,
		Locale: l.detectLocale(rel),
		Meta:   meta,
		Body:   body,
	}, nil
}

// LoadDirectory discovers case study files under dir, sorted by path so runs
// stay deterministic.
func (l *Loader) LoadDirectory(ctx context.Context, dir string) ([]*Document, error) {
	root := filepath.ToSlash(filepath.Clean(dir))
	if root == "" {
		root = "."
	}

	var docs []*Document

	walkErr := fs.WalkDir(l.fs, root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if d.IsDir() {
			if !l.recursive && filepath.Clean(path) != filepath.Clean(root) {
				return fs.SkipDir
			}
			return nil
		}

		rel := filepath.ToSlash(path)
		if !l.matchesPattern(rel) {
			return nil
		}

		doc, err := l.LoadFile(ctx, rel)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].Path < docs[j].Path })
	return docs, nil
}

func (l *Loader) matchesPattern(path string) bool {
	pattern := filepath.ToSlash(l.pattern)
	if strings.Contains(pattern, "**") {
		pattern = strings.ReplaceAll(pattern, "**/", "")
	}

	target := path
	if !strings.Contains(pattern, "/") {
		target = filepath.Base(path)
	}
	match, err := filepath.Match(pattern, target)
	if err != nil {
		return false
	}
	return match
}

// detectLocale maps a leading locale directory ("en/kitchen.md") onto the
// matching configured locale, falling back to the default.
func (l *Loader) detectLocale(path string) string {
	segments := strings.Split(filepath.ToSlash(path), "/")
	for _, segment := range segments[:max(len(segments)-1, 0)] {
		for _, locale := range l.locales {
			if strings.EqualFold(segment, locale) {
				return strings.ToLower(locale)
			}
		}
	}
	return l.defaultLocale
}
