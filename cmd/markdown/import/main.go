package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/buro710/studio-cms/cmd/internal/bootstrap"
	"github.com/buro710/studio-cms/internal/markdown"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runImport(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("markdown import: %v", err)
	}
}

func runImport(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("markdown-import", flag.ExitOnError)
	contentDir := fs.String("content-dir", "content", "Path to the markdown content root")
	pattern := fs.String("pattern", "*.md", "Glob pattern applied when discovering markdown files")
	recursive := fs.Bool("recursive", true, "Traverse locale sub-directories under the content root")
	locales := fs.String("locales", "", "Comma separated list of locales (defaults to config locales)")
	defaultLocale := fs.String("default-locale", "", "Locale of the canonical case study documents")
	driver := fs.String("driver", "", "Storage driver (sqlite3 or postgres)")
	dsn := fs.String("dsn", "", "Storage DSN; when empty the importer runs against in-memory repositories")
	dryRun := fs.Bool("dry-run", false, "Report what would change without persisting anything")

	if err := fs.Parse(args); err != nil {
		return err
	}

	opts := bootstrap.Options{
		ContentDir:    *contentDir,
		Pattern:       *pattern,
		Recursive:     *recursive,
		DefaultLocale: *defaultLocale,
		Locales:       bootstrap.SplitLocales(*locales),
		StorageDriver: *driver,
		StorageDSN:    *dsn,
		DryRun:        *dryRun,
	}

	module, err := moduleBuilder(opts)
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	ctx := context.Background()
	siteLocales := module.Module.Container().Locales()
	loader := markdown.NewLoader(os.DirFS(*contentDir), opts.LoaderConfig(siteLocales.DefaultLocale, siteLocales.Locales))

	docs, err := loader.LoadDirectory(ctx, ".")
	if err != nil {
		return fmt.Errorf("load content directory: %w", err)
	}
	if len(docs) == 0 {
		fmt.Fprintln(out, "no markdown documents found")
		return nil
	}

	report, err := module.Importer.ImportDocuments(ctx, docs)
	if err != nil {
		return fmt.Errorf("import documents: %w", err)
	}

	if *dryRun {
		fmt.Fprintln(out, "dry run, nothing persisted")
	}
	fmt.Fprintf(out, "created: %d, updated: %d, translated: %d, skipped: %d\n",
		len(report.Created), len(report.Updated), len(report.Translated), len(report.Skipped))
	for _, slug := range report.Created {
		fmt.Fprintf(out, "  created %s\n", slug)
	}
	for _, slug := range report.Updated {
		fmt.Fprintf(out, "  updated %s\n", slug)
	}
	for _, key := range report.Translated {
		fmt.Fprintf(out, "  translated %s\n", key)
	}
	for _, slug := range report.Skipped {
		fmt.Fprintf(out, "  skipped %s\n", slug)
	}
	return nil
}
