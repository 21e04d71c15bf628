package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	studiocms "github.com/buro710/studio-cms"
	sectionscmd "github.com/buro710/studio-cms/internal/commands/sections"
)

var newModule = studiocms.New

func main() {
	if err := runMigrate(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("sections migrate: %v", err)
	}
}

func runMigrate(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("sections-migrate", flag.ExitOnError)
	driver := fs.String("driver", "sqlite3", "Storage driver (sqlite3 or postgres)")
	dsn := fs.String("dsn", "", "Storage DSN; when empty the migration runs against in-memory repositories")
	slugs := fs.String("slugs", "", "Comma separated project slugs to migrate; empty migrates every legacy project")
	dryRun := fs.Bool("dry-run", false, "Report what would be migrated without persisting anything")
	logLevel := fs.String("log-level", "info", "Log level (debug, info, warn, error, fatal)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := studiocms.DefaultConfig()
	cfg.Logging.Level = *logLevel
	if trimmed := strings.TrimSpace(*dsn); trimmed != "" {
		cfg.Storage.Enabled = true
		cfg.Storage.Driver = strings.TrimSpace(*driver)
		cfg.Storage.DSN = trimmed
	}

	module, err := newModule(cfg)
	if err != nil {
		return fmt.Errorf("initialise studio module: %w", err)
	}

	ctx := context.Background()
	if module.DB() != nil {
		if err := applyMigrations(ctx, module); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}

	handler := sectionscmd.NewMigrateLegacyHandler(module.Projects(), module.Container().Logger("sections"))
	msg := sectionscmd.MigrateLegacyCommand{
		DryRun: *dryRun,
		Slugs:  splitSlugs(*slugs),
	}
	if err := handler.Execute(ctx, msg); err != nil {
		return fmt.Errorf("migrate sections: %w", err)
	}

	report := handler.Report()
	if *dryRun {
		fmt.Fprintln(out, "dry run, nothing persisted")
	}
	fmt.Fprintf(out, "migrated: %d, skipped: %d\n", len(report.Migrated), len(report.Skipped))
	for _, slug := range report.Migrated {
		fmt.Fprintf(out, "  migrated %s\n", slug)
	}
	for _, slug := range report.Skipped {
		fmt.Fprintf(out, "  skipped %s (already sectioned)\n", slug)
	}
	return nil
}

func splitSlugs(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	slugs := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			slugs = append(slugs, trimmed)
		}
	}
	return slugs
}

func applyMigrations(ctx context.Context, module *studiocms.Module) error {
	migrations := studiocms.GetMigrationsFS()
	entries, err := migrations.ReadDir("data/sql/migrations")
	if err != nil {
		return err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	for _, name := range names {
		contents, err := migrations.ReadFile("data/sql/migrations/" + name)
		if err != nil {
			return err
		}
		if _, err := module.DB().ExecContext(ctx, string(contents)); err != nil {
			return fmt.Errorf("migration %s: %w", name, err)
		}
	}
	return nil
}
