package sectionscmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/buro710/studio-cms/internal/commands"
	"github.com/buro710/studio-cms/internal/projects"
	"github.com/buro710/studio-cms/internal/sections"
	"github.com/buro710/studio-cms/pkg/interfaces"
)

const migrateLegacyMessageType = "studio.sections.migrate"

// MigrateLegacyCommand materializes the synthesized section list of every
// legacy project that still renders from its flat fields. Projects that
// already carry an explicit list are left alone, so the command is idempotent.
type MigrateLegacyCommand struct {
	// DryRun reports what would be migrated without writing anything.
	DryRun bool `json:"dry_run"`
	// Slugs restricts the migration to specific projects; empty means all.
	Slugs []string `json:"slugs,omitempty"`
}

// Type implements command.Message.
func (MigrateLegacyCommand) Type() string { return migrateLegacyMessageType }

// Validate implements command.Message. The zero value is a valid full run.
func (m MigrateLegacyCommand) Validate() error {
	errs := validation.Errors{}
	for _, slug := range m.Slugs {
		if slug == "" {
			errs["slugs"] = validation.NewError("studio.sections.migrate.slug_empty", "slugs entries must be non-empty")
			break
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MigrationReport summarizes one migration run.
type MigrationReport struct {
	Migrated []string `json:"migrated"`
	Skipped  []string `json:"skipped"`
}

// MigrateLegacyHandler walks projects and persists synthesized section lists.
type MigrateLegacyHandler struct {
	inner  *commands.Handler[MigrateLegacyCommand]
	report MigrationReport
}

// NewMigrateLegacyHandler constructs a handler wired to the project service.
func NewMigrateLegacyHandler(service projects.Service, logger interfaces.Logger, opts ...commands.HandlerOption[MigrateLegacyCommand]) *MigrateLegacyHandler {
	h := &MigrateLegacyHandler{}

	exec := func(ctx context.Context, msg MigrateLegacyCommand) error {
		report := MigrationReport{Migrated: []string{}, Skipped: []string{}}

		all, err := service.List(ctx)
		if err != nil {
			return err
		}

		wanted := map[string]bool{}
		for _, slug := range msg.Slugs {
			wanted[slug] = true
		}

		for _, project := range all {
			if len(wanted) > 0 && !wanted[project.Slug] {
				continue
			}
			if project.HasSections() {
				report.Skipped = append(report.Skipped, project.Slug)
				continue
			}

			list := sections.SynthesizeLegacy(project.LegacySource())
			if !msg.DryRun {
				if _, err := service.ReplaceSections(ctx, project.ID, list); err != nil {
					return err
				}
			}
			report.Migrated = append(report.Migrated, project.Slug)
		}

		h.report = report
		return nil
	}

	handlerOpts := []commands.HandlerOption[MigrateLegacyCommand]{
		commands.WithLogger[MigrateLegacyCommand](logger),
		commands.WithOperation[MigrateLegacyCommand]("sections.migrate"),
	}
	handlerOpts = append(handlerOpts, opts...)

	h.inner = commands.NewHandler[MigrateLegacyCommand](exec, handlerOpts...)
	return h
}

// Execute satisfies command.Commander[MigrateLegacyCommand].Execute.
func (h *MigrateLegacyHandler) Execute(ctx context.Context, msg MigrateLegacyCommand) error {
	return h.inner.Execute(ctx, msg)
}

// Report returns the summary of the most recent run.
func (h *MigrateLegacyHandler) Report() MigrationReport {
	return h.report
}
