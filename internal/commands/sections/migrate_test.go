package sectionscmd_test

import (
	"context"
	"reflect"
	"testing"

	sectionscmd "github.com/buro710/studio-cms/internal/commands/sections"
	"github.com/buro710/studio-cms/internal/logging"
	"github.com/buro710/studio-cms/internal/projects"
	"github.com/buro710/studio-cms/internal/sections"
)

func seedProjects(t *testing.T) projects.Service {
	t.Helper()
	svc := projects.NewService(projects.NewMemoryRepository())

	if _, err := svc.Create(context.Background(), projects.CreateProjectInput{
		Title:       "Квартира на Подолі",
		Slug:        "podil",
		Description: []string{"Абзац."},
		Tags:        []string{"residential"},
	}); err != nil {
		t.Fatalf("seed podil: %v", err)
	}

	if _, err := svc.Create(context.Background(), projects.CreateProjectInput{
		Title: "Ресторан Вуглик",
		Slug:  "vuhlyk",
		Sections: []sections.Section{
			{ID: "section_hero", Type: sections.TypeHero, Order: 0, Content: sections.HeroContent{Title: "Вуглик"}},
		},
	}); err != nil {
		t.Fatalf("seed vuhlyk: %v", err)
	}

	return svc
}

func TestMigrateLegacyPersistsSynthesizedLists(t *testing.T) {
	svc := seedProjects(t)
	handler := sectionscmd.NewMigrateLegacyHandler(svc, logging.NoOp())

	if err := handler.Execute(context.Background(), sectionscmd.MigrateLegacyCommand{}); err != nil {
		t.Fatalf("execute: %v", err)
	}

	report := handler.Report()
	if !reflect.DeepEqual(report.Migrated, []string{"podil"}) {
		t.Fatalf("expected podil migrated, got %+v", report)
	}
	if !reflect.DeepEqual(report.Skipped, []string{"vuhlyk"}) {
		t.Fatalf("expected vuhlyk skipped, got %+v", report)
	}

	migrated, err := svc.GetBySlug(context.Background(), "podil")
	if err != nil {
		t.Fatalf("get podil: %v", err)
	}
	if !migrated.HasSections() || migrated.Sections[0].ID != "section_hero" {
		t.Fatalf("expected persisted synthesized list, got %+v", migrated.Sections)
	}
}

func TestMigrateLegacyIsIdempotent(t *testing.T) {
	svc := seedProjects(t)
	handler := sectionscmd.NewMigrateLegacyHandler(svc, logging.NoOp())

	if err := handler.Execute(context.Background(), sectionscmd.MigrateLegacyCommand{}); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := handler.Execute(context.Background(), sectionscmd.MigrateLegacyCommand{}); err != nil {
		t.Fatalf("second run: %v", err)
	}
	report := handler.Report()
	if len(report.Migrated) != 0 {
		t.Fatalf("second run must migrate nothing, got %+v", report.Migrated)
	}
	if len(report.Skipped) != 2 {
		t.Fatalf("expected both projects skipped, got %+v", report.Skipped)
	}
}

func TestMigrateLegacyDryRun(t *testing.T) {
	svc := seedProjects(t)
	handler := sectionscmd.NewMigrateLegacyHandler(svc, logging.NoOp())

	if err := handler.Execute(context.Background(), sectionscmd.MigrateLegacyCommand{DryRun: true}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got := handler.Report().Migrated; !reflect.DeepEqual(got, []string{"podil"}) {
		t.Fatalf("dry run must still report candidates, got %v", got)
	}

	stored, err := svc.GetBySlug(context.Background(), "podil")
	if err != nil {
		t.Fatalf("get podil: %v", err)
	}
	if stored.HasSections() {
		t.Fatal("dry run must not persist anything")
	}
}

func TestReplaceSectionsCommandValidation(t *testing.T) {
	svc := seedProjects(t)
	handler := sectionscmd.NewReplaceSectionsHandler(svc, logging.NoOp())

	if err := handler.Execute(context.Background(), sectionscmd.ReplaceSectionsCommand{}); err == nil {
		t.Fatal("expected validation failure for zero message")
	}

	stored, err := svc.GetBySlug(context.Background(), "podil")
	if err != nil {
		t.Fatalf("get podil: %v", err)
	}
	if err := handler.Execute(context.Background(), sectionscmd.ReplaceSectionsCommand{
		ProjectID: stored.ID,
		Sections: []sections.Section{
			{ID: "section_hero", Type: sections.TypeHero, Order: 0, Content: sections.HeroContent{Title: "Подол"}},
		},
	}); err != nil {
		t.Fatalf("execute: %v", err)
	}

	after, err := svc.GetBySlug(context.Background(), "podil")
	if err != nil {
		t.Fatalf("get podil: %v", err)
	}
	if !after.HasSections() || len(after.Sections) != 1 {
		t.Fatalf("expected replaced list, got %+v", after.Sections)
	}
}
