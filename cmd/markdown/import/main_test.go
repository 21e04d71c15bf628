package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/buro710/studio-cms/cmd/internal/bootstrap"
)

func writeContentFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	base := "---\ntitle: Podil Apartment\nslug: podil-apartment\nsubtitle: Warm minimalism\n---\n\nFirst paragraph.\n\nSecond paragraph.\n"
	if err := os.WriteFile(filepath.Join(dir, "podil-apartment.md"), []byte(base), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if err := os.Mkdir(filepath.Join(dir, "en"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	translation := "---\ntitle: Podil Apartment EN\nslug: podil-apartment\n---\n\nEnglish paragraph.\n"
	if err := os.WriteFile(filepath.Join(dir, "en", "podil-apartment.md"), []byte(translation), 0o644); err != nil {
		t.Fatalf("write translation: %v", err)
	}
	return dir
}

func TestRunImportCreatesProjects(t *testing.T) {
	dir := writeContentFixture(t)

	var built *bootstrap.Module
	original := moduleBuilder
	moduleBuilder = func(opts bootstrap.Options) (*bootstrap.Module, error) {
		module, err := bootstrap.BuildModule(opts)
		built = module
		return module, err
	}
	defer func() { moduleBuilder = original }()

	var out bytes.Buffer
	if err := runImport([]string{"-content-dir", dir}, &out); err != nil {
		t.Fatalf("runImport: %v", err)
	}

	if !strings.Contains(out.String(), "created: 1") {
		t.Fatalf("unexpected report output: %s", out.String())
	}
	if !strings.Contains(out.String(), "translated podil-apartment:en") {
		t.Fatalf("expected translation line, got: %s", out.String())
	}

	project, err := built.Module.Projects().GetBySlug(context.Background(), "podil-apartment")
	if err != nil {
		t.Fatalf("get imported project: %v", err)
	}
	if project.Title != "Podil Apartment" {
		t.Fatalf("title = %q", project.Title)
	}
}

func TestRunImportDryRunPersistsNothing(t *testing.T) {
	dir := writeContentFixture(t)

	var built *bootstrap.Module
	original := moduleBuilder
	moduleBuilder = func(opts bootstrap.Options) (*bootstrap.Module, error) {
		module, err := bootstrap.BuildModule(opts)
		built = module
		return module, err
	}
	defer func() { moduleBuilder = original }()

	var out bytes.Buffer
	if err := runImport([]string{"-content-dir", dir, "-dry-run"}, &out); err != nil {
		t.Fatalf("runImport: %v", err)
	}
	if !strings.Contains(out.String(), "dry run") {
		t.Fatalf("expected dry run notice, got: %s", out.String())
	}

	listed, err := built.Module.Projects().List(context.Background())
	if err != nil {
		t.Fatalf("list projects: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("expected no persisted projects, got %d", len(listed))
	}
}

func TestRunImportEmptyDirectory(t *testing.T) {
	var out bytes.Buffer
	if err := runImport([]string{"-content-dir", t.TempDir()}, &out); err != nil {
		t.Fatalf("runImport: %v", err)
	}
	if !strings.Contains(out.String(), "no markdown documents found") {
		t.Fatalf("unexpected output: %s", out.String())
	}
}
