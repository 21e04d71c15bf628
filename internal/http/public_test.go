package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	studiohttp "github.com/buro710/studio-cms/internal/http"
	"github.com/buro710/studio-cms/internal/projects"
	"github.com/buro710/studio-cms/internal/settings"
)

func boolPtr(v bool) *bool { return &v }

func strPtr(v string) *string { return &v }

func newPublicFixture(t *testing.T) (projects.Service, *settings.Service, *http.ServeMux) {
	t.Helper()

	projectSvc := projects.NewService(projects.NewMemoryRepository())
	settingsSvc := settings.NewService(settings.NewMemoryRepository())

	api := studiohttp.NewPublicAPI(projectSvc,
		studiohttp.WithSettingsService(settingsSvc),
	)
	mux := http.NewServeMux()
	api.Register(mux)

	return projectSvc, settingsSvc, mux
}

func seedPublicProject(t *testing.T, svc projects.Service) *projects.Project {
	t.Helper()

	project, err := svc.Create(context.Background(), projects.CreateProjectInput{
		Slug:     "podil-apartment",
		Title:    "Квартира на Подолі",
		Subtitle: strPtr("Residential / Modern"),
		ImageURL: strPtr("/images/podil/hero.jpg"),
		Tags:     []string{"residential", "modern"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return project
}

func TestPublicListShowsPublishedOnly(t *testing.T) {
	projectSvc, _, mux := newPublicFixture(t)
	seedPublicProject(t, projectSvc)

	if _, err := projectSvc.Create(context.Background(), projects.CreateProjectInput{
		Slug:      "draft-house",
		Title:     "Draft House",
		Published: boolPtr(false),
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/portfolio", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}

	var summaries []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &summaries); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(summaries))
	}
	if summaries[0]["slug"] != "podil-apartment" {
		t.Fatalf("unexpected summary %v", summaries[0])
	}
	if summaries[0]["category"] != "Residential / Modern" {
		t.Fatalf("unexpected category %v", summaries[0]["category"])
	}
}

func TestPublicGetResolvesLocale(t *testing.T) {
	projectSvc, _, mux := newPublicFixture(t)
	project := seedPublicProject(t, projectSvc)

	if _, err := projectSvc.MergeTranslations(context.Background(), project.ID, "en", map[string]projects.TranslationPatch{
		"section_hero": {Content: map[string]any{"title": "Podil Apartment"}},
	}); err != nil {
		t.Fatalf("MergeTranslations: %v", err)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/portfolio/"+project.ID.String()+"?locale=en", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}

	var detail struct {
		Locale           string `json:"locale"`
		ResolvedSections []struct {
			Type    string         `json:"type"`
			Content map[string]any `json:"content"`
		} `json:"resolved_sections"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &detail); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if detail.Locale != "en" {
		t.Fatalf("unexpected locale %q", detail.Locale)
	}

	var heroTitle string
	for _, section := range detail.ResolvedSections {
		if section.Type == "hero" {
			heroTitle, _ = section.Content["title"].(string)
		}
	}
	if heroTitle != "Podil Apartment" {
		t.Fatalf("hero not translated: %q", heroTitle)
	}
}

func TestPublicUnsupportedLocaleFallsBack(t *testing.T) {
	projectSvc, _, mux := newPublicFixture(t)
	project := seedPublicProject(t, projectSvc)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/portfolio/"+project.ID.String()+"?locale=fr", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	var detail struct {
		Locale string `json:"locale"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &detail); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if detail.Locale != "uk" {
		t.Fatalf("expected fallback to uk, got %q", detail.Locale)
	}
}

func TestPublicSectionsUnknownProject(t *testing.T) {
	_, _, mux := newPublicFixture(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/portfolio/00000000-0000-0000-0000-000000000001/sections", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestPublicProjectPageRendersHTML(t *testing.T) {
	projectSvc, _, mux := newPublicFixture(t)
	seedPublicProject(t, projectSvc)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/projects/podil-apartment", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("unexpected content type %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "data-section-id=\"section_hero\"") {
		t.Fatalf("expected hero markup, got %s", rec.Body.String())
	}
}

func TestPublicSettingsEndpoint(t *testing.T) {
	_, settingsSvc, mux := newPublicFixture(t)

	if _, err := settingsSvc.Set(context.Background(), "company_name", "Bureau 710"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/settings", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	var values map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &values); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if values["company_name"] != "Bureau 710" {
		t.Fatalf("unexpected values %v", values)
	}
}
