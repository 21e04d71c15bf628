package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/buro710/studio-cms/internal/activity"
	studiohttp "github.com/buro710/studio-cms/internal/http"
	"github.com/buro710/studio-cms/internal/projects"
	"github.com/buro710/studio-cms/internal/sections"
	"github.com/buro710/studio-cms/internal/settings"
	"github.com/buro710/studio-cms/pkg/interfaces"
)

func tokenGuard(token string) interfaces.AdminGuard {
	return interfaces.AdminGuardFunc(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("X-Admin-Token") != token {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	})
}

type adminFixture struct {
	projects projects.Service
	settings *settings.Service
	recorder *activity.InMemoryRecorder
	mux      *http.ServeMux
}

func newAdminHTTPFixture(t *testing.T) *adminFixture {
	t.Helper()

	fixture := &adminFixture{
		projects: projects.NewService(projects.NewMemoryRepository()),
		settings: settings.NewService(settings.NewMemoryRepository()),
		recorder: activity.NewInMemoryRecorder(),
		mux:      http.NewServeMux(),
	}

	api := studiohttp.NewAdminAPI(fixture.projects, tokenGuard("secret"),
		studiohttp.WithAdminSettings(fixture.settings),
		studiohttp.WithActivityRecorder(fixture.recorder),
	)
	api.Register(fixture.mux)
	return fixture
}

func (f *adminFixture) do(t *testing.T, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewBuffer(encoded)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("X-Admin-Token", "secret")
	rec := httptest.NewRecorder()
	f.mux.ServeHTTP(rec, req)
	return rec
}

func TestAdminGuardRejectsMissingToken(t *testing.T) {
	fixture := newAdminHTTPFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/admin/api/portfolio", bytes.NewBufferString(`{"title":"X"}`))
	rec := httptest.NewRecorder()
	fixture.mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAdminCreateProject(t *testing.T) {
	fixture := newAdminHTTPFixture(t)

	rec := fixture.do(t, http.MethodPost, "/admin/api/portfolio", map[string]any{
		"title": "Podil Apartment",
		"tags":  []string{"residential"},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}

	var created projects.Project
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Slug != "podil-apartment" {
		t.Fatalf("unexpected slug %q", created.Slug)
	}

	events := fixture.recorder.Events()
	if len(events) != 1 || events[0].Action != "project.create" {
		t.Fatalf("unexpected events %v", events)
	}

	dup := fixture.do(t, http.MethodPost, "/admin/api/portfolio", map[string]any{
		"title": "Podil Apartment",
	})
	if dup.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", dup.Code, dup.Body.String())
	}
}

func TestAdminCreateProjectRequiresTitle(t *testing.T) {
	fixture := newAdminHTTPFixture(t)

	rec := fixture.do(t, http.MethodPost, "/admin/api/portfolio", map[string]any{"slug": "x"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAdminReplaceSections(t *testing.T) {
	fixture := newAdminHTTPFixture(t)
	project, err := fixture.projects.Create(context.Background(), projects.CreateProjectInput{
		Slug:  "podil-apartment",
		Title: "Podil Apartment",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	list := []sections.Section{
		{
			ID:    "section_hero",
			Type:  sections.TypeHero,
			Order: 0,
			Content: sections.HeroContent{
				ImageURL: "/images/hero.jpg",
				Title:    "Podil Apartment",
			},
		},
	}

	rec := fixture.do(t, http.MethodPut, "/admin/api/portfolio/"+project.ID.String()+"/sections",
		map[string]any{"sections": list})
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}

	stored, err := fixture.projects.EffectiveSections(context.Background(), project.ID)
	if err != nil {
		t.Fatalf("EffectiveSections: %v", err)
	}
	if len(stored) != 1 || stored[0].ID != "section_hero" {
		t.Fatalf("sections not replaced: %v", stored)
	}
}

func TestAdminReplaceSectionsRejectsUnknownType(t *testing.T) {
	fixture := newAdminHTTPFixture(t)
	project, err := fixture.projects.Create(context.Background(), projects.CreateProjectInput{
		Slug:  "podil-apartment",
		Title: "Podil Apartment",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	payload := []byte(`{"sections":[{"id":"s1","type":"hero","order":0,"content":{"image_url":123}}]}`)
	req := httptest.NewRequest(http.MethodPut, "/admin/api/portfolio/"+project.ID.String()+"/sections", bytes.NewBuffer(payload))
	req.Header.Set("X-Admin-Token", "secret")
	rec := httptest.NewRecorder()
	fixture.mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest && rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected client error, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAdminMergeTranslations(t *testing.T) {
	fixture := newAdminHTTPFixture(t)
	project, err := fixture.projects.Create(context.Background(), projects.CreateProjectInput{
		Slug:  "podil-apartment",
		Title: "Квартира на Подолі",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	rec := fixture.do(t, http.MethodPut, "/admin/api/portfolio/"+project.ID.String()+"/translations", map[string]any{
		"locale": "EN",
		"patches": map[string]any{
			"section_hero": map[string]any{"content": map[string]any{"title": "Podil Apartment"}},
		},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}

	resolved, err := fixture.projects.ResolvedSections(context.Background(), project.ID, "en")
	if err != nil {
		t.Fatalf("ResolvedSections: %v", err)
	}
	hero := resolved[0].Content.(sections.HeroContent)
	if hero.Title != "Podil Apartment" {
		t.Fatalf("translation not applied: %+v", hero)
	}
}

func TestAdminMigrateSections(t *testing.T) {
	fixture := newAdminHTTPFixture(t)
	if _, err := fixture.projects.Create(context.Background(), projects.CreateProjectInput{
		Slug:  "podil-apartment",
		Title: "Podil Apartment",
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	rec := fixture.do(t, http.MethodPost, "/admin/api/portfolio/migrate-sections?dry_run=true", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}

	var report struct {
		Migrated []string `json:"migrated"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(report.Migrated) != 1 || report.Migrated[0] != "podil-apartment" {
		t.Fatalf("unexpected report %+v", report)
	}
}

func TestAdminActivityEndpoint(t *testing.T) {
	fixture := newAdminHTTPFixture(t)

	create := fixture.do(t, http.MethodPost, "/admin/api/portfolio", map[string]any{"title": "Podil Apartment"})
	if create.Code != http.StatusCreated {
		t.Fatalf("unexpected status %d", create.Code)
	}

	rec := fixture.do(t, http.MethodGet, "/admin/api/activity", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}

	var events []activity.Event
	if err := json.Unmarshal(rec.Body.Bytes(), &events); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(events) != 1 || events[0].Action != "project.create" {
		t.Fatalf("unexpected events %v", events)
	}
	if events[0].OccurredAt.IsZero() {
		t.Fatal("expected occurred_at to be stamped")
	}
}

func TestAdminSettingsUpdate(t *testing.T) {
	fixture := newAdminHTTPFixture(t)

	rec := fixture.do(t, http.MethodPut, "/admin/api/settings/company_name", map[string]any{"value": "Bureau 710"})
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}

	list := fixture.do(t, http.MethodGet, "/admin/api/settings", nil)
	var values map[string]string
	if err := json.Unmarshal(list.Body.Bytes(), &values); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if values["company_name"] != "Bureau 710" {
		t.Fatalf("unexpected values %v", values)
	}

	empty := fixture.do(t, http.MethodPut, "/admin/api/settings/company_name", map[string]any{"value": " "})
	if empty.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", empty.Code)
	}
}
