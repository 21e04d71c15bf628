package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/buro710/studio-cms/internal/activity"
	sectionscmd "github.com/buro710/studio-cms/internal/commands/sections"
	"github.com/buro710/studio-cms/internal/logging"
	"github.com/buro710/studio-cms/internal/projects"
	"github.com/buro710/studio-cms/internal/sections"
	"github.com/buro710/studio-cms/internal/settings"
	"github.com/buro710/studio-cms/pkg/interfaces"
)

// AdminAPI registers the admin endpoints. Every route passes through the
// host-supplied guard, the module never inspects credentials itself.
type AdminAPI struct {
	basePath string
	guard    interfaces.AdminGuard
	projects projects.Service
	settings *settings.Service
	recorder activity.Recorder
	logger   interfaces.Logger
}

// AdminOption mutates the AdminAPI configuration.
type AdminOption func(*AdminAPI)

// NewAdminAPI constructs an AdminAPI instance.
func NewAdminAPI(projectSvc projects.Service, guard interfaces.AdminGuard, opts ...AdminOption) *AdminAPI {
	api := &AdminAPI{
		basePath: "/admin/api",
		guard:    guard,
		projects: projectSvc,
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	return api
}

// WithBasePath overrides the base API path (defaults to "/admin/api").
func WithBasePath(path string) AdminOption {
	return func(api *AdminAPI) {
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			api.basePath = trimmed
		}
	}
}

// WithAdminSettings wires the settings endpoints.
func WithAdminSettings(service *settings.Service) AdminOption {
	return func(api *AdminAPI) { api.settings = service }
}

// WithActivityRecorder wires the activity log endpoint.
func WithActivityRecorder(recorder activity.Recorder) AdminOption {
	return func(api *AdminAPI) { api.recorder = recorder }
}

// WithAdminLogger wires a logger.
func WithAdminLogger(logger interfaces.Logger) AdminOption {
	return func(api *AdminAPI) {
		if logger != nil {
			api.logger = logger
		}
	}
}

// Register mounts the admin routes on the supplied mux.
func (api *AdminAPI) Register(mux *http.ServeMux) {
	if api == nil || mux == nil {
		return
	}

	root := joinPath(api.basePath, "portfolio")
	api.handle(mux, "POST "+root, api.handleProjectCreate)
	api.handle(mux, "PUT "+root+"/{id}", api.handleProjectUpdate)
	api.handle(mux, "DELETE "+root+"/{id}", api.handleProjectDelete)
	api.handle(mux, "PUT "+root+"/{id}/sections", api.handleSectionsReplace)
	api.handle(mux, "PUT "+root+"/{id}/translations", api.handleTranslationsMerge)
	api.handle(mux, "POST "+root+"/migrate-sections", api.handleSectionsMigrate)
	api.handle(mux, "GET "+joinPath(api.basePath, "activity"), api.handleActivityList)
	api.handle(mux, "GET "+joinPath(api.basePath, "settings"), api.handleSettingsList)
	api.handle(mux, "PUT "+joinPath(api.basePath, "settings")+"/{key}", api.handleSettingsUpdate)
}

func (api *AdminAPI) handle(mux *http.ServeMux, pattern string, fn http.HandlerFunc) {
	var handler http.Handler = fn
	if api.guard != nil {
		handler = api.guard.Protect(handler)
	}
	mux.Handle(pattern, handler)
}

type projectCreatePayload struct {
	Slug             string                `json:"slug,omitempty"`
	Title            string                `json:"title"`
	Subtitle         *string               `json:"subtitle,omitempty"`
	ShortDescription *string               `json:"short_description,omitempty"`
	Description      []string              `json:"description,omitempty"`
	ImageURL         *string               `json:"image_url,omitempty"`
	Tags             []string              `json:"tags,omitempty"`
	Category         *string               `json:"category,omitempty"`
	Architects       *string               `json:"architects,omitempty"`
	Area             *string               `json:"area,omitempty"`
	Location         *string               `json:"location,omitempty"`
	Year             *string               `json:"year,omitempty"`
	Images           []sections.Image      `json:"images,omitempty"`
	DesignZones      []sections.DesignZone `json:"design_zones,omitempty"`
	Sections         []sections.Section    `json:"sections,omitempty"`
	Featured         bool                  `json:"featured,omitempty"`
	Published        *bool                 `json:"published,omitempty"`
}

func (api *AdminAPI) handleProjectCreate(w http.ResponseWriter, r *http.Request) {
	var payload projectCreatePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid payload"})
		return
	}

	project, err := api.projects.Create(r.Context(), projects.CreateProjectInput{
		Slug:             payload.Slug,
		Title:            payload.Title,
		Subtitle:         payload.Subtitle,
		ShortDescription: payload.ShortDescription,
		Description:      payload.Description,
		ImageURL:         payload.ImageURL,
		Tags:             payload.Tags,
		Category:         payload.Category,
		Architects:       payload.Architects,
		Area:             payload.Area,
		Location:         payload.Location,
		Year:             payload.Year,
		Images:           payload.Images,
		DesignZones:      payload.DesignZones,
		Sections:         payload.Sections,
		Featured:         payload.Featured,
		Published:        payload.Published,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	api.record(r, "project", project.ID.String(), "project.create", map[string]any{"slug": project.Slug})
	writeJSON(w, http.StatusCreated, project)
}

type projectUpdatePayload struct {
	Title            *string               `json:"title,omitempty"`
	Subtitle         *string               `json:"subtitle,omitempty"`
	ShortDescription *string               `json:"short_description,omitempty"`
	Description      []string              `json:"description,omitempty"`
	ImageURL         *string               `json:"image_url,omitempty"`
	Tags             []string              `json:"tags,omitempty"`
	Category         *string               `json:"category,omitempty"`
	Architects       *string               `json:"architects,omitempty"`
	Area             *string               `json:"area,omitempty"`
	Location         *string               `json:"location,omitempty"`
	Year             *string               `json:"year,omitempty"`
	Images           []sections.Image      `json:"images,omitempty"`
	DesignZones      []sections.DesignZone `json:"design_zones,omitempty"`
	Featured         *bool                 `json:"featured,omitempty"`
	Published        *bool                 `json:"published,omitempty"`
}

func (api *AdminAPI) handleProjectUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}

	var payload projectUpdatePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid payload"})
		return
	}

	project, err := api.projects.Update(r.Context(), id, projects.UpdateProjectInput{
		Title:            payload.Title,
		Subtitle:         payload.Subtitle,
		ShortDescription: payload.ShortDescription,
		Description:      payload.Description,
		ImageURL:         payload.ImageURL,
		Tags:             payload.Tags,
		Category:         payload.Category,
		Architects:       payload.Architects,
		Area:             payload.Area,
		Location:         payload.Location,
		Year:             payload.Year,
		Images:           payload.Images,
		DesignZones:      payload.DesignZones,
		Featured:         payload.Featured,
		Published:        payload.Published,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	api.record(r, "project", project.ID.String(), "project.update", map[string]any{"slug": project.Slug})
	writeJSON(w, http.StatusOK, project)
}

func (api *AdminAPI) handleProjectDelete(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}

	if err := api.projects.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	api.record(r, "project", id.String(), "project.delete", nil)
	writeJSON(w, http.StatusNoContent, nil)
}

type sectionsReplacePayload struct {
	Sections []sections.Section `json:"sections"`
}

func (api *AdminAPI) handleSectionsReplace(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}

	var payload sectionsReplacePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid payload"})
		return
	}
	if payload.Sections == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "sections list required"})
		return
	}

	handler := sectionscmd.NewReplaceSectionsHandler(api.projects, api.logger)
	if err := handler.Execute(r.Context(), sectionscmd.ReplaceSectionsCommand{
		ProjectID: id,
		Sections:  payload.Sections,
	}); err != nil {
		writeError(w, err)
		return
	}

	project, err := api.projects.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	api.record(r, "project", id.String(), "sections.replace", map[string]any{
		"section_count": len(payload.Sections),
	})
	writeJSON(w, http.StatusOK, project)
}

type translationsMergePayload struct {
	Locale  string                               `json:"locale"`
	Patches map[string]projects.TranslationPatch `json:"patches"`
}

func (api *AdminAPI) handleTranslationsMerge(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}

	var payload translationsMergePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid payload"})
		return
	}

	project, err := api.projects.MergeTranslations(r.Context(), id, payload.Locale, payload.Patches)
	if err != nil {
		writeError(w, err)
		return
	}

	api.record(r, "project", id.String(), "translations.merge", map[string]any{
		"locale":      strings.ToLower(strings.TrimSpace(payload.Locale)),
		"patch_count": len(payload.Patches),
	})
	writeJSON(w, http.StatusOK, project)
}

func (api *AdminAPI) handleSectionsMigrate(w http.ResponseWriter, r *http.Request) {
	dryRun := parseBoolQuery(r.URL.Query().Get("dry_run"), false)

	handler := sectionscmd.NewMigrateLegacyHandler(api.projects, api.logger)
	if err := handler.Execute(r.Context(), sectionscmd.MigrateLegacyCommand{DryRun: dryRun}); err != nil {
		writeError(w, err)
		return
	}

	report := handler.Report()
	api.record(r, "project", "", "sections.migrate", map[string]any{
		"dry_run":  dryRun,
		"migrated": len(report.Migrated),
		"skipped":  len(report.Skipped),
	})
	writeJSON(w, http.StatusOK, report)
}

func (api *AdminAPI) handleActivityList(w http.ResponseWriter, r *http.Request) {
	if api.recorder == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	events, err := api.recorder.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (api *AdminAPI) handleSettingsList(w http.ResponseWriter, r *http.Request) {
	if api.settings == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	values, err := api.settings.All(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, values)
}

type settingUpdatePayload struct {
	Value string `json:"value"`
}

func (api *AdminAPI) handleSettingsUpdate(w http.ResponseWriter, r *http.Request) {
	if api.settings == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}

	var payload settingUpdatePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid payload"})
		return
	}

	setting, err := api.settings.Set(r.Context(), r.PathValue("key"), payload.Value)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, setting)
}

// record captures an admin action. Recorder failures are logged and never
// surface to the client.
func (api *AdminAPI) record(r *http.Request, entityType, entityID, action string, metadata map[string]any) {
	if api.recorder == nil {
		return
	}
	err := api.recorder.Record(r.Context(), activity.Event{
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		OccurredAt: time.Now(),
		Metadata:   metadata,
	})
	if err != nil {
		api.logger.Warn("activity record failed", "action", action, "error", err)
	}
}
