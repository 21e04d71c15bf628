package http

import (
	"net/http"
	"strings"

	"github.com/buro710/studio-cms/internal/i18n"
	"github.com/buro710/studio-cms/internal/logging"
	"github.com/buro710/studio-cms/internal/navigation"
	"github.com/buro710/studio-cms/internal/projects"
	"github.com/buro710/studio-cms/internal/sections"
	"github.com/buro710/studio-cms/internal/settings"
	"github.com/buro710/studio-cms/pkg/interfaces"
)

// PublicAPI serves the read-only portfolio endpoints and the server-rendered
// project pages.
type PublicAPI struct {
	apiBase   string
	pagesBase string
	projects  projects.Service
	settings  *settings.Service
	renderer  *sections.Renderer
	resolver  *navigation.Resolver
	locales   i18n.Config
	logger    interfaces.Logger
}

// PublicOption mutates the PublicAPI configuration.
type PublicOption func(*PublicAPI)

// NewPublicAPI constructs the public adapter.
func NewPublicAPI(projectSvc projects.Service, opts ...PublicOption) *PublicAPI {
	api := &PublicAPI{
		apiBase:   "/api",
		pagesBase: "/projects",
		projects:  projectSvc,
		locales:   i18n.DefaultConfig(),
		logger:    logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	if api.renderer == nil {
		api.renderer = sections.NewRenderer(sections.WithRendererLogger(api.logger))
	}
	return api
}

// WithAPIBase overrides the JSON API base path (defaults to "/api").
func WithAPIBase(path string) PublicOption {
	return func(api *PublicAPI) {
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			api.apiBase = trimmed
		}
	}
}

// WithPagesBase overrides the HTML pages base path (defaults to "/projects").
func WithPagesBase(path string) PublicOption {
	return func(api *PublicAPI) {
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			api.pagesBase = trimmed
		}
	}
}

// WithSettingsService wires the public settings endpoint.
func WithSettingsService(service *settings.Service) PublicOption {
	return func(api *PublicAPI) { api.settings = service }
}

// WithRenderer overrides the section renderer used for HTML pages.
func WithRenderer(renderer *sections.Renderer) PublicOption {
	return func(api *PublicAPI) { api.renderer = renderer }
}

// WithURLResolver wires project URL generation into list responses.
func WithURLResolver(resolver *navigation.Resolver) PublicOption {
	return func(api *PublicAPI) { api.resolver = resolver }
}

// WithLocales overrides the locale configuration.
func WithLocales(cfg i18n.Config) PublicOption {
	return func(api *PublicAPI) { api.locales = cfg }
}

// WithPublicLogger wires a logger.
func WithPublicLogger(logger interfaces.Logger) PublicOption {
	return func(api *PublicAPI) {
		if logger != nil {
			api.logger = logger
		}
	}
}

// Register mounts the public routes on the supplied mux.
func (api *PublicAPI) Register(mux *http.ServeMux) {
	if api == nil || mux == nil {
		return
	}
	root := joinPath(api.apiBase, "portfolio")
	mux.HandleFunc("GET "+root, api.handleList)
	mux.HandleFunc("GET "+root+"/{id}", api.handleGet)
	mux.HandleFunc("GET "+root+"/{id}/sections", api.handleSections)
	mux.HandleFunc("GET "+joinPath(api.apiBase, "settings"), api.handleSettings)
	mux.HandleFunc("GET "+joinPath(api.pagesBase, "{slug}"), api.handleProjectPage)
}

type projectSummary struct {
	ID               string   `json:"id"`
	Slug             string   `json:"slug"`
	Title            string   `json:"title"`
	Subtitle         string   `json:"subtitle,omitempty"`
	ShortDescription string   `json:"short_description,omitempty"`
	ImageURL         string   `json:"image_url,omitempty"`
	Category         string   `json:"category"`
	Tags             []string `json:"tags,omitempty"`
	Featured         bool     `json:"featured"`
	URL              string   `json:"url,omitempty"`
}

type projectDetail struct {
	*projects.Project
	Locale           string              `json:"locale"`
	ResolvedSections []sections.Resolved `json:"resolved_sections"`
}

func (api *PublicAPI) handleList(w http.ResponseWriter, r *http.Request) {
	locale := api.resolveLocale(r)

	list, err := api.projects.ListPublished(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	summaries := make([]projectSummary, 0, len(list))
	for _, project := range list {
		summary := projectSummary{
			ID:       project.ID.String(),
			Slug:     project.Slug,
			Title:    project.Title,
			Category: project.CategoryLabel(),
			Tags:     project.Tags,
			Featured: project.Featured,
		}
		if project.Subtitle != nil {
			summary.Subtitle = *project.Subtitle
		}
		if project.ShortDescription != nil {
			summary.ShortDescription = *project.ShortDescription
		}
		if project.ImageURL != nil {
			summary.ImageURL = *project.ImageURL
		}
		if api.resolver != nil {
			if url, err := api.resolver.ProjectURL(r.Context(), project.Slug, locale); err == nil {
				summary.URL = url
			}
		}
		summaries = append(summaries, summary)
	}

	writeJSON(w, http.StatusOK, summaries)
}

func (api *PublicAPI) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	locale := api.resolveLocale(r)

	project, err := api.projects.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	resolved, err := api.projects.ResolvedSections(r.Context(), id, locale)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, projectDetail{
		Project:          project,
		Locale:           locale,
		ResolvedSections: resolved,
	})
}

func (api *PublicAPI) handleSections(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}
	locale := api.resolveLocale(r)

	resolved, err := api.projects.ResolvedSections(r.Context(), id, locale)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resolved)
}

func (api *PublicAPI) handleSettings(w http.ResponseWriter, r *http.Request) {
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

func (api *PublicAPI) handleProjectPage(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimSpace(r.PathValue("slug"))
	if slug == "" {
		http.NotFound(w, r)
		return
	}
	locale := api.resolveLocale(r)

	project, err := api.projects.GetBySlug(r.Context(), slug)
	if err != nil {
		writeError(w, err)
		return
	}
	resolved, err := api.projects.ResolvedSections(r.Context(), project.ID, locale)
	if err != nil {
		writeError(w, err)
		return
	}

	html, err := api.renderer.RenderHTML(resolved)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

// resolveLocale clamps the ?locale= query to the supported set so unknown
// locales fall back to the default instead of producing untranslated overlays.
func (api *PublicAPI) resolveLocale(r *http.Request) string {
	requested := r.URL.Query().Get("locale")
	if requested == "" {
		return api.locales.DefaultLocale
	}
	if !api.locales.IsSupported(requested) {
		return api.locales.DefaultLocale
	}
	return api.locales.Normalize(requested)
}
