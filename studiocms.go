package studiocms

import (
	"net/http"

	"github.com/uptrace/bun"

	"github.com/buro710/studio-cms/internal/activity"
	adminsections "github.com/buro710/studio-cms/internal/admin/sections"
	"github.com/buro710/studio-cms/internal/di"
	httpapi "github.com/buro710/studio-cms/internal/http"
	"github.com/buro710/studio-cms/internal/navigation"
	"github.com/buro710/studio-cms/internal/projects"
	"github.com/buro710/studio-cms/internal/sections"
	"github.com/buro710/studio-cms/internal/settings"
	"github.com/buro710/studio-cms/pkg/interfaces"
)

// ProjectService exports the portfolio project service contract.
type ProjectService = projects.Service

// SettingsService exports the site settings service.
type SettingsService = *settings.Service

// SectionEditorService exports the admin section editor contract.
type SectionEditorService = adminsections.Service

// ActivityRecorder exports the activity recorder contract.
type ActivityRecorder = activity.Recorder

// AdminGuard exports the admin authorization contract.
type AdminGuard = interfaces.AdminGuard

// AdminGuardFunc adapts a middleware function into an AdminGuard.
type AdminGuardFunc = interfaces.AdminGuardFunc

// Option re-exports the container option type for DI overrides.
type Option = di.Option

// Module is the top level studio CMS runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a studio CMS module from the provided configuration and
// optional DI overrides.
func New(cfg Config, opts ...Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Projects returns the configured project service.
func (m *Module) Projects() ProjectService {
	return m.container.Projects()
}

// Settings returns the site settings service.
func (m *Module) Settings() SettingsService {
	return m.container.Settings()
}

// SectionEditor returns the admin section editor service.
func (m *Module) SectionEditor() SectionEditorService {
	return m.container.AdminSections()
}

// Activity returns the activity recorder, or nil when the feature is disabled.
func (m *Module) Activity() ActivityRecorder {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Activity()
}

// Renderer returns the section HTML renderer.
func (m *Module) Renderer() *sections.Renderer {
	return m.container.Renderer()
}

// URLResolver returns the navigation URL resolver, or nil when no route
// configuration was provided.
func (m *Module) URLResolver() *navigation.Resolver {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.URLResolver()
}

// DB returns the configured database handle, or nil when storage is disabled.
func (m *Module) DB() *bun.DB {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.DB()
}

// MountPublic registers the public read API and rendered project pages on mux.
func (m *Module) MountPublic(mux *http.ServeMux, opts ...httpapi.PublicOption) {
	base := []httpapi.PublicOption{
		httpapi.WithSettingsService(m.container.Settings()),
		httpapi.WithRenderer(m.container.Renderer()),
		httpapi.WithURLResolver(m.container.URLResolver()),
		httpapi.WithLocales(m.container.Locales()),
		httpapi.WithPublicLogger(m.container.Logger("http")),
	}
	api := httpapi.NewPublicAPI(m.container.Projects(), append(base, opts...)...)
	api.Register(mux)
}

// MountAdmin registers the guarded admin API on mux. Every route passes
// through guard before reaching a handler.
func (m *Module) MountAdmin(mux *http.ServeMux, guard AdminGuard, opts ...httpapi.AdminOption) {
	base := []httpapi.AdminOption{
		httpapi.WithAdminSettings(m.container.Settings()),
		httpapi.WithActivityRecorder(m.container.Activity()),
		httpapi.WithAdminLogger(m.container.Logger("http")),
	}
	api := httpapi.NewAdminAPI(m.container.Projects(), guard, append(base, opts...)...)
	api.Register(mux)
}
