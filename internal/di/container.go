package di

import (
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	urlkit "github.com/goliatone/go-urlkit"
	"github.com/uptrace/bun"

	"github.com/buro710/studio-cms/internal/activity"
	adminsections "github.com/buro710/studio-cms/internal/admin/sections"
	"github.com/buro710/studio-cms/internal/i18n"
	"github.com/buro710/studio-cms/internal/logging"
	"github.com/buro710/studio-cms/internal/logging/gologger"
	"github.com/buro710/studio-cms/internal/navigation"
	"github.com/buro710/studio-cms/internal/projects"
	"github.com/buro710/studio-cms/internal/runtimeconfig"
	"github.com/buro710/studio-cms/internal/sections"
	"github.com/buro710/studio-cms/internal/settings"
	"github.com/buro710/studio-cms/pkg/interfaces"
	"github.com/buro710/studio-cms/pkg/storage"
)

// Container wires the module's repositories and services from one config.
// Memory repositories back everything until a database is configured, so the
// module runs without external processes in tests and previews.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider

	bunDB         *bun.DB
	cacheTTL      time.Duration
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer

	projectRepo  projects.Repository
	settingsRepo settings.Repository
	recorder     activity.Recorder

	routeManager *urlkit.RouteManager
	urlResolver  *navigation.Resolver
	renderer     *sections.Renderer

	projectSvc       projects.Service
	settingsSvc      *settings.Service
	adminSectionsSvc adminsections.Service
}

// Option mutates the container before services are constructed.
type Option func(*Container)

// WithDB wires an existing bun database handle.
func WithDB(db *bun.DB) Option {
	return func(c *Container) { c.bunDB = db }
}

// WithLoggerProvider overrides the go-logger based default provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) { c.loggerProvider = provider }
}

// WithCache overrides the repository cache service and key serializer.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithProjectRepository overrides the project repository.
func WithProjectRepository(repo projects.Repository) Option {
	return func(c *Container) { c.projectRepo = repo }
}

// WithSettingsRepository overrides the settings repository.
func WithSettingsRepository(repo settings.Repository) Option {
	return func(c *Container) { c.settingsRepo = repo }
}

// WithActivityRecorder overrides the activity recorder.
func WithActivityRecorder(recorder activity.Recorder) Option {
	return func(c *Container) { c.recorder = recorder }
}

// WithURLResolver overrides the navigation resolver.
func WithURLResolver(resolver *navigation.Resolver) Option {
	return func(c *Container) { c.urlResolver = resolver }
}

// WithRenderer overrides the section renderer.
func WithRenderer(renderer *sections.Renderer) Option {
	return func(c *Container) { c.renderer = renderer }
}

// NewContainer validates the configuration and constructs the runtime graph.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	c.cacheTTL = cfg.Cache.DefaultTTL
	if c.cacheTTL <= 0 {
		c.cacheTTL = time.Minute
	}

	if err := c.configureLogging(); err != nil {
		return nil, err
	}
	if err := c.configureStorage(); err != nil {
		return nil, err
	}
	c.configureCacheDefaults()
	c.configureRepositories()
	c.configureActivity()
	c.configureNavigation()
	c.configureServices()

	return c, nil
}

func (c *Container) configureLogging() error {
	if c.loggerProvider != nil {
		return nil
	}
	if !c.Config.Features.Logger {
		return nil
	}

	provider, err := gologger.NewProvider(gologger.Config{
		Level:     c.Config.Logging.Level,
		Format:    c.Config.Logging.Format,
		AddSource: c.Config.Logging.AddSource,
		Focus:     c.Config.Logging.Focus,
	})
	if err != nil {
		return err
	}
	c.loggerProvider = provider
	return nil
}

func (c *Container) configureStorage() error {
	if c.bunDB != nil || !c.Config.Storage.Enabled {
		return nil
	}

	db, err := storage.Open(storage.Config{
		Driver: c.Config.Storage.Driver,
		DSN:    c.Config.Storage.DSN,
	})
	if err != nil {
		return err
	}
	c.bunDB = db
	return nil
}

func (c *Container) configureCacheDefaults() {
	if !c.Config.Cache.Enabled {
		return
	}

	if c.cacheService == nil {
		cfg := repocache.DefaultConfig()
		if c.cacheTTL > 0 {
			cfg.TTL = c.cacheTTL
		}
		service, err := repocache.NewCacheService(cfg)
		if err == nil {
			c.cacheService = service
		}
	}

	if c.cacheService != nil && c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
}

func (c *Container) configureRepositories() {
	if c.projectRepo == nil {
		if c.bunDB != nil {
			c.projectRepo = projects.NewBunRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
		} else {
			c.projectRepo = projects.NewMemoryRepository()
		}
	}
	if c.settingsRepo == nil {
		if c.bunDB != nil {
			c.settingsRepo = settings.NewBunRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
		} else {
			c.settingsRepo = settings.NewMemoryRepository()
		}
	}
}

func (c *Container) configureActivity() {
	if c.recorder != nil || !c.Config.Features.Activity {
		return
	}
	if c.bunDB != nil {
		c.recorder = activity.NewBunRecorder(c.bunDB)
		return
	}
	c.recorder = activity.NewInMemoryRecorder()
}

func (c *Container) configureNavigation() {
	if c.urlResolver != nil {
		return
	}

	navCfg := c.Config.Navigation
	if navCfg.RouteConfig == nil {
		return
	}

	c.routeManager = urlkit.NewRouteManager(navCfg.RouteConfig)
	c.urlResolver = navigation.NewResolver(navigation.ResolverOptions{
		Manager:      c.routeManager,
		DefaultGroup: navCfg.DefaultGroup,
		LocaleGroups: navCfg.LocaleGroups,
		ProjectRoute: navCfg.ProjectRoute,
		SlugParam:    navCfg.SlugParam,
		LocaleParam:  navCfg.LocaleParam,
	})
}

func (c *Container) configureServices() {
	if c.projectSvc == nil {
		c.projectSvc = projects.NewService(c.projectRepo)
	}
	if c.settingsSvc == nil {
		c.settingsSvc = settings.NewService(c.settingsRepo)
	}
	if c.renderer == nil {
		c.renderer = sections.NewRenderer(
			sections.WithRendererLogger(logging.SectionsLogger(c.loggerProvider)),
		)
	}
	if c.adminSectionsSvc == nil {
		adminOpts := []adminsections.ServiceOption{
			adminsections.WithLogger(logging.AdminLogger(c.loggerProvider)),
		}
		if c.recorder != nil {
			adminOpts = append(adminOpts, adminsections.WithRecorder(c.recorder))
		}
		c.adminSectionsSvc = adminsections.NewService(c.projectSvc, adminOpts...)
	}
}

// Projects returns the project service.
func (c *Container) Projects() projects.Service {
	return c.projectSvc
}

// Settings returns the settings service.
func (c *Container) Settings() *settings.Service {
	return c.settingsSvc
}

// AdminSections returns the section editor service.
func (c *Container) AdminSections() adminsections.Service {
	return c.adminSectionsSvc
}

// Activity returns the configured activity recorder, possibly nil when the
// feature is disabled.
func (c *Container) Activity() activity.Recorder {
	return c.recorder
}

// URLResolver returns the navigation resolver, nil without route config.
func (c *Container) URLResolver() *navigation.Resolver {
	return c.urlResolver
}

// RouteManager exposes the urlkit route manager for host applications.
func (c *Container) RouteManager() *urlkit.RouteManager {
	return c.routeManager
}

// Renderer returns the section renderer.
func (c *Container) Renderer() *sections.Renderer {
	return c.renderer
}

// Locales returns the locale configuration derived from the runtime config.
func (c *Container) Locales() i18n.Config {
	cfg := i18n.DefaultConfig()
	if locale := c.Config.DefaultLocale; locale != "" {
		cfg.DefaultLocale = locale
	}
	if len(c.Config.Locales) > 0 {
		cfg.Locales = append([]string(nil), c.Config.Locales...)
	}
	return cfg
}

// Logger returns a module-scoped logger.
func (c *Container) Logger(module string) interfaces.Logger {
	return logging.ModuleLogger(c.loggerProvider, module)
}

// DB exposes the bun handle, nil when storage is disabled.
func (c *Container) DB() *bun.DB {
	return c.bunDB
}
