package navigation

import (
	"context"
	"fmt"
	"strings"
	"sync"

	urlkit "github.com/goliatone/go-urlkit"
)

// ResolverOptions configures the go-urlkit backed project URL resolver.
type ResolverOptions struct {
	Manager      *urlkit.RouteManager
	DefaultGroup string
	LocaleGroups map[string]string
	ProjectRoute string
	SlugParam    string
	LocaleParam  string
}

// Resolver builds public project URLs through a go-urlkit RouteManager.
// Locale-specific route groups take precedence over the default group so
// localized path shapes ("/en/projects/:slug") resolve without branching
// at call sites.
type Resolver struct {
	manager *urlkit.RouteManager

	defaultGroup string
	localeGroups map[string]string

	projectRoute string
	slugParam    string
	localeParam  string

	groupCache map[string]*urlkit.Group
	mu         sync.RWMutex
}

// NewResolver constructs a resolver backed by go-urlkit.
func NewResolver(opts ResolverOptions) *Resolver {
	if opts.SlugParam == "" {
		opts.SlugParam = "slug"
	}
	if opts.ProjectRoute == "" {
		opts.ProjectRoute = "project.detail"
	}

	return &Resolver{
		manager: opts.Manager,

		defaultGroup: strings.TrimSpace(opts.DefaultGroup),
		localeGroups: opts.LocaleGroups,

		projectRoute: strings.TrimSpace(opts.ProjectRoute),
		slugParam:    opts.SlugParam,
		localeParam:  strings.TrimSpace(opts.LocaleParam),

		groupCache: make(map[string]*urlkit.Group),
	}
}

// ProjectURL builds the public URL for a project slug in the given locale.
// Returns an empty string when the resolver has no route manager configured.
func (r *Resolver) ProjectURL(ctx context.Context, slug, locale string) (string, error) {
	_ = ctx // reserved for future use
	if r == nil || r.manager == nil {
		return "", nil
	}

	slug = strings.TrimSpace(slug)
	if slug == "" {
		return "", fmt.Errorf("navigation: project slug is required")
	}

	groupPath := r.defaultGroup
	localeKey := strings.ToLower(strings.TrimSpace(locale))
	if r.localeGroups != nil {
		if path, ok := r.localeGroups[localeKey]; ok && strings.TrimSpace(path) != "" {
			groupPath = strings.TrimSpace(path)
		}
	}
	if groupPath == "" {
		return "", nil
	}

	group, err := r.groupForPath(groupPath)
	if err != nil || group == nil {
		return "", err
	}

	builder, err := r.safeBuilder(group, r.projectRoute)
	if err != nil {
		return "", err
	}
	if builder == nil {
		return "", fmt.Errorf("navigation: route %q not found", r.projectRoute)
	}

	builder.WithParam(r.slugParam, slug)
	if r.localeParam != "" && localeKey != "" {
		builder.WithParam(r.localeParam, localeKey)
	}

	return builder.Build()
}

func (r *Resolver) groupForPath(path string) (*urlkit.Group, error) {
	r.mu.RLock()
	group, ok := r.groupCache[path]
	r.mu.RUnlock()
	if ok {
		return group, nil
	}

	parts := strings.Split(path, ".")
	if len(parts) == 0 {
		return nil, fmt.Errorf("navigation: invalid route group path %q", path)
	}

	root, err := lookupGroup(r.manager, parts[0])
	if err != nil {
		return nil, err
	}
	current := root
	for _, part := range parts[1:] {
		current, err = lookupChildGroup(current, part)
		if err != nil {
			return nil, err
		}
	}

	r.mu.Lock()
	r.groupCache[path] = current
	r.mu.Unlock()
	return current, nil
}

func (r *Resolver) safeBuilder(group *urlkit.Group, route string) (builder *urlkit.Builder, err error) {
	if group == nil {
		return nil, fmt.Errorf("navigation: urlkit group is nil")
	}
	defer func() {
		if rec := recover(); rec != nil {
			builder = nil
			err = fmt.Errorf("navigation: urlkit builder panic: %v", rec)
		}
	}()
	builder = group.Builder(route)
	return builder, err
}

func lookupGroup(manager *urlkit.RouteManager, name string) (group *urlkit.Group, err error) {
	if manager == nil {
		return nil, fmt.Errorf("navigation: route manager not configured")
	}
	defer func() {
		if rec := recover(); rec != nil {
			group = nil
			err = fmt.Errorf("navigation: route group %q not found", name)
		}
	}()
	group = manager.Group(name)
	return group, err
}

func lookupChildGroup(parent *urlkit.Group, name string) (group *urlkit.Group, err error) {
	if parent == nil {
		return nil, fmt.Errorf("navigation: parent group is nil")
	}
	defer func() {
		if rec := recover(); rec != nil {
			group = nil
			err = fmt.Errorf("navigation: child group %q not found", name)
		}
	}()
	group = parent.Group(name)
	return group, err
}
