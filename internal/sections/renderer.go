package sections

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/buro710/studio-cms/internal/logging"
	"github.com/buro710/studio-cms/pkg/interfaces"
)

// RenderFunc produces the markup for one resolved section.
type RenderFunc func(w io.Writer, section Resolved) error

// Renderer maps section types to render behaviour. Sections whose type has no
// registered behaviour are skipped with a diagnostic; a single foreign or
// corrupted section never takes down the rest of the page.
type Renderer struct {
	handlers map[Type]RenderFunc
	logger   interfaces.Logger
}

// RendererOption mutates renderer construction.
type RendererOption func(*Renderer)

// WithRendererLogger wires the diagnostics logger.
func WithRendererLogger(logger interfaces.Logger) RendererOption {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRenderer constructs a renderer with the default fragment behaviour
// registered for every known section type.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		handlers: make(map[Type]RenderFunc, len(registry)),
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(r)
	}
	for _, entry := range registry {
		r.handlers[entry.kind] = defaultRenderFunc(entry.kind)
	}
	return r
}

// Register replaces the behaviour for a known type. Unknown types are refused:
// the dispatch table is closed on purpose.
func (r *Renderer) Register(kind Type, fn RenderFunc) error {
	if !IsKnownType(kind) {
		return &UnknownTypeError{Type: kind}
	}
	if fn == nil {
		return fmt.Errorf("sections: render func required for %s", kind)
	}
	r.handlers[kind] = fn
	return nil
}

// Render writes the markup for every resolved section in order. Sections that
// cannot be rendered are logged and skipped.
func (r *Renderer) Render(w io.Writer, resolved []Resolved) error {
	for _, section := range resolved {
		fn, ok := r.handlers[section.Type]
		if !ok {
			logging.WithSectionContext(r.logger, section.ID, string(section.Type)).
				Warn("sections: skipping unknown section type")
			continue
		}
		if err := fn(w, section); err != nil {
			logging.WithSectionContext(r.logger, section.ID, string(section.Type)).
				Error("sections: render failed, skipping section", "error", err)
			continue
		}
	}
	return nil
}

// RenderHTML renders the resolved sections into a single markup string.
func (r *Renderer) RenderHTML(resolved []Resolved) (string, error) {
	var buf strings.Builder
	if err := r.Render(&buf, resolved); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var fragmentTemplates = template.Must(template.New("sections").Parse(`
{{- define "hero" -}}
<section class="section section-hero" data-section-id="{{.ID}}" data-layout="{{.Content.Layout}}" data-animation="{{.Content.AnimationType}}">
<div class="hero-media"><img src="{{.Content.ImageURL}}" alt="{{.Content.Title}}"></div>
<div class="hero-copy"><p class="hero-subtitle">{{.Content.Subtitle}}</p><h1>{{.Content.Title}}</h1><p>{{.Content.ShortDescription}}</p>
{{- with .Content.CTAButton}}<a class="hero-cta" href="{{.URL}}">{{.Text}}</a>{{end -}}
</div>
</section>
{{- end -}}

{{- define "metadata" -}}
<section class="section section-metadata" data-section-id="{{.ID}}">
<dl>
<dt>Architects</dt><dd>{{.Content.Architects}}</dd>
<dt>Area</dt><dd>{{.Content.Area}}</dd>
<dt>Location</dt><dd>{{.Content.Location}}</dd>
<dt>Year</dt><dd>{{.Content.Year}}</dd>
<dt>Photo</dt><dd>{{.Content.PhotoCredits}}</dd>
</dl>
</section>
{{- end -}}

{{- define "about" -}}
<section class="section section-about" data-section-id="{{.ID}}">
<p class="about-subtitle">{{.Content.Subtitle}}</p><h2>{{.Content.Title}}</h2>
{{- range .Content.Description}}<p>{{.}}</p>{{end -}}
</section>
{{- end -}}

{{- define "full-width-image" -}}
<section class="section section-full-width-image" data-section-id="{{.ID}}">
<img src="{{.Content.ImageURL}}" alt="{{.Content.Alt}}">
{{- with .Content.Caption}}<figcaption>{{.}}</figcaption>{{end -}}
</section>
{{- end -}}

{{- define "concept" -}}
<section class="section section-concept" data-section-id="{{.ID}}">
<p class="concept-caption">{{.Content.Caption}}</p><h2>{{.Content.Heading}}</h2>
{{- range .Content.Description}}<p>{{.}}</p>{{end -}}
{{- with .Content.Quote}}<blockquote>{{.}}</blockquote>{{end -}}
<div class="concept-gallery">{{range .Content.Images}}<img src="{{.URL}}" alt="{{.Alt}}">{{end}}</div>
{{- if .Content.Features}}<ul class="concept-features">{{range .Content.Features}}<li>{{.}}</li>{{end}}</ul>{{end -}}
</section>
{{- end -}}

{{- define "design-zones" -}}
<section class="section section-design-zones" data-section-id="{{.ID}}">
{{- range .Content.Zones}}
<article class="zone zone-{{.Layout}}"><h3>{{.Title}}</h3><p>{{.Description}}</p>
{{- with .ImageURL}}<img src="{{.}}">{{end -}}
{{- if .Features}}<ul>{{range .Features}}<li>{{.}}</li>{{end}}</ul>{{end -}}
</article>
{{- end}}
</section>
{{- end -}}

{{- define "text-block" -}}
<section class="section section-text-block" data-section-id="{{.ID}}">
{{- with .Content.Title}}<h2>{{.}}</h2>{{end -}}
{{- range .Content.Content}}<p>{{.}}</p>{{end -}}
</section>
{{- end -}}

{{- define "image-block" -}}
<section class="section section-image-block" data-section-id="{{.ID}}">
<img src="{{.Content.ImageURL}}" alt="{{.Content.Alt}}" style="height: {{.Content.Height}}">
{{- with .Content.Caption}}<figcaption>{{.}}</figcaption>{{end -}}
</section>
{{- end -}}

{{- define "gallery" -}}
<section class="section section-gallery" data-section-id="{{.ID}}" data-layout="{{.Content.Layout}}">
{{- range .Content.Images}}<img src="{{.URL}}" alt="{{.Alt}}">{{end -}}
</section>
{{- end -}}

{{- define "cta" -}}
<section class="section section-cta" data-section-id="{{.ID}}">
<h2>{{.Content.Title}}</h2>
{{- with .Content.Description}}<p>{{.}}</p>{{end -}}
<a href="{{.Content.ButtonURL}}">{{.Content.ButtonText}}</a>
</section>
{{- end -}}

{{- define "tags" -}}
<section class="section section-tags" data-section-id="{{.ID}}">
{{- with .Content.Title}}<h2>{{.}}</h2>{{end -}}
<ul>{{range .Content.Tags}}<li>{{.}}</li>{{end}}</ul>
</section>
{{- end -}}
`))

func defaultRenderFunc(kind Type) RenderFunc {
	name := string(kind)
	return func(w io.Writer, section Resolved) error {
		return fragmentTemplates.ExecuteTemplate(w, name, section)
	}
}
