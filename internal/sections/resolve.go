package sections

import (
	"sort"
	"strings"
)

// DefaultLocale is used whenever a caller does not specify one.
const DefaultLocale = "uk"

// Resolve filters, orders, and localizes a stored section list into the final
// render view. Disabled sections are dropped (a missing flag counts as
// enabled), ordering is ascending by Order with original list position as the
// stable tie-break, and the locale translation is overlaid shallowly on top of
// the base content: a field present in the translation replaces the base field
// wholesale, arrays included.
//
// Resolve never mutates its input and holds no state, so it is safe to call
// concurrently per request.
func Resolve(list []Section, locale string) []Resolved {
	locale = normalizeLocale(locale)

	kept := make([]Section, 0, len(list))
	for _, section := range list {
		if section.IsEnabled() {
			kept = append(kept, section)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Order < kept[j].Order
	})

	resolved := make([]Resolved, 0, len(kept))
	for _, section := range kept {
		resolved = append(resolved, resolveOne(section, locale))
	}
	return resolved
}

func resolveOne(section Section, locale string) Resolved {
	out := Resolved{
		ID:      section.ID,
		Type:    section.Type,
		Title:   section.Title,
		Content: section.Content,
	}

	translation, ok := section.Translations[locale]
	if !ok {
		return out
	}

	if translation.Title != "" {
		out.Title = translation.Title
	}
	if len(translation.Content) == 0 {
		return out
	}

	overlaid, err := overlayContent(section.Type, section.Content, translation.Content)
	if err != nil {
		// A translation that no longer decodes for its type must not take the
		// section down; the base content still renders.
		return out
	}
	out.Content = overlaid
	return out
}

func overlayContent(kind Type, base Content, override map[string]any) (Content, error) {
	fields, err := ContentMap(base)
	if err != nil {
		return nil, err
	}
	for key, value := range override {
		fields[key] = value
	}

	if raw, ok := base.(RawContent); ok {
		return RawContent{Type: raw.Type, Fields: fields}, nil
	}
	return ContentFromMap(kind, fields)
}

func normalizeLocale(locale string) string {
	trimmed := strings.ToLower(strings.TrimSpace(locale))
	if trimmed == "" {
		return DefaultLocale
	}
	return trimmed
}
