package adminsections

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/buro710/studio-cms/internal/sections"
)

// IDGenerator mints identifiers for newly added sections.
type IDGenerator func() string

func defaultIDGenerator() string {
	return "section_" + uuid.NewString()
}

// Editor is an immutable working copy of a project's section list. Every
// operation returns a new editor; the receiver is never changed, so a failed
// save simply keeps the last editor value alive.
type Editor struct {
	projectID uuid.UUID
	list      []sections.Section
	id        IDGenerator
}

// EditorOption mutates editor construction.
type EditorOption func(*Editor)

// WithIDGenerator overrides how new section identifiers are minted.
func WithIDGenerator(generator IDGenerator) EditorOption {
	return func(e *Editor) {
		if generator != nil {
			e.id = generator
		}
	}
}

// NewEditor opens a working copy over the given list.
func NewEditor(projectID uuid.UUID, list []sections.Section, opts ...EditorOption) Editor {
	editor := Editor{
		projectID: projectID,
		list:      cloneList(list),
		id:        defaultIDGenerator,
	}
	for _, opt := range opts {
		opt(&editor)
	}
	return editor
}

// ProjectID identifies the project this editor works on.
func (e Editor) ProjectID() uuid.UUID {
	return e.projectID
}

// Sections returns a copy of the working list.
func (e Editor) Sections() []sections.Section {
	return cloneList(e.list)
}

// Len reports the number of sections in the working list.
func (e Editor) Len() int {
	return len(e.list)
}

// Add appends a new section of the given type with its registry defaults and
// returns the new editor together with the minted section id.
func (e Editor) Add(kind sections.Type) (Editor, string, error) {
	content, err := sections.DefaultContent(kind)
	if err != nil {
		return e, "", err
	}
	title, err := sections.DefaultTitle(kind)
	if err != nil {
		return e, "", err
	}

	next := e.clone()
	id := e.id()
	next.list = append(next.list, sections.Section{
		ID:      id,
		Type:    kind,
		Order:   len(next.list),
		Enabled: sections.EnabledFlag(true),
		Title:   title,
		Content: content,
	})
	return next, id, nil
}

// Toggle flips the enabled flag of one section.
func (e Editor) Toggle(id string) (Editor, error) {
	index, err := e.indexOf(id)
	if err != nil {
		return e, err
	}
	next := e.clone()
	next.list[index].Enabled = sections.EnabledFlag(!next.list[index].IsEnabled())
	return next, nil
}

// Move places the section at a new position, shifting its neighbours, and
// renumbers every order to its new positional index so no two sections ever
// share an order after a move completes.
func (e Editor) Move(id string, position int) (Editor, error) {
	index, err := e.indexOf(id)
	if err != nil {
		return e, err
	}
	if position < 0 {
		position = 0
	}
	if position >= len(e.list) {
		position = len(e.list) - 1
	}

	next := e.clone()
	moved := next.list[index]
	next.list = append(next.list[:index], next.list[index+1:]...)
	next.list = append(next.list[:position], append([]sections.Section{moved}, next.list[position:]...)...)
	for i := range next.list {
		next.list[i].Order = i
	}
	return next, nil
}

// Remove deletes one section from the working list.
func (e Editor) Remove(id string) (Editor, error) {
	index, err := e.indexOf(id)
	if err != nil {
		return e, err
	}
	next := e.clone()
	next.list = append(next.list[:index], next.list[index+1:]...)
	return next, nil
}

// SetTitle overrides the display title of one section.
func (e Editor) SetTitle(id, title string) (Editor, error) {
	index, err := e.indexOf(id)
	if err != nil {
		return e, err
	}
	next := e.clone()
	next.list[index].Title = strings.TrimSpace(title)
	return next, nil
}

// EditContent replaces the payload of one section. The payload type must match
// the section type.
func (e Editor) EditContent(id string, content sections.Content) (Editor, error) {
	index, err := e.indexOf(id)
	if err != nil {
		return e, err
	}
	if content == nil {
		return e, fmt.Errorf("%w: section %s has no content", sections.ErrContentShapeInvalid, id)
	}
	if content.SectionType() != e.list[index].Type {
		return e, fmt.Errorf("%w: section %s content does not match type %s",
			sections.ErrContentShapeInvalid, id, e.list[index].Type)
	}

	next := e.clone()
	next.list[index].Content = content
	return next, nil
}

// EditRawContent validates a hand-edited JSON payload against the section's
// content schema and applies it on success. An invalid payload leaves the
// prior content in place.
func (e Editor) EditRawContent(id string, raw []byte) (Editor, error) {
	index, err := e.indexOf(id)
	if err != nil {
		return e, err
	}

	content, err := sections.ValidateRawContent(e.list[index].Type, raw)
	if err != nil {
		return e, err
	}

	next := e.clone()
	next.list[index].Content = content
	return next, nil
}

// SetTranslation stores the per-locale override of one section.
func (e Editor) SetTranslation(id, locale string, translation sections.Translation) (Editor, error) {
	index, err := e.indexOf(id)
	if err != nil {
		return e, err
	}
	normalized := strings.ToLower(strings.TrimSpace(locale))
	if normalized == "" {
		return e, sections.ErrLocaleRequired
	}

	next := e.clone()
	if next.list[index].Translations == nil {
		next.list[index].Translations = map[string]sections.Translation{}
	}
	next.list[index].Translations[normalized] = translation
	return next, nil
}

// Renumbered returns the working list with orders rewritten to the dense
// sequence 0..n-1 in current list position.
func (e Editor) Renumbered() []sections.Section {
	out := cloneList(e.list)
	for i := range out {
		out[i].Order = i
	}
	return out
}

func (e Editor) indexOf(id string) (int, error) {
	for i, section := range e.list {
		if section.ID == id {
			return i, nil
		}
	}
	return 0, &SectionNotFoundError{ProjectID: e.projectID, SectionID: id}
}

func (e Editor) clone() Editor {
	return Editor{
		projectID: e.projectID,
		list:      cloneList(e.list),
		id:        e.id,
	}
}

func cloneList(list []sections.Section) []sections.Section {
	out := make([]sections.Section, len(list))
	for i, section := range list {
		out[i] = section.Clone()
	}
	return out
}

// SectionNotFoundError is returned when an edit names a section that is not in
// the working list.
type SectionNotFoundError struct {
	ProjectID uuid.UUID
	SectionID string
}

func (e *SectionNotFoundError) Error() string {
	return fmt.Sprintf("admin: section %q not found in project %s", e.SectionID, e.ProjectID)
}
