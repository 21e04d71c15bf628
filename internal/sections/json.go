package sections

import (
	"encoding/json"
	"errors"
)

type sectionJSON struct {
	ID           string                 `json:"id"`
	Type         Type                   `json:"type"`
	Order        int                    `json:"order"`
	Enabled      *bool                  `json:"enabled,omitempty"`
	Title        string                 `json:"title,omitempty"`
	Content      json.RawMessage        `json:"content"`
	Translations map[string]Translation `json:"translations,omitempty"`
}

// UnmarshalJSON decodes the content payload according to the type discriminant.
// Sections with a type this build does not know keep their payload as
// RawContent so they survive a load/save round trip and can be skipped at
// render time instead of failing the whole list.
func (s *Section) UnmarshalJSON(data []byte) error {
	var aux sectionJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	content, err := DecodeContent(aux.Type, aux.Content)
	if err != nil {
		if errors.Is(err, ErrUnknownSectionType) {
			fields := map[string]any{}
			if len(aux.Content) > 0 {
				if err := json.Unmarshal(aux.Content, &fields); err != nil {
					fields = map[string]any{}
				}
			}
			content = RawContent{Type: aux.Type, Fields: fields}
		} else {
			return err
		}
	}

	s.ID = aux.ID
	s.Type = aux.Type
	s.Order = aux.Order
	s.Enabled = aux.Enabled
	s.Title = aux.Title
	s.Content = content
	s.Translations = aux.Translations
	return nil
}

// MarshalJSON emits the content payload inline under the "content" key.
func (s Section) MarshalJSON() ([]byte, error) {
	raw, err := marshalContent(s.Content)
	if err != nil {
		return nil, err
	}
	return json.Marshal(sectionJSON{
		ID:           s.ID,
		Type:         s.Type,
		Order:        s.Order,
		Enabled:      s.Enabled,
		Title:        s.Title,
		Content:      raw,
		Translations: s.Translations,
	})
}

func marshalContent(content Content) (json.RawMessage, error) {
	if content == nil {
		return json.RawMessage("{}"), nil
	}
	if raw, ok := content.(RawContent); ok {
		return json.Marshal(raw.Fields)
	}
	return json.Marshal(content)
}

// ContentMap renders a payload as a flat JSON field map, the representation
// used for translation overlays and partial admin edits.
func ContentMap(content Content) (map[string]any, error) {
	if raw, ok := content.(RawContent); ok {
		fields := make(map[string]any, len(raw.Fields))
		for key, value := range raw.Fields {
			fields[key] = value
		}
		return fields, nil
	}

	encoded, err := marshalContent(content)
	if err != nil {
		return nil, err
	}
	fields := map[string]any{}
	if err := json.Unmarshal(encoded, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// ContentFromMap decodes a field map back into the typed payload for kind.
func ContentFromMap(kind Type, fields map[string]any) (Content, error) {
	encoded, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	return DecodeContent(kind, encoded)
}
