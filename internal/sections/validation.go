package sections

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// ValidationIssue captures a single content validation failure.
type ValidationIssue struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// ContentValidationError surfaces schema violations for a free-form edit. The
// prior valid content is always retained by callers; the edit is rejected.
type ContentValidationError struct {
	Type   Type
	Issues []ValidationIssue
	Cause  error
}

func (e *ContentValidationError) Error() string {
	if e == nil {
		return ErrContentShapeInvalid.Error()
	}
	if len(e.Issues) == 0 {
		if e.Cause != nil {
			return fmt.Sprintf("sections: content validation failed for %s: %v", e.Type, e.Cause)
		}
		return fmt.Sprintf("sections: content validation failed for %s", e.Type)
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		if issue.Location == "" {
			parts = append(parts, issue.Message)
			continue
		}
		parts = append(parts, issue.Location+": "+issue.Message)
	}
	return fmt.Sprintf("sections: content validation failed for %s: %s", e.Type, strings.Join(parts, "; "))
}

func (e *ContentValidationError) Unwrap() error {
	return ErrContentShapeInvalid
}

var (
	compiledSchemasMu sync.Mutex
	compiledSchemas   = map[Type]*jsonschema.Schema{}
)

func compiledSchema(kind Type) (*jsonschema.Schema, error) {
	compiledSchemasMu.Lock()
	defer compiledSchemasMu.Unlock()

	if schema, ok := compiledSchemas[kind]; ok {
		return schema, nil
	}

	raw, err := ContentSchema(kind)
	if err != nil {
		return nil, err
	}
	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("schema.json", bytes.NewReader(encoded)); err != nil {
		return nil, err
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, err
	}
	compiledSchemas[kind] = schema
	return schema, nil
}

// ValidateRawContent checks a hand-edited JSON payload against the content
// schema for kind and decodes it into the typed payload on success. Malformed
// JSON and schema violations are reported without touching any stored state.
func ValidateRawContent(kind Type, raw []byte) (Content, error) {
	if !IsKnownType(kind) {
		return nil, &UnknownTypeError{Type: kind}
	}

	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, &ContentValidationError{Type: kind, Cause: err}
	}

	schema, err := compiledSchema(kind)
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(payload); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return nil, &ContentValidationError{
				Type:   kind,
				Issues: collectIssues(validationErr),
				Cause:  err,
			}
		}
		return nil, &ContentValidationError{Type: kind, Cause: err}
	}

	return DecodeContent(kind, raw)
}

func collectIssues(err *jsonschema.ValidationError) []ValidationIssue {
	if err == nil {
		return nil
	}
	issues := []ValidationIssue{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, ValidationIssue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}
