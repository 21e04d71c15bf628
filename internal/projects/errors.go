package projects

import (
	"errors"
	"fmt"
)

var (
	ErrTitleRequired = errors.New("projects: title required")
	ErrSlugRequired  = errors.New("projects: slug required")
	ErrSlugExists    = errors.New("projects: slug already exists")
	ErrIDRequired    = errors.New("projects: project id required")
)

// NotFoundError is returned when a project cannot be located.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}
