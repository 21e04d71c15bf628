package sections

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownSectionType  = errors.New("sections: unknown section type")
	ErrContentShapeInvalid = errors.New("sections: content does not match section type")
	ErrSectionIDRequired   = errors.New("sections: section id required")
	ErrDuplicateSectionID  = errors.New("sections: duplicate section id")
	ErrLocaleRequired      = errors.New("sections: locale required")
)

// UnknownTypeError reports an unregistered section type together with the
// offending value so diagnostics can name it.
type UnknownTypeError struct {
	Type Type
}

func (e *UnknownTypeError) Error() string {
	if e == nil {
		return ErrUnknownSectionType.Error()
	}
	return fmt.Sprintf("%s: %q", ErrUnknownSectionType.Error(), string(e.Type))
}

func (e *UnknownTypeError) Unwrap() error {
	return ErrUnknownSectionType
}

// ContentShapeError reports a payload that failed to decode for its declared type.
type ContentShapeError struct {
	Type  Type
	Cause error
}

func (e *ContentShapeError) Error() string {
	if e == nil {
		return ErrContentShapeInvalid.Error()
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: type=%s: %v", ErrContentShapeInvalid.Error(), e.Type, e.Cause)
	}
	return fmt.Sprintf("%s: type=%s", ErrContentShapeInvalid.Error(), e.Type)
}

func (e *ContentShapeError) Unwrap() error {
	return ErrContentShapeInvalid
}
