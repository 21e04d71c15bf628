package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	adminsections "github.com/buro710/studio-cms/internal/admin/sections"
	"github.com/buro710/studio-cms/internal/projects"
	"github.com/buro710/studio-cms/internal/sections"
	"github.com/buro710/studio-cms/internal/settings"
)

type errorResponse struct {
	Error   string                     `json:"error"`
	Message string                     `json:"message,omitempty"`
	Issues  []sections.ValidationIssue `json:"issues,omitempty"`
}

func joinPath(base, suffix string) string {
	trimmedBase := strings.TrimSpace(base)
	trimmedSuffix := strings.TrimSpace(suffix)
	if trimmedBase == "" {
		if trimmedSuffix == "" {
			return "/"
		}
		return "/" + strings.Trim(trimmedSuffix, "/")
	}
	baseClean := "/" + strings.Trim(trimmedBase, "/")
	if trimmedSuffix == "" {
		return baseClean
	}
	return baseClean + "/" + strings.Trim(trimmedSuffix, "/")
}

func decodeJSON(r *http.Request, target any) error {
	if r == nil || r.Body == nil {
		return io.EOF
	}
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	return decoder.Decode(target)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	if w == nil {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	status, payload := mapError(err)
	writeJSON(w, status, payload)
}

func mapError(err error) (int, errorResponse) {
	if err == nil {
		return http.StatusInternalServerError, errorResponse{Error: "unknown_error"}
	}

	var projectNotFound *projects.NotFoundError
	if errors.As(err, &projectNotFound) {
		return http.StatusNotFound, errorResponse{
			Error:   "not_found",
			Message: projectNotFound.Error(),
		}
	}

	var settingNotFound *settings.NotFoundError
	if errors.As(err, &settingNotFound) {
		return http.StatusNotFound, errorResponse{
			Error:   "not_found",
			Message: settingNotFound.Error(),
		}
	}

	var sectionNotFound *adminsections.SectionNotFoundError
	if errors.As(err, &sectionNotFound) {
		return http.StatusNotFound, errorResponse{
			Error:   "not_found",
			Message: sectionNotFound.Error(),
		}
	}

	if errors.Is(err, projects.ErrSlugExists) {
		return http.StatusConflict, errorResponse{
			Error:   "conflict",
			Message: err.Error(),
		}
	}

	var contentInvalid *sections.ContentValidationError
	if errors.As(err, &contentInvalid) {
		return http.StatusUnprocessableEntity, errorResponse{
			Error:   "validation_failed",
			Message: contentInvalid.Error(),
			Issues:  contentInvalid.Issues,
		}
	}

	if errors.Is(err, sections.ErrContentShapeInvalid) ||
		errors.Is(err, sections.ErrUnknownSectionType) {
		return http.StatusUnprocessableEntity, errorResponse{
			Error:   "validation_failed",
			Message: err.Error(),
		}
	}

	if errors.Is(err, projects.ErrTitleRequired) ||
		errors.Is(err, projects.ErrSlugRequired) ||
		errors.Is(err, projects.ErrIDRequired) ||
		errors.Is(err, sections.ErrSectionIDRequired) ||
		errors.Is(err, sections.ErrDuplicateSectionID) ||
		errors.Is(err, sections.ErrLocaleRequired) ||
		errors.Is(err, settings.ErrKeyRequired) ||
		errors.Is(err, settings.ErrValueRequired) {
		return http.StatusBadRequest, errorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		}
	}

	return http.StatusInternalServerError, errorResponse{
		Error:   "internal_error",
		Message: err.Error(),
	}
}

func parseUUID(value string) (uuid.UUID, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return uuid.Nil, errors.New("uuid required")
	}
	return uuid.Parse(trimmed)
}

func parseBoolQuery(value string, defaultValue bool) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(trimmed)
	if err != nil {
		return defaultValue
	}
	return parsed
}
