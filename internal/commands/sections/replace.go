package sectionscmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/buro710/studio-cms/internal/commands"
	"github.com/buro710/studio-cms/internal/projects"
	"github.com/buro710/studio-cms/internal/sections"
	"github.com/buro710/studio-cms/pkg/interfaces"
)

const replaceSectionsMessageType = "studio.sections.replace"

// ReplaceSectionsCommand swaps a project's entire section list.
type ReplaceSectionsCommand struct {
	ProjectID uuid.UUID          `json:"project_id"`
	Sections  []sections.Section `json:"sections"`
}

// Type implements command.Message.
func (ReplaceSectionsCommand) Type() string { return replaceSectionsMessageType }

// Validate ensures the message carries the required fields before reaching
// handlers.
func (m ReplaceSectionsCommand) Validate() error {
	errs := validation.Errors{}
	if m.ProjectID == uuid.Nil {
		errs["project_id"] = validation.NewError("studio.sections.replace.project_id_required", "project_id is required")
	}
	if m.Sections == nil {
		errs["sections"] = validation.NewError("studio.sections.replace.sections_required", "sections list is required; send an empty list to clear")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ReplaceSectionsHandler persists section lists via the project service.
type ReplaceSectionsHandler struct {
	inner *commands.Handler[ReplaceSectionsCommand]
}

// NewReplaceSectionsHandler constructs a handler wired to the project service.
func NewReplaceSectionsHandler(service projects.Service, logger interfaces.Logger, opts ...commands.HandlerOption[ReplaceSectionsCommand]) *ReplaceSectionsHandler {
	exec := func(ctx context.Context, msg ReplaceSectionsCommand) error {
		_, err := service.ReplaceSections(ctx, msg.ProjectID, msg.Sections)
		return err
	}

	handlerOpts := []commands.HandlerOption[ReplaceSectionsCommand]{
		commands.WithLogger[ReplaceSectionsCommand](logger),
		commands.WithOperation[ReplaceSectionsCommand]("sections.replace"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ReplaceSectionsHandler{
		inner: commands.NewHandler[ReplaceSectionsCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ReplaceSectionsCommand].Execute.
func (h *ReplaceSectionsHandler) Execute(ctx context.Context, msg ReplaceSectionsCommand) error {
	return h.inner.Execute(ctx, msg)
}
