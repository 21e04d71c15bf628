package adminsections

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/buro710/studio-cms/internal/activity"
	"github.com/buro710/studio-cms/internal/logging"
	"github.com/buro710/studio-cms/internal/projects"
	"github.com/buro710/studio-cms/pkg/interfaces"
)

// Service opens section editors and persists their results.
type Service interface {
	// Open loads the effective section list of a project into an editor. For
	// legacy projects this is the synthesized list, so the first admin save
	// materializes what the visitor already sees.
	Open(ctx context.Context, projectID uuid.UUID) (Editor, error)

	// Save renumbers the working list and replaces the stored list in one
	// write. On failure the store keeps its previous list and the caller
	// keeps the editor.
	Save(ctx context.Context, editor Editor) (*projects.Project, error)
}

// ServiceOption mutates service construction.
type ServiceOption func(*service)

// WithLogger wires the admin diagnostics logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRecorder wires the activity recorder used for save events.
func WithRecorder(recorder activity.Recorder) ServiceOption {
	return func(s *service) {
		if recorder != nil {
			s.recorder = recorder
		}
	}
}

// WithEditorIDGenerator sets the id generator handed to opened editors.
func WithEditorIDGenerator(generator IDGenerator) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.id = generator
		}
	}
}

// WithClock overrides the clock used for activity timestamps.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

type service struct {
	projects projects.Service
	recorder activity.Recorder
	logger   interfaces.Logger
	id       IDGenerator
	now      func() time.Time
}

// NewService constructs the admin editor service.
func NewService(projectSvc projects.Service, opts ...ServiceOption) Service {
	s := &service{
		projects: projectSvc,
		recorder: activity.NewInMemoryRecorder(),
		logger:   logging.NoOp(),
		id:       defaultIDGenerator,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Open(ctx context.Context, projectID uuid.UUID) (Editor, error) {
	list, err := s.projects.EffectiveSections(ctx, projectID)
	if err != nil {
		return Editor{}, err
	}
	return NewEditor(projectID, list, WithIDGenerator(s.id)), nil
}

func (s *service) Save(ctx context.Context, editor Editor) (*projects.Project, error) {
	list := editor.Renumbered()

	project, err := s.projects.ReplaceSections(ctx, editor.ProjectID(), list)
	if err != nil {
		s.logger.Error("admin: section save failed",
			"project_id", editor.ProjectID().String(),
			"error", err,
		)
		return nil, err
	}

	event := activity.Event{
		EntityType: "project",
		EntityID:   project.ID.String(),
		Action:     "sections.replace",
		OccurredAt: s.now(),
		Metadata: map[string]any{
			"section_count": len(list),
		},
	}
	if err := s.recorder.Record(ctx, event); err != nil {
		// The save already succeeded; a failed audit write is diagnostic only.
		s.logger.Warn("admin: activity record failed",
			"project_id", project.ID.String(),
			"error", err,
		)
	}

	s.logger.Info("admin: section list replaced",
		"project_id", project.ID.String(),
		"section_count", len(list),
	)
	return project, nil
}
