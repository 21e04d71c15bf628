package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/buro710/studio-cms/internal/identity"
)

// Record is the persisted form of an activity event.
type Record struct {
	bun.BaseModel `bun:"table:activity_events,alias:ae"`

	ID         uuid.UUID      `bun:",pk,type:uuid" json:"id"`
	EntityType string         `bun:"entity_type,notnull" json:"entity_type"`
	EntityID   string         `bun:"entity_id,notnull" json:"entity_id"`
	Action     string         `bun:"action,notnull" json:"action"`
	Actor      string         `bun:"actor" json:"actor,omitempty"`
	OccurredAt time.Time      `bun:"occurred_at,notnull" json:"occurred_at"`
	Metadata   map[string]any `bun:"metadata,type:jsonb" json:"metadata,omitempty"`
}

// BunRecorder persists activity events to the database. Event identifiers are
// deterministic over (entity, action, time) so a replayed write is idempotent.
type BunRecorder struct {
	db *bun.DB
}

// NewBunRecorder constructs a database-backed recorder.
func NewBunRecorder(db *bun.DB) *BunRecorder {
	return &BunRecorder{db: db}
}

func (r *BunRecorder) Record(ctx context.Context, event Event) error {
	record := &Record{
		ID:         identity.AuditEventUUID(event.EntityID, event.Action, event.OccurredAt.UTC().Format(time.RFC3339Nano)),
		EntityType: event.EntityType,
		EntityID:   event.EntityID,
		Action:     event.Action,
		Actor:      event.Actor,
		OccurredAt: event.OccurredAt,
		Metadata:   event.Metadata,
	}
	if _, err := r.db.NewInsert().Model(record).On("CONFLICT (id) DO NOTHING").Exec(ctx); err != nil {
		return fmt.Errorf("activity: record event: %w", err)
	}
	return nil
}

func (r *BunRecorder) List(ctx context.Context) ([]Event, error) {
	var records []Record
	if err := r.db.NewSelect().Model(&records).Order("occurred_at ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("activity: list events: %w", err)
	}
	events := make([]Event, len(records))
	for i, record := range records {
		events[i] = Event{
			EntityType: record.EntityType,
			EntityID:   record.EntityID,
			Action:     record.Action,
			Actor:      record.Actor,
			OccurredAt: record.OccurredAt,
			Metadata:   record.Metadata,
		}
	}
	return events, nil
}

func (r *BunRecorder) Clear(ctx context.Context) error {
	if _, err := r.db.NewDelete().Model((*Record)(nil)).Where("1 = 1").Exec(ctx); err != nil {
		return fmt.Errorf("activity: clear events: %w", err)
	}
	return nil
}
