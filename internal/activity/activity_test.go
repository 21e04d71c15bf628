package activity_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/buro710/studio-cms/internal/activity"
)

func TestInMemoryRecorderRoundTrip(t *testing.T) {
	recorder := activity.NewInMemoryRecorder()

	event := activity.Event{
		EntityType: "project",
		EntityID:   "podil",
		Action:     "sections.replace",
		OccurredAt: time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC),
		Metadata:   map[string]any{"section_count": 3},
	}
	if err := recorder.Record(context.Background(), event); err != nil {
		t.Fatalf("record: %v", err)
	}

	// Mutating the caller's metadata must not reach the stored copy.
	event.Metadata["section_count"] = 99

	events := recorder.Events()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Metadata["section_count"] != 3 {
		t.Fatalf("stored metadata must be isolated, got %+v", events[0].Metadata)
	}

	if err := recorder.Clear(context.Background()); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if len(recorder.Events()) != 0 {
		t.Fatal("expected no events after clear")
	}
}

func TestInMemoryRecorderFail(t *testing.T) {
	recorder := activity.NewInMemoryRecorder()
	recorder.Fail(errors.New("offline"))

	if err := recorder.Record(context.Background(), activity.Event{Action: "noop"}); err == nil {
		t.Fatal("expected configured failure")
	}
	if len(recorder.Events()) != 0 {
		t.Fatal("failed records must not be stored")
	}
}
