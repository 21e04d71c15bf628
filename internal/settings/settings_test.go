package settings_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/buro710/studio-cms/internal/identity"
	"github.com/buro710/studio-cms/internal/settings"
)

func newService() *settings.Service {
	clock := func() time.Time {
		return time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	}
	return settings.NewService(settings.NewMemoryRepository(), settings.WithClock(clock))
}

func TestServiceSetAndGet(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	row, err := svc.Set(ctx, "Company_Name", "Bureau 710")
	if err != nil {
		t.Fatalf("Set: %v", err)
	}
	if row.Key != "company_name" {
		t.Fatalf("expected normalized key, got %q", row.Key)
	}
	if row.ID != identity.SettingUUID("company_name") {
		t.Fatalf("expected deterministic id, got %s", row.ID)
	}

	value, err := svc.Get(ctx, "company_name")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if value != "Bureau 710" {
		t.Fatalf("unexpected value %q", value)
	}
}

func TestServiceSetValidation(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	if _, err := svc.Set(ctx, "  ", "x"); !errors.Is(err, settings.ErrKeyRequired) {
		t.Fatalf("expected ErrKeyRequired, got %v", err)
	}
	if _, err := svc.Set(ctx, "company_name", "  "); !errors.Is(err, settings.ErrValueRequired) {
		t.Fatalf("expected ErrValueRequired, got %v", err)
	}
}

func TestServiceGetMissingKey(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	_, err := svc.Get(ctx, "tagline")
	var notFound *settings.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if notFound.Key != "tagline" {
		t.Fatalf("unexpected key %q", notFound.Key)
	}
}

func TestServiceAll(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	if _, err := svc.Set(ctx, "company_name", "Bureau 710"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, err := svc.Set(ctx, "contact_email", "hello@buro710.example"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	all, err := svc.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 settings, got %d", len(all))
	}
	if all["contact_email"] != "hello@buro710.example" {
		t.Fatalf("unexpected map %v", all)
	}
}

func TestServiceSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	if _, err := svc.Set(ctx, "company_name", "Custom Studio"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if err := svc.Seed(ctx); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	value, err := svc.Get(ctx, "company_name")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if value != "Custom Studio" {
		t.Fatalf("seed must not overwrite, got %q", value)
	}

	email, err := svc.Get(ctx, "contact_email")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if email != settings.Defaults()["contact_email"] {
		t.Fatalf("unexpected seeded email %q", email)
	}

	if err := svc.Seed(ctx); err != nil {
		t.Fatalf("second Seed: %v", err)
	}
}

func TestServiceSetUpdatesExisting(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	if _, err := svc.Set(ctx, "phone", "+380 44 000 0000"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	updated, err := svc.Set(ctx, "phone", "+380 44 111 1111")
	if err != nil {
		t.Fatalf("Set: %v", err)
	}
	if updated.Value != "+380 44 111 1111" {
		t.Fatalf("unexpected value %q", updated.Value)
	}

	value, err := svc.Get(ctx, "phone")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if value != "+380 44 111 1111" {
		t.Fatalf("unexpected value %q", value)
	}
}
