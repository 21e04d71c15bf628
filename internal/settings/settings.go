package settings

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/buro710/studio-cms/internal/identity"
)

var ErrKeyRequired = errors.New("settings: key is required")
var ErrValueRequired = errors.New("settings: value is required")

// NotFoundError reports a missing settings key.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return "settings: key " + e.Key + " not found"
}

// Repository persists site settings rows.
type Repository interface {
	List(ctx context.Context) ([]*Setting, error)
	Get(ctx context.Context, key string) (*Setting, error)
	Set(ctx context.Context, setting *Setting) (*Setting, error)
}

// Service exposes the admin settings operations.
type Service struct {
	repo Repository
	now  func() time.Time
}

// ServiceOption customises service construction.
type ServiceOption func(*Service)

// WithClock overrides the service clock.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService wires a settings service over the given repository.
func NewService(repo Repository, opts ...ServiceOption) *Service {
	svc := &Service{
		repo: repo,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// All returns every setting as a flat key to value map.
func (s *Service) All(ctx context.Context) (map[string]string, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	values := make(map[string]string, len(rows))
	for _, row := range rows {
		values[row.Key] = row.Value
	}
	return values, nil
}

// Get returns the value stored under key.
func (s *Service) Get(ctx context.Context, key string) (string, error) {
	key = normalizeKey(key)
	if key == "" {
		return "", ErrKeyRequired
	}
	row, err := s.repo.Get(ctx, key)
	if err != nil {
		return "", err
	}
	return row.Value, nil
}

// Set writes the value stored under key, creating the row when absent.
// Keys use a deterministic identifier so repeated seeds stay idempotent.
func (s *Service) Set(ctx context.Context, key, value string) (*Setting, error) {
	key = normalizeKey(key)
	if key == "" {
		return nil, ErrKeyRequired
	}
	if strings.TrimSpace(value) == "" {
		return nil, ErrValueRequired
	}

	now := s.now()
	return s.repo.Set(ctx, &Setting{
		ID:        identity.SettingUUID(key),
		Key:       key,
		Value:     value,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// Seed writes every default key that is not present yet.
func (s *Service) Seed(ctx context.Context) error {
	existing, err := s.All(ctx)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(Defaults()))
	for key := range Defaults() {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if _, ok := existing[key]; ok {
			continue
		}
		value := Defaults()[key]
		if value == "" {
			continue
		}
		if _, err := s.Set(ctx, key, value); err != nil {
			return err
		}
	}
	return nil
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
