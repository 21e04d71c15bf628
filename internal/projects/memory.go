package projects

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/buro710/studio-cms/internal/sections"
)

// NewMemoryRepository constructs an "in memory" project repository.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		byID:   make(map[uuid.UUID]*Project),
		bySlug: make(map[string]uuid.UUID),
	}
}

type memoryRepository struct {
	mu     sync.RWMutex
	byID   map[uuid.UUID]*Project
	bySlug map[string]uuid.UUID
}

func (m *memoryRepository) Create(_ context.Context, project *Project) (*Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.bySlug[project.Slug]; exists {
		return nil, ErrSlugExists
	}

	cloned := cloneProject(project)
	m.byID[cloned.ID] = cloned
	if cloned.Slug != "" {
		m.bySlug[cloned.Slug] = cloned.ID
	}
	return cloneProject(cloned), nil
}

func (m *memoryRepository) GetByID(_ context.Context, id uuid.UUID) (*Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.byID[id]
	if !ok {
		return nil, &NotFoundError{Resource: "project", Key: id.String()}
	}
	return cloneProject(record), nil
}

func (m *memoryRepository) GetBySlug(_ context.Context, slug string) (*Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.bySlug[slug]
	if !ok {
		return nil, &NotFoundError{Resource: "project", Key: slug}
	}
	return cloneProject(m.byID[id]), nil
}

func (m *memoryRepository) List(_ context.Context) ([]*Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Project, 0, len(m.byID))
	for _, record := range m.byID {
		out = append(out, cloneProject(record))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].Slug < out[j].Slug
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (m *memoryRepository) Update(_ context.Context, project *Project) (*Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	previous, ok := m.byID[project.ID]
	if !ok {
		return nil, &NotFoundError{Resource: "project", Key: project.ID.String()}
	}

	if previous.Slug != project.Slug {
		if _, exists := m.bySlug[project.Slug]; exists {
			return nil, ErrSlugExists
		}
		delete(m.bySlug, previous.Slug)
	}

	cloned := cloneProject(project)
	m.byID[cloned.ID] = cloned
	if cloned.Slug != "" {
		m.bySlug[cloned.Slug] = cloned.ID
	}
	return cloneProject(cloned), nil
}

func (m *memoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.byID[id]
	if !ok {
		return &NotFoundError{Resource: "project", Key: id.String()}
	}
	delete(m.byID, id)
	delete(m.bySlug, record.Slug)
	return nil
}

func (m *memoryRepository) ReplaceSections(_ context.Context, id uuid.UUID, list []sections.Section) (*Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.byID[id]
	if !ok {
		return nil, &NotFoundError{Resource: "project", Key: id.String()}
	}

	cloned := cloneProject(record)
	cloned.Sections = cloneSections(list)
	if cloned.Sections == nil {
		cloned.Sections = []sections.Section{}
	}
	m.byID[id] = cloned
	return cloneProject(cloned), nil
}

func cloneProject(project *Project) *Project {
	if project == nil {
		return nil
	}
	cloned := *project
	cloned.Description = cloneStrings(project.Description)
	cloned.Tags = cloneStrings(project.Tags)
	cloned.Images = cloneImages(project.Images)
	cloned.DesignZones = cloneZones(project.DesignZones)
	cloned.Materials = cloneMaterials(project.Materials)
	cloned.Sections = cloneSections(project.Sections)
	return &cloned
}
