package rest

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/heartmarshall/draftstore-backend/internal/domain"
)

// memRepo is an in-memory draft repository with the same absence and
// uniqueness semantics as the PostgreSQL one.
type memRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]*domain.Draft
}

func newMemRepo() *memRepo {
	return &memRepo{rows: make(map[int64]*domain.Draft)}
}

func (m *memRepo) findKey(key domain.Key) *domain.Draft {
	for _, d := range m.rows {
		if d.UserID == key.UserID && d.Service == key.Service && d.Type == key.Type {
			return d
		}
	}
	return nil
}

func (m *memRepo) Upsert(_ context.Context, key domain.Key, document []byte, _ string) (domain.SaveResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	if d := m.findKey(key); d != nil {
		d.Document = slices.Clone(document)
		d.UpdatedAt = now
		return domain.SaveResult{ID: d.ID, Status: domain.SaveUpdated}, nil
	}

	m.nextID++
	m.rows[m.nextID] = &domain.Draft{
		ID:        m.nextID,
		UserID:    key.UserID,
		Service:   key.Service,
		Type:      key.Type,
		Document:  slices.Clone(document),
		CreatedAt: now,
		UpdatedAt: now,
	}
	return domain.SaveResult{ID: m.nextID, Status: domain.SaveCreated}, nil
}

func (m *memRepo) GetByKey(_ context.Context, key domain.Key) (*domain.Draft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	d := m.findKey(key)
	if d == nil {
		return nil, domain.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (m *memRepo) DeleteByKey(_ context.Context, key domain.Key) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	d := m.findKey(key)
	if d == nil {
		return domain.ErrNotFound
	}
	delete(m.rows, d.ID)
	return nil
}

func (m *memRepo) List(_ context.Context, owner domain.UserAndService, filter domain.ListFilter) ([]domain.Draft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []domain.Draft{}
	for _, d := range m.rows {
		if !d.OwnedBy(owner) || d.ID <= filter.After {
			continue
		}
		if filter.Type != nil && d.Type != *filter.Type {
			continue
		}
		out = append(out, *d)
	}
	slices.SortFunc(out, func(a, b domain.Draft) int { return int(a.ID - b.ID) })
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (m *memRepo) DeleteAll(_ context.Context, owner domain.UserAndService) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	for id, d := range m.rows {
		if d.OwnedBy(owner) {
			delete(m.rows, id)
			n++
		}
	}
	return n, nil
}

func (m *memRepo) GetByID(_ context.Context, id int64) (*domain.Draft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (m *memRepo) UpdateByID(_ context.Context, id int64, owner domain.UserAndService, docType string, document []byte, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.rows[id]
	if !ok || !d.OwnedBy(owner) {
		return domain.ErrNotFound
	}
	if other := m.findKey(owner.Key(docType)); other != nil && other.ID != id {
		return domain.ErrConflict
	}
	d.Type = docType
	d.Document = slices.Clone(document)
	d.UpdatedAt = time.Now()
	return nil
}

func (m *memRepo) DeleteByID(_ context.Context, id int64, owner domain.UserAndService) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.rows[id]
	if !ok || !d.OwnedBy(owner) {
		return domain.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *memRepo) DeleteStale(_ context.Context, before time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	for id, d := range m.rows {
		if d.UpdatedAt.Before(before) {
			delete(m.rows, id)
			n++
		}
	}
	return n, nil
}
