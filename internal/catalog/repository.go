package catalog

import (
	"errors"
	"sort"
	"sync"
)

var (
	ErrNotFound = errors.New("model not found")
)

type Repository interface {
	// List returns every model ordered by order_index.
	List() []Model
	// GetBySlug looks up exactly one model by its unique slug.
	GetBySlug(slug string) (Model, error)
	// ListSimilar returns up to limit models sharing categoryID,
	// excluding the model identified by excludeID.
	ListSimilar(categoryID, excludeID, limit int) ([]Model, error)
	// ListFeatured returns up to limit featured models ordered by order_index.
	ListFeatured(limit int) []Model
}

// InMemoryRepository is a simple in-memory implementation useful for tests
// and seeding local data.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Model
}

func NewInMemoryRepository(seed []Model) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Model, 0, len(seed))}
	r.storage = append(r.storage, seed...)
	sort.SliceStable(r.storage, func(i, j int) bool {
		return r.storage[i].OrderIndex < r.storage[j].OrderIndex
	})
	return r
}

func (r *InMemoryRepository) List() []Model {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Model, len(r.storage))
	copy(out, r.storage)
	return out
}

func (r *InMemoryRepository) GetBySlug(slug string) (Model, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.storage {
		if m.Slug == slug {
			return m, nil
		}
	}
	return Model{}, ErrNotFound
}

func (r *InMemoryRepository) ListSimilar(categoryID, excludeID, limit int) ([]Model, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Model, 0, limit)
	for _, m := range r.storage {
		if len(out) == limit {
			break
		}
		if m.CategoryID == categoryID && m.ID != excludeID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) ListFeatured(limit int) []Model {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Model, 0, limit)
	for _, m := range r.storage {
		if len(out) == limit {
			break
		}
		if m.IsFeatured {
			out = append(out, m)
		}
	}
	return out
}
