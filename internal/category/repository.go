package category

import (
	"errors"
	"sort"
	"sync"
)

var ErrNotFound = errors.New("category not found")

type Repository interface {
	// List returns every category ordered by name.
	List() ([]Category, error)
}

// InMemoryRepository backs tests and local seeding.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Category
}

func NewInMemoryRepository(seed []Category) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Category, 0, len(seed))}
	r.storage = append(r.storage, seed...)
	sort.SliceStable(r.storage, func(i, j int) bool {
		return r.storage[i].Name < r.storage[j].Name
	})
	return r
}

func (r *InMemoryRepository) List() ([]Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Category, len(r.storage))
	copy(out, r.storage)
	return out, nil
}
