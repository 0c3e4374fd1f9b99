package order

import "sync"

type Repository interface {
	// Create inserts the order and returns it with its assigned ID.
	Create(o Order) (Order, error)
}

// InMemoryRepository backs tests.
type InMemoryRepository struct {
	mu      sync.Mutex
	storage []Order
	nextID  int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) Create(o Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o.ID = r.nextID
	r.nextID++
	r.storage = append(r.storage, o)
	return o, nil
}

// All returns every stored order; test helper.
func (r *InMemoryRepository) All() []Order {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Order, len(r.storage))
	copy(out, r.storage)
	return out
}
