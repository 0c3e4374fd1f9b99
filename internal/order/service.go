package order

import "errors"

// ErrValidation marks a create that was blocked before any write; the
// field errors carry the detail.
var ErrValidation = errors.New("order has validation errors")

// Service provides business logic for orders.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// Create validates the order and inserts it. When validation fails the
// returned map holds the per-field messages and no I/O is performed.
func (s *Service) Create(o Order) (Order, map[string]string, error) {
	if errs := Validate(o); len(errs) > 0 {
		return Order{}, errs, ErrValidation
	}
	created, err := s.repo.Create(o)
	if err != nil {
		return Order{}, nil, err
	}
	return created, nil, nil
}
