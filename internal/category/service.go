package category

// Service provides business logic for categories.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// List returns every category with its icon identifier normalised through
// the icon table.
func (s *Service) List() []Category {
	items, err := s.repo.List()
	if err != nil {
		return []Category{}
	}
	for i := range items {
		items[i].Icon = ResolveIcon(items[i].Icon)
	}
	return items
}
