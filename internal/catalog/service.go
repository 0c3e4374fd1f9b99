package catalog

const (
	similarLimit  = 3
	featuredLimit = 3
)

// ServiceInterface is the slice of the catalog service consumed by other
// handlers (order pre-fill, category counts).
type ServiceInterface interface {
	List() []Model
	GetBySlug(slug string) (Model, error)
	Detail(slug string) (Detail, error)
	Featured() []Model
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []Model {
	return s.repo.List()
}

func (s *Service) GetBySlug(slug string) (Model, error) {
	return s.repo.GetBySlug(slug)
}

// Detail loads the model for slug, then its similar siblings. The similar
// lookup runs only after the model resolves because it needs the category.
// An empty or failed similar lookup is not an error: the section simply
// does not render.
func (s *Service) Detail(slug string) (Detail, error) {
	m, err := s.repo.GetBySlug(slug)
	if err != nil {
		return Detail{}, err
	}

	similar, err := s.repo.ListSimilar(m.CategoryID, m.ID, similarLimit)
	if err != nil {
		similar = nil
	}

	return Detail{Model: m, AllImages: assembleImages(m), Similar: similar}, nil
}

func (s *Service) Featured() []Model {
	return s.repo.ListFeatured(featuredLimit)
}

// assembleImages builds the ordered gallery list with the main image first,
// dropping empty entries. The gallery selector always starts at index 0 on
// a fresh load.
func assembleImages(m Model) []string {
	images := make([]string, 0, 1+len(m.GalleryImages))
	if m.MainImage != nil && *m.MainImage != "" {
		images = append(images, *m.MainImage)
	}
	for _, img := range m.GalleryImages {
		if img != "" {
			images = append(images, img)
		}
	}
	return images
}
