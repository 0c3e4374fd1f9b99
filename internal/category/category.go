package category

// Category groups catalogue models and carries the icon shown on the
// filter bar. Maps to the `categories` table.
type Category struct {
	ID   int     `json:"id"`
	Name string  `json:"name"`
	Icon string  `json:"icon"`
	Slug *string `json:"slug,omitempty"`
}

// CategoryWithCount is the public DTO returned by the category API. The
// count always covers the full, unfiltered model list.
type CategoryWithCount struct {
	Category
	ModelCount int `json:"model_count"`
}
