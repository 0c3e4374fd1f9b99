package catalog

// Model represents one purchasable website template and maps to the
// `website_models` table. JSON tags follow the snake_case convention used
// by the public site.
type Model struct {
	ID                   int      `json:"id"`
	Slug                 string   `json:"slug"`
	Title                string   `json:"title"`
	Description          string   `json:"description"`
	FullDescription      *string  `json:"full_description,omitempty"`
	MainImage            *string  `json:"main_image,omitempty"`
	GalleryImages        []string `json:"gallery_images,omitempty"`
	Features             []string `json:"features,omitempty"`
	CustomizableElements []string `json:"customizable_elements,omitempty"`
	CategoryID           int      `json:"category_id"`
	CategoryName         *string  `json:"category_name,omitempty"`
	IsNew                bool     `json:"is_new"`
	IsPopular            bool     `json:"is_popular"`
	IsFeatured           bool     `json:"is_featured"`
	OrderIndex           int      `json:"order_index"`
}

// Detail is the assembled view for one model page: the model itself, its
// ordered gallery and up to three other models from the same category.
type Detail struct {
	Model
	AllImages []string `json:"all_images"`
	Similar   []Model  `json:"similar,omitempty"`
}
