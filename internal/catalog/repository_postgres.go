package catalog

import (
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	modelColumns = `m.id, m.slug, m.title, m.description, m.full_description,
		m.main_image, m.gallery_images, m.features, m.customizable_elements,
		m.category_id, c.name, m.is_new, m.is_popular, m.is_featured, m.order_index`

	listModelsQuery = `
		SELECT ` + modelColumns + `
		FROM website_models m
		LEFT JOIN categories c ON c.id = m.category_id
		ORDER BY m.order_index, m.id
	`
	getModelBySlugQuery = `
		SELECT ` + modelColumns + `
		FROM website_models m
		LEFT JOIN categories c ON c.id = m.category_id
		WHERE m.slug = $1
	`
	listSimilarQuery = `
		SELECT ` + modelColumns + `
		FROM website_models m
		LEFT JOIN categories c ON c.id = m.category_id
		WHERE m.category_id = $1 AND m.id <> $2
		LIMIT $3
	`
	listFeaturedQuery = `
		SELECT ` + modelColumns + `
		FROM website_models m
		LEFT JOIN categories c ON c.id = m.category_id
		WHERE m.is_featured
		ORDER BY m.order_index, m.id
		LIMIT $1
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []Model {
	rows, err := r.db.Query(listModelsQuery)
	if err != nil {
		return []Model{}
	}
	defer rows.Close()

	out := make([]Model, 0)
	for rows.Next() {
		m, err := scanModel(rows)
		if err != nil {
			continue
		}
		out = append(out, m)
	}
	return out
}

func (r *PostgresRepository) GetBySlug(slug string) (Model, error) {
	row := r.db.QueryRow(getModelBySlugQuery, slug)
	m, err := scanModel(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Model{}, ErrNotFound
		}
		return Model{}, err
	}
	return m, nil
}

func (r *PostgresRepository) ListSimilar(categoryID, excludeID, limit int) ([]Model, error) {
	rows, err := r.db.Query(listSimilarQuery, categoryID, excludeID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Model, 0, limit)
	for rows.Next() {
		m, err := scanModel(rows)
		if err != nil {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *PostgresRepository) ListFeatured(limit int) []Model {
	rows, err := r.db.Query(listFeaturedQuery, limit)
	if err != nil {
		return []Model{}
	}
	defer rows.Close()

	out := make([]Model, 0, limit)
	for rows.Next() {
		m, err := scanModel(rows)
		if err != nil {
			continue
		}
		out = append(out, m)
	}
	return out
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanModel(scanner rowScanner) (Model, error) {
	m := Model{}
	var (
		fullDesc sql.NullString
		mainImg  sql.NullString
		catID    sql.NullInt64
		catName  sql.NullString
		gallery  pq.StringArray
		features pq.StringArray
		custom   pq.StringArray
	)

	if err := scanner.Scan(
		&m.ID,
		&m.Slug,
		&m.Title,
		&m.Description,
		&fullDesc,
		&mainImg,
		&gallery,
		&features,
		&custom,
		&catID,
		&catName,
		&m.IsNew,
		&m.IsPopular,
		&m.IsFeatured,
		&m.OrderIndex,
	); err != nil {
		return Model{}, err
	}

	if fullDesc.Valid {
		m.FullDescription = &fullDesc.String
	}
	if mainImg.Valid && mainImg.String != "" {
		m.MainImage = &mainImg.String
	}
	if catID.Valid {
		m.CategoryID = int(catID.Int64)
	}
	if catName.Valid {
		m.CategoryName = &catName.String
	}
	m.GalleryImages = gallery
	m.Features = features
	m.CustomizableElements = custom

	return m, nil
}
