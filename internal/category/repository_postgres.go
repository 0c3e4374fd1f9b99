package category

import (
	"database/sql"
)

// PostgresRepository implements Repository using Postgres.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns category rows ordered by name, the order the filter bar
// displays them in.
func (r *PostgresRepository) List() ([]Category, error) {
	rows, err := r.db.Query(`SELECT id, name, icon, slug FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Category, 0)
	for rows.Next() {
		var (
			cat  Category
			slug sql.NullString
		)
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Icon, &slug); err != nil {
			continue
		}
		if slug.Valid {
			cat.Slug = &slug.String
		}
		out = append(out, cat)
	}
	return out, nil
}
