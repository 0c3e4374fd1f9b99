package order

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

const insertOrderQuery = `
	INSERT INTO orders (first_name, last_name, email, phone, company_name,
		website_type, model_id, model_reference, project_goal,
		additional_details, created_at)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	RETURNING id
`

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(o Order) (Order, error) {
	var id int
	err := r.db.QueryRow(
		insertOrderQuery,
		o.FirstName,
		o.LastName,
		o.Email,
		o.Phone,
		o.CompanyName,
		o.WebsiteType,
		o.ModelID,
		o.ModelReference,
		o.ProjectGoal,
		o.AdditionalDetails,
		o.CreatedAt,
	).Scan(&id)
	if err != nil {
		return Order{}, err
	}
	o.ID = id
	return o, nil
}
