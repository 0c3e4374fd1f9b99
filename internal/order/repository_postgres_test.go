package order

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPostgresCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	o := Order{
		FirstName:   "Jean",
		LastName:    "Dupont",
		Email:       "jean@example.co",
		Phone:       "+33612345678",
		WebsiteType: "Site Vitrine",
		ProjectGoal: "Présenter mon activité",
		CreatedAt:   "2026-01-01T00:00:00Z",
	}

	rows := sqlmock.NewRows([]string{"id"}).AddRow(42)
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(o.FirstName, o.LastName, o.Email, o.Phone, nil, o.WebsiteType, nil, nil, o.ProjectGoal, nil, o.CreatedAt).
		WillReturnRows(rows)

	created, err := repo.Create(o)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 42 {
		t.Fatalf("expected id 42, got %d", created.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresCreate_WriteFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("INSERT INTO orders").WillReturnError(errors.New("connection refused"))

	if _, err := repo.Create(Order{FirstName: "Jean"}); err == nil {
		t.Fatalf("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
