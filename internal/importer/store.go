package importer

import (
	"context"
	"database/sql"
	"encoding/json"
	"sync"

	"github.com/lib/pq"
)

// PostgresStore persists imported products and their categories in the
// commerce tables (`products`, `product_categories`).
type PostgresStore struct {
	db *sql.DB
}

const insertProductQuery = `
	INSERT INTO products (name, description, short_description, sku, price,
		manage_stock, stock_quantity, category_ids, main_image,
		gallery_images, meta_data)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
`

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Save(ctx context.Context, p Product) error {
	meta, err := json.Marshal(p.MetaData)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, insertProductQuery,
		p.Name,
		p.Description,
		p.ShortDescription,
		p.SKU,
		p.Price,
		p.ManageStock,
		p.StockQuantity,
		pq.Array(p.CategoryIDs),
		p.MainImage,
		pq.Array(p.GalleryImages),
		meta,
	)
	return err
}

// Resolve looks the category up by exact name and creates it when absent.
func (s *PostgresStore) Resolve(ctx context.Context, name string) (int, error) {
	var id int
	err := s.db.QueryRowContext(ctx, `SELECT id FROM product_categories WHERE name = $1`, name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, err
	}

	err = s.db.QueryRowContext(ctx,
		`INSERT INTO product_categories (name) VALUES ($1) ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name RETURNING id`,
		name,
	).Scan(&id)
	return id, err
}

// MemoryStore implements ProductStore and CategoryResolver in memory for
// tests and local runs without a commerce database.
type MemoryStore struct {
	mu         sync.Mutex
	products   []Product
	categories map[string]int
	nextCatID  int

	// SaveErr, when set, makes Save fail for products whose name it maps.
	SaveErr map[string]error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{categories: make(map[string]int), nextCatID: 1}
}

func (s *MemoryStore) Save(_ context.Context, p Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.SaveErr[p.Name]; err != nil {
		return err
	}
	s.products = append(s.products, p)
	return nil
}

func (s *MemoryStore) Resolve(_ context.Context, name string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.categories[name]; ok {
		return id, nil
	}
	id := s.nextCatID
	s.nextCatID++
	s.categories[name] = id
	return id, nil
}

// Products returns every saved product; test helper.
func (s *MemoryStore) Products() []Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// CategoryCount returns how many distinct categories exist; test helper.
func (s *MemoryStore) CategoryCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.categories)
}
