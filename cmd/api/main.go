package main

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/Medardo-Design/sitestoliworteck/internal/admin"
	"github.com/Medardo-Design/sitestoliworteck/internal/catalog"
	"github.com/Medardo-Design/sitestoliworteck/internal/category"
	"github.com/Medardo-Design/sitestoliworteck/internal/config"
	"github.com/Medardo-Design/sitestoliworteck/internal/contact"
	"github.com/Medardo-Design/sitestoliworteck/internal/importer"
	"github.com/Medardo-Design/sitestoliworteck/internal/order"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLog)

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()
	mustBootstrapSchema(db)

	catalogService := catalog.NewService(catalog.NewPostgresRepository(db))
	catalogHandler := catalog.NewHandler(catalogService)

	categoryHandler := category.NewHandler(
		category.NewService(category.NewPostgresRepository(db)),
		catalogService,
	)

	orderHandler := order.NewHandler(
		order.NewService(order.NewPostgresRepository(db)),
		catalogService,
	)

	contactHandler := contact.NewHandler(contact.NewService(contact.SimulatedSender{}))

	adminService := admin.NewService(admin.Credentials{
		Email:        cfg.AdminEmail,
		PasswordHash: cfg.AdminPasswordHash,
	}, []byte(cfg.JWTSecret))
	adminHandler := admin.NewHandler(adminService)

	store := importer.NewPostgresStore(db)
	media := &importer.LocalMediaLibrary{Dir: cfg.UploadsDir, BaseURL: cfg.UploadsBaseURL}
	importHandler := importer.NewHandler(
		importer.New(store, store, media),
		admin.NewTokenStore(15*time.Minute),
	)

	// register /api/v1/categories and featured before the catch-all
	// /api/v1/models/:slug to avoid route param collision
	categoryHandler.RegisterPublicRoutes(app)
	catalogHandler.RegisterPublicRoutes(app)
	orderHandler.RegisterPublicRoutes(app)
	contactHandler.RegisterPublicRoutes(app)
	adminHandler.RegisterPublicRoutes(app)

	// re-hosted model and product images
	app.Static(cfg.UploadsBaseURL, cfg.UploadsDir)
	// fixed archive handed to shop owners running the export side
	app.Static("/downloads/toliwork-importer.zip", "./downloads/toliwork-importer.zip")

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
		Filter: func(c *fiber.Ctx) bool {
			p := c.Path()
			// only the /admin surface is authenticated, and logging in
			// obviously happens without a token
			if !strings.HasPrefix(p, "/admin") {
				return true
			}
			return p == "/admin/login"
		},
	}))

	importHandler.RegisterProtectedRoutes(app)

	app.Listen(cfg.Addr)
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func requestLog(c *fiber.Ctx) error {
	start := time.Now()
	fmt.Printf("URL = %s, Method = %s, Start Time = %v\n", c.OriginalURL(), c.Method(), start)
	return c.Next()
}

func mustOpenDB(url string) *sql.DB {
	if url == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", url)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	return db
}

func mustBootstrapSchema(db *sql.DB) {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS categories (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		icon TEXT NOT NULL DEFAULT '',
		slug TEXT
	)`); err != nil {
		panic(err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS website_models (
		id SERIAL PRIMARY KEY,
		slug TEXT NOT NULL UNIQUE,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		full_description TEXT,
		main_image TEXT,
		gallery_images TEXT[] NOT NULL DEFAULT '{}',
		features TEXT[] NOT NULL DEFAULT '{}',
		customizable_elements TEXT[] NOT NULL DEFAULT '{}',
		category_id INT NOT NULL DEFAULT 0,
		is_new BOOLEAN NOT NULL DEFAULT FALSE,
		is_popular BOOLEAN NOT NULL DEFAULT FALSE,
		is_featured BOOLEAN NOT NULL DEFAULT FALSE,
		order_index INT NOT NULL DEFAULT 0
	)`); err != nil {
		panic(err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS orders (
		id SERIAL PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL,
		company_name TEXT,
		website_type TEXT NOT NULL,
		model_id INT,
		model_reference TEXT,
		project_goal TEXT NOT NULL,
		additional_details TEXT,
		created_at TEXT NOT NULL
	)`); err != nil {
		panic(err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS product_categories (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`); err != nil {
		panic(err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS products (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		short_description TEXT NOT NULL DEFAULT '',
		sku TEXT NOT NULL DEFAULT '',
		price NUMERIC NOT NULL DEFAULT 0,
		manage_stock BOOLEAN NOT NULL DEFAULT FALSE,
		stock_quantity INT,
		category_ids INT[] NOT NULL DEFAULT '{}',
		main_image TEXT NOT NULL DEFAULT '',
		gallery_images TEXT[] NOT NULL DEFAULT '{}',
		meta_data JSONB NOT NULL DEFAULT '{}'
	)`); err != nil {
		panic(err)
	}

	seedCategories(db)
}

// seedCategories fills the filter bar on a fresh install.
func seedCategories(db *sql.DB) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM categories`).Scan(&count); err != nil || count > 0 {
		return
	}

	seed := []struct{ name, icon string }{
		{"Site Vitrine", "store"},
		{"Site E-commerce", "shopping-cart"},
		{"Site Institutionnel", "briefcase"},
		{"Blog / Magazine", "newspaper"},
		{"Application Web", "rocket"},
	}
	for _, s := range seed {
		if _, err := db.Exec(`INSERT INTO categories (name, icon) VALUES ($1, $2)`, s.name, s.icon); err != nil {
			continue
		}
	}
}
