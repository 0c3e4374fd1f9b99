package config

import "os"

type Config struct {
	Addr              string
	DatabaseURL       string
	JWTSecret         string
	AdminEmail        string
	AdminPasswordHash string
	UploadsDir        string
	UploadsBaseURL    string
}

func Load() Config {
	return Config{
		Addr:              getenv("SITES_ADDR", ":8080"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		UploadsDir:        getenv("UPLOADS_DIR", "./uploads"),
		UploadsBaseURL:    getenv("UPLOADS_BASE_URL", "/uploads"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
