package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBPath      string
	SeedDir     string
	ExtraOrigin string
}

// Load reads configuration from the environment, with a .env file as an
// optional source. Every value has a default so a bare `go run` works.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded:", err)
	}

	return Config{
		Port:        getenv("PORT", "3001"),
		DBPath:      getenv("TIENDA_DB_PATH", "./tienda.db"),
		SeedDir:     getenv("TIENDA_SEED_DIR", "./public"),
		ExtraOrigin: os.Getenv("TIENDA_CORS_ORIGIN"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// AllowedOrigins is the fixed cross-origin allow-list plus the configured
// extra origin, if any.
func (c Config) AllowedOrigins() []string {
	origins := []string{
		"http://localhost:3000",
		"http://localhost:3002",
		"http://localhost:3003",
	}
	if c.ExtraOrigin != "" {
		origins = append(origins, c.ExtraOrigin)
	}
	return origins
}
