package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	CatalogPath string
	PageSize    int
	Locale      string
	Currency    string
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return def
	}
	return n
}

func Load() Config {
	_ = godotenv.Load() // load .env if it exists
	cfg := Config{
		CatalogPath: getenv("CATALOG_PATH", "data/products.json"),
		PageSize:    getint("CATALOG_PAGE_SIZE", 12),
		Locale:      getenv("CATALOG_LOCALE", "es-CO"),
		Currency:    getenv("CATALOG_CURRENCY", "COP"),
	}
	log.Printf("[config] CATALOG_PATH=%s", cfg.CatalogPath)
	log.Printf("[config] CATALOG_PAGE_SIZE=%d", cfg.PageSize)
	log.Printf("[config] CATALOG_LOCALE=%s CATALOG_CURRENCY=%s", cfg.Locale, cfg.Currency)
	return cfg
}
