package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port           string
	DBPath         string
	DatasetPath    string // Raw check-in TSV, used by cmd/import
	CategoriesPath string // Taxonomy CSV, used by cmd/import
	RateLimit      int    // Requests per minute per client IP
}

// Load reads configuration from a .env file when present, then from the
// environment, falling back to defaults
func Load() *Config {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/checkins.db"
	}

	datasetPath := os.Getenv("DATASET_PATH")
	if datasetPath == "" {
		datasetPath = "./data/dataset_NYC.txt"
	}

	categoriesPath := os.Getenv("CATEGORIES_PATH")
	if categoriesPath == "" {
		categoriesPath = "./data/categories.csv"
	}

	rateLimit := 120
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			rateLimit = n
		}
	}

	return &Config{
		Port:           port,
		DBPath:         dbPath,
		DatasetPath:    datasetPath,
		CategoriesPath: categoriesPath,
		RateLimit:      rateLimit,
	}
}
