package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all infrastructure configuration loaded from environment variables.
type Config struct {
	SheetPath   string // CSV export of the crowd-sourced sheet
	DatasetPath string // normalized dataset output
	MapPath     string // map points output
	AtlasPath   string // optional atlas.yaml overriding the built-in tables

	MaxConcurrency int
	LogLevel       string
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		SheetPath:   getEnv("SHEET_CSV_PATH", "./pg_data.csv"),
		DatasetPath: getEnv("DATASET_OUTPUT_PATH", "./output/listings.csv"),
		MapPath:     getEnv("MAP_OUTPUT_PATH", "./output/map_points.json"),
		AtlasPath:   getEnv("ATLAS_CONFIG_PATH", ""),

		MaxConcurrency: getEnvInt("MAX_CONCURRENCY", 4),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}
