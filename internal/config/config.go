package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	AllowedOrigin string
	// Optional catalog YAML override; empty means the embedded default.
	CatalogFile string
	// Optional fixed seed for price/spec sampling; 0 means time-based.
	RandSeed int64
}

func Load() Config {
	_ = godotenv.Load()
	return Config{
		Port:          getEnvDefault("PORT", "8080"),
		AllowedOrigin: getEnvDefault("ALLOWED_ORIGIN", "*"),
		CatalogFile:   os.Getenv("CATALOG_FILE"),
		RandSeed:      getEnvInt64("RAND_SEED"),
	}
}

func getEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt64(key string) int64 {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Printf("warning: ignoring non-numeric %s=%q", key, v)
		return 0
	}
	return n
}
