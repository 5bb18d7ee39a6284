package utils

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything the binaries need, resolved once at startup so
// components receive explicit values instead of reading the environment
// themselves.
type Config struct {
	HTTPAddr    string
	CatalogPath string

	LedgerBackend string // "file", "sqlite" or "postgres"
	LedgerPath    string // file backend
	SQLitePath    string // sqlite backend

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	UploadDir      string
	UploadMaxBytes int64
}

// Load reads the .env file (when present) and the GREENPLOT_* environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] no .env file found, falling back to system env vars")
	}

	return Config{
		HTTPAddr:    getEnv("GREENPLOT_HTTP_ADDR", ":8080"),
		CatalogPath: getEnv("GREENPLOT_CATALOG_PATH", "data/plant_database.json"),

		LedgerBackend: getEnv("GREENPLOT_LEDGER_BACKEND", "file"),
		LedgerPath:    getEnv("GREENPLOT_LEDGER_PATH", "data/progress_log.json"),
		SQLitePath:    getEnv("GREENPLOT_SQLITE_PATH", "data/greenplot.db"),

		PostgresHost:     getEnv("GREENPLOT_PG_HOST", "localhost"),
		PostgresPort:     getEnv("GREENPLOT_PG_PORT", "5432"),
		PostgresUser:     getEnv("GREENPLOT_PG_USER", "greenplot"),
		PostgresPassword: getEnv("GREENPLOT_PG_PASSWORD", "greenplot123"),
		PostgresDB:       getEnv("GREENPLOT_PG_DB", "greenplot_db"),
		PostgresSSLMode:  getEnv("GREENPLOT_PG_SSLMODE", "disable"),

		UploadDir:      getEnv("GREENPLOT_UPLOAD_DIR", "data/uploads"),
		UploadMaxBytes: int64(getEnvInt("GREENPLOT_UPLOAD_MAX_BYTES", 5<<20)),
	}
}

// DSN returns the PostgreSQL connection string for the postgres backend.
func (c Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
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
