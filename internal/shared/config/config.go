package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds application configuration.
type Config struct {
	Port            string
	CORSAllowOrigin []string
	Env             string

	BlobStoreType string
	PhotosBucket  string
	S3Prefix      string
	AWSRegion     string

	RecordStoreType string
	PhotosTable     string
	DatabaseURL     string

	URLExpirationSeconds int

	JanitorQueueURL string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	return Config{
		Port:                 getEnv("PORT", "8080"),
		CORSAllowOrigin:      splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		Env:                  normalizeEnv(getEnv("ENV", "dev")),
		BlobStoreType:        normalizeBlobStore(getEnv("BLOB_STORE", "memory")),
		PhotosBucket:         getEnv("PHOTOS_BUCKET", ""),
		S3Prefix:             getEnv("S3_PREFIX", ""),
		AWSRegion:            getEnv("AWS_REGION", ""),
		RecordStoreType:      normalizeRecordStore(getEnv("RECORD_STORE", "memory")),
		PhotosTable:          getEnv("PHOTOS_TABLE", "Photos"),
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		URLExpirationSeconds: getEnvInt("URL_EXPIRATION", 3600),
		JanitorQueueURL:      getEnv("JANITOR_QUEUE_URL", ""),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val <= 0 {
		return def
	}
	return val
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeBlobStore(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "memory"
	}
}

func normalizeRecordStore(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "dynamo", "dynamodb":
		return "dynamo"
	case "postgres", "pg":
		return "postgres"
	default:
		return "memory"
	}
}
