package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr string
	LogDir   string

	APIBaseURL         string
	TenantHostSuffixes []string
	TenantReservedKeys []string

	ContentSource string // "catalog" or "html"
	SiteBaseURL   string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	MinIOEndpoint  string
	MinIOAccessKey string
	MinIOSecretKey string
	MinIOBucket    string
	MinIOUseSSL    bool

	JWTSecret         string
	TokenTTL          time.Duration
	AdminUsername     string
	AdminPasswordHash string

	AssistantURL string

	// hosts besides the server's own allowed to open /assistant/ws
	WSOriginPatterns []string
}

// DatabaseEnabled reports whether enough DB settings are present to connect.
func (c Config) DatabaseEnabled() bool {
	return c.DBHost != "" && c.DBName != ""
}

func (c Config) MinIOEnabled() bool {
	return c.MinIOEndpoint != ""
}

// LoadConfig reads .env (when present) and then the process environment.
func LoadConfig() Config {
	// a missing .env is fine, the real environment wins anyway
	_ = godotenv.Load()

	return Config{
		HTTPAddr: getEnv("HTTP_ADDR", ":8000"),
		LogDir:   getEnv("LOG_DIR", "./logs"),

		APIBaseURL:         strings.TrimRight(getEnv("API_BASE_URL", "http://127.0.0.1:8000/api"), "/"),
		TenantHostSuffixes: getList("TENANT_HOST_SUFFIXES", []string{".lvh.me", ".localhost"}),
		TenantReservedKeys: getList("TENANT_RESERVED_KEYS", []string{"www"}),

		ContentSource: getEnv("CONTENT_SOURCE", "catalog"),
		SiteBaseURL:   strings.TrimRight(getEnv("SITE_BASE_URL", "http://localhost:3000"), "/"),

		DBUser:     getEnv("DB_USER", ""),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBHost:     getEnv("DB_HOST", ""),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", ""),

		MinIOEndpoint:  getEnv("MINIO_ENDPOINT", ""),
		MinIOAccessKey: getEnv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey: getEnv("MINIO_SECRET_KEY", ""),
		MinIOBucket:    getEnv("MINIO_BUCKET", "jcw-content"),
		MinIOUseSSL:    getBool("MINIO_USE_SSL", false),

		JWTSecret:         getEnv("JWT_SECRET", ""),
		TokenTTL:          time.Duration(getInt("JWT_EXPIRATION_HOURS", 24)) * time.Hour,
		AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),

		AssistantURL:     getEnv("ASSISTANT_URL", "http://localhost:8000/assistant"),
		WSOriginPatterns: getList("WS_ORIGIN_PATTERNS", []string{"localhost:3000", "*.lvh.me:3000", "*.localhost:3000"}),
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return fallback
}

// getList splits a comma separated variable, dropping blanks.
func getList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

func getInt(key string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func getBool(key string, fallback bool) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return b
}
