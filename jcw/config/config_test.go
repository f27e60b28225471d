package config

import (
	"reflect"
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"HTTP_ADDR", "API_BASE_URL", "TENANT_HOST_SUFFIXES", "TENANT_RESERVED_KEYS",
		"CONTENT_SOURCE", "DB_HOST", "DB_NAME", "MINIO_ENDPOINT", "JWT_EXPIRATION_HOURS", "WS_ORIGIN_PATTERNS",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	if cfg.HTTPAddr != ":8000" {
		t.Errorf("HTTPAddr = %q, want :8000", cfg.HTTPAddr)
	}
	if cfg.APIBaseURL != "http://127.0.0.1:8000/api" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if !reflect.DeepEqual(cfg.TenantHostSuffixes, []string{".lvh.me", ".localhost"}) {
		t.Errorf("TenantHostSuffixes = %v", cfg.TenantHostSuffixes)
	}
	if !reflect.DeepEqual(cfg.TenantReservedKeys, []string{"www"}) {
		t.Errorf("TenantReservedKeys = %v", cfg.TenantReservedKeys)
	}
	if cfg.ContentSource != "catalog" {
		t.Errorf("ContentSource = %q", cfg.ContentSource)
	}
	if !reflect.DeepEqual(cfg.WSOriginPatterns, []string{"localhost:3000", "*.lvh.me:3000", "*.localhost:3000"}) {
		t.Errorf("WSOriginPatterns = %v", cfg.WSOriginPatterns)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("TokenTTL = %s", cfg.TokenTTL)
	}
	if cfg.DatabaseEnabled() || cfg.MinIOEnabled() {
		t.Error("optional backends should be disabled by default")
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.com/api/")
	t.Setenv("TENANT_HOST_SUFFIXES", " .example.test , ,.dev.test")
	t.Setenv("JWT_EXPIRATION_HOURS", "2")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "jcw")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("WS_ORIGIN_PATTERNS", "jcw.example.com")

	cfg := LoadConfig()

	if cfg.APIBaseURL != "https://api.example.com/api" {
		t.Errorf("trailing slash not trimmed: %q", cfg.APIBaseURL)
	}
	if !reflect.DeepEqual(cfg.TenantHostSuffixes, []string{".example.test", ".dev.test"}) {
		t.Errorf("TenantHostSuffixes = %v", cfg.TenantHostSuffixes)
	}
	if cfg.TokenTTL != 2*time.Hour {
		t.Errorf("TokenTTL = %s", cfg.TokenTTL)
	}
	if !cfg.DatabaseEnabled() {
		t.Error("expected database to be enabled")
	}
	if !cfg.MinIOUseSSL {
		t.Error("expected MinIOUseSSL")
	}
	if !reflect.DeepEqual(cfg.WSOriginPatterns, []string{"jcw.example.com"}) {
		t.Errorf("WSOriginPatterns = %v", cfg.WSOriginPatterns)
	}
}
