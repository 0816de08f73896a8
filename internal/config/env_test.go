package config

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"podverse-web/internal/domain"
)

func TestLoadEnvDefaults(t *testing.T) {
	t.Setenv("PODVERSE_CONFIG", "")
	t.Setenv("APP_ADDR", "")
	t.Setenv("PAGE_SIZE", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	env, err := LoadEnv()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if env.AppAddr != ":8080" {
		t.Fatalf("AppAddr=%q", env.AppAddr)
	}
	if env.PageSize != 20 {
		t.Fatalf("PageSize=%d", env.PageSize)
	}
	if env.DBDriver != "mysql" {
		t.Fatalf("DBDriver=%q", env.DBDriver)
	}
}

func TestLoadEnvFileThenEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "podverse.toml")
	body := "app_addr = \":9000\"\ndb_driver = \"SQLITE\"\npage_size = 50\nweb_base_url = \"https://podverse.fm/\"\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("PODVERSE_CONFIG", path)
	t.Setenv("APP_ADDR", ":7000")
	t.Setenv("PAGE_SIZE", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	env, err := LoadEnv()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if env.AppAddr != ":7000" {
		t.Fatalf("env var should win over file, got %q", env.AppAddr)
	}
	if env.DBDriver != "sqlite" {
		t.Fatalf("DBDriver=%q", env.DBDriver)
	}
	if env.PageSize != 50 {
		t.Fatalf("PageSize=%d", env.PageSize)
	}
	if env.WebBaseURL != "https://podverse.fm" {
		t.Fatalf("WebBaseURL=%q", env.WebBaseURL)
	}
	if len(env.CORSAllowedOrigins) != 2 {
		t.Fatalf("origins=%v", env.CORSAllowedOrigins)
	}
}

func TestLoadEnvRejectsBadPageSize(t *testing.T) {
	t.Setenv("PODVERSE_CONFIG", "")
	t.Setenv("PAGE_SIZE", "zero")
	if _, err := LoadEnv(); err == nil {
		t.Fatalf("expected error for bad PAGE_SIZE")
	}
}

func TestLoadEnvRejectsPageSizeAboveQueryLimit(t *testing.T) {
	t.Setenv("PODVERSE_CONFIG", "")
	t.Setenv("PAGE_SIZE", "150")
	if _, err := LoadEnv(); err == nil {
		t.Fatalf("expected error for PAGE_SIZE above %d", domain.MaxPageSize)
	}

	t.Setenv("PAGE_SIZE", strconv.Itoa(domain.MaxPageSize))
	env, err := LoadEnv()
	if err != nil {
		t.Fatalf("PAGE_SIZE=%d should be accepted: %v", domain.MaxPageSize, err)
	}
	if env.PageSize != domain.MaxPageSize {
		t.Fatalf("PageSize=%d", env.PageSize)
	}
}
