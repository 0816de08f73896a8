package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"podverse-web/internal/domain"
)

type Env struct {
	AppAddr            string   `toml:"app_addr"`
	GinMode            string   `toml:"gin_mode"`
	DBDriver           string   `toml:"db_driver"`
	DBDSN              string   `toml:"db_dsn"`
	APIBaseURL         string   `toml:"api_base_url"`
	WebBaseURL         string   `toml:"web_base_url"`
	JWTSigningKey      string   `toml:"jwt_signing_key"`
	SessionCookie      string   `toml:"session_cookie"`
	CORSAllowedOrigins []string `toml:"cors_allowed_origins"`
	PageSize           int      `toml:"page_size"`
	DefaultLocale      string   `toml:"default_locale"`
}

func defaultEnv() Env {
	return Env{
		AppAddr:       ":8080",
		DBDriver:      "mysql",
		DBDSN:         "root:@tcp(127.0.0.1:3306)/podverse?parseTime=true&loc=UTC&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s",
		WebBaseURL:    "http://localhost:8080",
		SessionCookie: "podverse_session",
		CORSAllowedOrigins: []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
		},
		PageSize:      domain.DefaultPageSize,
		DefaultLocale: "en",
	}
}

// LoadEnv resolves configuration from defaults, then the TOML file named by
// PODVERSE_CONFIG (if any), then environment variables.
func LoadEnv() (Env, error) {
	env := defaultEnv()

	if path := strings.TrimSpace(os.Getenv("PODVERSE_CONFIG")); path != "" {
		if err := overlayFile(&env, path); err != nil {
			return env, err
		}
	}

	setString(&env.AppAddr, "APP_ADDR")
	setString(&env.GinMode, "GIN_MODE")
	setString(&env.DBDriver, "DB_DRIVER")
	setString(&env.DBDSN, "DB_DSN")
	setString(&env.APIBaseURL, "API_BASE_URL")
	setString(&env.WebBaseURL, "WEB_BASE_URL")
	setString(&env.JWTSigningKey, "JWT_SIGNING_KEY")
	setString(&env.SessionCookie, "SESSION_COOKIE")
	setString(&env.DefaultLocale, "DEFAULT_LOCALE")

	if v := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); v != "" {
		env.CORSAllowedOrigins = splitList(v)
	}
	if v := strings.TrimSpace(os.Getenv("PAGE_SIZE")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return env, fmt.Errorf("PAGE_SIZE tidak valid: %q", v)
		}
		env.PageSize = n
	}

	env.DBDriver = strings.ToLower(env.DBDriver)
	if env.PageSize < 1 {
		env.PageSize = domain.DefaultPageSize
	}
	if env.PageSize > domain.MaxPageSize {
		return env, fmt.Errorf("PAGE_SIZE tidak valid: %d melebihi batas %d", env.PageSize, domain.MaxPageSize)
	}
	env.WebBaseURL = strings.TrimRight(env.WebBaseURL, "/")
	env.APIBaseURL = strings.TrimRight(env.APIBaseURL, "/")
	return env, nil
}

func overlayFile(env *Env, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, env); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func splitList(raw string) []string {
	out := []string{}
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
