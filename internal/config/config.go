package config

import (
	"os"
	"strings"
)

// Config carries everything the console needs from the environment.
// godotenv.Load() runs in main before this is read; prod uses real env vars.
type Config struct {
	Env          string // "development" or "production"
	ListenAddr   string
	APIBaseURL   string // resolved active base, incl. version base path
	FlashSecret  []byte
	SessionDB    SessionDB
	MenuFile     string // optional override for the embedded menu
	DefaultHome  string // post-login route, locale gets prefixed
	DefaultLang  string
	ListPageSize int
}

type SessionDB struct {
	Driver string // "sqlite" (embedded default) or "mysql"
	Path   string // sqlite file
	DSN    string // mysql dsn
}

const (
	localAPIBase    = "http://localhost:5000"
	deployedAPIBase = "https://api.trendycart.app"
	apiBasePath     = "/api/v1"
)

func Load() Config {
	env := envOr("APP_ENV", "development")

	base := os.Getenv("API_BASE_URL")
	if base == "" {
		if env == "development" {
			base = localAPIBase
		} else {
			base = deployedAPIBase
		}
	}
	base = strings.TrimRight(base, "/") + envOr("API_BASE_PATH", apiBasePath)

	return Config{
		Env:         env,
		ListenAddr:  ":" + envOr("PORT", "8080"),
		APIBaseURL:  base,
		FlashSecret: []byte(envOr("FLASH_SECRET", "dev-only-flash-secret")),
		SessionDB: SessionDB{
			Driver: envOr("SESSION_DB_DRIVER", "sqlite"),
			Path:   envOr("SESSION_DB_PATH", "./data/session.db"),
			DSN:    os.Getenv("SESSION_DB_DSN"),
		},
		MenuFile:     os.Getenv("MENU_FILE"),
		DefaultHome:  envOr("DEFAULT_HOME", "/admin/dashboard"),
		DefaultLang:  envOr("DEFAULT_LANG", "en"),
		ListPageSize: 20,
	}
}

func (c Config) IsProd() bool { return c.Env == "production" }

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
