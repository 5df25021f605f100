package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"log/slog"

	"github.com/joho/godotenv"

	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/api"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/backend"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/config"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/currency"
	apphttp "github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/http"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/nav"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/session"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/storage"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg := config.Load()

	if cfg.SessionDB.Driver == "sqlite" || cfg.SessionDB.Driver == "" {
		if err := os.MkdirAll(filepath.Dir(cfg.SessionDB.Path), 0o755); err != nil {
			log.Fatalf("failed to prepare session db dir: %v", err)
		}
	}
	store, err := session.Open(cfg.SessionDB)
	if err != nil {
		log.Fatalf("failed to open session store: %v", err)
	}

	ctx := context.Background()
	staging, err := storage.FromEnv(ctx)
	if err != nil {
		log.Fatalf("failed to init upload storage: %v", err)
	}
	logger.Info("upload_storage_ready", "driver", staging.Driver)

	menu, err := nav.Load(cfg.MenuFile)
	if err != nil {
		log.Fatalf("failed to load menu: %v", err)
	}

	client := api.New(cfg.APIBaseURL, store, logger)
	cur := currency.NewStore()

	// seed the display currency; a cold backend just leaves the default
	if store.Token() != "" {
		if c, env, err := backend.NewCurrencyService(client).Default(ctx); err == nil && env.Success {
			cur.Set(c.Symbol, c.Code)
		} else {
			logger.Warn("currency_seed_skipped")
		}
	}

	r := apphttp.NewRouter(apphttp.Deps{
		Logger:       logger,
		Config:       cfg,
		Store:        store,
		Currency:     cur,
		Client:       client,
		Stager:       staging.Stager,
		Menu:         menu,
		UploadDir:    staging.LocalDir,
		UploadPrefix: staging.URLPrefix,
	})

	logger.Info("listening", "addr", cfg.ListenAddr, "api", cfg.APIBaseURL, "env", cfg.Env)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
