package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	goredis "github.com/redis/go-redis/v9"

	"github.com/partdesk-core/server/internal/catalog"
	"github.com/partdesk-core/server/internal/classifier"
	"github.com/partdesk-core/server/internal/core"
	"github.com/partdesk-core/server/internal/router"
	"github.com/partdesk-core/server/internal/server"
	logx "github.com/partdesk-core/server/pkg/logger"
	pkgredis "github.com/partdesk-core/server/pkg/redis"
)

// AppConfig defines all configurable parameters for the service, sourced from
// environment variables (loaded from .env for local runs).
type AppConfig struct {
	Port        int    `envconfig:"PORT" default:"8080"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"`

	// Infrastructure
	Redis pkgredis.Config

	// Pump sound classifier
	Classifier classifier.Config
}

func main() {
	ctx := context.Background()

	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Failed to process environment config: %v", err)
	}

	logx.Init(logx.LoggerOpts{Environment: core.ParseEnvironment(cfg.Environment)})

	cat, err := catalog.Load()
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to load catalog")
	}

	var rdb *goredis.Client
	if cfg.Redis.Enabled() {
		rdb, err = cfg.Redis.New()
		if err != nil {
			logx.Fatal().Err(err).Msg("failed to initialise Redis client")
		}
		defer rdb.Close()
		logx.Info().Msg("connected to Redis")
	}

	pump, err := classifier.NewPumpSound(ctx, cfg.Classifier, rdb)
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to build pump sound classifier")
	}

	engine := router.NewEngine(cat, pump)

	srv := server.New(cfg.Port, engine)
	if err := srv.Start(); err != nil {
		logx.Fatal().Err(err).Msg("server stopped")
	}
}
