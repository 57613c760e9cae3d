package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/jobboard-admin/internal/config"
	"github.com/spec-kit/jobboard-admin/internal/observability"
	"github.com/spec-kit/jobboard-admin/internal/persistence"
)

func main() {
	command := flag.String("command", "up", "migrate command (up|status|down)")
	timeout := flag.Duration("timeout", time.Minute, "command timeout")
	target := flag.Int64("target", 0, "target version for down command (optional)")
	flag.Parse()

	logger, err := observability.NewLogger(config.LoggerConfig{Level: "info"})
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	pgCfg := config.LoadPostgres()
	if pgCfg.DSN == "" {
		logger.Fatal("POSTGRES_DSN is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, pgCfg, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	switch *command {
	case "up":
		err = persistence.RunMigrations(ctx, pg.Pool, logger)
	case "status":
		err = persistence.MigrationStatus(ctx, pg.Pool)
	case "down":
		err = persistence.MigrateDown(ctx, pg.Pool, *target, logger)
	default:
		logger.Fatal("unsupported command", zap.String("command", *command))
	}
	if err != nil {
		logger.Fatal("migration command failed", zap.String("command", *command), zap.Error(err))
	}

	logger.Info("migration command completed", zap.String("command", *command))
}
