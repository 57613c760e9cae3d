package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/spec-kit/jobboard-admin/internal/api/dto"
	"github.com/spec-kit/jobboard-admin/internal/config"
	"github.com/spec-kit/jobboard-admin/internal/domain"
	"github.com/spec-kit/jobboard-admin/internal/observability"
	"github.com/spec-kit/jobboard-admin/internal/persistence"
	"github.com/spec-kit/jobboard-admin/internal/repository"
	"github.com/spec-kit/jobboard-admin/internal/service"
	apperrors "github.com/spec-kit/jobboard-admin/pkg/util/errorutil"
)

// passwordEnv lets non-interactive provisioning skip the prompt.
const passwordEnv = "ADMIN_PASSWORD"

func main() {
	name := flag.String("name", "", "admin display name")
	email := flag.String("email", "", "admin email")
	cost := flag.Int("cost", 10, "bcrypt cost")
	timeout := flag.Duration("timeout", 30*time.Second, "command timeout")
	flag.Parse()

	logger, err := observability.NewLogger(config.LoggerConfig{Level: "info"})
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	password, err := readPassword()
	if err != nil {
		logger.Fatal("failed to read password", zap.Error(err))
	}

	req := dto.SignupRequest{Name: *name, Email: *email, Password: password}
	if err := dto.Validate(req); err != nil {
		var de *apperrors.DomainError
		if errors.As(err, &de) {
			for _, f := range de.Fields {
				fmt.Fprintf(os.Stderr, "%s %s\n", f.Path, f.Message)
			}
		}
		os.Exit(2)
	}

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

	authService := service.NewAuthService(config.AuthConfig{BcryptCost: *cost}, service.AuthDependencies{
		Users:  repository.NewUserRepository(pg.Pool),
		Logger: logger,
	})

	user, err := authService.Register(ctx, service.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}, domain.RoleAdmin, service.ViaCLI)
	if err != nil {
		logger.Fatal("failed to create admin", zap.Error(err))
	}

	logger.Info("admin created", zap.String("user_id", user.ID), zap.String("email", user.Email))
}

func readPassword() (string, error) {
	if pw := os.Getenv(passwordEnv); pw != "" {
		return pw, nil
	}
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("stdin is not a terminal; set %s", passwordEnv)
	}

	fmt.Fprint(os.Stderr, "Password: ")
	first, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	fmt.Fprint(os.Stderr, "Repeat password: ")
	second, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	if !bytes.Equal(first, second) {
		return "", errors.New("passwords do not match")
	}
	return string(first), nil
}
