package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spec-kit/driving-records/internal/auth"
	"github.com/spec-kit/driving-records/internal/config"
	"github.com/spec-kit/driving-records/internal/domain"
	"github.com/spec-kit/driving-records/internal/observability"
	"github.com/spec-kit/driving-records/internal/persistence"
	"github.com/spec-kit/driving-records/internal/repository"
	"github.com/spec-kit/driving-records/internal/service"
)

// userCreator provisions login accounts.
type userCreator interface {
	CreateUser(ctx context.Context, username, password string) (*domain.User, error)
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "seed",
		Short:        "Provision data for the driving-records service",
		SilenceUsage: true,
	}
	cmd.AddCommand(newUserCmd(nil))
	cmd.AddCommand(newMigrateCmd())
	return cmd
}

type userConfig struct {
	username string
	password string
}

// newUserCmd builds the user subcommand. A nil creator is resolved from the
// environment at run time.
func newUserCmd(creator userCreator) *cobra.Command {
	cfg := &userConfig{}

	cmd := &cobra.Command{
		Use:   "user",
		Short: "Create a login account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if creator != nil {
				return runUser(cmd, creator, cfg)
			}
			authService, cleanup, err := authServiceFromEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()
			return runUser(cmd, authService, cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.username, "username", "", "login name")
	cmd.Flags().StringVar(&cfg.password, "password", "", "plaintext password, hashed before storage")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func runUser(cmd *cobra.Command, creator userCreator, cfg *userConfig) error {
	if cfg.password == "" {
		return errors.New("password must not be empty")
	}
	user, err := creator.CreateUser(cmd.Context(), cfg.username, cfg.password)
	if err != nil {
		return err
	}
	cmd.Printf("created user %s (%s)\n", user.Username, user.ID)
	return nil
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger, err := observability.NewLogger(cfg.Logger, cfg.App)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer logger.Sync() //nolint:errcheck
			return persistence.RunMigrations(cfg.Postgres.DSN, logger)
		},
	}
}

func authServiceFromEnv(ctx context.Context) (*service.AuthService, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("connect postgres: %w", err)
	}

	svc := service.NewAuthService(
		repository.NewUserRepository(pg.Pool),
		auth.NewPasswordHasher(cfg.Auth.BcryptCost),
		auth.NewTokenManager(cfg.Auth),
	)
	cleanup := func() {
		pg.Close()
		if err := logger.Sync(); err != nil {
			logger.Debug("logger sync", zap.Error(err))
		}
	}
	return svc, cleanup, nil
}
