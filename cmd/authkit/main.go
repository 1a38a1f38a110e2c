package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/skillsenselab/authkit/auth"
	"github.com/skillsenselab/authkit/config"
	"github.com/skillsenselab/authkit/logger"
	"github.com/skillsenselab/authkit/observability"
	"github.com/skillsenselab/authkit/password"
	"github.com/skillsenselab/authkit/server"
	"github.com/skillsenselab/authkit/store"
	"github.com/skillsenselab/authkit/token"
	"github.com/skillsenselab/authkit/version"
)

const serviceName = "authkit"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", serviceName, err)
		os.Exit(1)
	}
}

func run() error {
	var cfg config.Config
	if err := config.Load(serviceName, &cfg); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}

	log := logger.New(&cfg.Logging, cfg.Name)
	logger.SetGlobalLogger(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp, err := observability.Init(ctx, cfg.Tracing, log)
	if err != nil {
		return fmt.Errorf("init tracer: %w", err)
	}
	if tp != nil {
		defer func() { _ = tp.Shutdown(context.Background()) }()
	}

	db, err := store.Open(ctx, cfg.Database, log)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() { _ = db.Close() }()

	tokenCfg, err := cfg.Auth.TokenConfig()
	if err != nil {
		return fmt.Errorf("token config: %w", err)
	}
	tokens, err := token.NewService(tokenCfg)
	if err != nil {
		return err
	}

	authSvc, err := auth.NewService(
		store.NewStore(db),
		password.NewHasher(cfg.Password),
		password.NewStrengthChecker(password.WithMinLength(cfg.Password.MinLength)),
		tokens,
		log,
	)
	if err != nil {
		return fmt.Errorf("auth service: %w", err)
	}

	dbCheck := observability.HealthCheckFunc(func(ctx context.Context) observability.Health {
		h := observability.Health{Name: "database", Status: observability.HealthStatusUp}
		if err := db.Ping(ctx); err != nil {
			h.Status = observability.HealthStatusDown
			h.Message = err.Error()
		}
		return h
	})

	srv := server.New(cfg.Server, log)
	srv.ApplyMiddleware()
	srv.RegisterRoutes(server.NewHandlers(authSvc, cfg.Name, cfg.Version, dbCheck), tokens)

	if err := srv.Start(ctx); err != nil {
		return err
	}
	log.Info("service ready", logger.Fields(
		"addr", srv.Addr(),
		"environment", cfg.Environment,
		"version", version.Short(),
	))

	<-ctx.Done()
	return srv.Stop(context.Background())
}
