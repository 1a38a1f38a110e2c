package store

import (
	"context"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/skillsenselab/authkit/logger"
)

// DB wraps a GORM database handle with service logging.
type DB struct {
	GormDB *gorm.DB
	log    *logger.Logger
	cfg    Config
}

// Open connects to the configured database with context-aware retry and
// connection pooling, and optionally runs auto-migration.
func Open(ctx context.Context, cfg Config, log *logger.Logger) (*DB, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}

	// sqlite allows one writer, and a :memory: database exists per
	// connection, so the pool is pinned to a single connection.
	if cfg.Driver == "sqlite" {
		cfg.MaxOpenConns = 1
		cfg.MaxIdleConns = 1
	}

	slowThreshold, _ := time.ParseDuration(cfg.SlowQueryThreshold)
	gormCfg := &gorm.Config{
		Logger:         newGormLogger(log, slowThreshold, parseLogLevel(cfg.LogLevel)),
		TranslateError: true,
	}

	dialector := dialectorFor(cfg)

	var db *gorm.DB
	var err error

	for attempt := 1; attempt <= cfg.MaxRetries; attempt++ {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("store: connection canceled: %w", ctx.Err())
		}

		db, err = gorm.Open(dialector, gormCfg)
		if err == nil {
			sqlDB, sqlErr := db.DB()
			if sqlErr != nil {
				err = sqlErr
			} else if pingErr := sqlDB.PingContext(ctx); pingErr != nil {
				err = pingErr
			} else {
				sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
				sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
				if lifetime, parseErr := time.ParseDuration(cfg.ConnMaxLifetime); parseErr == nil {
					sqlDB.SetConnMaxLifetime(lifetime)
				}

				log.Info("database connection established", map[string]interface{}{
					"driver":  cfg.Driver,
					"attempt": attempt,
				})

				wrapped := &DB{GormDB: db, log: log, cfg: cfg}
				if cfg.AutoMigrate {
					if migErr := wrapped.Migrate(ctx); migErr != nil {
						return nil, migErr
					}
				}
				return wrapped, nil
			}
		}

		if attempt < cfg.MaxRetries {
			backoff := time.Duration(attempt) * time.Second
			log.Warn("database connection attempt failed, retrying", map[string]interface{}{
				"attempt": attempt,
				"error":   err.Error(),
				"backoff": backoff.String(),
			})
			if waitErr := contextSleep(ctx, backoff); waitErr != nil {
				return nil, fmt.Errorf("store: connection canceled during retry: %w", waitErr)
			}
		}
	}

	return nil, fmt.Errorf("store: failed to connect after %d attempts: %w", cfg.MaxRetries, err)
}

// Migrate runs GORM auto-migration for every registered model.
func (d *DB) Migrate(ctx context.Context) error {
	if err := d.GormDB.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("store: auto-migrate: %w", err)
	}
	d.log.Info("database migration complete")
	return nil
}

// Close closes the underlying sql.DB connection pool.
func (d *DB) Close() error {
	sqlDB, err := d.GormDB.DB()
	if err != nil {
		return err
	}
	d.log.Info("closing database connection")
	return sqlDB.Close()
}

// Ping verifies the connection is alive, for health checks.
func (d *DB) Ping(ctx context.Context) error {
	sqlDB, err := d.GormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func dialectorFor(cfg Config) gorm.Dialector {
	if cfg.Driver == "sqlite" {
		return sqlite.Open(cfg.DSN)
	}
	return postgres.Open(cfg.DSN)
}

// contextSleep waits for the given duration or until context is canceled.
func contextSleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
