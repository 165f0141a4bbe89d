package db

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// PoolOptions bounds the connection pool shared by every repository.
type PoolOptions struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Open connects to PostgreSQL through the pgx driver and wraps the pool with gorm.
// The returned *sql.DB is the pool itself; closing it releases every connection.
func Open(ctx context.Context, databaseURL string, opts PoolOptions) (*gorm.DB, *sql.DB, error) {
	sqlDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open database")
	}
	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, nil, errors.Wrap(err, "failed to ping database")
	}
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), Config())
	if err != nil {
		sqlDB.Close()
		return nil, nil, errors.Wrap(err, "failed to initialize gorm")
	}
	log.Info().
		Int("maxOpenConns", opts.MaxOpenConns).
		Int("maxIdleConns", opts.MaxIdleConns).
		Dur("connMaxLifetime", opts.ConnMaxLifetime).
		Msg("Database connection established")
	return gormDB, sqlDB, nil
}

// Config is the gorm configuration used for every dialector.
// Driver errors are translated into gorm's sentinel errors.
func Config() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         NewLogger(),
	}
}

// Migrate creates missing tables, indexes and foreign keys.
func Migrate(ctx context.Context, gormDB *gorm.DB) error {
	if err := gormDB.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}
	return nil
}
