package db

import (
	"context"
	"sync/atomic"

	"github.com/nathmakers/storesrv/internal/db/dberror"
	"github.com/nathmakers/storesrv/internal/db/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type gormStore struct {
	db *gorm.DB

	// ensured flips to true after the first successful EnsureSchema. Read
	// paths re-check it so a cold start whose startup-time migration failed
	// can still heal on first access.
	ensured *atomic.Bool
}

// New wraps an open gorm handle in a Store.
func New(gdb *gorm.DB) Store {
	return &gormStore{
		db:      gdb,
		ensured: new(atomic.Bool),
	}
}

// Scoped returns a view of the store bound to the request context. The
// underlying connection is returned to the pool when each operation
// completes, on every exit path.
func (s *gormStore) Scoped(ctx context.Context) Store {
	return &gormStore{
		db:      s.db.WithContext(ctx).Session(&gorm.Session{}),
		ensured: s.ensured,
	}
}

// EnsureSchema creates the entity tables if absent. Idempotent and safe to
// call from multiple processes: an already-existing table is success, not an
// error.
func (s *gormStore) EnsureSchema(ctx context.Context) error {
	err := s.db.WithContext(ctx).AutoMigrate(
		&models.Catalogue{},
		&models.Product{},
		&models.Admin{},
	)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to ensure schema")
		return dberror.ErrDatabase.Msg("failed to ensure schema").Err(err)
	}
	s.ensured.Store(true)
	return nil
}

// ensure lazily re-runs schema creation when startup skipped or failed it.
func (s *gormStore) ensure(ctx context.Context) {
	if s.ensured.Load() {
		return
	}
	if err := s.EnsureSchema(ctx); err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("lazy schema ensure failed")
	}
}

// Ping probes the backing store with a trivial query.
func (s *gormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return dberror.ErrDatabase.Err(err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return dberror.ErrDatabase.Err(err)
	}
	return nil
}

func (s *gormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
