package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
)

// Storages bundles every repository sharing one connection pool.
type Storages struct {
	UserRepository      UserRepository
	PostRepository      PostRepository
	FollowRepository    FollowRepository
	SavedPostRepository SavedPostRepository
	HealthChecker       HealthChecker

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and wires the
// repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error migrating database")
		_ = db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return newStoragesFromDB(db, log), nil
}

func newStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:      NewUserRepository(db, log),
		PostRepository:      NewPostRepository(db, log),
		FollowRepository:    NewFollowRepository(db, log),
		SavedPostRepository: NewSavedPostRepository(db, log),
		HealthChecker:       db,
		db:                  db,
	}
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
