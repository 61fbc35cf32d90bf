package store

import (
	"context"

	"github.com/MKhiriev/go-auth-service/internal/config"
	"github.com/MKhiriev/go-auth-service/internal/logger"
)

// Storages aggregates all repository implementations used by the service
// layer. It is constructed once at startup and passed down by reference.
type Storages struct {
	UserRepository UserRepository

	// DB is the shared database handle behind the repositories, exposed so
	// that main can run migrations and close the connection on shutdown.
	DB *DB
}

// NewStorages connects to the configured database and wires up all
// repositories over the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		DB:             db,
	}, nil
}
