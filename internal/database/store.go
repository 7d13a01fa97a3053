package database

import (
	"context"
	"fmt"

	"github.com/mern-eats/sales-api/internal/config"
	"github.com/mern-eats/sales-api/internal/repository"
	"github.com/mern-eats/sales-api/pkg/logger"
)

// Store is an open order store and the repositories reading from it
type Store struct {
	Repos *repository.Repositories
	close func(ctx context.Context) error
}

// Close releases the underlying connections
func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// Open connects to the order store selected by cfg.StoreDriver
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMongo:
		client, err := ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		return &Store{
			Repos: repository.NewMongoRepositories(client.Database(cfg.MongoDatabase)),
			close: client.Disconnect,
		}, nil

	case config.StoreDriverPostgres:
		db, err := Connect(cfg.DatabaseURL, cfg.Environment)
		if err != nil {
			return nil, err
		}
		logger.Info("Connected to database")
		return &Store{
			Repos: repository.NewRepositories(db),
			close: func(context.Context) error {
				sqlDB, err := db.DB()
				if err != nil {
					return err
				}
				return sqlDB.Close()
			},
		}, nil

	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}
}
