package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Skotchmaster/mock_ecom/internal/repo"
	"github.com/Skotchmaster/mock_ecom/pkg/config"
	"github.com/Skotchmaster/mock_ecom/pkg/db"
	"github.com/Skotchmaster/mock_ecom/pkg/mongodb"
)

func openStore(ctx context.Context, cfg config.Config, l *slog.Logger) (repo.Store, error) {
	switch cfg.StoreDriver {
	case config.StoreMongo:
		config.MustNonEmpty(cfg.MongoURI, "MONGO_URI")
		client, err := mongodb.Connect(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		r := repo.NewMongoRepo(client, cfg.MongoDB)
		if err := r.EnsureIndexes(ctx); err != nil {
			_ = r.Close(context.Background())
			return nil, err
		}
		l.Info("store opened", "driver", config.StoreMongo, "database", cfg.MongoDB)
		return r, nil

	case config.StoreSQL:
		gdb, err := db.Open(ctx, cfg.DBDriver, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		r := repo.NewGormRepo(gdb)
		if err := r.Migrate(ctx); err != nil {
			_ = r.Close(ctx)
			return nil, fmt.Errorf("migrate: %w", err)
		}
		l.Info("store opened", "driver", cfg.DBDriver)
		return r, nil

	default:
		return nil, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.StoreDriver)
	}
}
