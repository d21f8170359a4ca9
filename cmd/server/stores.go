package main

import (
	"context"
	"fmt"
	"log/slog"

	"recordkeeper/internal/platform/config"
	"recordkeeper/internal/platform/database"
	"recordkeeper/internal/platform/health"
	redisclient "recordkeeper/internal/platform/redis"
	profilemodels "recordkeeper/internal/profile/models"
	"recordkeeper/internal/records"
	redisstore "recordkeeper/internal/records/store/redis"
	sqlitestore "recordkeeper/internal/records/store/sqlite"
	usermodels "recordkeeper/internal/user/models"
	id "recordkeeper/pkg/domain"
)

// backend holds the record maps for both schemas plus whatever must be
// closed on shutdown.
type backend struct {
	users    records.Map[id.AccountID, usermodels.Record]
	profiles records.Map[id.AccountID, profilemodels.Record]
	closers  []func() error
}

func (b *backend) Close(log *slog.Logger) {
	for _, closeFn := range b.closers {
		if err := closeFn(); err != nil {
			log.Error("failed to close storage backend", "error", err)
		}
	}
}

// openBackend builds the record maps for cfg.Storage.Backend and registers
// a readiness check for any external dependency.
func openBackend(ctx context.Context, cfg config.Server, h *health.Handler) (*backend, error) {
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		dbCfg := database.DefaultConfig()
		dbCfg.Path = cfg.Storage.SQLitePath
		pool, err := database.New(dbCfg)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		h.RegisterCheck("sqlite", pool.Health)
		return &backend{
			users:    sqlitestore.NewMap[id.AccountID, usermodels.Record](pool.DB(), usermodels.Schema),
			profiles: sqlitestore.NewMap[id.AccountID, profilemodels.Record](pool.DB(), profilemodels.Schema),
			closers:  []func() error{pool.Close},
		}, nil

	case config.BackendRedis:
		client, err := redisclient.New(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("open redis: %w", err)
		}
		h.RegisterCheck("redis", client.Health)
		return &backend{
			users:    redisstore.NewMap[id.AccountID, usermodels.Record](client.Cmdable(), usermodels.Schema),
			profiles: redisstore.NewMap[id.AccountID, profilemodels.Record](client.Cmdable(), profilemodels.Schema),
			closers:  []func() error{client.Close},
		}, nil

	default:
		return &backend{
			users:    records.NewInMemory[id.AccountID, usermodels.Record](),
			profiles: records.NewInMemory[id.AccountID, profilemodels.Record](),
		}, nil
	}
}
