package repository

import (
	"context"
	"fmt"

	"contract_tracker/internal/infrastructure/config"
	"contract_tracker/internal/infrastructure/database"
	"contract_tracker/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// OpenKeyValueStore connects the backend selected by cfg.Storage.Driver. The
// returned close func releases the connection and is never nil.
func OpenKeyValueStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (interfaces.IKeyValueStore, func(), error) {
	noop := func() {}
	log := logger.With(zap.String("driver", cfg.Storage.Driver))

	switch cfg.Storage.Driver {
	case config.DriverMemory:
		log.Warn("storage open done; data is not persisted across restarts")
		return NewMemoryKVRepository(), noop, nil

	case config.DriverFile:
		kv, err := NewFileKVRepository(cfg.Storage.Dir)
		if err != nil {
			return nil, noop, err
		}
		log.Info("storage open done", zap.String("dir", cfg.Storage.Dir))
		return kv, noop, nil

	case config.DriverDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, noop, err
		}
		if err := database.EnsureKVTable(ctx, ddb, cfg.DynamoDB.Table); err != nil {
			return nil, noop, err
		}
		log.Info("storage open done", zap.String("table", cfg.DynamoDB.Table))
		return NewDynamoKVRepository(ddb, cfg.DynamoDB.Table), noop, nil

	case config.DriverPostgres:
		pool, err := database.ConnectPostgres(ctx, cfg.Postgres.DSN)
		if err != nil {
			return nil, noop, err
		}
		if err := database.EnsurePostgresSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, noop, err
		}
		log.Info("storage open done")
		return NewPostgresKVRepository(pool), pool.Close, nil

	case config.DriverSQLite:
		db, err := database.OpenSQLite(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, noop, err
		}
		log.Info("storage open done", zap.String("path", cfg.SQLite.Path))
		return NewSQLiteKVRepository(db), func() { _ = db.Close() }, nil

	case config.DriverS3:
		client, err := database.ConnectMinio(ctx, cfg.S3)
		if err != nil {
			return nil, noop, err
		}
		log.Info("storage open done", zap.String("bucket", cfg.S3.Bucket))
		return NewMinioKVRepository(client, cfg.S3.Bucket, "kv/"), noop, nil
	}
	return nil, noop, fmt.Errorf("%w: %q", config.ErrUnknownDriver, cfg.Storage.Driver)
}
