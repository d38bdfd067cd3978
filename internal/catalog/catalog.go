// Package catalog selects a storage source from configuration and builds the
// in-memory record catalog from it.
package catalog

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/partscope/partscope/internal/config"
	"github.com/partscope/partscope/partscope"
	"github.com/partscope/partscope/partscope/storage"
	"github.com/partscope/partscope/partscope/storage/jsonfile"
	"github.com/partscope/partscope/partscope/storage/postgres"
	"github.com/partscope/partscope/partscope/storage/s3"
	"github.com/partscope/partscope/partscope/storage/sqlite"
)

// Writer is implemented by sources that can store a catalog.
type Writer interface {
	WriteCatalog(ctx context.Context, records []partscope.Record) error
}

// LoadObserver records catalog load outcomes.
type LoadObserver interface {
	ObserveCatalogLoad(backend string, err error, duration time.Duration)
}

// Open returns the source selected by cfg.Backend.
func Open(ctx context.Context, cfg config.CatalogConfig, logger *zap.Logger) (storage.Source, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	backend, err := cfg.BackendKind()
	if err != nil {
		return nil, err
	}

	switch backend {
	case storage.BackendJSON:
		src := jsonfile.New(cfg.Path)
		src.Logger = logger
		return src, nil
	case storage.BackendSQLite:
		src := sqlite.NewWithDriver(cfg.Path, cfg.SQLiteDriver)
		src.Table = cfg.Table
		src.Logger = logger
		return src, nil
	case storage.BackendPostgres:
		if cfg.PostgresDSN == "" {
			return nil, partscope.ConfigError("catalog.postgres_dsn", "PARTSCOPE_POSTGRES_DSN is required for the postgres backend")
		}
		src := postgres.New(cfg.PostgresDSN, cfg.PostgresSchema)
		src.Table = cfg.Table
		src.Logger = logger
		return src, nil
	case storage.BackendS3:
		src, err := s3.NewFromConfig(ctx, s3.Config{
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			Key:       cfg.S3Key,
			Endpoint:  cfg.S3Endpoint,
			PathStyle: cfg.S3PathStyle,
		})
		if err != nil {
			return nil, err
		}
		src.Logger = logger
		return src, nil
	}
	return nil, partscope.ConfigError("catalog.backend", "unsupported backend "+string(backend))
}

// Load reads every record from src and builds a catalog. obs may be nil.
func Load(ctx context.Context, src storage.Source, logger *zap.Logger, obs LoadObserver) (*partscope.Catalog, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	start := time.Now()
	records, err := src.Load(ctx)
	if err == nil {
		var c *partscope.Catalog
		c, err = partscope.NewCatalog(records)
		if err == nil {
			observe(obs, src, nil, start)
			logger.Info("catalog ready",
				zap.String("backend", string(src.Backend())),
				zap.String("source", src.Name()),
				zap.Int("records", c.Len()),
				zap.Duration("elapsed", time.Since(start)))
			return c, nil
		}
	}
	observe(obs, src, err, start)
	logger.Error("catalog load failed",
		zap.String("backend", string(src.Backend())),
		zap.String("source", src.Name()),
		zap.Error(err))
	return nil, err
}

func observe(obs LoadObserver, src storage.Source, err error, start time.Time) {
	if obs != nil {
		obs.ObserveCatalogLoad(string(src.Backend()), err, time.Since(start))
	}
}
