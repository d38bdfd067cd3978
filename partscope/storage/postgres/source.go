package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"github.com/partscope/partscope/partscope"
	"github.com/partscope/partscope/partscope/storage"
	"github.com/partscope/partscope/partscope/storage/sqlbuilder"
)

// Source reads the catalog from a table inside a dedicated Postgres schema.
type Source struct {
	DSN    string
	Schema string // pinned first on search_path
	Table  string
	Logger *zap.Logger
}

func New(dsn, schema string) *Source {
	return &Source{DSN: dsn, Schema: schema, Table: storage.DefaultTable, Logger: zap.NewNop()}
}

func (s *Source) Backend() storage.Backend { return storage.BackendPostgres }

func (s *Source) Name() string { return "postgres:" + s.Schema }

func (s *Source) PlaceholderStyle() sqlbuilder.PlaceholderStyle { return sqlbuilder.PlaceholderDollar }

var schemaNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func quoteIdent(ident string) string {
	return `"` + ident + `"`
}

// Connect opens a connection with search_path set to the schema. When create is
// true the schema is created first.
func (s *Source) Connect(ctx context.Context, create bool) (*sql.DB, error) {
	if !schemaNameRe.MatchString(s.Schema) {
		return nil, partscope.ConfigError("postgres_schema",
			fmt.Sprintf("invalid postgres schema name %q (must match %s)", s.Schema, schemaNameRe.String()))
	}
	if create {
		if err := s.ensureSchema(ctx); err != nil {
			return nil, err
		}
	}

	cfg, err := pgx.ParseConfig(s.DSN)
	if err != nil {
		return nil, partscope.Wrap(partscope.ErrConfig, "parse postgres dsn", err)
	}
	if cfg.RuntimeParams == nil {
		cfg.RuntimeParams = make(map[string]string)
	}
	cfg.RuntimeParams["search_path"] = fmt.Sprintf("%s,public", quoteIdent(s.Schema))

	db := stdlib.OpenDB(*cfg)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, partscope.Wrap(partscope.ErrSQL, "ping postgres", err)
	}
	return db, nil
}

func (s *Source) ensureSchema(ctx context.Context) error {
	cfg, err := pgx.ParseConfig(s.DSN)
	if err != nil {
		return partscope.Wrap(partscope.ErrConfig, "parse postgres dsn", err)
	}
	db := stdlib.OpenDB(*cfg)
	defer db.Close()
	if _, err := db.ExecContext(ctx, "CREATE SCHEMA IF NOT EXISTS "+quoteIdent(s.Schema)); err != nil {
		return partscope.Wrap(partscope.ErrSQL, "create schema", err)
	}
	return nil
}

func (s *Source) Load(ctx context.Context) ([]partscope.Record, error) {
	db, err := s.Connect(ctx, false)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	records, skipped, err := storage.LoadTable(ctx, db, s.table())
	if err != nil {
		return nil, err
	}
	s.logger().Debug("catalog loaded",
		zap.String("schema", s.Schema),
		zap.String("table", s.table()),
		zap.Int("records", len(records)),
		zap.Int("skipped", skipped))
	return records, nil
}

// WriteCatalog replaces the catalog table with records, creating schema and table as needed.
func (s *Source) WriteCatalog(ctx context.Context, records []partscope.Record) error {
	db, err := s.Connect(ctx, true)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := storage.WriteRecords(ctx, db, s.PlaceholderStyle(), s.table(), records); err != nil {
		return err
	}
	s.logger().Info("catalog written",
		zap.String("schema", s.Schema),
		zap.String("table", s.table()),
		zap.Int("records", len(records)))
	return nil
}

func (s *Source) table() string {
	if s.Table == "" {
		return storage.DefaultTable
	}
	return s.Table
}

func (s *Source) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
