package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/partscope/partscope/partscope"
	"github.com/partscope/partscope/partscope/storage"
	"github.com/partscope/partscope/partscope/storage/sqlbuilder"
)

// DefaultDriver is the pure-Go modernc.org/sqlite driver name. "sqlite3"
// selects github.com/mattn/go-sqlite3 when the binary registers it.
const DefaultDriver = "sqlite"

var pragmas = []string{
	"PRAGMA busy_timeout=5000",
	"PRAGMA foreign_keys=ON",
}

// Source reads the catalog from a table in a SQLite file.
type Source struct {
	Path       string
	DriverName string
	Table      string
	Logger     *zap.Logger
}

func New(path string) *Source {
	return NewWithDriver(path, DefaultDriver)
}

func NewWithDriver(path, driver string) *Source {
	if driver == "" {
		driver = DefaultDriver
	}
	return &Source{Path: path, DriverName: driver, Table: storage.DefaultTable, Logger: zap.NewNop()}
}

func (s *Source) Backend() storage.Backend { return storage.BackendSQLite }

func (s *Source) Name() string { return s.Path }

func (s *Source) PlaceholderStyle() sqlbuilder.PlaceholderStyle {
	return sqlbuilder.PlaceholderQuestion
}

// Connect opens the database and applies connection pragmas.
func (s *Source) Connect(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open(s.DriverName, s.Path)
	if err != nil {
		return nil, partscope.Wrap(partscope.ErrSQL, "open sqlite", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, partscope.Wrap(partscope.ErrSQL, "ping sqlite", err)
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, partscope.Wrap(partscope.ErrSQL, fmt.Sprintf("apply %q", p), err)
		}
	}
	return db, nil
}

func (s *Source) Load(ctx context.Context) ([]partscope.Record, error) {
	db, err := s.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	records, skipped, err := storage.LoadTable(ctx, db, s.table())
	if err != nil {
		return nil, err
	}
	s.logger().Debug("catalog loaded",
		zap.String("path", s.Path),
		zap.String("driver", s.DriverName),
		zap.String("table", s.table()),
		zap.Int("records", len(records)),
		zap.Int("skipped", skipped))
	return records, nil
}

// WriteCatalog replaces the catalog table with records.
func (s *Source) WriteCatalog(ctx context.Context, records []partscope.Record) error {
	db, err := s.Connect(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := storage.WriteRecords(ctx, db, s.PlaceholderStyle(), s.table(), records); err != nil {
		return err
	}
	s.logger().Info("catalog written",
		zap.String("path", s.Path),
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
