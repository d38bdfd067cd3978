package jsonfile

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/partscope/partscope/partscope"
	"github.com/partscope/partscope/partscope/storage"
)

// Source reads the catalog from a devices.json file.
type Source struct {
	Path   string
	Logger *zap.Logger
}

func New(path string) *Source {
	return &Source{Path: path, Logger: zap.NewNop()}
}

func (s *Source) Backend() storage.Backend { return storage.BackendJSON }

func (s *Source) Name() string { return s.Path }

func (s *Source) Load(ctx context.Context) ([]partscope.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, partscope.Wrap(partscope.ErrIO, "open catalog file", err)
	}
	defer f.Close()

	records, skipped, err := storage.DecodeRecords(f)
	if err != nil {
		return nil, err
	}
	s.logger().Debug("catalog loaded",
		zap.String("path", s.Path),
		zap.Int("records", len(records)),
		zap.Int("skipped", skipped))
	return records, nil
}

func (s *Source) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
