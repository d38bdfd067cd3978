package storage

import (
	"context"

	"github.com/partscope/partscope/partscope"
)

type Backend string

const (
	BackendJSON     Backend = "json"
	BackendSQLite   Backend = "sqlite"
	BackendPostgres Backend = "postgres"
	BackendS3       Backend = "s3"
)

// Backends lists every supported catalog backend.
func Backends() []Backend {
	return []Backend{BackendJSON, BackendSQLite, BackendPostgres, BackendS3}
}

// Source loads the full record catalog from one backend.
type Source interface {
	Backend() Backend
	// Name identifies the concrete location (file path, schema, object key).
	Name() string
	Load(ctx context.Context) ([]partscope.Record, error)
}
