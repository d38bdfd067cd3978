package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partscope/partscope/partscope"
	"github.com/partscope/partscope/partscope/storage"
)

func TestSource_InvalidSchema(t *testing.T) {
	_, err := New("postgres://localhost/x", "bad-schema").Load(context.Background())
	assert.True(t, partscope.IsKind(err, partscope.ErrConfig))
}

func TestSource_Name(t *testing.T) {
	src := New("postgres://localhost/x", "parts")
	assert.Equal(t, "postgres:parts", src.Name())
	assert.Equal(t, storage.BackendPostgres, src.Backend())
}

func TestSource_RoundTrip(t *testing.T) {
	dsn := os.Getenv("PARTSCOPE_TEST_PG_DSN")
	if dsn == "" {
		t.Skip("PARTSCOPE_TEST_PG_DSN not set")
	}
	ctx := context.Background()
	schema := "partscope_test_" + uuid.NewString()[:8]
	src := New(dsn, schema)

	records := []partscope.Record{
		{ID: 2, PartNumber: "B", Manufacturer: "Vishay", BreakdownVoltage: 60, Automotive: "Yes"},
		{ID: 1, PartNumber: "A", Manufacturer: "Infineon", BreakdownVoltage: 30, TypicalOnResistance: partscope.Float(0.01)},
	}
	require.NoError(t, src.WriteCatalog(ctx, records))
	t.Cleanup(func() {
		db, err := src.Connect(ctx, false)
		if err == nil {
			_, _ = db.ExecContext(ctx, "DROP SCHEMA "+quoteIdent(schema)+" CASCADE")
			_ = db.Close()
		}
	})

	got, err := src.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, records[1], got[0])
	assert.Equal(t, records[0], got[1])
}
