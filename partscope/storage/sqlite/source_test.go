package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/partscope/partscope/partscope"
	"github.com/partscope/partscope/partscope/storage"
)

func testRecords() []partscope.Record {
	return []partscope.Record{
		{
			ID:               20,
			PartNumber:       "SQJ456EP",
			Manufacturer:     "Vishay",
			Automotive:       "Yes",
			BreakdownVoltage: 40,
			OnResistance:     [partscope.OnResistanceConditions]*float64{partscope.Float(0.5), nil, partscope.Float(0.3), nil},
		},
		{
			ID:                  10,
			PartNumber:          "IRF540N",
			Manufacturer:        "Infineon",
			Package:             "TO-220",
			Material:            "Si",
			BreakdownVoltage:    100,
			ThresholdVoltage:    partscope.Float(3),
			TypicalOnResistance: partscope.Float(0.04),
		},
	}
}

func TestSource_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.db")

	src := New(path)
	assert.Equal(t, storage.BackendSQLite, src.Backend())
	require.NoError(t, src.WriteCatalog(ctx, testRecords()))

	got, err := src.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// ordered by did
	assert.Equal(t, partscope.RecordID(10), got[0].ID)
	assert.Equal(t, testRecords()[1], got[0])
	assert.Equal(t, testRecords()[0], got[1])
	assert.Empty(t, got[1].Package)
	assert.Nil(t, got[1].ThresholdVoltage)
}

func TestSource_WriteCatalogReplaces(t *testing.T) {
	ctx := context.Background()
	src := New(filepath.Join(t.TempDir(), "catalog.db"))

	require.NoError(t, src.WriteCatalog(ctx, testRecords()))
	require.NoError(t, src.WriteCatalog(ctx, testRecords()[:1]))

	got, err := src.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, partscope.RecordID(20), got[0].ID)
}

func TestSource_SkipsNullIDs(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.db")

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	ddl, err := storage.CreateTableSQL("parts")
	require.NoError(t, err)
	// sqlite allows NULL in a non-INTEGER primary key column
	_, err = db.Exec(ddl)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO parts (did, partno, vds) VALUES (1, 'A', 30), (NULL, 'B', 40)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	src := New(path)
	src.Table = "parts"
	got, err := src.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].PartNumber)
	assert.Equal(t, 30.0, got[0].BreakdownVoltage)
}

func TestSource_Errors(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "empty.db")

	_, err := New(path).Load(ctx)
	assert.True(t, partscope.IsKind(err, partscope.ErrSQL), "missing table: %v", err)

	src := New(path)
	src.Table = "devices; DROP TABLE x"
	_, err = src.Load(ctx)
	assert.True(t, partscope.IsKind(err, partscope.ErrConfig))

	_, err = NewWithDriver(path, "nope").Load(ctx)
	assert.True(t, partscope.IsKind(err, partscope.ErrSQL))
}
