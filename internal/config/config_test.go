package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partscope/partscope/partscope"
	"github.com/partscope/partscope/partscope/storage"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Catalog.Backend)
	assert.Equal(t, "devices.json", cfg.Catalog.Path)
	assert.Equal(t, "devices", cfg.Catalog.Table)
	assert.Equal(t, "sqlite", cfg.Catalog.SQLiteDriver)
	assert.Equal(t, "warn", cfg.Log.Level)

	plot, err := cfg.Plot.PlotConfig()
	require.NoError(t, err)
	assert.Equal(t, partscope.DefaultPlotConfig(), plot)
}

func TestLoad_FileWithEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partscope.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
catalog:
  backend: sqlite
  path: /data/catalog.db
  table: mosfets
log:
  level: debug
  format: json
plot:
  x_field: vthtyp
  scale: linear
`), 0o644))
	t.Setenv("PARTSCOPE_TABLE", "parts")
	t.Setenv("PARTSCOPE_POSTGRES_DSN", "postgres://u@h/db")

	cfg, err := Load(path)
	require.NoError(t, err)

	backend, err := cfg.Catalog.BackendKind()
	require.NoError(t, err)
	assert.Equal(t, storage.BackendSQLite, backend)
	assert.Equal(t, "/data/catalog.db", cfg.Catalog.Path)
	assert.Equal(t, "parts", cfg.Catalog.Table)
	assert.Equal(t, "postgres://u@h/db", cfg.Catalog.PostgresDSN)
	assert.Equal(t, "json", cfg.Log.Format)

	plot, err := cfg.Plot.PlotConfig()
	require.NoError(t, err)
	assert.Equal(t, "vthtyp", plot.XField)
	assert.Equal(t, "rdsontyp10vgs25ta", plot.YField)
	assert.Equal(t, partscope.ScaleLinear, plot.Scale)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"backend", map[string]string{"PARTSCOPE_BACKEND": "mongo"}},
		{"table", map[string]string{"PARTSCOPE_TABLE": "drop table"}},
		{"driver", map[string]string{"PARTSCOPE_SQLITE_DRIVER": "sqlite4"}},
		{"format", map[string]string{"PARTSCOPE_LOG_FORMAT": "xml"}},
		{"scale", map[string]string{"PARTSCOPE_PLOT_SCALE": "sqrt"}},
		{"zoom", map[string]string{"PARTSCOPE_PLOT_ZOOM": "z"}},
		{"axis", map[string]string{"PARTSCOPE_PLOT_X": " "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			assert.True(t, partscope.IsKind(err, partscope.ErrConfig), "got %v", err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.True(t, partscope.IsKind(err, partscope.ErrConfig))
}
