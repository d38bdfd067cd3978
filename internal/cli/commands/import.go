package commands

import (
	"context"
	"flag"
	"fmt"

	"github.com/partscope/partscope/internal/catalog"
	"github.com/partscope/partscope/internal/cliopt"
	"github.com/partscope/partscope/partscope/storage"
	"github.com/partscope/partscope/partscope/storage/postgres"
	"github.com/partscope/partscope/partscope/storage/sqlite"
)

// RunImport copies the configured catalog into a SQLite file or a Postgres schema.
func RunImport(g cliopt.GlobalOptions, argv []string) int {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	fs.SetOutput(g.Stderr)
	var to, out, driver, table, schema string
	fs.StringVar(&to, "to", "sqlite", "target: sqlite|postgres")
	fs.StringVar(&out, "out", "", "sqlite target file")
	fs.StringVar(&driver, "driver", sqlite.DefaultDriver, "sqlite driver: sqlite|sqlite3")
	fs.StringVar(&table, "into-table", storage.DefaultTable, "target table")
	fs.StringVar(&schema, "schema", "", "postgres target schema (default: configured schema)")
	if err := fs.Parse(argv); err != nil {
		return 2
	}
	if err := storage.ValidateTable(table); err != nil {
		fmt.Fprintln(g.Stderr, err)
		return 2
	}

	rt, code := start(g)
	if rt == nil {
		return code
	}
	defer rt.finish()

	var w catalog.Writer
	var target string
	switch to {
	case "sqlite":
		if out == "" {
			fmt.Fprintln(g.Stderr, "missing --out")
			return 2
		}
		dst := sqlite.NewWithDriver(out, driver)
		dst.Table = table
		dst.Logger = rt.logger
		w, target = dst, dst.Name()
	case "postgres":
		if rt.cfg.Catalog.PostgresDSN == "" {
			fmt.Fprintln(g.Stderr, "PARTSCOPE_POSTGRES_DSN is required for --to postgres")
			return 2
		}
		if schema == "" {
			schema = rt.cfg.Catalog.PostgresSchema
		}
		dst := postgres.New(rt.cfg.Catalog.PostgresDSN, schema)
		dst.Table = table
		dst.Logger = rt.logger
		w, target = dst, dst.Name()
	default:
		fmt.Fprintf(g.Stderr, "unknown --to %q\n", to)
		return 2
	}

	ctx := context.Background()
	c, err := rt.catalog(ctx)
	if err != nil {
		fmt.Fprintln(g.Stderr, err)
		return 1
	}
	if err := w.WriteCatalog(ctx, c.Records()); err != nil {
		fmt.Fprintln(g.Stderr, err)
		return 1
	}

	summary := map[string]any{"target": target, "table": table, "records": c.Len()}
	return rt.print(summary, func() {
		fmt.Fprintf(g.Stdout, "Imported %d records into %s (table %s)\n", c.Len(), target, table)
	})
}
