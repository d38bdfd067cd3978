package cliopt

import (
	"flag"
	"io"
	"os"
)

// GlobalOptions are parsed once at the CLI root and passed to subcommands.
// Empty string options leave the configured value in place.
//
// NOTE: This is a separate package to avoid import cycles between the root
// command router and per-command code.
type GlobalOptions struct {
	ConfigPath string
	Backend    string
	Path       string
	Table      string
	LogLevel   string

	Format  string
	Metrics bool

	Stdout io.Writer
	Stderr io.Writer
}

func DefaultGlobalOptions() GlobalOptions {
	return GlobalOptions{
		ConfigPath: os.Getenv("PARTSCOPE_CONFIG"),
		Format:     "pretty",
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
	}
}

func BindGlobalFlags(fs *flag.FlagSet, g *GlobalOptions) {
	fs.StringVar(&g.ConfigPath, "config", g.ConfigPath, "config file (yaml); env PARTSCOPE_CONFIG")

	fs.StringVar(&g.Backend, "backend", g.Backend, "catalog backend: json|sqlite|postgres|s3")
	fs.StringVar(&g.Path, "path", g.Path, "catalog file for the json and sqlite backends")
	fs.StringVar(&g.Table, "table", g.Table, "catalog table for the sql backends")

	fs.StringVar(&g.LogLevel, "log-level", g.LogLevel, "log level: debug|info|warn|error")
	fs.StringVar(&g.Format, "format", g.Format, "output format: pretty|json|yaml")
	fs.BoolVar(&g.Metrics, "metrics", g.Metrics, "dump prometheus metrics to stderr on exit")
}
