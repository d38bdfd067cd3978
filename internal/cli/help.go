package cli

import (
	"fmt"
	"io"
)

func PrintRootHelp(w io.Writer) {
	fmt.Fprintln(w, `partscope - facet filtering over a power MOSFET catalog

USAGE
  partscope [global flags] <command> [args]

GLOBAL FLAGS
  --config <file.yaml>       (env PARTSCOPE_CONFIG)
  --backend json|sqlite|postgres|s3
  --path <devices.json|catalog.db>
  --table <name>
  --format pretty|json|yaml
  --log-level debug|info|warn|error
  --metrics                  dump prometheus metrics to stderr on exit

COMMANDS
  dims                       list dimensions, ranges and numeric fields
  facets -d <dimension>      facet options; --counts for counts over the filtered set
  filter                     filtered records; --select <id>, --select-all, --x/--y/--scale/--zoom
  stats -f <field>           count/min/max/avg/median over the filtered set
  import --out <file.db>     copy the catalog into sqlite (or --to postgres)

FILTER FLAGS (facets, filter, stats)
  --manufacturer, --package, --mounting, --channel, --configuration, --material,
  --part-status, --industry-package, --product-package, --qualification <value>  (repeatable)
  --vds-min/--vds-max, --rdson-min/--rdson-max, --vth-min/--vth-max <number>
  --search <part number substring>
  --defaults                 start from every option selected (absent values are then excluded)

Run "partscope <command> --help" for command flags.`)
}
