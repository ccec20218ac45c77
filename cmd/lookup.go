package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/chartdata"
	"github.com/etnz/chartdata/date"
	"github.com/etnz/chartdata/renderer"
	"github.com/google/subcommands"
)

type lookupCmd struct {
	on   string
	path string
	asOf bool
}

func (*lookupCmd) Name() string     { return "lookup" }
func (*lookupCmd) Synopsis() string { return "print the value of a series on a date" }
func (*lookupCmd) Usage() string {
	return `pcharts lookup -d <date> [-as-of] [-path <jsonpath>] <file>

  Prints the value of the descending series point closest to -d, as a chart
  cursor shows it. With -as-of, prints the last value on or before -d instead.
  Dates before the series starts give 0.
`
}

func (c *lookupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.on, "d", date.Today().String(), "date to look up")
	f.BoolVar(&c.asOf, "as-of", false, "use the last value on or before the date")
	f.StringVar(&c.path, "path", "", "JSONPath of the series in the payload")
}

func (c *lookupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "exactly one series file must be provided")
		return subcommands.ExitUsageError
	}
	on, err := date.Parse(c.on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -d: %v\n", err)
		return subcommands.ExitUsageError
	}
	cfg, status := loadConfig()
	if cfg == nil {
		return status
	}

	s, err := readSeries(f.Arg(0), c.path, chartdata.Descending)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	value := chartdata.NearestValue(on, s)
	if c.asOf {
		value, _ = chartdata.ValueAsOf(on, s)
	}
	fmt.Printf("%s\t%s\n", on, renderer.Amount(value, cfg.Currency))
	return subcommands.ExitSuccess
}
