package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/chartdata"
	"github.com/google/subcommands"
)

type decimateCmd struct {
	every    int
	kind     string
	order    string
	path     string
	markdown bool
}

func (*decimateCmd) Name() string     { return "decimate" }
func (*decimateCmd) Synopsis() string { return "thin a series for charting" }
func (*decimateCmd) Usage() string {
	return `pcharts decimate [-every n] [-kind value|price] [-order desc|asc] [-path <jsonpath>] [-md] <file>

  Reads a series payload (- for stdin) and prints it ascending, keeping its
  endpoints and every n-th point. Value series also keep every point where the
  value changes.
`
}

func (c *decimateCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.every, "every", chartdata.CoarseDecimation, "keep every n-th interior point")
	f.StringVar(&c.kind, "kind", chartdata.ValueChart.String(), "series kind (value, price)")
	f.StringVar(&c.order, "order", "desc", "order of the payload (desc, asc)")
	f.StringVar(&c.path, "path", "", "JSONPath of the series in the payload")
	f.BoolVar(&c.markdown, "md", false, "print a markdown table instead of JSON")
}

func (c *decimateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "exactly one series file must be provided")
		return subcommands.ExitUsageError
	}
	kind, err := chartdata.ParseKind(c.kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -kind: %v\n", err)
		return subcommands.ExitUsageError
	}
	order, err := parseOrder(c.order)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -order: %v\n", err)
		return subcommands.ExitUsageError
	}
	cfg, status := loadConfig()
	if cfg == nil {
		return status
	}

	s, err := readSeries(f.Arg(0), c.path, order)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	points := s.Ascending()
	switch kind {
	case chartdata.PriceChart:
		points = chartdata.DecimateUniform(points, c.every)
	default:
		points = chartdata.DecimateKeepingTransitions(points, c.every)
	}
	return writeSeries(f.Arg(0), points, c.markdown, cfg.Currency)
}
