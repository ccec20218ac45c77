package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/chartdata"
	"github.com/google/subcommands"
)

type chartCmd struct {
	window   string
	kind     string
	policy   string
	path     string
	markdown bool
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "prepare the points of a chart" }
func (*chartCmd) Usage() string {
	return `pcharts chart [-w <duration>] [-kind value|price] [-policy aligned|forward-fill] [-path <jsonpath>] [-md] <file>...

  Prepares descending series payloads for a chart of window -w: with several
  files, they are first summed with -policy. The result is ascending, clipped to
  the window and decimated according to the window length.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.window, "w", "3m", "window (10d, 3m, 1y, max)")
	f.StringVar(&c.kind, "kind", chartdata.ValueChart.String(), "series kind (value, price), totals are always values")
	f.StringVar(&c.policy, "policy", chartdata.ForwardFill.String(), "merge policy (aligned, forward-fill)")
	f.StringVar(&c.path, "path", "", "JSONPath of the series in each payload")
	f.BoolVar(&c.markdown, "md", false, "print a markdown table instead of JSON")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "at least one series file must be provided")
		return subcommands.ExitUsageError
	}
	window, err := chartdata.ParseDuration(c.window)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -w: %v\n", err)
		return subcommands.ExitUsageError
	}
	kind, err := chartdata.ParseKind(c.kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -kind: %v\n", err)
		return subcommands.ExitUsageError
	}
	policy, err := chartdata.ParseMergePolicy(c.policy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -policy: %v\n", err)
		return subcommands.ExitUsageError
	}
	cfg, status := loadConfig()
	if cfg == nil {
		return status
	}
	settings := cfg.Settings()

	series, err := readAll(f.Args(), c.path, chartdata.Descending)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	var points chartdata.Series
	if len(series) == 1 {
		points = settings.Prepare(series[0], kind, window)
	} else {
		points = settings.Total(series, policy, window)
	}
	return writeSeries(fmt.Sprintf("Chart %s", window), points, c.markdown, cfg.Currency)
}
