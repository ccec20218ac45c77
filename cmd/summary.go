package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/chartdata"
	"github.com/etnz/chartdata/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	window string
	policy string
	path   string
	title  string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "summarize the total of several series" }
func (*summaryCmd) Usage() string {
	return `pcharts summary [-w <duration>] [-policy aligned|forward-fill] [-path <jsonpath>] [-t <title>] <file>...

  Sums descending series payloads and reports the first, last, min and max
  values of the total over the window -w, with its change and return.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.window, "w", "max", "window (10d, 3m, 1y, max)")
	f.StringVar(&c.policy, "policy", chartdata.ForwardFill.String(), "merge policy (aligned, forward-fill)")
	f.StringVar(&c.path, "path", "", "JSONPath of the series in each payload")
	f.StringVar(&c.title, "t", "Summary", "report title")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "at least one series file must be provided")
		return subcommands.ExitUsageError
	}
	window, err := chartdata.ParseDuration(c.window)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -w: %v\n", err)
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

	series, err := readAll(f.Args(), c.path, chartdata.Descending)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	total := chartdata.Merge(policy, series)
	if last, ok := total.Last(); ok {
		total = total.Clip(cfg.Settings().Window(window, last.Date))
	}
	printMarkdown(renderer.SummaryMarkdown(c.title, chartdata.Summarize(total), cfg.Currency))
	return subcommands.ExitSuccess
}
