package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/chartdata"
	"github.com/google/subcommands"
)

type sumCmd struct {
	policy   string
	path     string
	markdown bool
}

func (*sumCmd) Name() string     { return "sum" }
func (*sumCmd) Synopsis() string { return "sum several series into a total" }
func (*sumCmd) Usage() string {
	return `pcharts sum [-policy aligned|forward-fill] [-path <jsonpath>] [-md] <file>...

  Reads several descending series payloads and prints their ascending total.

  With -policy aligned, only the dates present in every series are summed.
  With -policy forward-fill, every day is summed, each series contributing its
  last known value.
`
}

func (c *sumCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.policy, "policy", chartdata.ForwardFill.String(), "merge policy (aligned, forward-fill)")
	f.StringVar(&c.path, "path", "", "JSONPath of the series in each payload")
	f.BoolVar(&c.markdown, "md", false, "print a markdown table instead of JSON")
}

func (c *sumCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "at least one series file must be provided")
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
	return writeSeries("Total", chartdata.Merge(policy, series), c.markdown, cfg.Currency)
}
