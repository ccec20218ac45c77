package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/chartdata"
	"github.com/etnz/chartdata/date"
	"github.com/google/subcommands"
)

type durationCmd struct {
	end string
}

func (*durationCmd) Name() string     { return "duration" }
func (*durationCmd) Synopsis() string { return "resolve chart durations to day counts" }
func (*durationCmd) Usage() string {
	return `pcharts duration [-d <date>] <duration>...

  For each duration (10d, 3m, 1y, 1y6m, max), prints the number of days, the date
  window ending on -d and the decimation factor charts of that window use.
`
}

func (c *durationCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.end, "d", date.Today().String(), "last day of the window")
}

func (c *durationCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "at least one duration must be provided")
		return subcommands.ExitUsageError
	}
	end, err := date.Parse(c.end)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -d: %v\n", err)
		return subcommands.ExitUsageError
	}
	cfg, status := loadConfig()
	if cfg == nil {
		return status
	}
	settings := cfg.Settings()

	for _, arg := range f.Args() {
		d, err := chartdata.ParseDuration(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing duration: %v\n", err)
			return subcommands.ExitUsageError
		}
		days := settings.WindowDays(d)
		fmt.Printf("%s\t%d days\t%s\tevery %d\n", d, days, settings.Window(d, end), settings.DecimationEvery(days))
	}
	return subcommands.ExitSuccess
}
