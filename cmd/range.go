package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/chartdata/date"
	"github.com/google/subcommands"
)

type rangeCmd struct {
	from   string
	to     string
	asJSON bool
}

func (*rangeCmd) Name() string     { return "range" }
func (*rangeCmd) Synopsis() string { return "list every calendar day between two dates" }
func (*rangeCmd) Usage() string {
	return `pcharts range -from <date> [-to <date>] [-json]

  Prints every day from -from to -to inclusive, one per line, or as a JSON list.
`
}

func (c *rangeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "first day of the range (YYYY-MM-DD)")
	f.StringVar(&c.to, "to", date.Today().String(), "last day of the range (YYYY-MM-DD)")
	f.BoolVar(&c.asJSON, "json", false, "print a JSON list of dates")
}

func (c *rangeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	from, err := date.Parse(c.from)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -from: %v\n", err)
		return subcommands.ExitUsageError
	}
	to, err := date.Parse(c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -to: %v\n", err)
		return subcommands.ExitUsageError
	}
	if to.Before(from) {
		fmt.Fprintf(os.Stderr, "-to %s is before -from %s\n", to, from)
		return subcommands.ExitUsageError
	}

	days := date.DailyStrings(from, to)
	if c.asJSON {
		if err := json.NewEncoder(os.Stdout).Encode(days); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing dates: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	for _, d := range days {
		fmt.Println(d)
	}
	return subcommands.ExitSuccess
}
