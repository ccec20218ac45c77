package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/chartdata/cmd"
	"github.com/google/subcommands"
)

func main() {
	name := path.Base(os.Args[0])
	// Exits when invoked by the shell to complete the command line.
	cmd.Completion().Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
