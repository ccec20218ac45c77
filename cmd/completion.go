package cmd

import (
	"flag"

	"github.com/etnz/chartdata/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagPredictors completes the values of flags shared by several commands.
var flagPredictors = map[string]complete.Predictor{
	"kind":   predict.Set{"value", "price"},
	"policy": predict.Set{"aligned", "forward-fill"},
	"order":  predict.Set{"desc", "asc"},
	"w":      predict.Set{"10d", "1m", "3m", "6m", "1y", "5y", "max"},
	"config": predict.Files("*.yaml"),
	"env":    predict.Files("*.env"),
}

// Completion returns the shell completion tree of the subcommands.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub: map[string]*complete.Command{
			"help":     {Args: predict.Set(commandNames())},
			"flags":    {Args: predict.Set(commandNames())},
			"commands": {},
		},
		Flags: map[string]complete.Predictor{
			"config": flagPredictors["config"],
			"env":    flagPredictors["env"],
		},
	}
	for _, c := range Commands {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)

		sub := &complete.Command{
			Flags: map[string]complete.Predictor{},
			Args:  predict.Files("*.json*"),
		}
		fs.VisitAll(func(f *flag.Flag) {
			p, ok := flagPredictors[f.Name]
			if !ok {
				p = predict.Something
			}
			sub.Flags[f.Name] = p
		})
		switch c.Name() {
		case "range", "duration":
			sub.Args = predict.Nothing
		case "topic":
			topics, _ := docs.All()
			sub.Args = predict.Set(append(topics, "*"))
		}
		root.Sub[c.Name()] = sub
	}
	return root
}

func commandNames() []string {
	names := make([]string, 0, len(Commands))
	for _, c := range Commands {
		names = append(names, c.Name())
	}
	return names
}
