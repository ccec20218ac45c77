// Package cmd implements the CLI application to prepare portfolio chart series.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/chartdata"
	"github.com/etnz/chartdata/config"
	"github.com/etnz/chartdata/renderer"
	"github.com/google/subcommands"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Commands lists the subcommands, in the order of the help message.
var Commands = []subcommands.Command{
	&rangeCmd{},
	&durationCmd{},
	&decimateCmd{},
	&sumCmd{},
	&lookupCmd{},
	&summaryCmd{},
	&chartCmd{},
	&topicCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&rangeCmd{}, "dates")
	c.Register(&durationCmd{}, "dates")

	c.Register(&decimateCmd{}, "series")
	c.Register(&sumCmd{}, "series")
	c.Register(&lookupCmd{}, "series")
	c.Register(&chartCmd{}, "series")

	c.Register(&summaryCmd{}, "reports")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "pcharts.yaml", "Path to the YAML configuration file")
var envFile = flag.String("env", ".env", "Path to a .env file with CHARTDATA_* overrides")

// loadConfig loads the app configuration, or exits the command with an error status.
func loadConfig() (*config.Config, subcommands.ExitStatus) {
	cfg, err := config.Load(*configFile, *envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration %q: %v\n", *configFile, err)
		return nil, subcommands.ExitFailure
	}
	return cfg, subcommands.ExitSuccess
}

// openInput opens a payload file, "-" is the standard input.
// Files ending with .gz or .zst are decompressed on the fly.
func openInput(name string) (io.ReadCloser, error) {
	var r io.ReadCloser = os.Stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("cannot open %q for reading: %w", name, err)
		}
		r = f
	}
	switch {
	case strings.HasSuffix(name, ".gz"):
		zr, err := gzip.NewReader(r)
		if err != nil {
			r.Close()
			return nil, fmt.Errorf("cannot read gzip %q: %w", name, err)
		}
		return readCloser{zr, r}, nil
	case strings.HasSuffix(name, ".zst"):
		zr, err := zstd.NewReader(r)
		if err != nil {
			r.Close()
			return nil, fmt.Errorf("cannot read zstd %q: %w", name, err)
		}
		return readCloser{zr.IOReadCloser(), r}, nil
	default:
		return r, nil
	}
}

// readCloser closes a decompressor and its underlying file.
type readCloser struct {
	io.ReadCloser
	file io.Closer
}

func (r readCloser) Close() error {
	err := r.ReadCloser.Close()
	if ferr := r.file.Close(); err == nil {
		err = ferr
	}
	return err
}

// readSeries decodes a payload file and checks it is sorted in that order.
func readSeries(name, path string, order chartdata.Order) (chartdata.Series, error) {
	r, err := openInput(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	s, err := chartdata.Decode(r, path)
	if err != nil {
		return nil, fmt.Errorf("cannot decode %q: %w", name, err)
	}
	if err := s.Validate(order); err != nil {
		return nil, fmt.Errorf("series %q is not %v: %w", name, order, err)
	}
	if len(s) == 0 {
		log.Printf("warning, series %q is empty", name)
	}
	return s, nil
}

// readAll reads every payload file named in args.
func readAll(args []string, path string, order chartdata.Order) ([]chartdata.Series, error) {
	series := make([]chartdata.Series, 0, len(args))
	for _, name := range args {
		s, err := readSeries(name, path, order)
		if err != nil {
			return nil, err
		}
		series = append(series, s)
	}
	return series, nil
}

// parseOrder parses the -order flag value.
func parseOrder(s string) (chartdata.Order, error) {
	switch strings.ToLower(s) {
	case "desc", "descending":
		return chartdata.Descending, nil
	case "asc", "ascending":
		return chartdata.Ascending, nil
	default:
		return chartdata.Descending, fmt.Errorf("unknown order %q want asc or desc", s)
	}
}

// writeSeries prints s as JSON or, if asMarkdown, as a markdown table.
func writeSeries(title string, s chartdata.Series, asMarkdown bool, currency string) subcommands.ExitStatus {
	if asMarkdown {
		printMarkdown(renderer.SeriesMarkdown(title, s, currency))
		return subcommands.ExitSuccess
	}
	if err := chartdata.EncodeSeries(os.Stdout, s); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing series: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown for the terminal, or prints it raw if it cannot.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Print(out)
			return
		}
	}
	log.Printf("warning, cannot render markdown: %v", err)
	fmt.Print(md)
}
