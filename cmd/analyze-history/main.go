package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/anomredux/histime/internal/config"
	"github.com/anomredux/histime/internal/domain"
	"github.com/anomredux/histime/internal/observability"
	"github.com/anomredux/histime/internal/parser"
	"github.com/anomredux/histime/internal/report"
	"github.com/anomredux/histime/internal/sampler"
)

// version is set by goreleaser via ldflags.
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("analyze-history", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath  = fs.String("config", config.DefaultPath(), "config file path (.toml, .yaml or .yml)")
		jsonOut     = fs.Bool("json", false, "output JSON instead of the text report")
		seed        = fs.Int64("seed", 0, "random seed for command sampling (0 = random)")
		verbose     = fs.Bool("v", false, "log parse diagnostics to stderr")
		showVersion = fs.Bool("version", false, "print version and exit")
	)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: analyze-history [flags] FILE...\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintln(stdout, "analyze-history", version)
		return 0
	}

	paths := fs.Args()
	if len(paths) == 0 {
		fs.Usage()
		return 2
	}

	observability.SetEnabled(*verbose)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return 1
	}

	executions, err := parser.ParseFiles(paths)
	if err != nil {
		observability.Error("parse.failed", nil, err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	agg := domain.Aggregate(executions, cfg.AggregateOptions())
	observability.Info("aggregate.done", map[string]any{
		"executions": len(executions),
		"commands":   len(agg.Setup),
	})

	rep := report.Build(paths, agg, cfg, sampler.NewSource(*seed))

	if *jsonOut {
		err = report.WriteJSON(stdout, rep)
	} else {
		err = report.WriteText(stdout, rep, cfg.Report.Color)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error writing output: %v\n", err)
		return 1
	}
	return 0
}
