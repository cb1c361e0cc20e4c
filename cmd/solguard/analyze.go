package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/solguard/solguard/engine"
	"github.com/solguard/solguard/formatter"
	"github.com/solguard/solguard/result"
)

type analyzeParams struct {
	configPath  string
	format      string
	include     []string
	exclude     []string
	noCache     bool
	concurrency int
}

var analyzeFlags analyzeParams

var analyzeCommand = &cobra.Command{
	Use:   "analyze <path>...",
	Short: "Analyze Solidity source files and report findings",
	Args:  cobra.MinimumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		os.Exit(analyze(args, &analyzeFlags, os.Stdout, os.Stderr))
	},
}

func init() {
	f := analyzeCommand.Flags()
	f.StringVarP(&analyzeFlags.configPath, "config", "c", "", "path to a solguard config file (defaults to the recommended preset)")
	f.StringVar(&analyzeFlags.format, "format", "stylish", "output format: stylish, json")
	f.StringSliceVar(&analyzeFlags.include, "include", nil, "glob patterns to include (default *.sol)")
	f.StringSliceVar(&analyzeFlags.exclude, "exclude", nil, "glob patterns to exclude")
	f.BoolVar(&analyzeFlags.noCache, "no-cache", false, "disable the per-file result cache")
	f.IntVar(&analyzeFlags.concurrency, "concurrency", runtime.GOMAXPROCS(0), "maximum number of files analyzed concurrently")

	RootCommand.AddCommand(analyzeCommand)
}

// analyze runs one analysis pass and writes the rendered report to stdout,
// returning the process exit code: 0 clean, 1 findings at ERROR severity, 2
// invalid usage or a parse-errors-only run.
func analyze(roots []string, p *analyzeParams, stdout, stderr io.Writer) int {
	log := newLogger()

	files, err := resolveFiles(roots, p.include, p.exclude)
	if err != nil {
		fmt.Fprintf(stderr, "resolving files: %v\n", err)
		return 2
	}
	if len(files) == 0 {
		fmt.Fprintln(stderr, "no Solidity files matched the given paths")
		return 2
	}

	cfg, err := loadConfig(p.configPath, ".")
	if err != nil {
		fmt.Fprintf(stderr, "loading config: %v\n", err)
		return 2
	}

	e, err := newEngine(log, p.noCache)
	if err != nil {
		fmt.Fprintf(stderr, "building engine: %v\n", err)
		return 2
	}

	agg, err := e.Analyze(context.Background(), files, cfg, engine.Options{MaxConcurrency: p.concurrency})
	if err != nil {
		fmt.Fprintf(stderr, "analyzing: %v\n", err)
		return 2
	}

	out, err := render(p.format, agg)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 2
	}
	fmt.Fprint(stdout, out)

	return agg.ExitCode()
}

func render(format string, agg *result.AggregateResult) (string, error) {
	switch format {
	case "stylish", "":
		return (formatter.Stylish{}).Format(agg)
	case "json":
		bs, err := json.MarshalIndent(agg, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshaling JSON report: %w", err)
		}
		return string(bs) + "\n", nil
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}
