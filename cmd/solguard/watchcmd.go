package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/solguard/solguard/engine"
	"github.com/solguard/solguard/watch"
)

type watchParams struct {
	configPath string
	format     string
	include    []string
	exclude    []string
}

var watchFlags watchParams

var watchCommand = &cobra.Command{
	Use:   "watch <path>...",
	Short: "Re-run analysis whenever a watched file changes",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runWatch(args, &watchFlags, os.Stdout)
	},
}

func init() {
	f := watchCommand.Flags()
	f.StringVarP(&watchFlags.configPath, "config", "c", "", "path to a solguard config file (defaults to the recommended preset)")
	f.StringVar(&watchFlags.format, "format", "stylish", "output format: stylish, json")
	f.StringSliceVar(&watchFlags.include, "include", nil, "glob patterns to include (default *.sol)")
	f.StringSliceVar(&watchFlags.exclude, "exclude", nil, "glob patterns to exclude")

	RootCommand.AddCommand(watchCommand)
}

func runWatch(roots []string, p *watchParams, stdout io.Writer) error {
	log := newLogger()

	cfg, err := loadConfig(p.configPath, ".")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	e, err := newEngine(log, false)
	if err != nil {
		return fmt.Errorf("building engine: %w", err)
	}

	runOnce := func(ctx context.Context, _ []string) {
		files, err := resolveFiles(roots, p.include, p.exclude)
		if err != nil {
			log.Errorf("resolving files: %v", err)
			return
		}
		agg, err := e.Analyze(ctx, files, cfg, engine.Options{})
		if err != nil {
			log.Errorf("analyzing: %v", err)
			return
		}
		out, err := render(p.format, agg)
		if err != nil {
			log.Errorf("rendering report: %v", err)
			return
		}
		fmt.Fprint(stdout, out)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	runOnce(ctx, nil)

	w := watch.New(roots, runOnce, log, 0)
	if err := w.Start(ctx); err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}

	<-ctx.Done()
	return nil
}
