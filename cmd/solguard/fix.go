package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/solguard/solguard/fix"
)

type fixParams struct {
	configPath string
	include    []string
	exclude    []string
	dryRun     bool
	backupExt  string
}

var fixFlags fixParams

var fixCommand = &cobra.Command{
	Use:   "fix <path>...",
	Short: "Apply automatic fixes for fixable findings",
	Args:  cobra.MinimumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		os.Exit(runFix(args, &fixFlags, os.Stdout, os.Stderr))
	},
}

func init() {
	f := fixCommand.Flags()
	f.StringVarP(&fixFlags.configPath, "config", "c", "", "path to a solguard config file (defaults to the recommended preset)")
	f.StringSliceVar(&fixFlags.include, "include", nil, "glob patterns to include (default *.sol)")
	f.StringSliceVar(&fixFlags.exclude, "exclude", nil, "glob patterns to exclude")
	f.BoolVar(&fixFlags.dryRun, "dry-run", false, "print the diff that would be applied without writing any file")
	f.StringVar(&fixFlags.backupExt, "backup-ext", "", "if set, back up each modified file to path+ext before overwriting")

	RootCommand.AddCommand(fixCommand)
}

// runFix applies fixable findings across roots and returns a process exit
// code: 0 clean, 2 on a usage or I/O failure.
func runFix(roots []string, p *fixParams, stdout, stderr io.Writer) int {
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

	e, err := newEngine(log, true)
	if err != nil {
		fmt.Fprintf(stderr, "building engine: %v\n", err)
		return 2
	}

	for _, path := range files {
		res, err := e.AnalyzeFile(context.Background(), path, cfg)
		if err != nil {
			fmt.Fprintf(stderr, "analyzing %s: %v\n", path, err)
			return 2
		}

		original, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(stderr, "reading %s: %v\n", path, err)
			return 2
		}

		applied := fix.Apply(string(original), res.Issues)
		if len(applied.Applied) == 0 {
			continue
		}
		for _, s := range applied.Skipped {
			log.WithField("rule", s.RuleID).Warnf("skipped fix in %s: %s", path, s.Reason)
		}

		if p.dryRun {
			fmt.Fprint(stdout, fix.Diff(path, string(original), applied.Text))
			continue
		}

		if err := fix.Write(path, applied.Text, fix.WriteOptions{BackupExtension: p.backupExt}); err != nil {
			fmt.Fprintf(stderr, "writing %s: %v\n", path, err)
			return 2
		}
		fmt.Fprintf(stdout, "fixed %d issue(s) in %s\n", len(applied.Applied), path)
	}

	return 0
}
