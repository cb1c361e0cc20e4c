package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/solguard/solguard/configloader"
	"github.com/solguard/solguard/rules"
)

type initParams struct {
	preset string
	output string
}

var initFlags initParams

var initCommand = &cobra.Command{
	Use:   "init",
	Short: "Write a starter solguard config file",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runInit(&initFlags)
	},
}

func init() {
	f := initCommand.Flags()
	f.StringVar(&initFlags.preset, "preset", "recommended", "preset the starter config extends: recommended, strict, minimal")
	f.StringVarP(&initFlags.output, "output", "o", "solguard.yaml", "path to write the config file to")

	RootCommand.AddCommand(initCommand)
}

func runInit(p *initParams) error {
	if _, ok := rules.NewPresetRegistry().Preset(p.preset); !ok {
		return fmt.Errorf("unknown preset %q", p.preset)
	}

	if _, err := os.Stat(p.output); err == nil {
		return fmt.Errorf("%s already exists; remove it or pass --output", p.output)
	}

	contents, err := configloader.WriteStarter("solguard:" + p.preset)
	if err != nil {
		return fmt.Errorf("building starter config: %w", err)
	}

	if err := os.WriteFile(p.output, contents, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", p.output, err)
	}

	fmt.Printf("wrote %s extending the %q preset\n", p.output, p.preset)
	return nil
}
