package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/solguard/solguard/configloader"
)

type configParams struct {
	configPath string
}

var configFlags configParams

var configCommand = &cobra.Command{
	Use:   "config",
	Short: "Print the effective rule configuration as YAML",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runConfig(&configFlags)
	},
}

func init() {
	f := configCommand.Flags()
	f.StringVarP(&configFlags.configPath, "config", "c", "", "path to a solguard config file (defaults to the recommended preset)")

	RootCommand.AddCommand(configCommand)
}

func runConfig(p *configParams) error {
	cfg, err := loadConfig(p.configPath, ".")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	out, err := configloader.DumpEffective(cfg)
	if err != nil {
		return fmt.Errorf("rendering effective config: %w", err)
	}

	_, err = os.Stdout.Write(out)
	return err
}
