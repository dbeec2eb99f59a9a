package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blazemetrics/bmdocs/pkg/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create or edit the config file interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := config.Load(cfgFile)
		if err != nil {
			fmt.Printf("Ignoring unreadable config: %v\n", err)
			base = config.DefaultConfig()
		}
		cfg, err := config.RunWizard(base)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := cfg.Save(cfgFile); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", cfgFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
