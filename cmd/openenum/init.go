package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"openenum/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long:  `Write a .openenum.yaml with the default settings to the current directory.`,
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, _ []string) error {
	if _, err := os.Stat(config.DefaultFile); err == nil {
		return fmt.Errorf("%s already exists", config.DefaultFile)
	}

	cfg := config.Default()
	if err := config.WriteFile(&cfg, config.DefaultFile); err != nil {
		return err
	}

	if !isQuiet(cmd) {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", config.DefaultFile)
	}

	return nil
}
