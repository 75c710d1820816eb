// Package main provides the CLI entrypoint for openenum.
//
// openenum is a source-to-source generator that turns annotated enum
// definitions into open enums:
//   - Scans packages for //openenum:value definitions behind a build tag
//   - Resolves member discriminants against a running counter
//   - Generates struct-backed enum types with a fallback constructor
//   - Checks committed output for staleness
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:          "openenum",
	Short:        "Open enum code generator",
	Long:         `openenum generates Go enum types that keep values outside the known members representable through a fallback constructor.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		if noColor, err := cmd.Flags().GetBool("no-color"); err == nil && noColor {
			color.NoColor = true
		}
	},
}

func main() {
	rootCmd.Version = version

	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(initCmd)

	rootCmd.PersistentFlags().String("config", "", "path to config file (default .openenum.yaml)")
	rootCmd.PersistentFlags().String("suffix", "", "output filename suffix (overrides config)")
	rootCmd.PersistentFlags().String("tag", "", "definition build tag (overrides config)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	rootCmd.PersistentFlags().Bool("quiet", false, "only report errors")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
