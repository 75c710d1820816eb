package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"openenum/internal/gen"
)

var genCmd = &cobra.Command{
	Use:   "gen [packages]",
	Short: "Generate open enum files",
	Long: `Generate one Go file per enum definition, next to its definition file.
Packages default to the patterns in the config file.`,
	Args: cobra.ArbitraryArgs,
	RunE: runGen,
}

func init() {
	genCmd.Flags().Bool("dry-run", false, "print intended output paths without writing")
}

func runGen(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	resolved, diags, err := runScan(cfg, args)
	if err != nil {
		return err
	}

	if err := reportDiags(cmd, diags); err != nil {
		return err
	}

	files, err := gen.NewGenerator(gen.GeneratorConfig{Suffix: cfg.Suffix}).GenerateAll(resolved)
	if err != nil {
		return err
	}

	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return fmt.Errorf("failed to get dry-run flag: %w", err)
	}

	if dryRun {
		for _, f := range files {
			fmt.Fprintln(cmd.OutOrStdout(), f.Path())
		}

		return nil
	}

	if err := gen.WriteFiles(files); err != nil {
		return err
	}

	if !isQuiet(cmd) {
		fmt.Fprintf(cmd.OutOrStdout(), "generated %d file(s)\n", len(files))
	}

	return nil
}
