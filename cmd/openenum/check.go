package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"openenum/internal/gen"
)

var checkCmd = &cobra.Command{
	Use:   "check [packages]",
	Short: "Verify that generated files are up to date",
	Long: `Regenerate every definition in memory and compare the result with the
committed files. Exits non-zero when a file is missing or out of date.`,
	Args: cobra.ArbitraryArgs,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
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

	var stale int
	for _, f := range files {
		existing, err := os.ReadFile(f.Path())

		switch {
		case errors.Is(err, fs.ErrNotExist):
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", f.Path(), color.RedString("missing"))

			stale++
		case err != nil:
			return fmt.Errorf("reading %s: %w", f.Path(), err)
		case !bytes.Equal(existing, f.Content):
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", f.Path(), color.YellowString("out of date"))
			printDiff(cmd, string(existing), string(f.Content))

			stale++
		}
	}

	if stale > 0 {
		return fmt.Errorf("%d file(s) need regeneration", stale)
	}

	if !isQuiet(cmd) {
		fmt.Fprintf(cmd.OutOrStdout(), "%d file(s) up to date\n", len(files))
	}

	return nil
}

// printDiff shows a character level diff between the committed and the
// regenerated content. The pretty form relies on ANSI colors, so it is
// skipped when color is off.
func printDiff(cmd *cobra.Command, existing, want string) {
	if color.NoColor {
		return
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(existing, want, true)

	fmt.Fprintln(cmd.OutOrStdout(), dmp.DiffPrettyText(diffs))
}
