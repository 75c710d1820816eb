package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"openenum/internal/config"
	"openenum/internal/diagnostic"
	"openenum/internal/resolve"
	"openenum/internal/scan"
)

// loadConfig resolves the effective configuration from the config file
// and the command line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	var cfg *config.Config
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load(".")
	}

	if err != nil {
		return nil, err
	}

	suffix, err := cmd.Flags().GetString("suffix")
	if err != nil {
		return nil, fmt.Errorf("failed to get suffix flag: %w", err)
	}

	if suffix != "" {
		cfg.Suffix = suffix
	}

	tag, err := cmd.Flags().GetString("tag")
	if err != nil {
		return nil, fmt.Errorf("failed to get tag flag: %w", err)
	}

	if tag != "" {
		cfg.Tag = tag
	}

	return cfg, nil
}

// runScan loads the requested packages and resolves every definition
// found in them. Arguments take precedence over the configured package
// patterns. Definition problems land in the diagnostics, load failures
// come back as an error.
func runScan(cfg *config.Config, patterns []string) ([]*resolve.Resolved, *diagnostic.Diagnostics, error) {
	if len(patterns) == 0 {
		patterns = cfg.Packages
	}

	defs, diags, err := scan.NewScanner(cfg.Tag).Load(patterns...)
	if err != nil {
		return nil, nil, err
	}

	var resolved []*resolve.Resolved
	for _, def := range defs {
		r, err := resolve.Resolve(def)
		if err != nil {
			var me *resolve.MemberError
			if !errors.As(err, &me) {
				return nil, nil, err
			}

			diags.AddError("bad_int_literal", me.Err.Error(), me.Enum+"."+me.Member, me.Pos.String())

			continue
		}

		resolved = append(resolved, r)
	}

	return resolved, diags, nil
}

// reportDiags prints the collected diagnostics and turns errors into a
// command failure. Quiet mode drops everything below error severity.
func reportDiags(cmd *cobra.Command, diags *diagnostic.Diagnostics) error {
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	if quiet {
		diags = &diagnostic.Diagnostics{Errors: diags.Errors}
	}

	diagnostic.Fprint(cmd.ErrOrStderr(), diags)

	if diags.HasErrors() {
		return fmt.Errorf("%d definition error(s)", len(diags.Errors))
	}

	return nil
}

func isQuiet(cmd *cobra.Command) bool {
	quiet, err := cmd.Flags().GetBool("quiet")

	return err == nil && quiet
}
