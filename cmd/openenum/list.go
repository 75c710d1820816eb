package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"openenum/internal/resolve"
)

var listCmd = &cobra.Command{
	Use:   "list [packages]",
	Short: "List enum definitions",
	Long:  `List every enum definition found in the scanned packages.`,
	Args:  cobra.ArbitraryArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().Bool("json", false, "print definitions as JSON")
}

// listEntry is one definition in list output.
type listEntry struct {
	Name      string `json:"name"`
	Package   string `json:"package"`
	Kind      string `json:"kind"`
	ValueType string `json:"value_type"`
	Fallback  string `json:"fallback"`
	Members   int    `json:"members"`
	File      string `json:"file"`
}

func runList(cmd *cobra.Command, args []string) error {
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

	entries := make([]listEntry, 0, len(resolved))
	for _, r := range resolved {
		entries = append(entries, listEntry{
			Name:      r.Def.ID.Name,
			Package:   r.Def.ID.PkgPath,
			Kind:      r.Kind.String(),
			ValueType: valueTypeString(r),
			Fallback:  r.Def.Args.Fallback,
			Members:   len(r.Members),
			File:      r.Def.File,
		})
	}

	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return fmt.Errorf("failed to get json flag: %w", err)
	}

	if asJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding definitions: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(data))

		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ENUM\tKIND\tVALUE\tFALLBACK\tMEMBERS\tFILE")

	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n", e.Name, e.Kind, e.ValueType, e.Fallback, e.Members, e.File)
	}

	return w.Flush()
}

// valueTypeString renders the declared value type, tuples in their
// directive form.
func valueTypeString(r *resolve.Resolved) string {
	if r.Def.Args.IsTuple() {
		return "(" + strings.Join(r.Def.Args.TupleElems, ", ") + ")"
	}

	return r.Def.Args.ValueType
}
