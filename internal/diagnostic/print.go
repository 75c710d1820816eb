package diagnostic

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var severityColors = map[Severity]*color.Color{
	SeverityInfo:    color.New(color.FgCyan),
	SeverityWarning: color.New(color.FgYellow),
	SeverityError:   color.New(color.FgRed),
}

// Fprint writes all diagnostics to w, one per line, errors first.
// Severity labels are colored unless color output is globally disabled.
func Fprint(w io.Writer, d *Diagnostics) {
	for _, groups := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range groups {
			label := severityColors[diag.Severity].Sprint(diag.Severity.String())
			fmt.Fprintf(w, "%s: %s\n", label, diag.String())
		}
	}
}
