package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_AddAndQuery(t *testing.T) {
	var d Diagnostics

	assert.True(t, d.IsValid())
	assert.False(t, d.HasErrors())
	require.NoError(t, d.Error())

	d.AddWarning("no_members", "definition has no member groups", "Method", "defs.go:12:2")
	assert.True(t, d.IsValid())

	d.AddError("bad_int_literal", "integer literal overflows", "Digit.Huge", "defs.go:7:2")
	assert.False(t, d.IsValid())
	assert.True(t, d.HasErrors())
	require.Error(t, d.Error())
	assert.Contains(t, d.Error().Error(), "bad_int_literal")
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics

	a.AddError("bad_value_type", "not a type expression", "Signal", "")
	b.AddInfo("up_to_date", "nothing to do", "", "")
	b.AddError("too_many_args", "expected at most two arguments", "Color", "")

	a.Merge(b)

	assert.Len(t, a.Errors, 2)
	assert.Len(t, a.Infos, 1)
}

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		name     string
		diag     Diagnostic
		expected string
	}{
		{
			name: "full",
			diag: Diagnostic{
				Code:    "bad_int_literal",
				Message: "integer literal overflows",
				Enum:    "Digit.Huge",
				Pos:     "defs.go:7:2",
			},
			expected: "defs.go:7:2 [Digit.Huge]: [bad_int_literal] integer literal overflows",
		},
		{
			name:     "message only",
			diag:     Diagnostic{Message: "nothing to do"},
			expected: "nothing to do",
		},
		{
			name:     "no position",
			diag:     Diagnostic{Code: "bad_value_type", Message: "bad type", Enum: "Signal"},
			expected: "[Signal]: [bad_value_type] bad type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.diag.String())
		})
	}
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(99).String())
}
