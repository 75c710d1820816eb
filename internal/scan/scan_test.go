package scan

import (
	"go/parser"
	"go/token"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openenum/internal/diagnostic"
)

func parseAndScan(t *testing.T, src string) ([]EnumDef, *diagnostic.Diagnostics) {
	t.Helper()

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "defs.go", src, parser.ParseComments)
	require.NoError(t, err)

	diags := &diagnostic.Diagnostics{}
	defs := scanFile(fset, f, "example.com/defs", "defs", diags)

	t.Logf("scanned:\n%s", spew.Sdump(defs))

	return defs, diags
}

func TestScanFile_ScalarGroup(t *testing.T) {
	defs, diags := parseAndScan(t, `//go:build openenumdef

package defs

// Signal is a POSIX signal number.
//openenum:value uint8
type Signal uint8

const (
	Hangup    Signal = 1
	Interrupt Signal = 2
	Quit             = 3
	Kill      Signal = 9
	Terminate Signal = 15
)
`)

	require.False(t, diags.HasErrors(), diags.Error())
	require.Len(t, defs, 1)

	def := defs[0]
	assert.Equal(t, DefID{PkgPath: "example.com/defs", Name: "Signal"}, def.ID)
	assert.Equal(t, "defs", def.PkgName)
	assert.Equal(t, "defs.go", def.File)
	assert.Equal(t, ".", def.Dir)
	assert.Equal(t, "uint8", def.Args.ValueType)
	assert.Equal(t, "Other", def.Args.Fallback)
	assert.Equal(t, []string{"// Signal is a POSIX signal number."}, def.Doc)

	require.Len(t, def.Members, 5)
	assert.Equal(t, "Hangup", def.Members[0].Name)
	assert.Equal(t, "Terminate", def.Members[4].Name)
	assert.Equal(t, 10, def.Members[0].Pos.Line)

	for _, m := range def.Members {
		assert.NotNil(t, m.Disc, m.Name)
	}
}

func TestScanFile_AbsentDiscriminants(t *testing.T) {
	defs, _ := parseAndScan(t, `//go:build openenumdef

package defs

//openenum:value int16
type Digit int16

const (
	Thousandths Digit = -3
	Hundredths
	Tenths
	Unit
)
`)

	require.Len(t, defs, 1)
	require.Len(t, defs[0].Members, 4)

	assert.NotNil(t, defs[0].Members[0].Disc)
	for _, m := range defs[0].Members[1:] {
		assert.Nil(t, m.Disc, m.Name)
	}
}

func TestScanFile_MultiNameSpec(t *testing.T) {
	defs, _ := parseAndScan(t, `//go:build openenumdef

package defs

//openenum:value uint8
type Signal uint8

const (
	SigA, SigB Signal = 4, 5
	SigC, SigD Signal
)
`)

	require.Len(t, defs, 1)
	require.Len(t, defs[0].Members, 4)

	assert.Equal(t, "SigB", defs[0].Members[1].Name)
	assert.NotNil(t, defs[0].Members[1].Disc)
	assert.Nil(t, defs[0].Members[2].Disc)
	assert.Nil(t, defs[0].Members[3].Disc)
}

func TestScanFile_TupleGroup(t *testing.T) {
	defs, diags := parseAndScan(t, `//go:build openenumdef

package defs

//openenum:value (uint8, uint8, uint8)
type Color struct{}

var (
	Black = Color{0, 0, 0}
	Red   = Color{255, 0, 0}
	White = Color{255, 255, 255}
)
`)

	require.False(t, diags.HasErrors(), diags.Error())
	require.Len(t, defs, 1)

	def := defs[0]
	assert.True(t, def.Args.IsTuple())
	assert.Equal(t, []string{"uint8", "uint8", "uint8"}, def.Args.TupleElems)

	require.Len(t, def.Members, 3)
	assert.Equal(t, "Black", def.Members[0].Name)
	assert.NotNil(t, def.Members[0].Disc)
}

func TestScanFile_GroupBeforeType(t *testing.T) {
	defs, _ := parseAndScan(t, `//go:build openenumdef

package defs

const (
	Mono   Channels = 1
	Stereo Channels = 2
)

//openenum:value uint8, Surround
type Channels uint8
`)

	require.Len(t, defs, 1)
	assert.Equal(t, "Surround", defs[0].Args.Fallback)
	require.Len(t, defs[0].Members, 2)
}

func TestScanFile_TypeGroup(t *testing.T) {
	defs, _ := parseAndScan(t, `//go:build openenumdef

package defs

type (
	// Method is an HTTP method.
	//openenum:value string
	Method string

	//openenum:value int
	Code int
)

const (
	Get Method = "GET"
)

const (
	OK Code = 200
)
`)

	require.Len(t, defs, 2)
	assert.Equal(t, "Method", defs[0].ID.Name)
	assert.Equal(t, []string{"// Method is an HTTP method."}, defs[0].Doc)
	assert.Equal(t, "Code", defs[1].ID.Name)

	require.Len(t, defs[0].Members, 1)
	require.Len(t, defs[1].Members, 1)
}

func TestScanFile_UnrelatedGroupsIgnored(t *testing.T) {
	defs, _ := parseAndScan(t, `//go:build openenumdef

package defs

//openenum:value uint8
type Signal uint8

const (
	Hangup Signal = 1
)

const (
	other int = 7
)

var (
	name = "not a member"
)
`)

	require.Len(t, defs, 1)
	assert.Len(t, defs[0].Members, 1)
}

func TestScanFile_SkipsGeneratedFiles(t *testing.T) {
	defs, diags := parseAndScan(t, `// Code generated by openenum. DO NOT EDIT.

package defs

//openenum:value uint8
type Signal uint8

var (
	Hangup = Signal{tag: signalHangup}
)
`)

	assert.Empty(t, defs)
	assert.True(t, diags.IsValid())
}

func TestScanFile_NoMembersWarning(t *testing.T) {
	defs, diags := parseAndScan(t, `//go:build openenumdef

package defs

//openenum:value uint8
type Signal uint8
`)

	require.Len(t, defs, 1)
	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, "no_members", diags.Warnings[0].Code)
	assert.Equal(t, "Signal", diags.Warnings[0].Enum)
}

func TestScanFile_DirectiveErrors(t *testing.T) {
	tests := []struct {
		name     string
		argText  string
		wantCode string
	}{
		{name: "missing value type", argText: "", wantCode: "missing_value_type"},
		{name: "bad value type", argText: " 123", wantCode: "bad_value_type"},
		{name: "too many arguments", argText: " uint8, Other, Extra", wantCode: "too_many_args"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defs, diags := parseAndScan(t, `//go:build openenumdef

package defs

//openenum:value`+tt.argText+`
type Signal uint8
`)

			assert.Empty(t, defs)
			require.True(t, diags.HasErrors())
			assert.Equal(t, tt.wantCode, diags.Errors[0].Code)
			assert.Equal(t, "Signal", diags.Errors[0].Enum)
			assert.Equal(t, "defs.go:6:6", diags.Errors[0].Pos)
		})
	}
}

func TestScanFile_CarriesImports(t *testing.T) {
	defs, _ := parseAndScan(t, `//go:build openenumdef

package defs

import (
	"time"

	_ "embed"

	units "example.com/measure/units"
)

//openenum:value time.Duration
type Interval int64

const (
	Minute Interval = 60
)
`)

	require.Len(t, defs, 1)
	assert.Equal(t, []Import{
		{Path: "time"},
		{Alias: "units", Path: "example.com/measure/units"},
	}, defs[0].Imports)
	assert.Equal(t, "time.Duration", defs[0].Args.ValueType)
}

func TestScanFile_NoDirective(t *testing.T) {
	defs, diags := parseAndScan(t, `package defs

// Plain is not an open enum.
type Plain uint8

const (
	A Plain = 1
)
`)

	assert.Empty(t, defs)
	assert.True(t, diags.IsValid())
}
