package directive

import (
	"go/ast"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Args
	}{
		{
			name: "scalar",
			text: "uint8",
			want: Args{ValueType: "uint8", Fallback: "Other"},
		},
		{
			name: "qualified scalar",
			text: "time.Duration",
			want: Args{ValueType: "time.Duration", Fallback: "Other"},
		},
		{
			name: "scalar with fallback",
			text: "uint8, Surround",
			want: Args{ValueType: "uint8", Fallback: "Surround"},
		},
		{
			name: "fallback not an identifier",
			text: "uint8, 9lives",
			want: Args{ValueType: "uint8", Fallback: "Other"},
		},
		{
			name: "trailing comma",
			text: "uint8,",
			want: Args{ValueType: "uint8", Fallback: "Other"},
		},
		{
			name: "parenthesized scalar",
			text: "(string)",
			want: Args{ValueType: "string", Fallback: "Other"},
		},
		{
			name: "tuple",
			text: "(uint8, uint8, uint8)",
			want: Args{TupleElems: []string{"uint8", "uint8", "uint8"}, Fallback: "Other"},
		},
		{
			name: "tuple with fallback",
			text: "(int, int), Origin",
			want: Args{TupleElems: []string{"int", "int"}, Fallback: "Origin"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr error
	}{
		{name: "empty", text: "", wantErr: ErrMissingValueType},
		{name: "only spaces", text: "   ", wantErr: ErrMissingValueType},
		{name: "three arguments", text: "uint8, Other, Extra", wantErr: ErrTooManyArgs},
		{name: "not a type name", text: "123", wantErr: ErrBadValueType},
		{name: "unbalanced parenthesis", text: "(uint8", wantErr: ErrBadValueType},
		{name: "empty tuple", text: "()", wantErr: ErrBadValueType},
		{name: "tuple with trailing comma", text: "(uint8,)", wantErr: ErrBadValueType},
		{name: "tuple of expressions", text: "(uint8, 1+2)", wantErr: ErrBadValueType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestIsTuple(t *testing.T) {
	assert.False(t, Args{ValueType: "uint8"}.IsTuple())
	assert.True(t, Args{TupleElems: []string{"int", "int"}}.IsTuple())
}

func TestExtract(t *testing.T) {
	group := func(lines ...string) *ast.CommentGroup {
		g := &ast.CommentGroup{}
		for _, l := range lines {
			g.List = append(g.List, &ast.Comment{Text: l})
		}

		return g
	}

	t.Run("directive with doc", func(t *testing.T) {
		argText, rest, found := Extract(group(
			"// Signal is a POSIX signal number.",
			"//openenum:value uint8",
		))

		require.True(t, found)
		assert.Equal(t, "uint8", argText)
		assert.Equal(t, []string{"// Signal is a POSIX signal number."}, rest)
	})

	t.Run("directive only", func(t *testing.T) {
		argText, rest, found := Extract(group("//openenum:value string"))

		require.True(t, found)
		assert.Equal(t, "string", argText)
		assert.Empty(t, rest)
	})

	t.Run("no directive", func(t *testing.T) {
		_, _, found := Extract(group("// Just a doc comment."))
		assert.False(t, found)
	})

	t.Run("nil group", func(t *testing.T) {
		_, _, found := Extract(nil)
		assert.False(t, found)
	})

	t.Run("first directive wins", func(t *testing.T) {
		argText, rest, found := Extract(group(
			"//openenum:value uint8",
			"//openenum:value string",
		))

		require.True(t, found)
		assert.Equal(t, "uint8", argText)
		assert.Empty(t, rest)
	})

	t.Run("prefix must end before the arguments", func(t *testing.T) {
		_, _, found := Extract(group("//openenum:valuery uint8"))
		assert.False(t, found)
	})

	t.Run("tab after prefix", func(t *testing.T) {
		argText, _, found := Extract(group("//openenum:value\tuint8, Unknown"))

		require.True(t, found)
		assert.Equal(t, "uint8, Unknown", argText)
	})
}
