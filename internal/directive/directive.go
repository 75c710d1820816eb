package directive

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
)

const (
	// Prefix marks a doc comment line as an open-enum directive.
	// Like //go:build and //go:generate there is no space after the slashes.
	Prefix = "//openenum:value"

	// DefaultFallback is the constructor name used when the directive
	// does not name one.
	DefaultFallback = "Other"
)

var (
	ErrMissingValueType = errors.New("missing value type")
	ErrBadValueType     = errors.New("bad value type")
	ErrTooManyArgs      = errors.New("too many arguments")
)

// Args holds the parsed arguments of a single directive line.
// Exactly one of ValueType and TupleElems is set.
type Args struct {
	ValueType  string
	TupleElems []string
	Fallback   string
}

// IsTuple reports whether the value type is a tuple of element types.
func (a Args) IsTuple() bool {
	return len(a.TupleElems) > 0
}

// Parse parses the argument text that follows the directive prefix,
// e.g. "uint8", "string, Unknown" or "(uint8, uint8, uint8)".
//
// The first argument is the value type and is required. The optional
// second argument names the fallback constructor; when it is absent or
// is not a bare identifier the name defaults to DefaultFallback.
func Parse(text string) (Args, error) {
	fields := splitTop(text)
	if len(fields) == 0 || fields[0] == "" {
		return Args{}, ErrMissingValueType
	}

	if len(fields) > 2 {
		return Args{}, fmt.Errorf("%w: %d given, at most 2 expected", ErrTooManyArgs, len(fields))
	}

	args, err := parseValueType(fields[0])
	if err != nil {
		return Args{}, err
	}

	args.Fallback = DefaultFallback
	if len(fields) == 2 && token.IsIdentifier(fields[1]) {
		args.Fallback = fields[1]
	}

	return args, nil
}

// parseValueType parses the first directive argument. A parenthesized
// list of two or more types is a tuple; anything else must be a plain
// or package-qualified type name.
func parseValueType(text string) (Args, error) {
	if strings.HasPrefix(text, "(") && strings.HasSuffix(text, ")") {
		return parseTupleType(text)
	}

	if !isTypeName(text) {
		return Args{}, fmt.Errorf("%w: %q is not a type name", ErrBadValueType, text)
	}

	return Args{ValueType: text}, nil
}

func parseTupleType(text string) (Args, error) {
	inner := strings.TrimSuffix(strings.TrimPrefix(text, "("), ")")

	elems := splitTop(inner)
	for _, e := range elems {
		if !isTypeName(e) {
			return Args{}, fmt.Errorf("%w: %q is not a type name", ErrBadValueType, e)
		}
	}

	switch len(elems) {
	case 0:
		return Args{}, fmt.Errorf("%w: empty tuple", ErrBadValueType)
	case 1:
		// Plain parentheses around a single type, not a tuple.
		return Args{ValueType: elems[0]}, nil
	default:
		return Args{TupleElems: elems}, nil
	}
}

// isTypeName reports whether text is a bare or package-qualified type
// name such as "uint8" or "time.Duration".
func isTypeName(text string) bool {
	expr, err := parser.ParseExpr(text)
	if err != nil {
		return false
	}

	switch e := expr.(type) {
	case *ast.Ident:
		return true
	case *ast.SelectorExpr:
		_, ok := e.X.(*ast.Ident)
		return ok
	default:
		return false
	}
}

// splitTop splits text on commas outside parentheses and trims the
// parts. Empty parts are kept so that callers can reject them.
func splitTop(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var (
		parts []string
		depth int
		start int
	)

	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(text[start:i]))
				start = i + 1
			}
		}
	}

	return append(parts, strings.TrimSpace(text[start:]))
}
