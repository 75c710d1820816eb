package resolve

import (
	"go/ast"
	"go/token"

	"openenum/internal/common"
	"openenum/internal/directive"
	"openenum/internal/scan"
)

// Kind classifies how an enum's discriminants convert to and from the
// value type.
type Kind int

const (
	// KindInteger enums carry integer discriminants, explicit or
	// counted.
	KindInteger Kind = iota
	// KindTextual enums carry string literal discriminants.
	KindTextual
	// KindTuple enums carry composite literal discriminants with
	// positional elements.
	KindTuple
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindTextual:
		return "textual"
	case KindTuple:
		return "tuple"
	default:
		return "unknown"
	}
}

// classify decides the conversion kind for a whole definition from the
// form of its first member's discriminant. An enum without members
// falls back to the shape of the declared value type.
func classify(def scan.EnumDef) Kind {
	first, ok := common.First(def.Members)
	if !ok {
		return kindOfArgs(def.Args)
	}

	switch d := first.Disc.(type) {
	case nil:
		return KindInteger
	case *ast.BasicLit:
		if d.Kind == token.STRING {
			return KindTextual
		}

		return KindInteger
	case *ast.CompositeLit:
		return KindTuple
	default:
		return KindInteger
	}
}

func kindOfArgs(args directive.Args) Kind {
	switch {
	case args.IsTuple():
		return KindTuple
	case args.ValueType == "string":
		return KindTextual
	default:
		return KindInteger
	}
}
