package resolve

import (
	"openenum/internal/common"
	"openenum/internal/directive"
)

// Shape describes the conversion surface generated for an enum: the
// payload field types of the struct and the name of the method that
// converts a member back to its value.
type Shape struct {
	FieldTypes []string
	Method     string
}

// shapeFor derives the shape from the directive arguments and the
// kind. Field types always follow the declared value type, the method
// name follows the kind.
func shapeFor(args directive.Args, kind Kind) Shape {
	fields := []string{args.ValueType}
	if args.IsTuple() {
		fields = args.TupleElems
	}

	return Shape{
		FieldTypes: fields,
		Method:     methodName(args, kind),
	}
}

// methodName picks the name of the enum-to-value method. Textual enums
// convert with String, tuple enums with Values, and integer enums with
// the exported final segment of the value type, so a uint8 enum gets
// Uint8 and a time.Duration enum gets Duration.
func methodName(args directive.Args, kind Kind) string {
	switch kind {
	case KindTextual:
		return "String"
	case KindTuple:
		return "Values"
	default:
		name := common.Exported(common.FinalIdent(args.ValueType))
		if name == "" {
			return "Value"
		}

		return name
	}
}
