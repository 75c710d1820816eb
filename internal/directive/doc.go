// Package directive parses the //openenum:value directive that marks a
// type as an open enum definition.
//
// Key functions:
//   - Extract: finds the directive line inside a type's doc comment
//     group and strips it from the doc carried into generated code
//   - Parse: parses the value type argument, scalar or tuple, and the
//     optional fallback constructor name
package directive
