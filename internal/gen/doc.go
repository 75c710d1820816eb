// Package gen renders resolved enum definitions into Go source files.
//
// Generation approach uses text/template + go/format for readable,
// allocation-light Go code.
//
// Each definition becomes one file holding:
//   - The enum struct with a tag field and one payload field per value
//   - Tag constants and one package variable per known member
//   - The fallback constructor for values outside the known members
//   - Both conversion directions, member to value and value to member
package gen
