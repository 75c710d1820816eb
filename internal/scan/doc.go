// Package scan finds open enum definitions in Go source trees.
//
// Key capabilities:
//   - Load packages with the definition build tag enabled, syntax only
//   - Match //openenum:value directives on type declarations
//   - Attach scalar const groups and tuple var groups to their enum
//   - Skip generated files so committed output is never rescanned
//
// Definition files are guarded by a build constraint and reference the
// very types the generator emits, so packages are loaded without type
// checking and definitions are taken from the syntax tree alone.
package scan
