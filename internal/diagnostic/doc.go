// Package diagnostic provides structured errors and warnings for the
// open-enum generator.
//
// Key capabilities:
//   - Malformed directive reports with source positions
//   - Malformed discriminant reports at the offending member
//   - Stable, colorable one-line formatting for CLI output
package diagnostic
