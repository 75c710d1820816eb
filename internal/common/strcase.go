package common

import "strings"

// Exported returns the identifier with its first letter upper-cased.
// Used to derive conversion method names from type tokens (e.g., "uint8" -> "Uint8").
func Exported(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}

// Unexported returns the identifier with its first letter lower-cased.
// Used to derive tag type and constant prefixes (e.g., "Signal" -> "signal").
func Unexported(s string) string {
	if s == "" {
		return s
	}

	return strings.ToLower(s[:1]) + s[1:]
}

// FinalIdent returns the last dot-separated segment of a type token.
// Qualified tokens like "time.Duration" reduce to "Duration"-style names.
func FinalIdent(s string) string {
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		return s[i+1:]
	}

	return s
}
