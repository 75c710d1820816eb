// Package config loads the .openenum.yaml project configuration.
//
// All settings are optional. A missing file or field falls back to
// scanning ./... with the standard suffix and build tag.
package config
