package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"path/filepath"
	"strings"

	"openenum/internal/resolve"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Suffix is appended to the lowercased enum name to form the output
	// filename.
	Suffix string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Suffix: "_openenum.go",
	}
}

// Generator generates Go code from resolved enum definitions.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the directory the file belongs to, next to its definition
	// file.
	Dir string
	// Filename is the base name of the file (e.g. "signal_openenum.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Path returns the full output path of the file.
func (f *GeneratedFile) Path() string {
	return filepath.Join(f.Dir, f.Filename)
}

// Generate generates the Go source file for a resolved enum definition.
func (g *Generator) Generate(r *resolve.Resolved) (*GeneratedFile, error) {
	data := buildTemplateData(r)
	data.Filename = strings.ToLower(r.Def.ID.Name) + g.config.Suffix

	var buf bytes.Buffer
	if err := enumTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort: write unformatted code to a sidecar file to aid
		// debugging. This is intentionally non-fatal for the write
		// attempt.
		_ = writeDebugUnformatted(r.Def.Dir, data.Filename, buf.Bytes())

		// Return unformatted code for debugging
		return &GeneratedFile{
			Dir:      r.Def.Dir,
			Filename: data.Filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Dir:      r.Def.Dir,
		Filename: data.Filename,
		Content:  formatted,
	}, nil
}

// GenerateAll generates one file per resolved definition.
func (g *Generator) GenerateAll(resolved []*resolve.Resolved) ([]GeneratedFile, error) {
	var files []GeneratedFile

	for _, r := range resolved {
		file, err := g.Generate(r)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", r.Def.ID, err)
		}

		files = append(files, *file)
	}

	return files, nil
}
