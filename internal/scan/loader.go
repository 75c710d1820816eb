package scan

import (
	"errors"
	"fmt"

	"golang.org/x/tools/go/packages"

	"openenum/internal/diagnostic"
)

// DefaultTag is the build constraint that keeps definition files out of
// regular builds.
const DefaultTag = "openenumdef"

// LoadMode requests package names, file lists and parsed syntax only.
// Definition files reference the types they generate, so type checking
// the packages before generation would fail by construction.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax

// Scanner loads packages with the definition build tag enabled and
// collects the enum definitions found in them.
type Scanner struct {
	tag string
}

// NewScanner returns a scanner that loads definition files guarded by
// the given build tag. An empty tag selects DefaultTag.
func NewScanner(tag string) *Scanner {
	if tag == "" {
		tag = DefaultTag
	}

	return &Scanner{tag: tag}
}

// Load loads the packages matching the given patterns and scans their
// files for enum definitions. Definitions are returned in file order.
// Problems with individual definitions are reported as diagnostics, a
// non-nil error means the packages themselves could not be loaded.
func (s *Scanner) Load(patterns ...string) ([]EnumDef, *diagnostic.Diagnostics, error) {
	cfg := &packages.Config{
		Mode:       LoadMode,
		BuildFlags: []string{"-tags=" + s.tag},
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, nil, fmt.Errorf("loading packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, nil, fmt.Errorf("loading packages: %w", errors.Join(errs...))
	}

	var (
		defs  []EnumDef
		diags = &diagnostic.Diagnostics{}
	)

	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			defs = append(defs, scanFile(pkg.Fset, file, pkg.PkgPath, pkg.Name, diags)...)
		}
	}

	return defs, diags, nil
}
