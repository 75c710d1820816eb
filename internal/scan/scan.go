package scan

import (
	"errors"
	"go/ast"
	"go/token"
	"path/filepath"
	"strconv"

	"openenum/internal/common"
	"openenum/internal/diagnostic"
	"openenum/internal/directive"
)

// scanFile collects the enum definitions declared in a single file. The
// first pass finds directive-marked type declarations, the second pass
// attaches the member groups declared in the same file. Generated files
// are skipped so that committed generator output is never rescanned.
func scanFile(fset *token.FileSet, f *ast.File, pkgPath, pkgName string, diags *diagnostic.Diagnostics) []EnumDef {
	if ast.IsGenerated(f) {
		return nil
	}

	defs := collectDefs(fset, f, pkgPath, pkgName, diags)
	if common.IsEmpty(defs) {
		return nil
	}

	byName := make(map[string]*EnumDef, len(defs))
	for i := range defs {
		byName[defs[i].ID.Name] = &defs[i]
	}

	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok {
			continue
		}

		switch gd.Tok {
		case token.CONST:
			if def, ok := groupOwnerByType(gd, byName); ok {
				appendGroupMembers(fset, gd, def)
			}
		case token.VAR:
			if def, ok := groupOwnerByLiteral(gd, byName); ok {
				appendGroupMembers(fset, gd, def)
			}
		}
	}

	for i := range defs {
		if common.IsEmpty(defs[i].Members) {
			diags.AddWarning("no_members", "definition has no member groups", defs[i].ID.Name, defs[i].Pos.String())
		}
	}

	return defs
}

func collectDefs(fset *token.FileSet, f *ast.File, pkgPath, pkgName string, diags *diagnostic.Diagnostics) []EnumDef {
	var defs []EnumDef

	imports := fileImports(f)

	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}

		for _, spec := range gd.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}

			doc := ts.Doc
			if doc == nil && len(gd.Specs) == 1 {
				doc = gd.Doc
			}

			argText, rest, found := directive.Extract(doc)
			if !found {
				continue
			}

			pos := fset.Position(ts.Pos())

			args, err := directive.Parse(argText)
			if err != nil {
				diags.AddError(errCode(err), err.Error(), ts.Name.Name, pos.String())
				continue
			}

			defs = append(defs, EnumDef{
				ID:      DefID{PkgPath: pkgPath, Name: ts.Name.Name},
				PkgName: pkgName,
				Dir:     filepath.Dir(pos.Filename),
				File:    pos.Filename,
				Doc:     rest,
				Args:    args,
				Imports: imports,
				Pos:     pos,
			})
		}
	}

	return defs
}

// fileImports collects the file's imports so that generation can
// reproduce the import behind a package-qualified value type. Dot and
// blank imports cannot qualify a type and are dropped.
func fileImports(f *ast.File) []Import {
	var imports []Import

	for _, spec := range f.Imports {
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}

		imp := Import{Path: path}
		if spec.Name != nil {
			if spec.Name.Name == "." || spec.Name.Name == "_" {
				continue
			}

			imp.Alias = spec.Name.Name
		}

		imports = append(imports, imp)
	}

	return imports
}

func errCode(err error) string {
	switch {
	case errors.Is(err, directive.ErrMissingValueType):
		return "missing_value_type"
	case errors.Is(err, directive.ErrBadValueType):
		return "bad_value_type"
	case errors.Is(err, directive.ErrTooManyArgs):
		return "too_many_args"
	default:
		return "bad_directive"
	}
}

// groupOwnerByType matches a const group to its definition. The group
// belongs to an enum when its first spec is typed with the enum name.
func groupOwnerByType(gd *ast.GenDecl, byName map[string]*EnumDef) (*EnumDef, bool) {
	vs, ok := firstValueSpec(gd)
	if !ok {
		return nil, false
	}

	ident, ok := vs.Type.(*ast.Ident)
	if !ok {
		return nil, false
	}

	def, ok := byName[ident.Name]

	return def, ok
}

// groupOwnerByLiteral matches a var group to its definition. The group
// belongs to an enum when its first value is a composite literal of the
// enum type.
func groupOwnerByLiteral(gd *ast.GenDecl, byName map[string]*EnumDef) (*EnumDef, bool) {
	vs, ok := firstValueSpec(gd)
	if !ok {
		return nil, false
	}

	val, ok := common.First(vs.Values)
	if !ok {
		return nil, false
	}

	lit, ok := val.(*ast.CompositeLit)
	if !ok {
		return nil, false
	}

	ident, ok := lit.Type.(*ast.Ident)
	if !ok {
		return nil, false
	}

	def, ok := byName[ident.Name]

	return def, ok
}

func firstValueSpec(gd *ast.GenDecl) (*ast.ValueSpec, bool) {
	first, ok := common.First(gd.Specs)
	if !ok {
		return nil, false
	}

	vs, ok := first.(*ast.ValueSpec)

	return vs, ok
}

// appendGroupMembers appends every name declared in the group as a
// member. A name without a matching expression has no discriminant and
// takes the running counter during resolution.
func appendGroupMembers(fset *token.FileSet, gd *ast.GenDecl, def *EnumDef) {
	for _, spec := range gd.Specs {
		vs, ok := spec.(*ast.ValueSpec)
		if !ok {
			continue
		}

		for i, name := range vs.Names {
			var disc ast.Expr
			if i < len(vs.Values) {
				disc = vs.Values[i]
			}

			def.Members = append(def.Members, Member{
				Name: name.Name,
				Disc: disc,
				Pos:  fset.Position(name.Pos()),
			})
		}
	}
}
