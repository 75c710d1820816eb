package scan

import (
	"go/ast"
	"go/token"

	"openenum/internal/directive"
)

// DefID identifies an enum definition across packages.
type DefID struct {
	PkgPath string
	Name    string
}

func (id DefID) String() string {
	return id.PkgPath + "." + id.Name
}

// Member is a single enum member as declared in a member group. Disc is
// the discriminant expression, nil when the member was declared without
// one.
type Member struct {
	Name string
	Disc ast.Expr
	Pos  token.Position
}

// Import is one import of a definition file. Alias is set only for
// named imports.
type Import struct {
	Alias string
	Path  string
}

// EnumDef is an enum definition found in a definition file: the
// directive-marked type together with the members declared in the same
// file.
type EnumDef struct {
	ID      DefID
	PkgName string
	Dir     string
	File    string
	Doc     []string
	Args    directive.Args
	Members []Member
	Imports []Import
	Pos     token.Position
}
