package gen

import (
	"fmt"
	"sort"
	"strings"
	"text/template"

	"openenum/internal/common"
	"openenum/internal/resolve"
	"openenum/internal/scan"
)

// templateData holds all data needed for the enum template.
type templateData struct {
	PackageName  string
	Filename     string
	Imports      []importSpec
	Doc          []string
	TypeName     string
	Receiver     string
	TagType      string
	Fields       []fieldData
	Members      []memberData
	Fallback     fallbackData
	Method       string
	Results      string
	Params       string
	Args         string
	FieldReturns string
	FromName     string
	Tuple        bool
}

// importSpec is one import of the generated file.
type importSpec struct {
	Alias string
	Path  string
}

// fieldData is one payload field of the enum struct.
type fieldData struct {
	Name string
	Type string
}

// memberData is one known member with its rendered dispatch arms.
type memberData struct {
	VarName  string
	TagConst string
	// Return is the expression list the conversion method returns for
	// this member.
	Return string
	// Cond is the comparison that matches this member's value during
	// reverse conversion.
	Cond string
}

type fallbackData struct {
	Name     string
	TagConst string
}

// buildTemplateData assembles template data for a resolved definition.
// Members are rendered by their own form, so a member whose form does
// not match the enum's shape ends up in the output as written and the
// compiler reports the mismatch against the generated file.
func buildTemplateData(r *resolve.Resolved) *templateData {
	name := r.Def.ID.Name
	tagPrefix := common.Unexported(name)

	fields := make([]fieldData, 0, len(r.Shape.FieldTypes))
	for i, ft := range r.Shape.FieldTypes {
		fields = append(fields, fieldData{Name: fmt.Sprintf("v%d", i), Type: ft})
	}

	members := make([]memberData, 0, len(r.Members))
	for _, m := range r.Members {
		members = append(members, memberData{
			VarName:  m.Name,
			TagConst: tagPrefix + m.Name,
			Return:   memberReturn(m),
			Cond:     memberCond(m),
		})
	}

	var (
		params  []string
		args    []string
		returns []string
		types   []string
	)

	recv := strings.ToLower(name[:1])
	for _, f := range fields {
		params = append(params, f.Name+" "+f.Type)
		args = append(args, f.Name)
		returns = append(returns, recv+"."+f.Name)
		types = append(types, f.Type)
	}

	results := strings.Join(types, ", ")
	if len(types) > 1 {
		results = "(" + results + ")"
	}

	return &templateData{
		PackageName:  r.Def.PkgName,
		Imports:      importsFor(r),
		Doc:          r.Def.Doc,
		TypeName:     name,
		Receiver:     recv,
		TagType:      tagPrefix + "Tag",
		Fields:       fields,
		Members:      members,
		Fallback:     fallbackData{Name: r.Def.Args.Fallback, TagConst: tagPrefix + r.Def.Args.Fallback},
		Method:       r.Shape.Method,
		Results:      results,
		Params:       strings.Join(params, ", "),
		Args:         strings.Join(args, ", "),
		FieldReturns: strings.Join(returns, ", "),
		FromName:     name + "From" + r.Shape.Method,
		Tuple:        r.Kind == resolve.KindTuple,
	}
}

// importsFor derives the generated file's imports from the qualifiers
// of the payload field types.
func importsFor(r *resolve.Resolved) []importSpec {
	var (
		specs []importSpec
		seen  = make(map[string]bool)
	)

	for _, ft := range r.Shape.FieldTypes {
		q, _, ok := strings.Cut(ft, ".")
		if !ok || seen[q] {
			continue
		}

		seen[q] = true
		specs = append(specs, lookupImport(r.Def.Imports, q))
	}

	sort.Slice(specs, func(i, j int) bool {
		return specs[i].Path < specs[j].Path
	})

	return specs
}

// lookupImport finds the definition file import behind a qualifier. A
// named import wins, then a path whose package name matches. Falling
// back to the qualifier itself covers standard library packages that
// the definition file had no reason to import.
func lookupImport(imports []scan.Import, qualifier string) importSpec {
	for _, imp := range imports {
		if imp.Alias == qualifier {
			return importSpec{Alias: imp.Alias, Path: imp.Path}
		}
	}

	for _, imp := range imports {
		if imp.Alias == "" && pkgNameOf(imp.Path) == qualifier {
			return importSpec{Path: imp.Path}
		}
	}

	return importSpec{Path: qualifier}
}

// pkgNameOf guesses the package name of an import path: the last
// element with any gopkg.in style version suffix stripped. A weak
// heuristic, but definition files can always use a named import.
func pkgNameOf(path string) string {
	name := path[strings.LastIndex(path, "/")+1:]
	name, _, _ = strings.Cut(name, ".")

	return name
}

// memberReturn renders the value a member converts to. Tuple members
// return one expression per element, scalar members return their
// rendered discriminant.
func memberReturn(m resolve.ResolvedMember) string {
	if m.Elems != nil {
		return strings.Join(m.Elems, ", ")
	}

	return m.Text
}

// memberCond renders the comparison that matches a member's value.
func memberCond(m resolve.ResolvedMember) string {
	if m.Elems == nil {
		return "v0 == " + m.Text
	}

	conds := make([]string, 0, len(m.Elems))
	for i, e := range m.Elems {
		conds = append(conds, fmt.Sprintf("v%d == %s", i, e))
	}

	return strings.Join(conds, " && ")
}

var enumTemplate = template.Must(
	template.New("openenum").
		Parse(`// Code generated by openenum. DO NOT EDIT.

package {{.PackageName}}
{{if .Imports}}
import (
{{- range .Imports}}
	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{- end}}
)
{{end}}
{{range .Doc}}{{.}}
{{end}}type {{.TypeName}} struct {
	tag {{.TagType}}
{{- range .Fields}}
	{{.Name}} {{.Type}}
{{- end}}
}

type {{.TagType}} int

const (
{{- if .Members}}
{{- range $i, $m := .Members}}
{{- if eq $i 0}}
	{{$m.TagConst}} {{$.TagType}} = iota
{{- else}}
	{{$m.TagConst}}
{{- end}}
{{- end}}
	{{.Fallback.TagConst}}
{{- else}}
	{{.Fallback.TagConst}} {{.TagType}} = iota
{{- end}}
)
{{if .Members}}
var (
{{- range .Members}}
	{{.VarName}} = {{$.TypeName}}{tag: {{.TagConst}}}
{{- end}}
)
{{end}}
// {{.Fallback.Name}} returns the {{.TypeName}} for a value outside the known members.
func {{.Fallback.Name}}({{.Params}}) {{.TypeName}} {
	return {{.TypeName}}{tag: {{.Fallback.TagConst}}{{range .Fields}}, {{.Name}}: {{.Name}}{{end}}}
}

// {{.Method}} returns the value{{if .Tuple}}s{{end}} of the {{.TypeName}}.
func ({{.Receiver}} {{.TypeName}}) {{.Method}}() {{.Results}} {
	switch {{.Receiver}}.tag {
{{- range .Members}}
	case {{.TagConst}}:
		return {{.Return}}
{{- end}}
	default:
		return {{.FieldReturns}}
	}
}

// {{.FromName}} returns the {{.TypeName}} for the given value{{if .Tuple}}s{{end}}, {{.Fallback.Name}} when no member matches.
func {{.FromName}}({{.Params}}) {{.TypeName}} {
	switch {
{{- range .Members}}
	case {{.Cond}}:
		return {{.VarName}}
{{- end}}
	default:
		return {{.Fallback.Name}}({{.Args}})
	}
}
`))
