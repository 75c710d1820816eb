package resolve

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"strconv"

	"openenum/internal/scan"
)

// ResolvedMember is an enum member with its discriminant rendered to
// source text. Scalar members carry Text, tuple members carry one
// element per payload field.
type ResolvedMember struct {
	Name  string
	Text  string
	Elems []string
}

// Resolved is an enum definition with every discriminant resolved and
// the conversion shape decided.
type Resolved struct {
	Def     scan.EnumDef
	Kind    Kind
	Shape   Shape
	Members []ResolvedMember
}

// MemberError reports a member whose discriminant cannot be resolved.
type MemberError struct {
	Enum   string
	Member string
	Pos    token.Position
	Err    error
}

func (e *MemberError) Error() string {
	return fmt.Sprintf("%s: member %s.%s: %v", e.Pos, e.Enum, e.Member, e.Err)
}

func (e *MemberError) Unwrap() error {
	return e.Err
}

// Resolve renders the discriminants of a definition against a running
// counter and decides the conversion shape. The counter starts at zero,
// an explicit integer literal resets it, and it advances by one after
// every member, so members without a discriminant continue the last
// explicit run.
//
// Non-integer expressions are rendered verbatim and leave the counter
// alone. The first member alone decides the kind, so a later member of
// another form ends up in the generated file as written and the
// compiler reports it there.
func Resolve(def scan.EnumDef) (*Resolved, error) {
	var (
		members []ResolvedMember
		curr    int64
	)

	for _, m := range def.Members {
		rm, base, err := resolveMember(m, curr)
		if err != nil {
			return nil, &MemberError{Enum: def.ID.Name, Member: m.Name, Pos: m.Pos, Err: err}
		}

		members = append(members, rm)
		curr = base + 1
	}

	kind := classify(def)

	return &Resolved{
		Def:     def,
		Kind:    kind,
		Shape:   shapeFor(def.Args, kind),
		Members: members,
	}, nil
}

// resolveMember renders one discriminant. It returns the counter base
// for the member, which the caller advances by one before the next.
func resolveMember(m scan.Member, curr int64) (ResolvedMember, int64, error) {
	if m.Disc == nil {
		return ResolvedMember{Name: m.Name, Text: strconv.FormatInt(curr, 10)}, curr, nil
	}

	if lit, neg, ok := intLiteral(m.Disc); ok {
		v, err := parseDisc(lit, neg)
		if err != nil {
			return ResolvedMember{}, 0, err
		}

		return ResolvedMember{Name: m.Name, Text: types.ExprString(m.Disc)}, v, nil
	}

	if cl, ok := m.Disc.(*ast.CompositeLit); ok {
		elems := make([]string, 0, len(cl.Elts))
		for _, elt := range cl.Elts {
			elems = append(elems, types.ExprString(elt))
		}

		return ResolvedMember{Name: m.Name, Elems: elems}, curr, nil
	}

	return ResolvedMember{Name: m.Name, Text: types.ExprString(m.Disc)}, curr, nil
}

// intLiteral reports whether the expression is an integer literal,
// possibly behind a single unary minus.
func intLiteral(e ast.Expr) (lit *ast.BasicLit, neg bool, ok bool) {
	if u, isUnary := e.(*ast.UnaryExpr); isUnary && u.Op == token.SUB {
		lit, isLit := u.X.(*ast.BasicLit)
		if isLit && lit.Kind == token.INT {
			return lit, true, true
		}

		return nil, false, false
	}

	l, isLit := e.(*ast.BasicLit)
	if isLit && l.Kind == token.INT {
		return l, false, true
	}

	return nil, false, false
}

// parseDisc parses an integer literal in any Go base into the platform
// signed word. The sign is applied after parsing, matching how the
// literal appears in source.
func parseDisc(lit *ast.BasicLit, neg bool) (int64, error) {
	v, err := strconv.ParseInt(lit.Value, 0, strconv.IntSize)
	if err != nil {
		return 0, fmt.Errorf("integer literal %s overflows int: %w", lit.Value, err)
	}

	if neg {
		v = -v
	}

	return v, nil
}
