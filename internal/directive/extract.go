package directive

import (
	"go/ast"
	"strings"
)

// Extract scans a doc comment group for a directive line. It returns
// the argument text that follows the prefix and the remaining comment
// lines with every directive line removed, so that the carried doc can
// be reproduced without the directive itself.
//
// When the group holds several directive lines the first one wins.
func Extract(doc *ast.CommentGroup) (argText string, rest []string, found bool) {
	if doc == nil {
		return "", nil, false
	}

	for _, c := range doc.List {
		args, ok := cutPrefix(c.Text)
		if !ok {
			rest = append(rest, c.Text)
			continue
		}

		if !found {
			argText = strings.TrimSpace(args)
			found = true
		}
	}

	return argText, rest, found
}

// cutPrefix strips the directive prefix from a raw comment line. The
// prefix must be followed by a space, a tab or the end of the line so
// that "//openenum:valuexxx" does not count.
func cutPrefix(line string) (string, bool) {
	args, ok := strings.CutPrefix(line, Prefix)
	if !ok {
		return "", false
	}

	if args != "" && args[0] != ' ' && args[0] != '\t' {
		return "", false
	}

	return args, true
}
