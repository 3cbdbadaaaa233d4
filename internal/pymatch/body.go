package pymatch

import (
	"strings"

	"github.com/gnolang/pyfmt/internal/pyast"
	"github.com/gnolang/pyfmt/internal/pycreate"
)

// BodyPlaceholder is a ListFieldPlaceholder for a statement block: blank
// lines and comment-only lines interleaved between statements aren't
// represented in the AST at all, so on Match it synthesizes a
// SyntaxFreeLine pseudo-statement for each one found and splices it into
// node's field list (spec.md §4.3's body-placeholder behavior). MatchAfter
// additionally absorbs trailing syntax-free lines regardless of their
// indentation (used for a try body, before its except/finally clause).
type BodyPlaceholder struct {
	*ListFieldPlaceholder
	MatchAfter bool
}

func NewBodyPlaceholder(fieldName string, opts ...ListFieldOption) *BodyPlaceholder {
	return &BodyPlaceholder{ListFieldPlaceholder: NewListField(fieldName, opts...)}
}

func matchSyntaxFreeLine(remaining string) (string, *pyast.Node, error) {
	idx := strings.Index(remaining, "\n")
	if idx < 0 {
		return "", nil, badTemplatef("expected a newline to end syntax-free line in %q", remaining)
	}
	line := remaining[:idx+1]
	rest := remaining[idx+1:]
	n, err := pycreate.NewSyntaxFreeLine(line)
	if err != nil {
		return "", nil, badTemplatef("%v", err)
	}
	if _, err := getSourceImpl(n, line, nil, true); err != nil {
		return "", nil, err
	}
	return rest, n, nil
}

func (b *BodyPlaceholder) Match(node *pyast.Node, s string) (string, error) {
	values := b.values(node)
	if len(values) == 0 {
		return "", nil
	}
	remaining := s
	var newField []*pyast.Node
	if b.prefix != nil {
		next, err := matchPlaceholder(remaining, node, b.prefix)
		if err != nil {
			return "", err
		}
		remaining = next
	}
	indentLevel := ""
	for index, child := range values {
		for pycreate.SyntaxFreeLineMatchesStart(remaining) {
			next, sfl, err := matchSyntaxFreeLine(remaining)
			if err != nil {
				return "", err
			}
			remaining = next
			newField = append(newField, sfl)
		}
		newField = append(newField, child)
		indentLevel = remaining[:len(remaining)-len(strings.TrimLeft(remaining, " \t"))]
		p, err := newStringParser(remaining, node, b.valueAtIndex(values, index), nil)
		if err != nil {
			return "", err
		}
		remaining = p.remaining
	}
	for pycreate.SyntaxFreeLineMatchesStart(remaining) &&
		(strings.HasPrefix(remaining, indentLevel) || b.MatchAfter) {
		next, sfl, err := matchSyntaxFreeLine(remaining)
		if err != nil {
			return "", err
		}
		remaining = next
		newField = append(newField, sfl)
	}
	setFieldNodeList(node, b.fieldName, newField)

	matchedString := s
	if remaining != "" {
		matchedString = s[:len(s)-len(remaining)]
	}
	return matchedString, nil
}

func (b *BodyPlaceholder) Source(node *pyast.Node) string {
	return b.ListFieldPlaceholder.Source(node)
}
