package pymatch

import (
	"strings"

	"github.com/gnolang/pyfmt/internal/pyast"
	"github.com/gnolang/pyfmt/internal/pycreate"
)

// IfSourceMatcher handles _ast.If. Python 2 parses `elif` as a nested If
// inside orelse, so rendering has to rewrite that nested If's own leading
// "if" into "elif" (and suppress the separate "else:" line), and matching
// has to recognize an "elif" keyword as the nested If's rewritten form
// rather than a literal field value (spec.md §4.4, If).
type IfSourceMatcher struct {
	node               *pyast.Node
	ifPlaceholder      *TextPlaceholder
	testPlaceholder    *FieldPlaceholder
	ifColonPlaceholder *TextPlaceholder
	bodyPlaceholder    *BodyPlaceholder
	elsePlaceholder    *TextPlaceholder
	orelsePlaceholder  Placeholder
	isElif             bool
	ifIndent           int
}

func NewIfSourceMatcher(node *pyast.Node, _ []*TextPlaceholder) *IfSourceMatcher {
	return &IfSourceMatcher{
		node:               node,
		ifPlaceholder:      NewText(` *if\s*`, "if "),
		testPlaceholder:    NewField("test"),
		ifColonPlaceholder: NewText(`:\n?`, ":\n"),
		bodyPlaceholder:    NewBodyPlaceholder("body"),
		elsePlaceholder:    NewText(` *else:\n`, "else:\n"),
		orelsePlaceholder:  NewBodyPlaceholder("orelse"),
	}
}

func (m *IfSourceMatcher) Match(s string) (string, error) {
	m.ifIndent = len(s) - len(strings.TrimLeft(s, " \t"))
	remaining, err := matchPlaceholderList(s, m.node,
		[]Placeholder{m.ifPlaceholder, m.testPlaceholder, m.ifColonPlaceholder, m.bodyPlaceholder}, nil)
	if err != nil {
		return "", err
	}
	if len(m.node.Orelse) == 0 {
		return s[:len(s)-len(remaining)], nil
	}

	for pycreate.SyntaxFreeLineMatchesStart(remaining) {
		rest, syntaxFreeNode, err := matchSyntaxFreeLine(remaining)
		if err != nil {
			return "", err
		}
		remaining = rest
		m.node.Body = append(m.node.Body, syntaxFreeNode)
	}

	if strings.HasPrefix(strings.TrimLeft(remaining, " \t"), "elif") {
		m.isElif = true
		indent := len(remaining) - len(strings.TrimLeft(remaining, " \t"))
		remaining = remaining[:indent] + remaining[indent+2:]
		// elif doesn't indent its body relative to the enclosing if, which
		// breaks BodyPlaceholder's indent-based SyntaxFreeLine absorption,
		// so orelse is matched as a bare list field here instead.
		m.orelsePlaceholder = NewListField("orelse")
	} else {
		remaining, err = matchPlaceholder(remaining, m.node, m.elsePlaceholder)
		if err != nil {
			return "", err
		}
	}
	remaining, err = matchPlaceholder(remaining, m.node, m.orelsePlaceholder)
	if err != nil {
		return "", err
	}
	if remaining == "" {
		return s, nil
	}
	return s[:len(s)-len(remaining)], nil
}

func (m *IfSourceMatcher) Source() string {
	parts := []Placeholder{m.ifPlaceholder, m.testPlaceholder, m.ifColonPlaceholder, m.bodyPlaceholder}
	out := ""
	for _, p := range parts {
		out += p.Source(m.node)
	}
	if len(m.node.Orelse) == 0 {
		return out
	}
	if len(m.node.Orelse) == 1 && m.node.Orelse[0].Kind == pyast.KindIf && m.isElif {
		elifSource := getSource(m.node.Orelse[0])
		indent := len(elifSource) - len(strings.TrimLeft(elifSource, " \t"))
		out += elifSource[:indent] + "el" + elifSource[indent:]
		return out
	}
	out += m.elsePlaceholder.Source(m.node)
	out += m.orelsePlaceholder.Source(m.node)
	return out
}
