package pymatch

import (
	"strings"

	"github.com/gnolang/pyfmt/internal/pyast"
)

// TupleSourceMatcher handles _ast.Tuple: parens are optional ("a, b" and
// "(a, b)" are both valid), unlike every other composite, so the driver's
// usual paren-absorption doesn't apply cleanly — it always matches a
// leading TextPlaceholder in the template itself, then backs off any
// trailing whitespace it over-matched when no real parens were present
// (spec.md §4.4, Tuple).
type TupleSourceMatcher struct {
	*DefaultSourceMatcher
}

func NewTupleSourceMatcher(node *pyast.Node, startingParens []*TextPlaceholder) (*TupleSourceMatcher, error) {
	parts := []Placeholder{
		NewText(`\s*`, "("),
		NewSeparatedListField("elts", NewText(`\s*,\s*`, ", ")),
		NewText(`\s*,?\s*`, ")"),
	}
	d, err := NewDefaultSourceMatcher(node, parts, startingParens)
	if err != nil {
		return nil, err
	}
	return &TupleSourceMatcher{DefaultSourceMatcher: d}, nil
}

func (t *TupleSourceMatcher) Match(s string) (string, error) {
	matched, err := t.DefaultSourceMatcher.Match(s)
	if err != nil {
		return "", err
	}
	if t.parenWrapped {
		return matched, nil
	}
	trimmed := strings.TrimRight(matched, " \t\n")
	return t.DefaultSourceMatcher.Match(trimmed)
}
