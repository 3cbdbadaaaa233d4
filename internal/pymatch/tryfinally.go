package pymatch

import "github.com/gnolang/pyfmt/internal/pyast"

// TryFinallySourceMatcher handles _ast.TryFinally. Python 2 parses
// `try: ... except: ... finally: ...` as a TryFinally wrapping a single
// TryExcept body statement, so a literal "try:" header belongs to the
// inner TryExcept's own template, not this node's — it's only emitted
// here when there's no except clause at all (spec.md §4.4, TryExcept /
// TryFinally nesting).
type TryFinallySourceMatcher struct {
	*DefaultSourceMatcher
	optionalTry *TextPlaceholder
}

func NewTryFinallySourceMatcher(node *pyast.Node, startingParens []*TextPlaceholder) (*TryFinallySourceMatcher, error) {
	bodyPlaceholder := NewBodyPlaceholder("body")
	bodyPlaceholder.MatchAfter = true
	parts := []Placeholder{
		bodyPlaceholder,
		NewText(`[ \t]*finally:[ \t]*\n`, "finally:\n"),
		NewBodyPlaceholder("finalbody"),
	}

	d, err := NewDefaultSourceMatcher(node, parts, startingParens)
	if err != nil {
		return nil, err
	}
	return &TryFinallySourceMatcher{
		DefaultSourceMatcher: d,
		optionalTry:          NewText(`[ \t]*try:[ \t]*\n`, "try:\n"),
	}, nil
}

func (t *TryFinallySourceMatcher) bodyStartsWithTryExcept() bool {
	return len(t.node.Body) > 0 && t.node.Body[0].Kind == pyast.KindTryExcept
}

func (t *TryFinallySourceMatcher) Match(s string) (string, error) {
	remaining := s
	if !t.bodyStartsWithTryExcept() {
		next, err := matchPlaceholder(remaining, nil, t.optionalTry)
		if err != nil {
			return "", err
		}
		remaining = next
	}
	return t.DefaultSourceMatcher.Match(remaining)
}

func (t *TryFinallySourceMatcher) Source() string {
	prefix := ""
	if !t.bodyStartsWithTryExcept() {
		prefix = t.optionalTry.Source(nil)
	}
	return prefix + t.DefaultSourceMatcher.Source()
}
