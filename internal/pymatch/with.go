package pymatch

import (
	"strings"

	"github.com/gnolang/pyfmt/internal/pyast"
)

// WithSourceMatcher handles _ast.With. Python 2's `with a, b:` compound
// form parses as nested With nodes (the inner one's body *is* the outer's
// single statement), so this matcher has to detect the comma continuation
// and, when rendering, suppress the inner With's own leading "with " and
// join with a comma instead of re-emitting a nested colon block
// (spec.md §4.4, With).
type WithSourceMatcher struct {
	node             *pyast.Node
	withPlaceholder  *TextPlaceholder
	contextExpr      *FieldPlaceholder
	optionalVars     *FieldPlaceholder
	compoundSeparator *TextPlaceholder
	colonPlaceholder *TextPlaceholder
	bodyPlaceholder  *BodyPlaceholder
	isCompoundWith   bool
	startingWith     bool
}

func NewWithSourceMatcher(node *pyast.Node, _ []*TextPlaceholder) *WithSourceMatcher {
	return &WithSourceMatcher{
		node:              node,
		withPlaceholder:   NewText(` *(?:with)? *`, "with "),
		contextExpr:       NewField("context_expr"),
		optionalVars:      NewField("optional_vars", NewText(` *as *`, " as ")),
		compoundSeparator: NewText(`\s*,\s*`, ", "),
		colonPlaceholder:  NewText(`:\n?`, ":\n"),
		bodyPlaceholder:   NewBodyPlaceholder("body"),
		startingWith:      true,
	}
}

func (w *WithSourceMatcher) Match(s string) (string, error) {
	if strings.HasPrefix(strings.TrimLeft(s, " \t"), "with") {
		w.startingWith = true
	}
	remaining, err := matchPlaceholderList(s, w.node,
		[]Placeholder{w.withPlaceholder, w.contextExpr, w.optionalVars}, nil)
	if err != nil {
		return "", err
	}
	if strings.HasPrefix(strings.TrimLeft(remaining, " \t"), ",") {
		w.isCompoundWith = true
		remaining, err = matchPlaceholderList(remaining, w.node,
			[]Placeholder{w.compoundSeparator, w.bodyPlaceholder}, nil)
	} else {
		remaining, err = matchPlaceholderList(remaining, w.node,
			[]Placeholder{w.colonPlaceholder, w.bodyPlaceholder}, nil)
	}
	if err != nil {
		return "", err
	}
	if remaining == "" {
		return s, nil
	}
	return s[:len(s)-len(remaining)], nil
}

// IsCompoundWith reports whether this With was matched as part of a
// `with a, b:` chain, read by nodeutil's indent-level walk (a compound
// with's inner member doesn't add its own indent level).
func (w *WithSourceMatcher) IsCompoundWith() bool { return w.isCompoundWith }

func (w *WithSourceMatcher) Source() string {
	var parts []Placeholder
	if w.startingWith {
		parts = append(parts, w.withPlaceholder)
	}
	parts = append(parts, w.contextExpr, w.optionalVars)
	if w.isCompoundWith && len(w.node.Body) > 0 && w.node.Body[0].Kind == pyast.KindWith {
		inner := w.node.Body[0]
		m, err := GetMatcher(inner, nil)
		if err == nil {
			if innerWith, ok := m.(*WithSourceMatcher); ok {
				innerWith.startingWith = false
			}
		}
		parts = append(parts, w.compoundSeparator)
	} else {
		parts = append(parts, w.colonPlaceholder)
	}
	parts = append(parts, w.bodyPlaceholder)

	out := ""
	for _, p := range parts {
		out += p.Source(w.node)
	}
	return out
}
