package pymatch

import "github.com/gnolang/pyfmt/internal/pyast"

// BoolOpSourceMatcher handles _ast.BoolOp: an n-ary chain of values joined
// by a single repeated operator (all "and" or all "or" — precedence
// regrouping already happened in pycreate.BoolOp at construction time), so
// the grammar is values[0] (sep op sep values[i])*, with its own
// independently-cloned separator placeholder before and after each
// operator occurrence (spec.md §4.4, BoolOp).
type BoolOpSourceMatcher struct {
	baseMatcher
	separatorTemplate *TextPlaceholder
	separators        []*TextPlaceholder
}

func NewBoolOpSourceMatcher(node *pyast.Node, startingParens []*TextPlaceholder) *BoolOpSourceMatcher {
	return &BoolOpSourceMatcher{
		baseMatcher:       newBaseMatcher(node, startingParens),
		separatorTemplate: NewText(`\s*`, " "),
	}
}

func (m *BoolOpSourceMatcher) separatorAt(i int) *TextPlaceholder {
	for len(m.separators) <= i {
		m.separators = append(m.separators, m.separatorTemplate.Clone().(*TextPlaceholder))
	}
	return m.separators[i]
}

func (m *BoolOpSourceMatcher) elements() []elem {
	values := m.node.Values
	if len(values) == 0 {
		return nil
	}
	els := []elem{values[0]}
	for _, v := range values[1:] {
		els = append(els, Placeholder(m.separatorAt(len(m.separators))))
		els = append(els, m.node.Op)
		els = append(els, Placeholder(m.separatorAt(len(m.separators))))
		els = append(els, v)
	}
	return els
}

func (m *BoolOpSourceMatcher) Match(s string) (string, error) {
	afterParens := m.matchStartParens(s)
	p, err := newStringParser(afterParens, m.node, m.elements(), m.startParenMatchers)
	if err != nil {
		return "", wrapBadTemplate("while matching BoolOp", err)
	}
	m.matchEndParen(p.remaining)
	return m.startParenText() + p.matchedText() + m.endParenText(), nil
}

func (m *BoolOpSourceMatcher) Source() string {
	values := m.node.Values
	if len(values) == 0 {
		return ""
	}
	out := ""
	if m.parenWrapped {
		out += m.startParenText()
	}
	out += getSource(values[0])
	sepIndex := 0
	nextSep := func() string {
		if sepIndex < len(m.separators) {
			s := m.separators[sepIndex].Source(nil)
			sepIndex++
			return s
		}
		sepIndex++
		return m.separatorTemplate.def
	}
	for _, v := range values[1:] {
		out += nextSep()
		out += getSource(m.node.Op)
		out += nextSep()
		out += getSource(v)
	}
	if m.parenWrapped {
		out += m.endParenText()
	}
	return out
}
