package pymatch

import (
	"regexp"
	"strconv"

	"github.com/gnolang/pyfmt/internal/pyast"
)

var (
	hexOctDecIntRE = regexp.MustCompile(`^[+-]?(0[xX][0-9a-fA-F]*|0[0-7]*|\d+)`)
	floatLiteralRE = regexp.MustCompile(`^[-+]?\d*\.\d*`)
)

// NumSourceMatcher preserves a number literal's exact lexeme (hex/octal
// form, or a float's trailing zeros) rather than re-rendering from the
// parsed value, and re-renders from that lexeme unless the value has been
// mutated since matching (spec.md §4.4, Number).
type NumSourceMatcher struct {
	baseMatcher
	matchedNum   *float64
	matchedAsStr string
	suffix       string
}

func NewNumSourceMatcher(node *pyast.Node, startingParens []*TextPlaceholder) *NumSourceMatcher {
	return &NumSourceMatcher{baseMatcher: newBaseMatcher(node, startingParens)}
}

func (m *NumSourceMatcher) Match(s string) (string, error) {
	afterParens := m.matchStartParens(s)

	var lexeme string
	switch m.node.NumKind {
	case pyast.NumInt:
		lexeme = hexOctDecIntRE.FindString(afterParens)
	case pyast.NumFloat:
		lexeme = floatLiteralRE.FindString(afterParens)
	default:
		lexeme = strconv.FormatFloat(m.node.N, 'g', -1, 64)
	}
	if lexeme == "" {
		return "", badTemplatef("string %q does not look like a number literal", afterParens)
	}
	n := m.node.N
	m.matchedNum = &n
	m.matchedAsStr = lexeme

	after := afterParens[len(lexeme):]
	matched := lexeme
	if after != "" {
		switch after[0] {
		case 'l', 'L', 'j', 'J':
			m.suffix = string(after[0])
			matched += m.suffix
		}
	}
	m.matchEndParen(afterParens[len(matched):])
	return m.startParenText() + matched + m.endParenText(), nil
}

func (m *NumSourceMatcher) Source() string {
	out := strconv.FormatFloat(m.node.N, 'g', -1, 64)
	if m.matchedNum != nil && *m.matchedNum == m.node.N {
		out = m.matchedAsStr
	}
	out += m.suffix
	if m.parenWrapped {
		out = m.startParenText() + out + m.endParenText()
	}
	return out
}
