package pymatch

import (
	"regexp"
	"strings"

	"github.com/gnolang/pyfmt/internal/pyast"
)

// DefaultQuoteType is used when a Str node has never been matched against
// source (freshly constructed) and needs a quote style picked from
// nothing (spec.md §4.4, Str — "best-effort default").
var DefaultQuoteType = "\""

func isBackslashEscapedQuote(s string, quoteIndex int) bool {
	count := 0
	for i := quoteIndex - 1; i >= 0; i-- {
		if s[i] != '\\' {
			break
		}
		count++
	}
	return count%2 == 1
}

// findQuoteEnd locates the index of the closing quote of type quoteType in
// s, skipping over any backslash-escaped occurrences (spec.md §4.4, Str).
func findQuoteEnd(s, quoteType string) int {
	trial := strings.Index(s, quoteType)
	if trial == -1 {
		return -1
	}
	if !isBackslashEscapedQuote(s, trial) {
		return trial
	}
	newStart := trial + 1
	rest := findQuoteEnd(s[newStart:], quoteType)
	if rest == -1 {
		return -1
	}
	return newStart + rest
}

var stringStartRE = regexp.MustCompile(`^(?:ur|uR|Ur|UR|u|U|r|R)?("""|'''|"|')`)

// StringPartPlaceholder matches one quoted segment of a (possibly
// implicitly concatenated) string literal: an optional prefix, a quote, a
// dot-all inner body up to the matching unescaped closing quote, and the
// closing quote (spec.md §4.4, Str).
type StringPartPlaceholder struct {
	prefix *TextPlaceholder
	quote  *TextPlaceholder
	inner  *TextPlaceholder
}

func newStringPartPlaceholder() *StringPartPlaceholder {
	return &StringPartPlaceholder{
		prefix: NewText(`ur|uR|Ur|UR|u|r|U|R|`, ""),
		quote:  NewText(`"""|'''|"|'`, ""),
		inner:  NewText(`.*`, ""),
	}
}

func (p *StringPartPlaceholder) Match(_ *pyast.Node, s string) (string, error) {
	afterPrefix, err := matchPlaceholder(s, nil, p.prefix)
	if err != nil {
		return "", err
	}
	afterQuote, err := matchPlaceholder(afterPrefix, nil, p.quote)
	if err != nil {
		return "", err
	}
	quoteType := ""
	if p.quote.matched != nil {
		quoteType = *p.quote.matched
	}
	endIndex := findQuoteEnd(afterQuote, quoteType)
	if endIndex == -1 {
		return "", badTemplatef("string %q does not end properly", s)
	}
	if _, err := p.inner.matchDotAll(afterQuote[:endIndex], true); err != nil {
		return "", err
	}
	remaining := afterQuote[endIndex+len(quoteType):]
	if remaining == "" {
		return s, nil
	}
	return s[:len(s)-len(remaining)], nil
}

func (p *StringPartPlaceholder) Source(node *pyast.Node) string {
	return p.prefix.Source(node) + p.quote.Source(node) + p.inner.Source(node) + p.quote.Source(node)
}

func (p *StringPartPlaceholder) overrideInner(s string) {
	p.inner.matched = &s
}

// StrSourceMatcher handles _ast.Str: a run of one or more adjacent quoted
// segments (Python's implicit string literal concatenation), each
// independently tracking its own prefix/quote style, joined by
// whitespace-only separators (spec.md §4.4, Str). If node.S is mutated
// after matching, rendering collapses to the first segment's style with
// the new full value substituted in, rather than trying to redistribute
// the new value across the original segment boundaries.
type StrSourceMatcher struct {
	baseMatcher
	separatorTemplate *TextPlaceholder
	quoteParts        []*StringPartPlaceholder
	separators        []*TextPlaceholder
	originalQuoteType string
	originalS         *string
	hasMatched        bool
}

func NewStrSourceMatcher(node *pyast.Node, startingParens []*TextPlaceholder) *StrSourceMatcher {
	return &StrSourceMatcher{
		baseMatcher:       newBaseMatcher(node, startingParens),
		separatorTemplate: NewText(`\s*`, ""),
	}
}

func (m *StrSourceMatcher) Match(s string) (string, error) {
	remaining := m.matchStartParens(s)
	original := m.node.S
	m.originalS = &original
	m.hasMatched = true

	part := newStringPartPlaceholder()
	next, err := matchPlaceholder(remaining, nil, part)
	if err != nil {
		return "", wrapBadTemplate("while matching Str", err)
	}
	remaining = next
	m.quoteParts = append(m.quoteParts, part)

	for {
		separator := m.separatorTemplate.Clone().(*TextPlaceholder)
		trial, err := matchPlaceholder(remaining, nil, separator)
		if err != nil || !stringStartRE.MatchString(trial) {
			break
		}
		remaining = trial
		m.separators = append(m.separators, separator)
		next := newStringPartPlaceholder()
		after, err := matchPlaceholder(remaining, nil, next)
		if err != nil {
			return "", wrapBadTemplate("while matching concatenated Str segment", err)
		}
		remaining = after
		m.quoteParts = append(m.quoteParts, next)
	}

	m.matchEndParen(remaining)
	if m.quoteParts[0].quote.matched != nil {
		m.originalQuoteType = *m.quoteParts[0].quote.matched
	}

	matchedLen := len(s) - len(remaining)
	return m.startParenText() + s[:matchedLen] + m.endParenText(), nil
}

func (m *StrSourceMatcher) Source() string {
	if !m.hasMatched {
		return DefaultQuoteType + m.node.S + DefaultQuoteType
	}
	if m.originalS != nil && *m.originalS != m.node.S {
		m.quoteParts = m.quoteParts[:1]
		m.quoteParts[0].overrideInner(m.node.S)
	}
	out := m.startParenText()
	out += m.quoteParts[0].Source(m.node)
	for i := 1; i < len(m.quoteParts); i++ {
		sep := m.separatorTemplate
		if i-1 < len(m.separators) {
			sep = m.separators[i-1]
		}
		out += sep.Source(nil)
		out += m.quoteParts[i].Source(m.node)
	}
	out += m.endParenText()
	return out
}
