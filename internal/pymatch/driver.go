package pymatch

import "github.com/gnolang/pyfmt/internal/pyast"

func getStartParenMatcher() *TextPlaceholder { return NewText(`\s*\(`, "") }
func getEndParenMatcher() *TextPlaceholder   { return NewText(`\s*\)`, "") }

// baseMatcher implements the paren-absorption machinery every SourceMatcher
// needs (spec.md §4.5): a node's own balanced wrapping parens aren't part
// of the grammar, so they're matched opportunistically at the edges and
// remembered only if both sides found a partner.
type baseMatcher struct {
	node              *pyast.Node
	startParenMatchers []*TextPlaceholder
	endParenMatchers   []*TextPlaceholder
	parenWrapped       bool
}

func newBaseMatcher(node *pyast.Node, startingParens []*TextPlaceholder) baseMatcher {
	sp := append([]*TextPlaceholder{}, startingParens...)
	return baseMatcher{node: node, startParenMatchers: sp}
}

// matchStartParens greedily consumes leading "(" (with surrounding
// whitespace) from s, recording one TextPlaceholder per paren matched, and
// returns what remains.
func (b *baseMatcher) matchStartParens(s string) string {
	remaining := s
	for {
		m := getStartParenMatcher()
		next, err := matchPlaceholder(remaining, nil, m)
		if err != nil {
			break
		}
		b.startParenMatchers = append(b.startParenMatchers, m)
		remaining = next
	}
	return remaining
}

// matchEndParen greedily consumes trailing ")" from s (up to one per
// unpaired start paren), then reconciles the counts: only the innermost
// min(starts, ends) pairs are considered real wrapping parens.
func (b *baseMatcher) matchEndParen(s string) {
	if len(b.startParenMatchers) == 0 {
		return
	}
	remaining := s
	for range b.startParenMatchers {
		m := getEndParenMatcher()
		next, err := matchPlaceholder(remaining, nil, m)
		if err != nil {
			break
		}
		b.endParenMatchers = append(b.endParenMatchers, m)
		remaining = next
		b.parenWrapped = true
	}

	minSize := len(b.startParenMatchers)
	if len(b.endParenMatchers) < minSize {
		minSize = len(b.endParenMatchers)
	}
	if minSize == 0 {
		b.parenWrapped = false
		return
	}
	newStart := make([]*TextPlaceholder, 0, minSize)
	newEnd := make([]*TextPlaceholder, 0, minSize)
	for i := 0; i < minSize; i++ {
		// Pop from the end of startParenMatchers, pairing innermost-out.
		newStart = append(newStart, b.startParenMatchers[len(b.startParenMatchers)-1-i])
		newEnd = append(newEnd, b.endParenMatchers[i])
	}
	// Reverse newStart to restore original left-to-right order.
	for i, j := 0, len(newStart)-1; i < j; i, j = i+1, j-1 {
		newStart[i], newStart[j] = newStart[j], newStart[i]
	}
	b.startParenMatchers = newStart
	b.endParenMatchers = newEnd
}

func (b *baseMatcher) startParenText() string {
	if !b.parenWrapped {
		return ""
	}
	out := ""
	for _, m := range b.startParenMatchers {
		out += m.Source(nil)
	}
	return out
}

func (b *baseMatcher) endParenText() string {
	if !b.parenWrapped {
		return ""
	}
	out := ""
	for _, m := range b.endParenMatchers {
		out += m.Source(nil)
	}
	return out
}

// DefaultSourceMatcher drives a flat, ordered list of placeholders
// (expectedParts) against source text: the generic template engine that
// covers the large majority of node kinds (spec.md §4.1-4.3).
type DefaultSourceMatcher struct {
	baseMatcher
	expectedParts []Placeholder
}

// NewDefaultSourceMatcher builds a matcher from expectedParts, rejecting
// templates with two adjacent TextPlaceholders (spec.md §7's
// ErrInvalidTemplate: an author error, not a match-time mismatch).
func NewDefaultSourceMatcher(node *pyast.Node, expectedParts []Placeholder, startingParens []*TextPlaceholder) (*DefaultSourceMatcher, error) {
	previousWasText := false
	for _, part := range expectedParts {
		_, isText := part.(*TextPlaceholder)
		if isText && previousWasText {
			return nil, invalidTemplatef("template for %s cannot expect two text placeholders in a row", node.Kind)
		}
		previousWasText = isText
	}
	return &DefaultSourceMatcher{
		baseMatcher:   newBaseMatcher(node, startingParens),
		expectedParts: expectedParts,
	}, nil
}

func (d *DefaultSourceMatcher) Match(s string) (string, error) {
	afterParens := d.matchStartParens(s)
	remaining, err := matchPlaceholderList(afterParens, d.node, d.expectedParts, d.startParenMatchers)
	if err != nil {
		return "", wrapBadTemplate("while matching "+d.node.Kind.String(), err)
	}
	d.matchEndParen(remaining)

	matchedString := s
	if remaining != "" {
		matchedString = s[:len(s)-len(remaining)]
	}
	return d.startParenText() + matchedString + d.endParenText(), nil
}

func (d *DefaultSourceMatcher) Source() string {
	out := ""
	for _, part := range d.expectedParts {
		out += part.Source(d.node)
	}
	if d.parenWrapped {
		out = d.startParenText() + out + d.endParenText()
	}
	return out
}
