package pymatch

import (
	"regexp"
	"strings"

	"github.com/gnolang/pyfmt/internal/pyast"
)

// Placeholder is the leaf vocabulary of a template: a unit that knows how
// to match a prefix of a string and how to emit text for a node
// (spec.md §4.1).
type Placeholder interface {
	// Match consumes a prefix of s and records what it consumed. It
	// returns the matched prefix (including any parens the placeholder's
	// children absorbed).
	Match(node *pyast.Node, s string) (string, error)
	// Source returns this placeholder's emission for node: the last
	// matched text if any, else a default rendering.
	Source(node *pyast.Node) string
}

// Cloneable is implemented by placeholders that need independent
// per-element state when used inside a list (spec.md's DESIGN NOTES:
// "each element gets its own owned placeholder clone").
type Cloneable interface {
	Clone() Placeholder
}

// startingParensAware lets a placeholder accept the count of parens
// absorbed by an enclosing matcher at the left edge of a composite's
// first child (spec.md §4.5's starting_parens hand-off).
type startingParensAware interface {
	SetStartingParens(parens []*TextPlaceholder)
}

// TextPlaceholder matches fixed grammar punctuation and whitespace via a
// regex, and emits either the text it last matched or a configured
// default (spec.md §4.1).
type TextPlaceholder struct {
	originalPattern string
	re              *regexp.Regexp
	def             string
	matched         *string
}

var (
	whitespaceRunRE = regexp.MustCompile(`\\s\*`)
	newlineRE       = regexp.MustCompile(`\\n`)
)

// transformRegex applies the whitespace/comment rewrite contract of
// spec.md §3: a literal `\s*` in a template regex is widened to also
// swallow inline line continuations and `#`-comments, and a literal `\n`
// is widened to also accept a preceding comment or semicolon separator.
func transformRegex(pattern string) string {
	parts := whitespaceRunRE.Split(pattern, -1)
	pattern = strings.Join(parts, `\s*(\\\s*|#.*\s*)*`)
	parts = newlineRE.Split(pattern, -1)
	pattern = strings.Join(parts, `( *#.*\n| *;| *\n)`)
	return pattern
}

// NewText constructs a TextPlaceholder. If def is omitted, the original
// (untransformed) pattern is used as the default text; an explicit ""
// default stays empty. Omitting def matches
// source_match.py's TextPlaceholder(regex, default=None) behavior.
func NewText(pattern string, def ...string) *TextPlaceholder {
	d := pattern
	if len(def) > 0 {
		d = def[0]
	}
	return &TextPlaceholder{
		originalPattern: pattern,
		re:              regexp.MustCompile(`\A(?:` + transformRegex(pattern) + `)`),
		def:             d,
	}
}

func (t *TextPlaceholder) Match(_ *pyast.Node, s string) (string, error) {
	return t.matchDotAll(s, false)
}

// MatchDotAll matches with "." accepting newlines, used for string
// literal interiors (spec.md §4.1).
func (t *TextPlaceholder) MatchDotAll(s string) (string, error) {
	return t.matchDotAll(s, true)
}

func (t *TextPlaceholder) matchDotAll(s string, dotAll bool) (string, error) {
	re := t.re
	if dotAll {
		re = regexp.MustCompile(`\A(?s:` + transformRegex(t.originalPattern) + `)`)
	}
	loc := re.FindStringIndex(s)
	if loc == nil {
		return "", badTemplatef(
			"string %q does not match regex %q", s, t.originalPattern)
	}
	matched := s[loc[0]:loc[1]]
	t.matched = &matched
	return matched, nil
}

func (t *TextPlaceholder) Source(_ *pyast.Node) string {
	if t.matched == nil {
		return t.def
	}
	return *t.matched
}

func (t *TextPlaceholder) Clone() Placeholder {
	return &TextPlaceholder{originalPattern: t.originalPattern, re: t.re, def: t.def}
}

// NodePlaceholder wraps an already-bound child node, used internally when
// composite matchers enumerate elements (spec.md §3's NodeRef variant).
type NodePlaceholder struct {
	node *pyast.Node
}

func (p *NodePlaceholder) Match(_ *pyast.Node, s string) (string, error) {
	src, err := getSourceWithParens(p.node, s, nil)
	if err != nil {
		return "", err
	}
	if err := validateStart(s, src); err != nil {
		return "", err
	}
	return src, nil
}

func (p *NodePlaceholder) Source(_ *pyast.Node) string {
	return getSource(p.node)
}

// validateStart checks that full (modulo leading parens) starts with
// start (modulo leading parens), as spec.md §4.3's driver does at every
// placeholder boundary.
func validateStart(full, start string) error {
	strippedFull := stripStartParens(full)
	strippedStart := stripStartParens(start)
	if !strings.HasPrefix(strippedFull, strippedStart) {
		return badTemplatef(
			"string %q should have started with string %q", strippedFull, strippedStart)
	}
	return nil
}

// stripStartParens consumes leading "(" tokens (with trailing whitespace)
// the way spec.md §4.5 describes, without attaching them to any matcher.
func stripStartParens(s string) string {
	remaining := s
	for strings.HasPrefix(remaining, "(") {
		m := startParenRE.FindString(remaining)
		if m == "" {
			break
		}
		remaining = remaining[len(m):]
	}
	return remaining
}

var (
	startParenRE = regexp.MustCompile(`\A\(\s*`)
	endParenRE   = regexp.MustCompile(`\A\s*\)`)
)

// matchPlaceholder matches a single placeholder against the start of s,
// validates that s actually begins with what was matched (modulo leading
// parens for non-text placeholders), and returns the remainder of s after
// the match.
func matchPlaceholder(s string, node *pyast.Node, ph Placeholder) (string, error) {
	matched, err := ph.Match(node, s)
	if err != nil {
		return "", err
	}
	if matched == "" {
		return s, nil
	}
	if err := validateStart(s, matched); err != nil {
		return "", err
	}
	if _, isText := ph.(*TextPlaceholder); !isText {
		matched = stripStartParens(matched)
	}
	idx := strings.Index(s, matched)
	if idx < 0 {
		return "", badTemplatef("string %q should have started with placeholder %v", s, ph)
	}
	before, after := s[:idx], s[idx+len(matched):]
	if stripStartParens(before) != "" {
		return "", badTemplatef(
			"string %q should have started with placeholder %v", s, ph)
	}
	return after, nil
}

// matchPlaceholderList runs matchPlaceholder across a sequence of
// placeholders in order, threading the remaining string through, and
// hands starting parens to the first placeholder only.
func matchPlaceholderList(s string, node *pyast.Node, placeholders []Placeholder, startingParens []*TextPlaceholder) (string, error) {
	remaining := s
	for i, ph := range placeholders {
		if i == 0 {
			if spa, ok := ph.(startingParensAware); ok {
				spa.SetStartingParens(startingParens)
			}
		}
		var err error
		remaining, err = matchPlaceholder(remaining, node, ph)
		if err != nil {
			return "", err
		}
	}
	return remaining, nil
}
