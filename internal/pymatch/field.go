package pymatch

import (
	"github.com/gnolang/pyfmt/internal/pyast"
)

// elem is either a Placeholder or a *pyast.Node: the element vocabulary a
// CompositePlaceholder's GetElements may enumerate (spec.md §3 notes
// BoolOp's custom matcher enumerates raw nodes directly alongside
// separators).
type elem interface{}

// stringParser matches a sequence of elements against s in order,
// accumulating the matched prefix, mirroring source_match.py's
// StringParser (spec.md §4.1).
type stringParser struct {
	original       string
	remaining      string
	startingParens []*TextPlaceholder
	matched        []string
}

func newStringParser(s string, node *pyast.Node, elements []elem, startingParens []*TextPlaceholder) (*stringParser, error) {
	p := &stringParser{original: s, remaining: s, startingParens: startingParens}
	for _, e := range elements {
		switch v := e.(type) {
		case Placeholder:
			if err := p.matchPlaceholderElem(node, v); err != nil {
				return nil, err
			}
		case *pyast.Node:
			if err := p.matchNodeElem(v); err != nil {
				return nil, err
			}
		default:
			return nil, invalidTemplatef("unrecognized composite element %T", e)
		}
	}
	return p, nil
}

func (p *stringParser) processSubstring(sub string) error {
	if sub == "" {
		return nil
	}
	strippedSub := stripStartParens(sub)
	strippedRemaining := stripStartParens(p.remaining)
	idx := indexOf(strippedRemaining, strippedSub)
	if idx != 0 {
		return badTemplatef("string %q should be in string %q", strippedSub, strippedRemaining)
	}
	idxInRemaining := indexOf(p.remaining, strippedSub)
	if idxInRemaining < 0 {
		return badTemplatef("string %q should be in string %q", strippedSub, p.remaining)
	}
	p.remaining = p.remaining[idxInRemaining+len(strippedSub):]
	return nil
}

func (p *stringParser) matchPlaceholderElem(node *pyast.Node, ph Placeholder) error {
	if p.remaining == p.original {
		if spa, ok := ph.(startingParensAware); ok {
			spa.SetStartingParens(p.startingParens)
		}
	}
	matched, err := ph.Match(node, p.remaining)
	if err != nil {
		return err
	}
	if err := p.processSubstring(matched); err != nil {
		return err
	}
	p.matched = append(p.matched, matched)
	return nil
}

func (p *stringParser) matchNodeElem(node *pyast.Node) error {
	var startingParens []*TextPlaceholder
	if p.remaining == p.original {
		startingParens = p.startingParens
	}
	src, err := getSourceWithParens(node, p.remaining, startingParens)
	if err != nil {
		return err
	}
	if err := p.processSubstring(src); err != nil {
		return err
	}
	p.matched = append(p.matched, src)
	return nil
}

func (p *stringParser) matchedText() string {
	out := ""
	for _, m := range p.matched {
		out += m
	}
	return out
}

func indexOf(haystack, needle string) int {
	if needle == "" {
		return 0
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return i
		}
	}
	return -1
}

// scalarPlaceholder wraps a live string-valued field (an identifier, not a
// node) so it can sit in an elements() list alongside Placeholders and
// *pyast.Node children. Unlike TextPlaceholder it has no fixed pattern:
// Match validates the field's current value is a prefix of s (true at
// initial match time, since the field was just parsed out of that text);
// Source re-reads the field live, so a caller mutation after matching is
// reflected automatically without re-matching (spec.md §3's mutation
// locality, applied to plain identifier/literal fields).
type scalarPlaceholder struct {
	get func() string
}

func (s *scalarPlaceholder) Match(_ *pyast.Node, str string) (string, error) {
	v := s.get()
	if err := validateStart(str, v); err != nil {
		return "", err
	}
	return v, nil
}

func (s *scalarPlaceholder) Source(_ *pyast.Node) string { return s.get() }

// FieldPlaceholder matches a single child node or scalar field, optionally
// preceded by fixed "before" text (spec.md §4.1).
type FieldPlaceholder struct {
	fieldName string
	before    *TextPlaceholder
	parens    []*TextPlaceholder
}

func NewField(fieldName string, before ...*TextPlaceholder) *FieldPlaceholder {
	f := &FieldPlaceholder{fieldName: fieldName}
	if len(before) > 0 {
		f.before = before[0]
	}
	return f
}

func (f *FieldPlaceholder) SetStartingParens(parens []*TextPlaceholder) { f.parens = parens }

func (f *FieldPlaceholder) child(node *pyast.Node) *pyast.Node {
	return fieldNode(node, f.fieldName)
}

func (f *FieldPlaceholder) elements(node *pyast.Node) []elem {
	var childElem elem
	if v, ok := fieldScalar(node, f.fieldName); ok {
		if v == "" {
			return nil
		}
		fieldName := f.fieldName
		childElem = Placeholder(&scalarPlaceholder{get: func() string {
			s, _ := fieldScalar(node, fieldName)
			return s
		}})
	} else if child := f.child(node); child != nil {
		childElem = child
	} else {
		return nil
	}
	var els []elem
	if f.before != nil {
		els = append(els, Placeholder(f.before))
	}
	els = append(els, childElem)
	return els
}

func (f *FieldPlaceholder) Match(node *pyast.Node, s string) (string, error) {
	if isListField(node, f.fieldName) {
		return "", invalidTemplatef(
			"field %q of node %s is a list; use a ListFieldPlaceholder instead of a FieldPlaceholder",
			f.fieldName, node.Kind)
	}
	p, err := newStringParser(s, node, f.elements(node), f.parens)
	if err != nil {
		return "", err
	}
	return p.matchedText(), nil
}

func (f *FieldPlaceholder) Source(node *pyast.Node) string {
	out := ""
	for _, e := range f.elements(node) {
		out += sourceOfElem(node, e)
	}
	return out
}

func sourceOfElem(node *pyast.Node, e elem) string {
	switch v := e.(type) {
	case Placeholder:
		return v.Source(node)
	case *pyast.Node:
		return getSource(v)
	}
	return ""
}

// ListFieldPlaceholder matches an ordered list of child nodes, with
// optional before/after/prefix text and per-index cloned separators
// (spec.md §4.1).
type ListFieldPlaceholder struct {
	fieldName          string
	before, after       *TextPlaceholder
	prefix              *TextPlaceholder
	excludeFirstBefore bool

	matchedBefore []*TextPlaceholder
	matchedAfter  []*TextPlaceholder
	parens        []*TextPlaceholder
}

type ListFieldOption func(*ListFieldPlaceholder)

func WithBefore(t *TextPlaceholder) ListFieldOption { return func(l *ListFieldPlaceholder) { l.before = t } }
func WithAfter(t *TextPlaceholder) ListFieldOption  { return func(l *ListFieldPlaceholder) { l.after = t } }
func WithPrefix(t *TextPlaceholder) ListFieldOption { return func(l *ListFieldPlaceholder) { l.prefix = t } }
func ExcludeFirstBefore() ListFieldOption {
	return func(l *ListFieldPlaceholder) { l.excludeFirstBefore = true }
}

func NewListField(fieldName string, opts ...ListFieldOption) *ListFieldPlaceholder {
	l := &ListFieldPlaceholder{fieldName: fieldName}
	for _, o := range opts {
		o(l)
	}
	return l
}

// NewSeparatedListField is sugar for a list field whose separator acts as
// "before" on every element except the first (spec.md §4.1).
func NewSeparatedListField(fieldName string, separator *TextPlaceholder) *ListFieldPlaceholder {
	return NewListField(fieldName, WithBefore(separator), ExcludeFirstBefore())
}

func (l *ListFieldPlaceholder) SetStartingParens(parens []*TextPlaceholder) { l.parens = parens }

func (l *ListFieldPlaceholder) beforeAt(i int) *TextPlaceholder {
	for len(l.matchedBefore) <= i {
		l.matchedBefore = append(l.matchedBefore, l.before.Clone().(*TextPlaceholder))
	}
	return l.matchedBefore[i]
}

func (l *ListFieldPlaceholder) afterAt(i int) *TextPlaceholder {
	for len(l.matchedAfter) <= i {
		l.matchedAfter = append(l.matchedAfter, l.after.Clone().(*TextPlaceholder))
	}
	return l.matchedAfter[i]
}

// valueAtIndex returns the elements (before/node/after) for values[index].
func (l *ListFieldPlaceholder) valueAtIndex(values []*pyast.Node, index int) []elem {
	child := values[index]
	if child.Kind == pyast.KindSyntaxFreeLine {
		return []elem{child}
	}
	var els []elem
	if l.before != nil && !(l.excludeFirstBefore && index == 0) {
		beforeIndex := index
		if l.excludeFirstBefore {
			beforeIndex = index - 1
		}
		els = append(els, Placeholder(l.beforeAt(beforeIndex)))
	}
	els = append(els, child)
	if l.after != nil {
		els = append(els, Placeholder(l.afterAt(index)))
	}
	return els
}

func (l *ListFieldPlaceholder) values(node *pyast.Node) []*pyast.Node {
	return fieldNodeList(node, l.fieldName)
}

// scalarValueAtIndex mirrors valueAtIndex for scalar-string list fields
// (only Global.names): no SyntaxFreeLine possibility, so it is just
// before/item/after built around a live-reading scalarPlaceholder.
func (l *ListFieldPlaceholder) scalarValueAtIndex(values []string, index int) []elem {
	var els []elem
	if l.before != nil && !(l.excludeFirstBefore && index == 0) {
		beforeIndex := index
		if l.excludeFirstBefore {
			beforeIndex = index - 1
		}
		els = append(els, Placeholder(l.beforeAt(beforeIndex)))
	}
	v := values[index]
	els = append(els, Placeholder(&scalarPlaceholder{get: func() string { return v }}))
	if l.after != nil {
		els = append(els, Placeholder(l.afterAt(index)))
	}
	return els
}

func (l *ListFieldPlaceholder) elements(node *pyast.Node) []elem {
	if scalars, ok := fieldScalarList(node, l.fieldName); ok {
		var els []elem
		if l.prefix != nil && len(scalars) > 0 {
			els = append(els, Placeholder(l.prefix))
		}
		for i := range scalars {
			els = append(els, l.scalarValueAtIndex(scalars, i)...)
		}
		return els
	}
	values := l.values(node)
	var els []elem
	if l.prefix != nil && len(values) > 0 {
		els = append(els, Placeholder(l.prefix))
	}
	for i := range values {
		els = append(els, l.valueAtIndex(values, i)...)
	}
	return els
}

func (l *ListFieldPlaceholder) validate(node *pyast.Node) error {
	if !isListField(node, l.fieldName) {
		return invalidTemplatef(
			"field %q of node %s is not a list; use a FieldPlaceholder instead of a ListFieldPlaceholder",
			l.fieldName, node.Kind)
	}
	return nil
}

func (l *ListFieldPlaceholder) Match(node *pyast.Node, s string) (string, error) {
	if err := l.validate(node); err != nil {
		return "", err
	}
	p, err := newStringParser(s, node, l.elements(node), l.parens)
	if err != nil {
		return "", err
	}
	return p.matchedText(), nil
}

func (l *ListFieldPlaceholder) Source(node *pyast.Node) string {
	out := ""
	for _, e := range l.elements(node) {
		out += sourceOfElem(node, e)
	}
	return out
}
