package pymatch

import "github.com/gnolang/pyfmt/internal/pyast"

// nodePair is a parallel pair drawn from two equal-length node lists (a
// default-valued arg, a dict key/value, a comparison op/operand): the
// composite placeholders below each walk one "singles" list and one
// "pairs" list, separated differently (spec.md §4.2's paired composites).
type nodePair struct {
	a, b *pyast.Node
}

// argsKwargsFunc splits a node's fields into "plain" positional elements
// and "paired" elements, the one difference between ArgsDefaultsPlaceholder,
// KeysValuesPlaceholder, and OpsComparatorsPlaceholder.
type argsKwargsFunc func(node *pyast.Node) (singles []*pyast.Node, pairs []nodePair)

// ArgsDefaultsPlaceholder threads two separators through a mixed run of
// plain elements and key/value-style pairs: argSep between top-level
// elements, kwargSep between the two halves of a pair (spec.md §4.2).
// KeysValuesPlaceholder and OpsComparatorsPlaceholder are the same engine
// over different field pairs.
type ArgsDefaultsPlaceholder struct {
	argSep, kwargSep *TextPlaceholder
	argSeparators    []*TextPlaceholder
	kwargSeparators  []*TextPlaceholder
	split            argsKwargsFunc
	parens           []*TextPlaceholder
}

func newArgsDefaultsPlaceholder(argSep, kwargSep *TextPlaceholder, split argsKwargsFunc) *ArgsDefaultsPlaceholder {
	return &ArgsDefaultsPlaceholder{argSep: argSep, kwargSep: kwargSep, split: split}
}

// NewArgsDefaultsPlaceholder handles _ast.arguments' args/defaults: the
// last len(defaults) entries of args are paired with defaults; the rest
// are plain.
func NewArgsDefaultsPlaceholder(argSep, kwargSep *TextPlaceholder) *ArgsDefaultsPlaceholder {
	return newArgsDefaultsPlaceholder(argSep, kwargSep, func(node *pyast.Node) ([]*pyast.Node, []nodePair) {
		args := node.ArgsList
		defaults := node.Defaults
		n := len(defaults)
		if n == 0 {
			return args, nil
		}
		split := len(args) - n
		if split < 0 {
			split = 0
		}
		pairs := make([]nodePair, 0, n)
		for i, d := range defaults {
			pairs = append(pairs, nodePair{a: args[split+i], b: d})
		}
		return args[:split], pairs
	})
}

// NewKeysValuesPlaceholder handles _ast.Dict's keys/values.
func NewKeysValuesPlaceholder(argSep, kwargSep *TextPlaceholder) *ArgsDefaultsPlaceholder {
	return newArgsDefaultsPlaceholder(argSep, kwargSep, func(node *pyast.Node) ([]*pyast.Node, []nodePair) {
		pairs := make([]nodePair, 0, len(node.Keys))
		for i := range node.Keys {
			pairs = append(pairs, nodePair{a: node.Keys[i], b: node.Values[i]})
		}
		return nil, pairs
	})
}

// NewOpsComparatorsPlaceholder handles _ast.Compare's ops/comparators.
func NewOpsComparatorsPlaceholder(argSep, kwargSep *TextPlaceholder) *ArgsDefaultsPlaceholder {
	return newArgsDefaultsPlaceholder(argSep, kwargSep, func(node *pyast.Node) ([]*pyast.Node, []nodePair) {
		pairs := make([]nodePair, 0, len(node.Ops))
		for i := range node.Ops {
			pairs = append(pairs, nodePair{a: node.Ops[i], b: node.Comparators[i]})
		}
		return nil, pairs
	})
}

func (a *ArgsDefaultsPlaceholder) SetStartingParens(parens []*TextPlaceholder) { a.parens = parens }

func (a *ArgsDefaultsPlaceholder) argSeparatorAt(i int) *TextPlaceholder {
	for len(a.argSeparators) <= i {
		a.argSeparators = append(a.argSeparators, a.argSep.Clone().(*TextPlaceholder))
	}
	return a.argSeparators[i]
}

func (a *ArgsDefaultsPlaceholder) kwargSeparatorAt(i int) *TextPlaceholder {
	for len(a.kwargSeparators) <= i {
		a.kwargSeparators = append(a.kwargSeparators, a.kwargSep.Clone().(*TextPlaceholder))
	}
	return a.kwargSeparators[i]
}

func (a *ArgsDefaultsPlaceholder) elements(node *pyast.Node) []elem {
	singles, pairs := a.split(node)
	var els []elem
	argIndex, kwargIndex := 0, 0
	for i, s := range singles {
		els = append(els, s)
		if i != len(singles)-1 || len(pairs) > 0 {
			els = append(els, Placeholder(a.argSeparatorAt(argIndex)))
			argIndex++
		}
	}
	for i, p := range pairs {
		els = append(els, p.a)
		els = append(els, Placeholder(a.kwargSeparatorAt(kwargIndex)))
		kwargIndex++
		els = append(els, p.b)
		if i != len(pairs)-1 {
			els = append(els, Placeholder(a.argSeparatorAt(argIndex)))
			argIndex++
		}
	}
	return els
}

func (a *ArgsDefaultsPlaceholder) Match(node *pyast.Node, s string) (string, error) {
	p, err := newStringParser(s, node, a.elements(node), a.parens)
	if err != nil {
		return "", err
	}
	return p.matchedText(), nil
}

func (a *ArgsDefaultsPlaceholder) Source(node *pyast.Node) string {
	out := ""
	for _, e := range a.elements(node) {
		out += sourceOfElem(node, e)
	}
	return out
}

// ArgsKeywordsPlaceholder handles _ast.Call's args/keywords/starargs,
// which — unlike the other pairings above — aren't parallel lists at all:
// positional args, an optional `*args`, then keyword args, each separated
// by argSep (spec.md §4.2).
type ArgsKeywordsPlaceholder struct {
	argSep, kwargSep  *TextPlaceholder
	starargSeparator  *TextPlaceholder
	argSeparators     []*TextPlaceholder
	parens            []*TextPlaceholder
}

func NewArgsKeywordsPlaceholder(argSep, kwargSep *TextPlaceholder) *ArgsKeywordsPlaceholder {
	return &ArgsKeywordsPlaceholder{
		argSep:           argSep,
		kwargSep:         kwargSep,
		starargSeparator: NewText(`\s*,?\s*\*`, ", *"),
	}
}

func (a *ArgsKeywordsPlaceholder) SetStartingParens(parens []*TextPlaceholder) { a.parens = parens }

func (a *ArgsKeywordsPlaceholder) argSeparatorAt(i int) *TextPlaceholder {
	for len(a.argSeparators) <= i {
		a.argSeparators = append(a.argSeparators, a.argSep.Clone().(*TextPlaceholder))
	}
	return a.argSeparators[i]
}

func (a *ArgsKeywordsPlaceholder) elements(node *pyast.Node) []elem {
	args := node.ArgsList
	keywords := node.Keywords
	var els []elem
	argIndex := 0
	for i, arg := range args {
		els = append(els, arg)
		if i != len(args)-1 || len(keywords) > 0 {
			els = append(els, Placeholder(a.argSeparatorAt(argIndex)))
			argIndex++
		}
	}
	if node.StarArgs != nil {
		els = append(els, Placeholder(a.starargSeparator))
		els = append(els, node.StarArgs)
		if len(keywords) > 0 {
			els = append(els, Placeholder(a.argSeparatorAt(argIndex)))
			argIndex++
		}
	}
	for i, kw := range keywords {
		els = append(els, kw)
		if i != len(keywords)-1 {
			els = append(els, Placeholder(a.argSeparatorAt(argIndex)))
			argIndex++
		}
	}
	return els
}

func (a *ArgsKeywordsPlaceholder) Match(node *pyast.Node, s string) (string, error) {
	p, err := newStringParser(s, node, a.elements(node), a.parens)
	if err != nil {
		return "", err
	}
	return p.matchedText(), nil
}

func (a *ArgsKeywordsPlaceholder) Source(node *pyast.Node) string {
	out := ""
	for _, e := range a.elements(node) {
		out += sourceOfElem(node, e)
	}
	return out
}
