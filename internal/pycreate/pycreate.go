// Package pycreate is a convenience facade for building pyast trees by
// hand, grounded on create_node.py: a pile of small constructors that
// assemble a Node and fill in its ctx/operator sub-fields correctly,
// instead of making every caller poke at pyast.Node directly.
package pycreate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gnolang/pyfmt/internal/pyast"
)

// ErrInvalidCtx is returned by constructors given an unrecognized ctx tag.
type ErrInvalidCtx struct {
	Ctx string
}

func (e *ErrInvalidCtx) Error() string {
	return fmt.Sprintf("ctx_type %q isn't a valid type", e.Ctx)
}

// ParseCtx maps the load/store/delete/param string vocabulary
// create_node.py's CtxEnum uses onto pyast.CtxKind, for callers building
// nodes from a textual fixture description rather than Go code.
func ParseCtx(s string) (pyast.CtxKind, error) {
	switch s {
	case "load", "":
		return pyast.CtxLoad, nil
	case "store":
		return pyast.CtxStore, nil
	case "delete", "del":
		return pyast.CtxDel, nil
	case "param":
		return pyast.CtxParam, nil
	}
	return 0, &ErrInvalidCtx{Ctx: s}
}

// Name builds an _ast.Name-equivalent node.
func Name(id string, ctx pyast.CtxKind) *pyast.Node {
	n := pyast.New(pyast.KindName)
	n.Id = id
	n.Ctx = ctx
	return n
}

// wrapWithName mirrors create_node.py's _WrapWithName: a bare string
// becomes a Name node, anything already a node passes through.
func wrapWithName(item interface{}, ctx pyast.CtxKind) *pyast.Node {
	switch v := item.(type) {
	case *pyast.Node:
		return v
	case string:
		return Name(v, ctx)
	}
	return nil
}

// Num builds an _ast.Num-equivalent node, preserving the literal lexeme
// exactly as authored (spec.md §4.4's Number custom matcher relies on this
// for non-decimal/suffix preservation).
func Num(lexeme string, value float64, kind pyast.NumKind) *pyast.Node {
	n := pyast.New(pyast.KindNum)
	n.NumLiteral = lexeme
	n.N = value
	n.NumKind = kind
	return n
}

// Str builds an _ast.Str-equivalent node from a single literal part (the
// common case); concatenated adjacent literals are represented as
// multiple StringParts, set directly when constructing from a parser.
func Str(value, prefix, quote string) *pyast.Node {
	n := pyast.New(pyast.KindStr)
	n.S = value
	n.StringParts = []pyast.StringPart{{Prefix: prefix, Quote: quote, Inner: value}}
	return n
}

var unaryOpKinds = map[string]pyast.Kind{
	"+": pyast.KindUAdd, "-": pyast.KindUSub, "not": pyast.KindNot, "~": pyast.KindInvert,
}

// UnaryOpMap maps a unary operator token to its tag node, as
// create_node.py's UnaryOpMap does.
func UnaryOpMap(operator string) (*pyast.Node, error) {
	k, ok := unaryOpKinds[operator]
	if !ok {
		return nil, fmt.Errorf("pycreate: unrecognized unary operator %q", operator)
	}
	return pyast.New(k), nil
}

var binOpKinds = map[string]pyast.Kind{
	"+": pyast.KindAdd, "-": pyast.KindSub, "*": pyast.KindMult, "/": pyast.KindDiv,
	"//": pyast.KindFloorDiv, "%": pyast.KindMod, "**": pyast.KindPow,
	"<<": pyast.KindLShift, ">>": pyast.KindRShift,
	"&": pyast.KindBitAnd, "|": pyast.KindBitOr, "^": pyast.KindBitXor,
}

// BinOpMap maps a binary operator token to its tag node.
func BinOpMap(operator string) (*pyast.Node, error) {
	k, ok := binOpKinds[operator]
	if !ok {
		return nil, fmt.Errorf("pycreate: unrecognized binary operator %q", operator)
	}
	return pyast.New(k), nil
}

var boolOpKinds = map[string]pyast.Kind{"and": pyast.KindAnd, "or": pyast.KindOr}

// BoolOpMap maps a boolean operator token to its tag node.
func BoolOpMap(operator string) (*pyast.Node, error) {
	k, ok := boolOpKinds[operator]
	if !ok {
		return nil, fmt.Errorf("pycreate: unrecognized boolean operator %q", operator)
	}
	return pyast.New(k), nil
}

var compareOpKinds = map[string]pyast.Kind{
	"==": pyast.KindEq, "!=": pyast.KindNotEq, "<": pyast.KindLt, "<=": pyast.KindLtE,
	">": pyast.KindGt, ">=": pyast.KindGtE, "is": pyast.KindIs, "is not": pyast.KindIsNot,
	"in": pyast.KindIn, "not in": pyast.KindNotIn,
}

// CompareOpMap maps a comparison operator token to its tag node.
func CompareOpMap(operator string) (*pyast.Node, error) {
	k, ok := compareOpKinds[operator]
	if !ok {
		return nil, fmt.Errorf("pycreate: unrecognized comparison operator %q", operator)
	}
	return pyast.New(k), nil
}

// BinOp builds an _ast.BinOp-equivalent node.
func BinOp(left *pyast.Node, op *pyast.Node, right *pyast.Node) *pyast.Node {
	n := pyast.New(pyast.KindBinOp)
	n.Left, n.Op, n.Right = left, op, right
	return n
}

// opValue is one (operator, value) pair in a BoolOp's alternating argument
// list, mirroring create_node.py's *alternating_ops_values varargs.
type opValue struct {
	op    *pyast.Node
	value *pyast.Node
}

// OpValue builds one alternating (op, value) pair for BoolOp. op may be
// "and"/"or" text or an already-built tag node.
func OpValue(op interface{}, value *pyast.Node) (opValue, error) {
	var opNode *pyast.Node
	switch v := op.(type) {
	case *pyast.Node:
		opNode = v
	case string:
		n, err := BoolOpMap(v)
		if err != nil {
			return opValue{}, err
		}
		opNode = n
	default:
		return opValue{}, fmt.Errorf("pycreate: op must be a string or *pyast.Node")
	}
	return opValue{op: opNode, value: value}, nil
}

// BoolOp builds an _ast.BoolOp-equivalent node from a left operand and an
// alternating (op, value) chain, regrouping mixed and/or runs so that `or`
// binds loosest — exactly create_node.py's BoolOp precedence rewrite
// (spec.md §4.4): "a and b or c" nests as Or(And(a,b), c), never a flat
// three-way BoolOp.
func BoolOp(left *pyast.Node, rest ...opValue) *pyast.Node {
	values := []*pyast.Node{left}
	var op *pyast.Node
	i := 0
	for i < len(rest) {
		ov := rest[i]
		if op == nil {
			op = ov.op
		} else if op.Kind == ov.op.Kind {
			values = append(values, ov.value)
			i++
			continue
		} else {
			if op.Kind == pyast.KindAnd {
				// Or takes priority: fold everything seen so far into a
				// nested And-chain, then keep regrouping at Or level.
				sub := pyast.New(pyast.KindBoolOp)
				sub.Op = op
				sub.Values = values
				return BoolOp(sub, rest[i:]...)
			}
			lastValue := values[len(values)-1]
			values = values[:len(values)-1]
			values = append(values, BoolOp(lastValue, rest[i:]...))
			n := pyast.New(pyast.KindBoolOp)
			n.Op = pyast.New(pyast.KindOr)
			n.Values = values
			return n
		}
		values = append(values, ov.value)
		i++
	}
	n := pyast.New(pyast.KindBoolOp)
	n.Op = op
	n.Values = values
	return n
}

func leftmostNodeInDotVar(node *pyast.Node) *pyast.Node {
	for node.Id == "" {
		if node.Value == nil {
			return node
		}
		node = node.Value
	}
	return node
}

// Tuple builds an _ast.Tuple-equivalent node, wrapping bare identifiers in
// Name nodes and propagating ctx onto Name/Attribute children, exactly as
// create_node.py's Tuple does.
func Tuple(ctx pyast.CtxKind, items ...interface{}) *pyast.Node {
	n := pyast.New(pyast.KindTuple)
	n.Ctx = ctx
	n.Elts = make([]*pyast.Node, 0, len(items))
	for _, item := range items {
		child := wrapWithName(item, pyast.CtxLoad)
		if child == nil {
			continue
		}
		switch child.Kind {
		case pyast.KindName:
			child.Ctx = ctx
		case pyast.KindAttribute:
			leftmostNodeInDotVar(child).Ctx = ctx
		}
		n.Elts = append(n.Elts, child)
	}
	return n
}

// syntaxFreeLineStartRE matches a leading (possibly comment-bearing,
// possibly empty) line, as create_node.py's SyntaxFreeLine.MatchesStart.
var syntaxFreeLineStartRE = regexp.MustCompile(`^([ \t]*)(?:()()()|(#)([ \t]*)(.*))\n`)

// SyntaxFreeLineMatchesStart reports whether text begins with a blank or
// comment-only line.
func SyntaxFreeLineMatchesStart(text string) bool {
	return syntaxFreeLineStartRE.MatchString(text)
}

// NewSyntaxFreeLine builds a SyntaxFreeLine node from one already-matched
// source line (including its trailing newline), mirroring
// create_node.py's SetFromSrcLine.
func NewSyntaxFreeLine(line string) (*pyast.Node, error) {
	m := syntaxFreeLineStartRE.FindStringSubmatch(line)
	if m == nil {
		return nil, fmt.Errorf("pycreate: line %q is not a valid syntax-free line", line)
	}
	n := pyast.New(pyast.KindSyntaxFreeLine)
	n.ColOffset = len(m[1])
	n.CommentIndent = 0
	n.HasComment = false
	if m[5] != "" || strings.HasPrefix(strings.TrimLeft(line, " \t"), "#") {
		n.HasComment = true
		n.CommentIndent = len(m[6])
		n.Comment = m[7]
	}
	return n, nil
}

// FullLine renders a SyntaxFreeLine node's line (without the trailing
// newline), the Go analogue of create_node.py's full_line property.
func FullLine(n *pyast.Node) string {
	if !n.HasComment {
		return ""
	}
	return strings.Repeat(" ", n.ColOffset) + "#" + strings.Repeat(" ", n.CommentIndent) + n.Comment
}
