// Package nodeutil provides tree-walking utilities over pyast.Node:
// indent-level discovery, parent/wrapping-statement lookup, and deep copy.
// Grounded on node_tree_util.py's IndentLevelVisitor / _ParentVisitor /
// _WrappingStmtVisitor / NodeCopy.
package nodeutil

import (
	"fmt"

	"github.com/gnolang/pyfmt/internal/pyast"
)

// indentFields lists, per node kind, which of its list-fields increase the
// indent level of the statements inside them — the Go analogue of
// node_tree_util.py's TYPE_TO_INDENT_FIELD.
var indentFields = map[pyast.Kind][]string{
	pyast.KindClassDef:      {"body"},
	pyast.KindExceptHandler: {"body"},
	pyast.KindFor:           {"body"},
	pyast.KindFunctionDef:   {"body"},
	pyast.KindIf:            {"body", "orelse"},
	pyast.KindTryExcept:     {"body", "orelse"},
	pyast.KindTryFinally:    {"finalbody"},
	pyast.KindWhile:         {"body"},
	pyast.KindWith:          {"body"},
}

// namedChild is one (fieldName, child) edge out of node, used to walk the
// tree generically without Go reflection.
type namedChild struct {
	field string
	node  *pyast.Node
}

// children enumerates every child node reachable from node along with the
// field name it's stored under, standing in for Python's ast.iter_fields.
func children(node *pyast.Node) []namedChild {
	var out []namedChild
	single := func(field string, n *pyast.Node) {
		if n != nil {
			out = append(out, namedChild{field, n})
		}
	}
	list := func(field string, ns []*pyast.Node) {
		for _, n := range ns {
			if n != nil {
				out = append(out, namedChild{field, n})
			}
		}
	}

	single("value", node.Value)
	single("test", node.Test)
	single("target", node.Target)
	single("iter", node.Iter)
	single("left", node.Left)
	single("right", node.Right)
	single("op", node.Op)
	single("operand", node.Operand)
	single("func", node.Func)
	single("elt", node.Elt)
	single("key", node.Key)
	single("lower", node.Lower)
	single("upper", node.Upper)
	single("step", node.Step)
	single("slice", node.Slice)
	single("context_expr", node.ContextExpr)
	single("optional_vars", node.OptionalVars)
	single("args", node.ArgsNode)
	single("type", node.Type)
	single("msg", node.Msg)
	single("dest", node.Dest)
	single("name", node.ExceptName)
	single("body", node.BodyExpr)
	single("orelse", node.OrelseExpr)
	single("starargs", node.StarArgs)
	single("kwargs", node.KwArgs)

	list("elts", node.Elts)
	list("targets", node.Targets)
	list("values", node.Values)
	list("keys", node.Keys)
	list("body", node.Body)
	list("orelse", node.Orelse)
	list("finalbody", node.FinalBody)
	list("handlers", node.Handlers)
	list("decorator_list", node.DecoratorList)
	list("bases", node.Bases)
	list("args", node.ArgsList)
	list("defaults", node.Defaults)
	list("keywords", node.Keywords)
	list("generators", node.Generators)
	list("ifs", node.Ifs)
	list("comparators", node.Comparators)
	list("ops", node.Ops)
	list("names", node.Names)

	return out
}

func isIndentField(node *pyast.Node, field string) bool {
	for _, f := range indentFields[node.Kind] {
		if f == field {
			return true
		}
	}
	return false
}

// IndentLevel returns how many indent levels deep nodeToCheck sits inside
// module, erroring if nodeToCheck isn't reachable from module at all
// (spec.md §6, grounded on GetIndentLevel).
func IndentLevel(module, nodeToCheck *pyast.Node) (int, error) {
	level := 0
	final := -1
	var visit func(node *pyast.Node)
	visit = func(node *pyast.Node) {
		if node == nodeToCheck {
			final = level
		}
		compoundWithOffset := 0
		if node.Kind == pyast.KindWith {
			if m, ok := node.Matcher.(interface{ IsCompoundWith() bool }); ok && m.IsCompoundWith() {
				level--
				compoundWithOffset = 1
			}
		}
		for _, c := range children(node) {
			indent := isIndentField(node, c.field)
			if indent {
				level++
			}
			visit(c.node)
			if indent {
				level--
			}
		}
		level += compoundWithOffset
	}
	visit(module)
	if final == -1 {
		return 0, fmt.Errorf("nodeutil: node is not in module")
	}
	return final, nil
}

// WrappingStatement returns the nearest enclosing statement of nodeInStmt
// within module (an expression sits "inside" the last statement visited
// before it), grounded on GetWrappingStmtNode.
func WrappingStatement(module, nodeInStmt *pyast.Node) *pyast.Node {
	var current, found *pyast.Node
	var visit func(node *pyast.Node)
	visit = func(node *pyast.Node) {
		if found != nil {
			return
		}
		if isStmtKind(node.Kind) {
			current = node
		}
		if node == nodeInStmt {
			found = current
			return
		}
		for _, c := range children(node) {
			visit(c.node)
			if found != nil {
				return
			}
		}
	}
	visit(module)
	return found
}

// ParentOf returns the direct parent of nodeInStmt within module, or nil if
// nodeInStmt is module itself or unreachable, grounded on GetParentNode.
func ParentOf(module, nodeInStmt *pyast.Node) *pyast.Node {
	var stack []*pyast.Node
	var found *pyast.Node
	var visit func(node *pyast.Node)
	visit = func(node *pyast.Node) {
		if found != nil {
			return
		}
		if node == nodeInStmt {
			if len(stack) > 0 {
				found = stack[len(stack)-1]
			}
			return
		}
		stack = append(stack, node)
		for _, c := range children(node) {
			visit(c.node)
			if found != nil {
				stack = stack[:len(stack)-1]
				return
			}
		}
		stack = stack[:len(stack)-1]
	}
	visit(module)
	return found
}

func isStmtKind(k pyast.Kind) bool {
	switch k {
	case pyast.KindFunctionDef, pyast.KindClassDef, pyast.KindReturn, pyast.KindDelete,
		pyast.KindAssign, pyast.KindAugAssign, pyast.KindFor, pyast.KindWhile, pyast.KindIf,
		pyast.KindWith, pyast.KindRaise, pyast.KindTryExcept, pyast.KindTryFinally,
		pyast.KindAssert, pyast.KindImport, pyast.KindImportFrom, pyast.KindGlobal,
		pyast.KindExpr, pyast.KindPass, pyast.KindBreak, pyast.KindContinue,
		pyast.KindPrint, pyast.KindSyntaxFreeLine:
		return true
	}
	return false
}

// Copy performs a deep structural copy of node, the Go analogue of
// NodeCopy: every reachable child is copied too, and the Matcher slot is
// left nil on the copy (a fresh node hasn't been matched against anything
// yet, so it has no source text to replay).
func Copy(node *pyast.Node) *pyast.Node {
	if node == nil {
		return nil
	}
	n := *node
	n.Matcher = nil
	n.ModuleNode = nil

	n.Value = Copy(node.Value)
	n.Test = Copy(node.Test)
	n.Target = Copy(node.Target)
	n.Iter = Copy(node.Iter)
	n.Left = Copy(node.Left)
	n.Right = Copy(node.Right)
	n.Op = Copy(node.Op)
	n.Operand = Copy(node.Operand)
	n.Func = Copy(node.Func)
	n.Elt = Copy(node.Elt)
	n.Key = Copy(node.Key)
	n.Lower = Copy(node.Lower)
	n.Upper = Copy(node.Upper)
	n.Step = Copy(node.Step)
	n.Slice = Copy(node.Slice)
	n.ContextExpr = Copy(node.ContextExpr)
	n.OptionalVars = Copy(node.OptionalVars)
	n.ArgsNode = Copy(node.ArgsNode)
	n.Type = Copy(node.Type)
	n.Msg = Copy(node.Msg)
	n.Dest = Copy(node.Dest)
	n.ExceptName = Copy(node.ExceptName)
	n.BodyExpr = Copy(node.BodyExpr)
	n.OrelseExpr = Copy(node.OrelseExpr)
	n.StarArgs = Copy(node.StarArgs)
	n.KwArgs = Copy(node.KwArgs)

	n.Elts = copyList(node.Elts)
	n.Targets = copyList(node.Targets)
	n.Values = copyList(node.Values)
	n.Keys = copyList(node.Keys)
	n.Body = copyList(node.Body)
	n.Orelse = copyList(node.Orelse)
	n.FinalBody = copyList(node.FinalBody)
	n.Handlers = copyList(node.Handlers)
	n.DecoratorList = copyList(node.DecoratorList)
	n.Bases = copyList(node.Bases)
	n.ArgsList = copyList(node.ArgsList)
	n.Defaults = copyList(node.Defaults)
	n.Keywords = copyList(node.Keywords)
	n.Generators = copyList(node.Generators)
	n.Ifs = copyList(node.Ifs)
	n.Comparators = copyList(node.Comparators)
	n.Ops = copyList(node.Ops)
	n.Names = copyList(node.Names)

	if node.GlobalNames != nil {
		n.GlobalNames = append([]string{}, node.GlobalNames...)
	}
	if node.StringParts != nil {
		n.StringParts = append([]pyast.StringPart{}, node.StringParts...)
	}

	return &n
}

func copyList(nodes []*pyast.Node) []*pyast.Node {
	if nodes == nil {
		return nil
	}
	out := make([]*pyast.Node, len(nodes))
	for i, n := range nodes {
		out[i] = Copy(n)
	}
	return out
}
