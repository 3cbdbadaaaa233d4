// Package pyfmtcli is the orchestration glue between cmd/pyfmt's flags and
// the pymatch engine: it decodes a fixture AST description (a node tree
// isn't parsed from raw Python source — that's out of scope, spec.md §8's
// Non-goals — so the CLI demonstrates the engine against a tree built
// directly, the same way internal/pymatch's own tests do via pycreate),
// matches it against paired source text, and re-renders it.
package pyfmtcli

import (
	"encoding/json"
	"fmt"

	"github.com/gnolang/pyfmt/internal/pyast"
	"github.com/gnolang/pyfmt/internal/pycreate"
)

// node is the loosely-typed JSON shape a fixture file decodes into: one
// "kind" tag plus whatever fields that kind needs, mirroring ast.dump's own
// shape for a Python AST.
type node map[string]interface{}

// DecodeFixture parses a fixture document (JSON) into a pyast.Node tree
// rooted at a Module.
func DecodeFixture(data []byte) (*pyast.Node, error) {
	var raw node
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("pyfmtcli: parsing fixture: %w", err)
	}
	return build(raw)
}

func (n node) str(field string) string {
	v, _ := n[field].(string)
	return v
}

func (n node) child(field string) node {
	v, _ := n[field].(map[string]interface{})
	return node(v)
}

func (n node) childList(field string) []node {
	raw, _ := n[field].([]interface{})
	out := make([]node, 0, len(raw))
	for _, r := range raw {
		m, _ := r.(map[string]interface{})
		out = append(out, node(m))
	}
	return out
}

func (n node) strList(field string) []string {
	raw, _ := n[field].([]interface{})
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		s, _ := r.(string)
		out = append(out, s)
	}
	return out
}

func buildList(ns []node) ([]*pyast.Node, error) {
	out := make([]*pyast.Node, 0, len(ns))
	for _, n := range ns {
		child, err := build(n)
		if err != nil {
			return nil, err
		}
		out = append(out, child)
	}
	return out, nil
}

func buildOptional(n node) (*pyast.Node, error) {
	if n == nil {
		return nil, nil
	}
	return build(n)
}

// build recursively constructs a pyast.Node from a fixture node, covering
// the subset of the grammar a fixture-driven demo reasonably exercises
// (statements and expressions common enough to show off matching,
// mutation, and re-rendering end to end).
func build(n node) (*pyast.Node, error) {
	if n == nil {
		return nil, nil
	}
	kind := n.str("kind")
	switch kind {
	case "Module":
		body, err := buildList(n.childList("body"))
		if err != nil {
			return nil, err
		}
		m := pyast.New(pyast.KindModule)
		m.Body = body
		for _, stmt := range body {
			stmt.ModuleNode = m
		}
		return m, nil

	case "FunctionDef":
		body, err := buildList(n.childList("body"))
		if err != nil {
			return nil, err
		}
		args, err := buildOptional(n.child("args"))
		if err != nil {
			return nil, err
		}
		f := pyast.New(pyast.KindFunctionDef)
		f.Ident = n.str("name")
		f.ArgsNode = args
		f.Body = body
		return f, nil

	case "arguments":
		argNames := n.strList("args")
		args := pyast.New(pyast.KindArguments)
		for _, a := range argNames {
			args.ArgsList = append(args.ArgsList, pycreate.Name(a, pyast.CtxParam))
		}
		defaults, err := buildList(n.childList("defaults"))
		if err != nil {
			return nil, err
		}
		args.Defaults = defaults
		args.Vararg = n.str("vararg")
		args.KwargName = n.str("kwarg")
		return args, nil

	case "Return":
		value, err := buildOptional(n.child("value"))
		if err != nil {
			return nil, err
		}
		r := pyast.New(pyast.KindReturn)
		r.Value = value
		return r, nil

	case "Assign":
		targets, err := buildList(n.childList("targets"))
		if err != nil {
			return nil, err
		}
		value, err := buildOptional(n.child("value"))
		if err != nil {
			return nil, err
		}
		a := pyast.New(pyast.KindAssign)
		a.Targets = targets
		a.Value = value
		return a, nil

	case "Expr":
		value, err := buildOptional(n.child("value"))
		if err != nil {
			return nil, err
		}
		e := pyast.New(pyast.KindExpr)
		e.Value = value
		return e, nil

	case "Pass":
		return pyast.New(pyast.KindPass), nil

	case "If":
		test, err := buildOptional(n.child("test"))
		if err != nil {
			return nil, err
		}
		body, err := buildList(n.childList("body"))
		if err != nil {
			return nil, err
		}
		orelse, err := buildList(n.childList("orelse"))
		if err != nil {
			return nil, err
		}
		i := pyast.New(pyast.KindIf)
		i.Test = test
		i.Body = body
		i.Orelse = orelse
		return i, nil

	case "For":
		target, err := buildOptional(n.child("target"))
		if err != nil {
			return nil, err
		}
		iter, err := buildOptional(n.child("iter"))
		if err != nil {
			return nil, err
		}
		body, err := buildList(n.childList("body"))
		if err != nil {
			return nil, err
		}
		f := pyast.New(pyast.KindFor)
		f.Target = target
		f.Iter = iter
		f.Body = body
		return f, nil

	case "While":
		test, err := buildOptional(n.child("test"))
		if err != nil {
			return nil, err
		}
		body, err := buildList(n.childList("body"))
		if err != nil {
			return nil, err
		}
		w := pyast.New(pyast.KindWhile)
		w.Test = test
		w.Body = body
		return w, nil

	case "Call":
		fn, err := buildOptional(n.child("func"))
		if err != nil {
			return nil, err
		}
		args, err := buildList(n.childList("args"))
		if err != nil {
			return nil, err
		}
		c := pyast.New(pyast.KindCall)
		c.Func = fn
		c.ArgsList = args
		return c, nil

	case "Attribute":
		value, err := buildOptional(n.child("value"))
		if err != nil {
			return nil, err
		}
		a := pyast.New(pyast.KindAttribute)
		a.Value = value
		a.Attr = n.str("attr")
		return a, nil

	case "Name":
		ctx, err := pycreate.ParseCtx(n.str("ctx"))
		if err != nil {
			return nil, err
		}
		return pycreate.Name(n.str("id"), ctx), nil

	case "Num":
		lexeme := n.str("lexeme")
		value, _ := n["value"].(float64)
		numKind := pyast.NumInt
		switch n.str("num_kind") {
		case "float":
			numKind = pyast.NumFloat
		case "complex":
			numKind = pyast.NumComplex
		}
		return pycreate.Num(lexeme, value, numKind), nil

	case "Str":
		return pycreate.Str(n.str("value"), n.str("prefix"), n.str("quote")), nil

	case "BinOp":
		left, err := buildOptional(n.child("left"))
		if err != nil {
			return nil, err
		}
		right, err := buildOptional(n.child("right"))
		if err != nil {
			return nil, err
		}
		op, err := pycreate.BinOpMap(n.str("op"))
		if err != nil {
			return nil, err
		}
		return pycreate.BinOp(left, op, right), nil

	case "List":
		elts, err := buildList(n.childList("elts"))
		if err != nil {
			return nil, err
		}
		l := pyast.New(pyast.KindList)
		l.Elts = elts
		return l, nil

	case "Tuple":
		elts, err := n.tupleItems()
		if err != nil {
			return nil, err
		}
		ctx, err := pycreate.ParseCtx(n.str("ctx"))
		if err != nil {
			return nil, err
		}
		return pycreate.Tuple(ctx, elts...), nil

	default:
		return nil, fmt.Errorf("pyfmtcli: unsupported fixture node kind %q", kind)
	}
}

func (n node) tupleItems() ([]interface{}, error) {
	elts, err := buildList(n.childList("elts"))
	if err != nil {
		return nil, err
	}
	out := make([]interface{}, len(elts))
	for i, e := range elts {
		out[i] = e
	}
	return out, nil
}
