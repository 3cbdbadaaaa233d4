package pymatch

import (
	"github.com/gnolang/pyfmt/internal/pyast"
	"github.com/gnolang/pyfmt/internal/pycreate"
)

// fieldNode returns the child node stored under fieldName on node, or nil
// if that field is absent, unset, or not a single-node field. This stands
// in for Python's getattr(node, field_name) against pyast's flat struct
// (spec.md §3's node/field vocabulary is generic across kinds; Go needs an
// explicit name→field dispatch since it has no runtime attribute lookup).
func fieldNode(node *pyast.Node, fieldName string) *pyast.Node {
	switch fieldName {
	case "value":
		return node.Value
	case "test":
		return node.Test
	case "target":
		return node.Target
	case "iter":
		return node.Iter
	case "left":
		return node.Left
	case "right":
		return node.Right
	case "op":
		return node.Op
	case "operand":
		return node.Operand
	case "func":
		return node.Func
	case "elt":
		return node.Elt
	case "key":
		return node.Key
	case "lower":
		return node.Lower
	case "upper":
		return node.Upper
	case "step":
		return node.Step
	case "slice":
		return node.Slice
	case "context_expr":
		return node.ContextExpr
	case "optional_vars":
		return node.OptionalVars
	case "args":
		// arguments node (FunctionDef/Lambda); Call/arguments's list
		// "args" is handled via fieldNodeList, never fieldNode.
		return node.ArgsNode
	case "type":
		return node.Type
	case "msg":
		return node.Msg
	case "dest":
		return node.Dest
	case "name":
		if node.Kind == pyast.KindExceptHandler {
			return node.ExceptName
		}
		return nil
	case "body":
		if node.Kind == pyast.KindLambda || node.Kind == pyast.KindIfExp {
			return node.BodyExpr
		}
		return nil
	case "orelse":
		if node.Kind == pyast.KindIfExp {
			return node.OrelseExpr
		}
		return nil
	case "starargs":
		return node.StarArgs
	case "kwargs":
		return node.KwArgs
	}
	return nil
}

// fieldNodeList returns the child node list stored under fieldName.
func fieldNodeList(node *pyast.Node, fieldName string) []*pyast.Node {
	switch fieldName {
	case "elts":
		return node.Elts
	case "targets":
		return node.Targets
	case "values":
		return node.Values
	case "keys":
		return node.Keys
	case "body":
		return node.Body
	case "orelse":
		return node.Orelse
	case "finalbody":
		return node.FinalBody
	case "handlers":
		return node.Handlers
	case "decorator_list":
		return node.DecoratorList
	case "bases":
		return node.Bases
	case "args":
		return node.ArgsList
	case "defaults":
		return node.Defaults
	case "keywords":
		return node.Keywords
	case "generators":
		return node.Generators
	case "ifs":
		return node.Ifs
	case "comparators":
		return node.Comparators
	case "ops":
		return node.Ops
	case "names":
		if node.Kind == pyast.KindImport || node.Kind == pyast.KindImportFrom {
			return node.Names
		}
		return nil
	}
	return nil
}

// setFieldNodeList overwrites a list field in place, used by BodyPlaceholder
// after splicing synthesized SyntaxFreeLine pseudo-statements into a
// matched block (spec.md §4.3).
func setFieldNodeList(node *pyast.Node, fieldName string, values []*pyast.Node) {
	switch fieldName {
	case "body":
		node.Body = values
	case "orelse":
		node.Orelse = values
	case "finalbody":
		node.FinalBody = values
	case "handlers":
		node.Handlers = values
	}
}

// fieldScalarList returns a scalar-string list field (only Global.names).
func fieldScalarList(node *pyast.Node, fieldName string) ([]string, bool) {
	if fieldName == "names" && node.Kind == pyast.KindGlobal {
		return node.GlobalNames, true
	}
	return nil, false
}

// fieldScalar returns a scalar identifier/literal field's current value.
func fieldScalar(node *pyast.Node, fieldName string) (string, bool) {
	switch fieldName {
	case "id":
		if node.Kind == pyast.KindName {
			return node.Id, true
		}
	case "attr":
		if node.Kind == pyast.KindAttribute {
			return node.Attr, true
		}
	case "name":
		switch node.Kind {
		case pyast.KindFunctionDef, pyast.KindClassDef, pyast.KindAlias:
			return node.Ident, true
		}
	case "asname":
		if node.Kind == pyast.KindAlias {
			return node.AsName, true
		}
	case "vararg":
		if node.Kind == pyast.KindArguments {
			return node.Vararg, true
		}
	case "kwarg":
		if node.Kind == pyast.KindArguments {
			return node.KwargName, true
		}
	case "module":
		if node.Kind == pyast.KindImportFrom {
			return node.ModuleName, true
		}
	case "arg":
		if node.Kind == pyast.KindKeyword {
			return node.ArgName, true
		}
	case "full_line":
		if node.Kind == pyast.KindSyntaxFreeLine {
			return pycreate.FullLine(node), true
		}
	}
	return "", false
}

// isListField reports whether fieldName is a list-shaped field on node,
// used by FieldPlaceholder/ListFieldPlaceholder to validate the template
// author picked the right placeholder kind for the field (spec.md §7).
func isListField(node *pyast.Node, fieldName string) bool {
	switch fieldName {
	case "body":
		return node.Kind != pyast.KindLambda && node.Kind != pyast.KindIfExp
	case "orelse":
		return node.Kind != pyast.KindIfExp
	case "elts", "targets", "values", "keys", "finalbody",
		"handlers", "decorator_list", "bases", "defaults", "keywords",
		"generators", "ifs", "comparators", "ops":
		return true
	case "args":
		return node.Kind == pyast.KindCall || node.Kind == pyast.KindArguments
	case "names":
		return node.Kind == pyast.KindImport || node.Kind == pyast.KindImportFrom || node.Kind == pyast.KindGlobal
	}
	return false
}
