package pymatch

import (
	"strings"

	"github.com/gnolang/pyfmt/internal/nodeutil"
	"github.com/gnolang/pyfmt/internal/pyast"
)

// SourceMatcher is implemented by everything that can be attached to a
// node's Matcher slot: the generic template-driven DefaultSourceMatcher
// and every custom matcher (BoolOp, If, Num, Str, Tuple, TryFinally,
// With), per spec.md §3-4.
type SourceMatcher interface {
	pyast.Matcher
}

// GetMatcher returns node's attached matcher, constructing and caching one
// on first use via the registry. startingParens are handed to the new
// matcher's constructor, letting an enclosing composite's absorbed
// leading parens flow down to the first child (spec.md §4.5).
func GetMatcher(node *pyast.Node, startingParens []*TextPlaceholder) (SourceMatcher, error) {
	if m, ok := node.Matcher.(SourceMatcher); ok && m != nil {
		return m, nil
	}
	m, err := newMatcherForNode(node, startingParens)
	if err != nil {
		return nil, err
	}
	node.Matcher = m
	return m, nil
}

// GetSource returns node's regenerated source: if text is given, node is
// matched against it first; if not, and node is a freshly annotated
// statement, its indentation is fixed up to its position in ModuleNode
// before rendering. Mirrors source_match.py's GetSource dispatch
// (spec.md §4.6).
func GetSource(node *pyast.Node, text string, startingParens []*TextPlaceholder) (string, error) {
	return getSourceImpl(node, text, startingParens, false)
}

// getSource is the node-only convenience form used internally by
// placeholders once a node already carries a matcher (or needs one
// constructed with its default rendering, no text to match against).
func getSource(node *pyast.Node) string {
	src, err := getSourceImpl(node, "", nil, true)
	if err != nil {
		// A node reachable purely through Source() must already have
		// passed Match(); a construction error here means a template
		// bug, which callers cannot recover from mid-render.
		panic(err)
	}
	return src
}

// getSourceWithParens is GetSource's internal form used by composite
// elements (stringParser) that need to hand starting parens through.
func getSourceWithParens(node *pyast.Node, text string, startingParens []*TextPlaceholder) (string, error) {
	return getSourceImpl(node, text, startingParens, false)
}

func getSourceImpl(node *pyast.Node, text string, startingParens []*TextPlaceholder, assumeNoIndent bool) (string, error) {
	if node == nil {
		return "", nil
	}
	if m, ok := node.Matcher.(SourceMatcher); ok && m != nil {
		return m.Source(), nil
	}

	m, err := newMatcherForNode(node, startingParens)
	if err != nil {
		return "", err
	}
	node.Matcher = m

	if text != "" {
		if _, err := m.Match(text); err != nil {
			return "", wrapBadTemplate("while matching "+node.Kind.String(), err)
		}
		return m.Source(), nil
	}

	if isStmtKind(node.Kind) && !assumeNoIndent {
		if node.ModuleNode == nil {
			return "", invalidTemplatef(
				"no text was provided for node %s, and it has no ModuleNode set, "+
					"so its indentation can't be determined", node.Kind)
		}
		return fixIndentation(node.ModuleNode, node, startingParens)
	}

	return m.Source(), nil
}

// FixSourceIndentation re-renders nodeToFix with its indentation adjusted
// to match its position in module (spec.md §6): used when a statement is
// moved to a different nesting depth without being re-matched against new
// source. Grounded on source_match.py's FixSourceIndentation.
func FixSourceIndentation(module *pyast.Node, nodeToFix *pyast.Node, startingParens []*TextPlaceholder) (string, error) {
	nodeToFix.ModuleNode = module
	return fixIndentation(module, nodeToFix, startingParens)
}

// fixIndentation captures nodeToFix's current default rendering, discards
// its matcher, then re-matches a fresh one against that rendering prefixed
// with the right amount of indentation for nodeToFix's current tree
// position — forcing the node to re-absorb its own leading whitespace at
// the corrected depth, exactly as source_match.py's FixSourceIndentation
// does (two spaces per indent level).
func fixIndentation(module, nodeToFix *pyast.Node, startingParens []*TextPlaceholder) (string, error) {
	existing, err := GetMatcher(nodeToFix, startingParens)
	if err != nil {
		return "", err
	}
	defaultSource := existing.Source()

	fresh, err := newMatcherForNode(nodeToFix, startingParens)
	if err != nil {
		return "", err
	}
	nodeToFix.Matcher = fresh

	level, err := nodeutil.IndentLevel(module, nodeToFix)
	if err != nil {
		return "", err
	}
	indent := strings.Repeat("  ", level)

	if _, err := fresh.Match(indent + defaultSource); err != nil {
		return "", wrapBadTemplate("while fixing indentation of "+nodeToFix.Kind.String(), err)
	}
	return fresh.Source(), nil
}

// isStmtKind reports whether kind is a Python statement production, the
// set of node kinds GetSource requires a ModuleNode for when no text is
// given (spec.md §6).
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
