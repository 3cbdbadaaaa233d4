package pymatch_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/pyfmt/internal/pyast"
	"github.com/gnolang/pyfmt/internal/pycreate"
	"github.com/gnolang/pyfmt/internal/pymatch"
)

// dump renders a node for a failure message, the same go-spew-backed
// diagnostic the teacher's own table-driven tests reach for.
func dump(node *pyast.Node) string {
	return spew.Sdump(node)
}

func assign(target, value *pyast.Node) *pyast.Node {
	a := pyast.New(pyast.KindAssign)
	a.Targets = []*pyast.Node{target}
	a.Value = value
	return a
}

func module(body ...*pyast.Node) *pyast.Node {
	m := pyast.New(pyast.KindModule)
	m.Body = body
	for _, stmt := range body {
		stmt.ModuleNode = m
	}
	return m
}

func TestRoundTripPreservesOddSpacing(t *testing.T) {
	src := "x   =   y + z\n"
	node := assign(
		pycreate.Name("x", pyast.CtxStore),
		pycreate.BinOp(pycreate.Name("y", pyast.CtxLoad), pyast.New(pyast.KindAdd), pycreate.Name("z", pyast.CtxLoad)),
	)

	out, err := pymatch.GetSource(node, src, nil)
	require.NoError(t, err, dump(node))
	assert.Equal(t, src, out)
}

func TestMutationLocalityRewritesOnlyMutatedField(t *testing.T) {
	src := "x   =   y + z\n"
	target := pycreate.Name("x", pyast.CtxStore)
	value := pycreate.BinOp(pycreate.Name("y", pyast.CtxLoad), pyast.New(pyast.KindAdd), pycreate.Name("z", pyast.CtxLoad))
	node := assign(target, value)

	_, err := pymatch.GetSource(node, src, nil)
	require.NoError(t, err)

	value.Left.Id = "renamed"
	out, err := pymatch.GetSource(node, "", nil)
	require.NoError(t, err, dump(node))
	assert.Equal(t, "x   =   renamed + z\n", out)
}

func TestParenPreservation(t *testing.T) {
	src := "return (x)\n"
	node := pyast.New(pyast.KindReturn)
	node.Value = pycreate.Name("x", pyast.CtxLoad)
	m := module(node)
	node.ModuleNode = m

	out, err := pymatch.GetSource(node, src, nil)
	require.NoError(t, err, dump(node))
	assert.Equal(t, src, out)
}

func TestParenPreservationWithoutParensRoundTrips(t *testing.T) {
	src := "return x\n"
	node := pyast.New(pyast.KindReturn)
	node.Value = pycreate.Name("x", pyast.CtxLoad)

	out, err := pymatch.GetSource(node, src, nil)
	require.NoError(t, err)
	assert.Equal(t, src, out)
}

func TestSyntaxFreeLineAbsorbsBlankAndCommentLines(t *testing.T) {
	src := "x = 1\n\n# a comment\ny = 2\n"
	m := module(
		assign(pycreate.Name("x", pyast.CtxStore), pycreate.Num("1", 1, pyast.NumInt)),
		assign(pycreate.Name("y", pyast.CtxStore), pycreate.Num("2", 2, pyast.NumInt)),
	)

	out, err := pymatch.GetSource(m, src, nil)
	require.NoError(t, err, dump(m))
	assert.Equal(t, src, out)
	assert.Len(t, m.Body, 4, "two real statements plus a blank line and a comment line")
}

func TestAdjacentStringConcatenationRoundTrips(t *testing.T) {
	src := "'ab' 'cd'\n"
	node := pyast.New(pyast.KindExpr)
	str := pyast.New(pyast.KindStr)
	str.S = "abcd"
	str.StringParts = []pyast.StringPart{
		{Quote: "'", Inner: "ab"},
		{Quote: "'", Inner: "cd"},
	}
	node.Value = str

	out, err := pymatch.GetSource(node, src, nil)
	require.NoError(t, err, dump(node))
	assert.Equal(t, src, out)
}

func TestIdempotentAnnotationReturnsCachedMatcher(t *testing.T) {
	node := pycreate.Name("x", pyast.CtxLoad)
	m1, err := pymatch.GetMatcher(node, nil)
	require.NoError(t, err)
	m2, err := pymatch.GetMatcher(node, nil)
	require.NoError(t, err)
	assert.Same(t, m1, m2)
}

func TestFunctionDefRoundTrip(t *testing.T) {
	src := "def foo(a, b):\n    return a + b\n"
	args := pyast.New(pyast.KindArguments)
	args.ArgsList = []*pyast.Node{
		pycreate.Name("a", pyast.CtxParam),
		pycreate.Name("b", pyast.CtxParam),
	}
	ret := pyast.New(pyast.KindReturn)
	ret.Value = pycreate.BinOp(pycreate.Name("a", pyast.CtxLoad), pyast.New(pyast.KindAdd), pycreate.Name("b", pyast.CtxLoad))

	fn := pyast.New(pyast.KindFunctionDef)
	fn.Ident = "foo"
	fn.ArgsNode = args
	fn.Body = []*pyast.Node{ret}

	out, err := pymatch.GetSource(fn, src, nil)
	require.NoError(t, err, dump(fn))
	assert.Equal(t, src, out)
}

func TestIfElifElseRoundTrip(t *testing.T) {
	src := "if a:\n    x = 1\nelif b:\n    x = 2\nelse:\n    x = 3\n"

	outer := pyast.New(pyast.KindIf)
	outer.Test = pycreate.Name("a", pyast.CtxLoad)
	outer.Body = []*pyast.Node{assign(pycreate.Name("x", pyast.CtxStore), pycreate.Num("1", 1, pyast.NumInt))}

	inner := pyast.New(pyast.KindIf)
	inner.Test = pycreate.Name("b", pyast.CtxLoad)
	inner.Body = []*pyast.Node{assign(pycreate.Name("x", pyast.CtxStore), pycreate.Num("2", 2, pyast.NumInt))}
	inner.Orelse = []*pyast.Node{assign(pycreate.Name("x", pyast.CtxStore), pycreate.Num("3", 3, pyast.NumInt))}

	outer.Orelse = []*pyast.Node{inner}

	out, err := pymatch.GetSource(outer, src, nil)
	require.NoError(t, err, dump(outer))
	assert.Equal(t, src, out)
}

func TestCompoundWithRoundTrip(t *testing.T) {
	src := "with a, b:\n    pass\n"

	inner := pyast.New(pyast.KindWith)
	inner.ContextExpr = pycreate.Name("b", pyast.CtxLoad)
	inner.Body = []*pyast.Node{pyast.New(pyast.KindPass)}

	outer := pyast.New(pyast.KindWith)
	outer.ContextExpr = pycreate.Name("a", pyast.CtxLoad)
	outer.Body = []*pyast.Node{inner}

	out, err := pymatch.GetSource(outer, src, nil)
	require.NoError(t, err, dump(outer))
	assert.Equal(t, src, out)
}

func TestCallRoundTrip(t *testing.T) {
	src := "foo(a, b, **kw)\n"
	call := pyast.New(pyast.KindCall)
	call.Func = pycreate.Name("foo", pyast.CtxLoad)
	call.ArgsList = []*pyast.Node{pycreate.Name("a", pyast.CtxLoad), pycreate.Name("b", pyast.CtxLoad)}
	call.KwArgs = pycreate.Name("kw", pyast.CtxLoad)

	expr := pyast.New(pyast.KindExpr)
	expr.Value = call

	out, err := pymatch.GetSource(expr, src, nil)
	require.NoError(t, err, dump(expr))
	assert.Equal(t, src, out)
}

func TestFixSourceIndentation(t *testing.T) {
	// assignStmt is freshly built and never matched against text, so its
	// matcher's starting point is the field's bare default rendering;
	// FixSourceIndentation is what supplies the indentation.
	assignStmt := assign(pycreate.Name("x", pyast.CtxStore), pycreate.Num("1", 1, pyast.NumInt))
	ifNode := pyast.New(pyast.KindIf)
	ifNode.Test = pycreate.Name("a", pyast.CtxLoad)
	ifNode.Body = []*pyast.Node{assignStmt}
	m := module(ifNode)

	out, err := pymatch.FixSourceIndentation(m, assignStmt, nil)
	require.NoError(t, err, dump(assignStmt))
	assert.Equal(t, "  x = 1\n", out, "one indent level is two spaces, per FixSourceIndentation's convention")
}

func TestGetSourceAutomaticallyFixesIndentWhenNoTextGiven(t *testing.T) {
	assignStmt := assign(pycreate.Name("x", pyast.CtxStore), pycreate.Num("1", 1, pyast.NumInt))
	ifNode := pyast.New(pyast.KindIf)
	ifNode.Test = pycreate.Name("a", pyast.CtxLoad)
	ifNode.Body = []*pyast.Node{assignStmt}
	assignStmt.ModuleNode = module(ifNode)

	out, err := pymatch.GetSource(assignStmt, "", nil)
	require.NoError(t, err, dump(assignStmt))
	assert.Equal(t, "  x = 1\n", out)
}

func TestGetSourceErrorsWithoutModuleNode(t *testing.T) {
	assignStmt := assign(pycreate.Name("x", pyast.CtxStore), pycreate.Num("1", 1, pyast.NumInt))
	_, err := pymatch.GetSource(assignStmt, "", nil)
	assert.Error(t, err)
}
