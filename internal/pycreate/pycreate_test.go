package pycreate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/pyfmt/internal/pyast"
	"github.com/gnolang/pyfmt/internal/pycreate"
)

func TestParseCtx(t *testing.T) {
	cases := map[string]pyast.CtxKind{
		"":       pyast.CtxLoad,
		"load":   pyast.CtxLoad,
		"store":  pyast.CtxStore,
		"delete": pyast.CtxDel,
		"del":    pyast.CtxDel,
		"param":  pyast.CtxParam,
	}
	for in, want := range cases {
		got, err := pycreate.ParseCtx(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := pycreate.ParseCtx("bogus")
	assert.Error(t, err)
}

func TestNamePopulatesIdAndCtx(t *testing.T) {
	n := pycreate.Name("x", pyast.CtxStore)
	assert.Equal(t, pyast.KindName, n.Kind)
	assert.Equal(t, "x", n.Id)
	assert.Equal(t, pyast.CtxStore, n.Ctx)
}

func TestNumPreservesLexemeAndValue(t *testing.T) {
	n := pycreate.Num("0xFF", 255, pyast.NumInt)
	assert.Equal(t, "0xFF", n.NumLiteral)
	assert.Equal(t, float64(255), n.N)
	assert.Equal(t, pyast.NumInt, n.NumKind)
}

func TestStrBuildsSingleStringPart(t *testing.T) {
	n := pycreate.Str("hi", "u", `"`)
	require.Len(t, n.StringParts, 1)
	assert.Equal(t, "hi", n.S)
	assert.Equal(t, "u", n.StringParts[0].Prefix)
	assert.Equal(t, `"`, n.StringParts[0].Quote)
	assert.Equal(t, "hi", n.StringParts[0].Inner)
}

func TestUnaryOpMap(t *testing.T) {
	n, err := pycreate.UnaryOpMap("not")
	require.NoError(t, err)
	assert.Equal(t, pyast.KindNot, n.Kind)

	_, err = pycreate.UnaryOpMap("???")
	assert.Error(t, err)
}

func TestBinOpMap(t *testing.T) {
	n, err := pycreate.BinOpMap("//")
	require.NoError(t, err)
	assert.Equal(t, pyast.KindFloorDiv, n.Kind)

	_, err = pycreate.BinOpMap("???")
	assert.Error(t, err)
}

func TestCompareOpMap(t *testing.T) {
	n, err := pycreate.CompareOpMap("is not")
	require.NoError(t, err)
	assert.Equal(t, pyast.KindIsNot, n.Kind)

	_, err = pycreate.CompareOpMap("???")
	assert.Error(t, err)
}

func TestTupleWithBareStringsAndNodes(t *testing.T) {
	already := pycreate.Name("z", pyast.CtxLoad)
	n := pycreate.Tuple(pyast.CtxDel, "a", already)
	require.Len(t, n.Elts, 2)
	assert.Equal(t, "a", n.Elts[0].Id)
	assert.Equal(t, pyast.CtxDel, n.Elts[0].Ctx)
	assert.Same(t, already, n.Elts[1])
	assert.Equal(t, pyast.CtxDel, n.Elts[1].Ctx, "ctx propagates onto an already-built Name too")
}

func TestSyntaxFreeLineMatchesStart(t *testing.T) {
	assert.True(t, pycreate.SyntaxFreeLineMatchesStart("\n"))
	assert.True(t, pycreate.SyntaxFreeLineMatchesStart("   # hi\n"))
	assert.False(t, pycreate.SyntaxFreeLineMatchesStart("x = 1\n"))
}

func TestNewSyntaxFreeLineBlank(t *testing.T) {
	n, err := pycreate.NewSyntaxFreeLine("  \n")
	require.NoError(t, err)
	assert.False(t, n.HasComment)
	assert.Equal(t, 2, n.ColOffset)
	assert.Equal(t, "", pycreate.FullLine(n))
}

func TestNewSyntaxFreeLineComment(t *testing.T) {
	n, err := pycreate.NewSyntaxFreeLine("  # hi there\n")
	require.NoError(t, err)
	assert.True(t, n.HasComment)
	assert.Equal(t, "hi there", n.Comment)
	assert.Equal(t, "  # hi there", pycreate.FullLine(n))
}

func TestNewSyntaxFreeLineRejectsStatementText(t *testing.T) {
	_, err := pycreate.NewSyntaxFreeLine("x = 1\n")
	assert.Error(t, err)
}
