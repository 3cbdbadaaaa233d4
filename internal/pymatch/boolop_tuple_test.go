package pymatch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/pyfmt/internal/pyast"
	"github.com/gnolang/pyfmt/internal/pycreate"
	"github.com/gnolang/pyfmt/internal/pymatch"
)

func TestBoolOpRoundTripsOddSpacing(t *testing.T) {
	src := "a   and   b   and   c"
	andB, err := pycreate.OpValue("and", pycreate.Name("b", pyast.CtxLoad))
	require.NoError(t, err)
	andC, err := pycreate.OpValue("and", pycreate.Name("c", pyast.CtxLoad))
	require.NoError(t, err)
	node := pycreate.BoolOp(pycreate.Name("a", pyast.CtxLoad), andB, andC)

	out, err := pymatch.GetSource(node, src, nil)
	require.NoError(t, err, dump(node))
	assert.Equal(t, src, out)
}

func TestBoolOpPrecedenceRegrouping(t *testing.T) {
	// "a and b or c" must nest as Or(And(a, b), c), never a flat BoolOp.
	andB, err := pycreate.OpValue("and", pycreate.Name("b", pyast.CtxLoad))
	require.NoError(t, err)
	orC, err := pycreate.OpValue("or", pycreate.Name("c", pyast.CtxLoad))
	require.NoError(t, err)
	node := pycreate.BoolOp(pycreate.Name("a", pyast.CtxLoad), andB, orC)

	require.Equal(t, pyast.KindOr, node.Op.Kind)
	require.Len(t, node.Values, 2)
	assert.Equal(t, pyast.KindBoolOp, node.Values[0].Kind)
	assert.Equal(t, pyast.KindAnd, node.Values[0].Op.Kind)
}

func TestTupleWrapsBareNamesAndPropagatesCtx(t *testing.T) {
	node := pycreate.Tuple(pyast.CtxStore, "a", "b")
	require.Len(t, node.Elts, 2)
	assert.Equal(t, pyast.CtxStore, node.Elts[0].Ctx)
	assert.Equal(t, pyast.CtxStore, node.Elts[1].Ctx)
}

func TestSingleElementTupleRoundTripsTrailingComma(t *testing.T) {
	src := "(a,)"
	node := pycreate.Tuple(pyast.CtxLoad, pycreate.Name("a", pyast.CtxLoad))

	out, err := pymatch.GetSource(node, src, nil)
	require.NoError(t, err, dump(node))
	assert.Equal(t, src, out)
}
