package pymatch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/pyfmt/internal/pyast"
	"github.com/gnolang/pyfmt/internal/pycreate"
	"github.com/gnolang/pyfmt/internal/pymatch"
)

func TestIfWithoutOrelseRoundTrips(t *testing.T) {
	src := "if a:\n    x = 1\n"
	node := pyast.New(pyast.KindIf)
	node.Test = pycreate.Name("a", pyast.CtxLoad)
	node.Body = []*pyast.Node{assign(pycreate.Name("x", pyast.CtxStore), pycreate.Num("1", 1, pyast.NumInt))}

	out, err := pymatch.GetSource(node, src, nil)
	require.NoError(t, err, dump(node))
	assert.Equal(t, src, out)
}

func TestIfPlainElseWithoutElifRoundTrips(t *testing.T) {
	src := "if a:\n    x = 1\nelse:\n    x = 2\n"
	node := pyast.New(pyast.KindIf)
	node.Test = pycreate.Name("a", pyast.CtxLoad)
	node.Body = []*pyast.Node{assign(pycreate.Name("x", pyast.CtxStore), pycreate.Num("1", 1, pyast.NumInt))}
	node.Orelse = []*pyast.Node{assign(pycreate.Name("x", pyast.CtxStore), pycreate.Num("2", 2, pyast.NumInt))}

	out, err := pymatch.GetSource(node, src, nil)
	require.NoError(t, err, dump(node))
	assert.Equal(t, src, out)
}

func TestIfElifChainedThreeDeepRoundTrips(t *testing.T) {
	src := "if a:\n    x = 1\nelif b:\n    x = 2\nelif c:\n    x = 3\nelse:\n    x = 4\n"

	third := pyast.New(pyast.KindIf)
	third.Test = pycreate.Name("c", pyast.CtxLoad)
	third.Body = []*pyast.Node{assign(pycreate.Name("x", pyast.CtxStore), pycreate.Num("3", 3, pyast.NumInt))}
	third.Orelse = []*pyast.Node{assign(pycreate.Name("x", pyast.CtxStore), pycreate.Num("4", 4, pyast.NumInt))}

	second := pyast.New(pyast.KindIf)
	second.Test = pycreate.Name("b", pyast.CtxLoad)
	second.Body = []*pyast.Node{assign(pycreate.Name("x", pyast.CtxStore), pycreate.Num("2", 2, pyast.NumInt))}
	second.Orelse = []*pyast.Node{third}

	first := pyast.New(pyast.KindIf)
	first.Test = pycreate.Name("a", pyast.CtxLoad)
	first.Body = []*pyast.Node{assign(pycreate.Name("x", pyast.CtxStore), pycreate.Num("1", 1, pyast.NumInt))}
	first.Orelse = []*pyast.Node{second}

	out, err := pymatch.GetSource(first, src, nil)
	require.NoError(t, err, dump(first))
	assert.Equal(t, src, out)
}
