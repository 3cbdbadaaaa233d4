package pymatch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/pyfmt/internal/pyast"
	"github.com/gnolang/pyfmt/internal/pycreate"
	"github.com/gnolang/pyfmt/internal/pymatch"
)

func TestTryFinallyWithoutExceptEmitsItsOwnTryHeader(t *testing.T) {
	src := "try:\n    x = 1\nfinally:\n    y = 2\n"
	node := pyast.New(pyast.KindTryFinally)
	node.Body = []*pyast.Node{assign(pycreate.Name("x", pyast.CtxStore), pycreate.Num("1", 1, pyast.NumInt))}
	node.FinalBody = []*pyast.Node{assign(pycreate.Name("y", pyast.CtxStore), pycreate.Num("2", 2, pyast.NumInt))}

	out, err := pymatch.GetSource(node, src, nil)
	require.NoError(t, err, dump(node))
	assert.Equal(t, src, out)
}

func TestTryExceptFinallySuppressesDuplicateTryHeader(t *testing.T) {
	src := "try:\n    x = 1\nexcept:\n    x = 2\nfinally:\n    y = 2\n"

	handler := pyast.New(pyast.KindExceptHandler)
	handler.Body = []*pyast.Node{assign(pycreate.Name("x", pyast.CtxStore), pycreate.Num("2", 2, pyast.NumInt))}

	tryExcept := pyast.New(pyast.KindTryExcept)
	tryExcept.Body = []*pyast.Node{assign(pycreate.Name("x", pyast.CtxStore), pycreate.Num("1", 1, pyast.NumInt))}
	tryExcept.Handlers = []*pyast.Node{handler}

	node := pyast.New(pyast.KindTryFinally)
	node.Body = []*pyast.Node{tryExcept}
	node.FinalBody = []*pyast.Node{assign(pycreate.Name("y", pyast.CtxStore), pycreate.Num("2", 2, pyast.NumInt))}

	out, err := pymatch.GetSource(node, src, nil)
	require.NoError(t, err, dump(node))
	assert.Equal(t, src, out)
}
