package nodeutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/pyfmt/internal/nodeutil"
	"github.com/gnolang/pyfmt/internal/pyast"
	"github.com/gnolang/pyfmt/internal/pycreate"
)

func assign(target, value *pyast.Node) *pyast.Node {
	a := pyast.New(pyast.KindAssign)
	a.Targets = []*pyast.Node{target}
	a.Value = value
	return a
}

func TestIndentLevelNestedBlocks(t *testing.T) {
	innerAssign := assign(pycreate.Name("x", pyast.CtxStore), pycreate.Num("1", 1, pyast.NumInt))
	inner := pyast.New(pyast.KindWhile)
	inner.Test = pycreate.Name("b", pyast.CtxLoad)
	inner.Body = []*pyast.Node{innerAssign}

	outer := pyast.New(pyast.KindIf)
	outer.Test = pycreate.Name("a", pyast.CtxLoad)
	outer.Body = []*pyast.Node{inner}

	m := pyast.New(pyast.KindModule)
	m.Body = []*pyast.Node{outer}

	level, err := nodeutil.IndentLevel(m, innerAssign)
	require.NoError(t, err)
	assert.Equal(t, 2, level)

	level, err = nodeutil.IndentLevel(m, outer)
	require.NoError(t, err)
	assert.Equal(t, 0, level)

	level, err = nodeutil.IndentLevel(m, inner)
	require.NoError(t, err)
	assert.Equal(t, 1, level)
}

func TestIndentLevelErrorsWhenUnreachable(t *testing.T) {
	m := pyast.New(pyast.KindModule)
	stray := pyast.New(pyast.KindPass)
	_, err := nodeutil.IndentLevel(m, stray)
	assert.Error(t, err)
}

func TestWrappingStatementFindsEnclosingStatement(t *testing.T) {
	value := pycreate.BinOp(pycreate.Name("y", pyast.CtxLoad), pyast.New(pyast.KindAdd), pycreate.Name("z", pyast.CtxLoad))
	stmt := assign(pycreate.Name("x", pyast.CtxStore), value)
	m := pyast.New(pyast.KindModule)
	m.Body = []*pyast.Node{stmt}

	got := nodeutil.WrappingStatement(m, value.Left)
	assert.Same(t, stmt, got)
}

func TestParentOfDirectChild(t *testing.T) {
	value := pycreate.BinOp(pycreate.Name("y", pyast.CtxLoad), pyast.New(pyast.KindAdd), pycreate.Name("z", pyast.CtxLoad))
	stmt := assign(pycreate.Name("x", pyast.CtxStore), value)
	m := pyast.New(pyast.KindModule)
	m.Body = []*pyast.Node{stmt}

	assert.Same(t, stmt, nodeutil.ParentOf(m, value))
	assert.Same(t, value, nodeutil.ParentOf(m, value.Left))
	assert.Nil(t, nodeutil.ParentOf(m, m))
}

// stubMatcher is a placeholder attached Matcher, so Copy has one to drop.
type stubMatcher struct{}

func (stubMatcher) Match(text string) (string, error) { return text, nil }
func (stubMatcher) Source() string                    { return "" }

func TestCopyIsDeepAndDropsMatcherAndModuleNode(t *testing.T) {
	target := pycreate.Name("x", pyast.CtxStore)
	value := pycreate.Num("1", 1, pyast.NumInt)
	stmt := assign(target, value)
	m := pyast.New(pyast.KindModule)
	m.Body = []*pyast.Node{stmt}
	stmt.ModuleNode = m
	stmt.Matcher = stubMatcher{}

	cp := nodeutil.Copy(stmt)
	require.NotSame(t, stmt, cp)
	require.NotSame(t, stmt.Targets[0], cp.Targets[0])
	require.NotSame(t, stmt.Value, cp.Value)
	assert.Equal(t, stmt.Targets[0].Id, cp.Targets[0].Id)
	assert.Nil(t, cp.ModuleNode)
	assert.Nil(t, cp.Matcher)

	cp.Targets[0].Id = "renamed"
	assert.Equal(t, "x", stmt.Targets[0].Id, "mutating the copy must not affect the original")
}
