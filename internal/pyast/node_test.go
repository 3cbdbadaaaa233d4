package pyast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gnolang/pyfmt/internal/pyast"
)

func TestNewZeroesEverythingButKind(t *testing.T) {
	n := pyast.New(pyast.KindName)
	assert.Equal(t, pyast.KindName, n.Kind)
	assert.Nil(t, n.Matcher)
	assert.Nil(t, n.ModuleNode)
	assert.Empty(t, n.Id)
}

func TestKindStringKnownAndUnknown(t *testing.T) {
	assert.Equal(t, "Module", pyast.KindModule.String())
	assert.Equal(t, "FunctionDef", pyast.KindFunctionDef.String())
	assert.Equal(t, "Unknown", pyast.Kind(-1).String())
}
