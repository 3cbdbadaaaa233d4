package pymatch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/pyfmt/internal/pyast"
	"github.com/gnolang/pyfmt/internal/pymatch"
)

func TestNumberPreservesHexLexeme(t *testing.T) {
	node := pyast.New(pyast.KindNum)
	node.NumKind = pyast.NumInt
	node.N = 255

	out, err := pymatch.GetSource(node, "0xFF", nil)
	require.NoError(t, err)
	assert.Equal(t, "0xFF", out)
}

func TestNumberRerendersAfterMutation(t *testing.T) {
	node := pyast.New(pyast.KindNum)
	node.NumKind = pyast.NumInt
	node.N = 255

	_, err := pymatch.GetSource(node, "0xFF", nil)
	require.NoError(t, err)

	node.N = 10
	out, err := pymatch.GetSource(node, "", nil)
	require.NoError(t, err)
	assert.Equal(t, "10", out)
}

func TestNumberPreservesLongSuffix(t *testing.T) {
	node := pyast.New(pyast.KindNum)
	node.NumKind = pyast.NumInt
	node.N = 5

	out, err := pymatch.GetSource(node, "5L", nil)
	require.NoError(t, err)
	assert.Equal(t, "5L", out)
}

func TestStrPreservesOriginalQuoteStyle(t *testing.T) {
	node := pyast.New(pyast.KindStr)
	node.S = "hi"

	out, err := pymatch.GetSource(node, `"hi"`, nil)
	require.NoError(t, err)
	assert.Equal(t, `"hi"`, out)
}

func TestStrNeverMatchedRendersWithDefaultDoubleQuote(t *testing.T) {
	node := pyast.New(pyast.KindStr)
	node.S = "fresh"

	out, err := pymatch.GetSource(node, "", nil)
	require.NoError(t, err)
	assert.Equal(t, `"fresh"`, out)
}

func TestStrMutationCollapsesToFirstSegment(t *testing.T) {
	node := pyast.New(pyast.KindStr)
	node.S = "abcd"

	_, err := pymatch.GetSource(node, "'ab' 'cd'", nil)
	require.NoError(t, err)

	node.S = "xyz"
	out, err := pymatch.GetSource(node, "", nil)
	require.NoError(t, err)
	assert.Equal(t, "'xyz'", out)
}
