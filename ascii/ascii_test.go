package ascii_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nullsector/invaderscan/ascii"
	"github.com/nullsector/invaderscan/bitmatrix"
)

func TestParseMatrix(t *testing.T) {
	m, err := ascii.ParseMatrix("--o--\n-o-o-\n--o--")
	require.NoError(t, err)
	assert.Equal(t, [][]int{
		{0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
	}, m.Rows())
}

func TestParseMatrixTrimsTildesAndWhitespace(t *testing.T) {
	m, err := ascii.ParseMatrix("~~~\n~~~")
	require.NoError(t, err)
	assert.Equal(t, 0, m.Width())
	assert.Equal(t, 0, m.Height())
}

func TestParseMatrixEmptyString(t *testing.T) {
	m, err := ascii.ParseMatrix("")
	require.NoError(t, err)
	assert.Equal(t, 0, m.Height())
}

func TestParseMatrixInvalidChar(t *testing.T) {
	_, err := ascii.ParseMatrix("--x--")
	var invalidChar ascii.ErrInvalidChar
	require.ErrorAs(t, err, &invalidChar)
	assert.Equal(t, 'x', invalidChar.Char)
}

func TestRender(t *testing.T) {
	m, err := bitmatrix.New([][]int{{0, 0, 1}, {1, 1, 0}})
	require.NoError(t, err)
	assert.Equal(t, "--o\noo-\n", ascii.Render(m))
}
