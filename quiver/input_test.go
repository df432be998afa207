package quiver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMatrix(t *testing.T) {
	for _, s := range []string{
		"3,1;4,0",
		"3 1; 4 0",
		" 3, 1 ;\n4,0; ",
	} {
		m, err := ParseMatrix(s)
		require.NoError(t, err, s)
		require.Equal(t, [][]float64{{3, 1}, {4, 0}}, m.Rows(), s)
	}
}

func TestParseMatrixErrors(t *testing.T) {
	_, err := ParseMatrix("1,2;3")
	require.ErrorIs(t, err, ErrInvalidShape)

	_, err = ParseMatrix("")
	require.ErrorIs(t, err, ErrInvalidShape)

	_, err = ParseMatrix("1;;2")
	require.ErrorIs(t, err, ErrInvalidShape)

	_, err = ParseMatrix("1,x;2,3")
	require.ErrorContains(t, err, "matrix entry (0,1)")

	_, err = ParseMatrix("1,2,NaN; 3,4,5")
	require.ErrorIs(t, err, ErrNonFinite)

	_, err = ParseMatrix("1,2; inf,3")
	require.ErrorIs(t, err, ErrNonFinite)
}

func TestReadInput(t *testing.T) {
	m, tr, err := ReadInput(strings.NewReader(`{"matrix": [[3,1],[4,0]], "transform": [[2,0],[0,2]]}`))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{3, 1}, {4, 0}}, m.Rows())
	require.Equal(t, [][]float64{{2, 0}, {0, 2}}, tr.Rows())

	m, tr, err = ReadInput(strings.NewReader(`{"matrix": [[1],[2]]}`))
	require.NoError(t, err)
	require.Nil(t, tr)
	require.Equal(t, [][]float64{{1}, {2}}, m.Rows())

	_, _, err = ReadInput(strings.NewReader(`{"matrix": [[1,2],[3]]}`))
	require.ErrorIs(t, err, ErrInvalidShape)

	_, _, err = ReadInput(strings.NewReader(`not json`))
	require.ErrorContains(t, err, "decoding input")
}
