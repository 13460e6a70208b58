package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func parseNumber(t *testing.T, src string) *NumberNode {
	t.Helper()
	root, err := parse(t, src)
	require.NoError(t, err)
	n, ok := root.(*NumberNode)
	require.True(t, ok)
	return n
}

func TestNumberNodeValue(t *testing.T) {
	cases := map[string]float64{
		"0":        0,
		"-0":       0,
		"123":      123,
		"-123":     -123,
		"3.14":     3.14,
		"1e3":      1000,
		"-1.5e-2":  -0.015,
	}
	for src, want := range cases {
		n := parseNumber(t, src)
		got, err := n.Value()
		require.NoError(t, err, src)
		require.Equal(t, want, got, src)
	}
}

func TestNumberNodeIsIntegerAndIsLong(t *testing.T) {
	n := parseNumber(t, "42")
	require.True(t, n.IsInteger())
	require.True(t, n.IsLong())
	require.True(t, n.IsDouble())

	frac := parseNumber(t, "42.5")
	require.False(t, frac.IsInteger())
	require.False(t, frac.IsLong())
	require.True(t, frac.IsDouble())
}

func TestNumberNodeOutOfRangeMagnitude(t *testing.T) {
	n := parseNumber(t, "1e400")
	_, err := n.Value()
	require.Error(t, err)
	require.Equal(t, OutOfRange, err.(*ParseError).Kind)
	require.False(t, n.IsDouble())
}

func TestNumberNodeIntValueTruncates(t *testing.T) {
	n := parseNumber(t, "7.9")
	v, err := n.IntValue()
	require.NoError(t, err)
	require.Equal(t, int32(7), v)
}
