package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func parseString(t *testing.T, src string) *StringNode {
	t.Helper()
	root, err := parse(t, src)
	require.NoError(t, err)
	s, ok := root.(*StringNode)
	require.True(t, ok)
	return s
}

func TestStringNodeValueStripsQuotes(t *testing.T) {
	s := parseString(t, `"hello"`)
	require.Equal(t, "hello", s.Value())
}

func TestStringNodeIsSubsequence(t *testing.T) {
	s := parseString(t, `"hello world"`)
	require.True(t, s.IsSubsequence("hlwrd"))
	require.False(t, s.IsSubsequence("dlrow"))
}

func TestStringNodeSubsequence(t *testing.T) {
	s := parseString(t, `"hello"`)
	got, err := s.Subsequence([]int{0, 2, 4})
	require.NoError(t, err)
	require.Equal(t, "hlo", got)

	if diff := cmp.Diff("hlo", got); diff != "" {
		t.Errorf("subsequence mismatch (-want +got):\n%s", diff)
	}
}

func TestStringNodeSubsequenceRejectsNonAscending(t *testing.T) {
	s := parseString(t, `"hello"`)
	_, err := s.Subsequence([]int{2, 1})
	require.Error(t, err)
	require.Equal(t, SubsequenceIndexViolation, err.(*ParseError).Kind)
}

func TestStringNodeSubsequenceRejectsOutOfBounds(t *testing.T) {
	s := parseString(t, `"hello"`)
	_, err := s.Subsequence([]int{0, 99})
	require.Error(t, err)
	require.Equal(t, IndexOutOfBounds, err.(*ParseError).Kind)
}

func TestStringNodeNumericValueOnNonNumeric(t *testing.T) {
	s := parseString(t, `"not a number"`)
	require.Equal(t, float64(0), s.DoubleValue())
	require.Equal(t, int32(0), s.IntValue())
}

func TestStringNodeNumericValueOnNumericContent(t *testing.T) {
	s := parseString(t, `"42"`)
	require.Equal(t, int32(42), s.IntValue())
	require.Equal(t, int64(42), s.LongValue())
	require.Equal(t, float64(42), s.DoubleValue())
}
