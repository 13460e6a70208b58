package parser

import (
	"math"

	"github.com/cockroachdb/apd/v3"
)

// StringNode is a leaf over a STRING token. Value() returns the raw slice
// between (and excluding) the enclosing quote bytes; the tokenizer has
// already resolved every escape in place, so this is the canonical value.
type StringNode struct {
	base
}

func (n *StringNode) Kind() NodeKind { return KindString }

func (n *StringNode) String() string { return n.rawWindow() }

// Value returns the decoded string contents, excluding the quotes.
func (n *StringNode) Value() string {
	tok := n.tokens[n.lo]
	if tok.End <= tok.Start+1 {
		return ""
	}
	return rawText(n.buf, tok.Start+1, tok.End-1)
}

// IsSubsequence reports whether s occurs as a subsequence of this string's
// value: s's characters appear in order, not necessarily contiguously.
func (n *StringNode) IsSubsequence(s string) bool {
	value := []rune(n.Value())
	want := []rune(s)
	j := 0
	for i := 0; i < len(value) && j < len(want); i++ {
		if value[i] == want[j] {
			j++
		}
	}
	return j == len(want)
}

// Subsequence builds a string from the runes at the given strictly
// ascending indices into this string's value.
func (n *StringNode) Subsequence(indices []int) (string, error) {
	value := []rune(n.Value())
	out := make([]rune, 0, len(indices))
	prev := -1
	for _, idx := range indices {
		if idx < 0 || idx >= len(value) {
			return "", newErrorNoPos(IndexOutOfBounds, "Index %d is out of bounds for string of length %d.", idx, len(value))
		}
		if idx <= prev {
			return "", newErrorNoPos(SubsequenceIndexViolation, "Indices must be strictly ascending; %d does not follow %d.", idx, prev)
		}
		prev = idx
		out = append(out, value[idx])
	}
	return string(out), nil
}

// IntValue, LongValue and DoubleValue attempt the same decimal
// decomposition NumberNode uses; per spec.md §4.5, any non-digit content
// in the numeric region yields zero rather than an error.
func (n *StringNode) IntValue() int32   { return int32(n.numericValue()) }
func (n *StringNode) LongValue() int64  { return int64(n.numericValue()) }
func (n *StringNode) DoubleValue() float64 { return n.numericValue() }

func (n *StringNode) numericValue() float64 {
	d, _, err := apd.NewFromString(n.Value())
	if err != nil {
		return 0
	}
	f, err := d.Float64()
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
