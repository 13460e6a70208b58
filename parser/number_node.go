package parser

import (
	"math"

	"github.com/cockroachdb/apd/v3"
)

// maxNumberMagnitude is the largest absolute value a NumberNode may hold,
// per spec.md §4.3/§6 (the double-precision maximum).
const maxNumberMagnitude = 1.7976931348623157e+308

// maxNumberDecimal is maxNumberMagnitude as an exact decimal
// (17976931348623157 x 10^292), used for the bound check before any
// conversion to float64.
var maxNumberDecimal = apd.New(17976931348623157, 292)

// NumberNode is a leaf over a NUMBER token. Value() re-reads the
// CharBuffer window; it is deterministic and referentially transparent
// per spec.md §3.
//
// The three-part recomposition spec.md §4.5 describes (integral part,
// fractional part scaled by 10^-fracLen, then multiplied by 10^exponent)
// is delegated to github.com/cockroachdb/apd/v3, an arbitrary-precision
// decimal library already present in the retrieved pack's dependency
// graph (cuelang.org/go's go.mod). Parsing the raw digits through apd
// instead of strconv.ParseFloat lets the OutOfRange bound be checked
// against the exact decimal before any float64 rounding, so an exponent
// large enough to overflow float64 is reported as OutOfRange rather than
// wrapped as in the source's
// documented 32-bit wraparound (see DESIGN.md, Open Question: exponent
// wrap-around).
type NumberNode struct {
	base
}

func (n *NumberNode) Kind() NodeKind { return KindNumber }

func (n *NumberNode) String() string { return n.rawWindow() }

// Value decodes the number's decimal value as a float64, failing
// OutOfRange if its magnitude exceeds maxNumberMagnitude.
func (n *NumberNode) Value() (float64, error) {
	raw := n.rawWindow()
	d, _, err := apd.NewFromString(raw)
	if err != nil {
		return 0, newError(OutOfRange, n.tokens[n.lo].Start, "Number %q could not be decoded.", raw)
	}
	if new(apd.Decimal).Abs(d).Cmp(maxNumberDecimal) > 0 {
		return 0, newError(OutOfRange, n.tokens[n.lo].Start, "Number %q exceeds the supported magnitude.", raw)
	}
	f, err := d.Float64()
	if err != nil {
		return 0, newError(OutOfRange, n.tokens[n.lo].Start, "Number %q exceeds the supported magnitude.", raw)
	}
	if math.Abs(f) > maxNumberMagnitude {
		return 0, newError(OutOfRange, n.tokens[n.lo].Start, "Number %q exceeds the supported magnitude.", raw)
	}
	return f, nil
}

// IntValue returns the value truncated and narrowed to int32.
func (n *NumberNode) IntValue() (int32, error) {
	v, err := n.Value()
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

// LongValue returns the value truncated and narrowed to int64.
func (n *NumberNode) LongValue() (int64, error) {
	v, err := n.Value()
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

// DoubleValue returns the value as a float64.
func (n *NumberNode) DoubleValue() (float64, error) {
	return n.Value()
}

// IsInteger reports whether the value is a whole number within int32 range.
func (n *NumberNode) IsInteger() bool {
	v, err := n.Value()
	if err != nil {
		return false
	}
	return v == math.Trunc(v) && v >= math.MinInt32 && v <= math.MaxInt32
}

// IsLong reports whether the value is a whole number within int64 range.
func (n *NumberNode) IsLong() bool {
	v, err := n.Value()
	if err != nil {
		return false
	}
	// float64(math.MaxInt64) rounds up to 2^63, so the upper bound is exclusive.
	return v == math.Trunc(v) && v >= math.MinInt64 && v < 1<<63
}

// IsDouble reports whether the value fits a float64. Per spec.md §9's
// design note, the lower bound is -math.MaxFloat64 (symmetric with the
// upper bound), not the smallest positive subnormal.
func (n *NumberNode) IsDouble() bool {
	v, err := n.Value()
	if err != nil {
		return false
	}
	return v >= -math.MaxFloat64 && v <= math.MaxFloat64
}
