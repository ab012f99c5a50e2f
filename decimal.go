package fpdecimal

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
)

// Decimal type is a representation of a fixed-point decimal number with
// exactly [Scale] digits after the decimal point.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A decimal type is a struct with two parameters:
//
//   - Sign: a boolean indicating whether the decimal is negative.
//   - Coefficient: an unsigned 256-bit integer equal to |d| * 10^18.
//
// For example, a decimal with a coefficient of 1_500_000_000_000_000_000
// represents the value 1.5.
// Every value has exactly one representation.
// In particular, zero is never negative, so -0 cannot be produced or observed.
type Decimal struct {
	neg  bool // indicates whether the decimal is negative
	coef wint // the absolute value multiplied by 10^Scale
}

// Scale is the number of digits after the decimal point.
// It is the same for all decimals.
const Scale = 18

// halfScale is used by multiplication to rescale the product of
// two fractional parts in two steps.
const halfScale = Scale / 2

// unit is the coefficient of 1.
var unit = pow10[Scale]

func newDecimal(neg bool, coef wint) Decimal {
	if coef.isZero() {
		neg = false
	}
	return Decimal{neg: neg, coef: coef}
}

// New returns a decimal equal to value / 10^scale.
// New panics if scale is less than 0 or greater than [Scale].
func New(value int64, scale int) Decimal {
	if scale < 0 || scale > Scale {
		panic(fmt.Sprintf("New(%v, %v) failed: %v", value, scale, errPlacesRange))
	}
	neg := value < 0
	abs := uint64(value)
	if neg {
		abs = -abs
	}
	coef, _ := wintFromUint64(abs).lsh(Scale - scale)
	return newDecimal(neg, coef)
}

// NewFromInt64 converts an integer to a decimal.
func NewFromInt64(value int64) Decimal {
	return New(value, 0)
}

// NewFromUint64 converts an unsigned integer to a decimal.
func NewFromUint64(value uint64) Decimal {
	coef, _ := wintFromUint64(value).lsh(Scale)
	return newDecimal(false, coef)
}

// NewFromBigInt converts an integer of arbitrary width to a decimal.
// NewFromBigInt returns an error of class [ErrOverflow] if |value| * 10^18
// does not fit into 256 bits.
func NewFromBigInt(value *big.Int) (Decimal, error) {
	abs := new(big.Int).Abs(value)
	coef, ok := wintFromBig(abs)
	if ok {
		coef, ok = coef.lsh(Scale)
	}
	if !ok {
		return Decimal{}, ErrOverflow.New("integer %v does not fit into a decimal", value)
	}
	return newDecimal(value.Sign() < 0, coef), nil
}

// NewFromCoef returns a decimal with the given sign and coefficient,
// so that the result is equal to ±coef / 10^18.
func NewFromCoef(neg bool, coef *uint256.Int) Decimal {
	return newDecimal(neg, wint(*coef))
}

// Zero returns a decimal equal to 0.
func Zero() Decimal {
	return Decimal{}
}

// One returns a decimal equal to 1.
func One() Decimal {
	return newDecimal(false, unit)
}

// ULP (Unit in the Last Place) returns the smallest representable positive
// decimal, which is equal to 0.000000000000000001.
func ULP() Decimal {
	return newDecimal(false, wintFromUint64(1))
}

// Parse converts a string to a decimal.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.000001234
//	.5
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '+' | '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | '.' digits | digits '.' | digits
//	numeric-string ::= [sign] significand
//
// Digits after the 18th fractional digit are truncated.
//
// Parse returns an error of class [ErrParse] if the string does not represent
// a valid decimal, and an error of class [ErrOverflow] if the coefficient
// does not fit into 256 bits.
func Parse(s string) (Decimal, error) {
	var (
		pos     int
		width   int
		neg     bool
		coef    wint
		scale   int
		hascoef bool
		ok      bool
	)

	width = len(s)

	// Sign
	switch {
	case pos == width:
		// skip
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	// Integer
	for pos < width && s[pos] >= '0' && s[pos] <= '9' {
		hascoef = true
		coef, ok = coef.fsa(1, s[pos]-'0')
		if !ok {
			return Decimal{}, ErrOverflow.New("parsing %q: %v", s, errCoefOverflow)
		}
		pos++
	}

	// Fraction
	if pos < width && s[pos] == '.' {
		pos++
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			hascoef = true
			if scale < Scale {
				coef, ok = coef.fsa(1, s[pos]-'0')
				if !ok {
					return Decimal{}, ErrOverflow.New("parsing %q: %v", s, errCoefOverflow)
				}
				scale++
			}
			pos++
		}
	}

	if pos != width {
		return Decimal{}, ErrParse.New("parsing %q: unexpected character %q", s, s[pos])
	}
	if !hascoef {
		return Decimal{}, ErrParse.New("parsing %q: no digits", s)
	}

	coef, ok = coef.lsh(Scale - scale)
	if !ok {
		return Decimal{}, ErrOverflow.New("parsing %q: %v", s, errCoefOverflow)
	}
	return newDecimal(neg, coef), nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}

// digits returns the integer and fractional digits of |d|.
// If places is negative, trailing zeros of the fractional part are removed,
// otherwise the fractional part is cut to the given number of places.
func (d Decimal) digits(places int) (intdigs, fracdigs string) {
	s := d.coef.string()
	if len(s) <= Scale {
		s = strings.Repeat("0", Scale+1-len(s)) + s
	}
	intdigs, fracdigs = s[:len(s)-Scale], s[len(s)-Scale:]
	if places < 0 {
		return intdigs, strings.TrimRight(fracdigs, "0")
	}
	return intdigs, fracdigs[:places]
}

// String method implements the [fmt.Stringer] interface and returns
// the shortest string that represents d exactly.
// The returned string does not use scientific notation and is
// formatted according to the following formal EBNF grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | digits
//	numeric-string ::= [sign] significand
//
// Trailing zeros after the decimal point are removed, so 1.5 is returned
// as "1.5" and 3 as "3".
// [Parse] accepts every string returned by String.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	intdigs, fracdigs := d.digits(-1)
	var b strings.Builder
	b.Grow(len(intdigs) + len(fracdigs) + 2)
	if d.IsNeg() {
		b.WriteByte('-')
	}
	b.WriteString(intdigs)
	if fracdigs != "" {
		b.WriteByte('.')
		b.WriteString(fracdigs)
	}
	return b.String()
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%f, %s, %v: -123.456
//	%q:        "-123.456"
//
// The following format flags can be used with all verbs: '+', ' ', '0', '-'.
//
// Precision is only supported for %f verb.
// Without precision %f is the same as %s.
// With precision the decimal is rounded half to even.
// Precisions greater than [Scale] are padded with zeros.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (d Decimal) Format(state fmt.State, verb rune) {

	// Rescaling
	var intdigs, fracdigs string
	tzeroes := 0
	if p, ok := state.Precision(); ok && (verb == 'f' || verb == 'F') {
		if p > Scale {
			tzeroes = p - Scale
			p = Scale
		}
		d = d.Round(p)
		intdigs, fracdigs = d.digits(p)
	} else {
		intdigs, fracdigs = d.digits(-1)
	}

	// Decimal point
	dpoint := 0
	if len(fracdigs) > 0 || tzeroes > 0 {
		dpoint = 1
	}

	// Arithmetic sign
	var rsign byte
	switch {
	case d.IsNeg():
		rsign = '-'
	case state.Flag('+'):
		rsign = '+'
	case state.Flag(' '):
		rsign = ' '
	}

	// Quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Padding
	width := lquote + len(intdigs) + dpoint + len(fracdigs) + tzeroes + tquote
	if rsign != 0 {
		width++
	}
	lspaces, tspaces, lzeroes := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0'):
			lzeroes = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	// Writing buffer
	buf := make([]byte, 0, width)
	buf = appendRepeat(buf, ' ', lspaces)
	if lquote > 0 {
		buf = append(buf, '"')
	}
	if rsign != 0 {
		buf = append(buf, rsign)
	}
	buf = appendRepeat(buf, '0', lzeroes)
	buf = append(buf, intdigs...)
	if dpoint > 0 {
		buf = append(buf, '.')
	}
	buf = append(buf, fracdigs...)
	buf = appendRepeat(buf, '0', tzeroes)
	if tquote > 0 {
		buf = append(buf, '"')
	}
	buf = appendRepeat(buf, ' ', tspaces)

	// Writing result
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(fpdecimal.Decimal="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

func appendRepeat(buf []byte, b byte, n int) []byte {
	for i := 0; i < n; i++ {
		buf = append(buf, b)
	}
	return buf
}

// Coef returns the coefficient of the decimal, which is equal to |d| * 10^18.
func (d Decimal) Coef() *uint256.Int {
	return new(uint256.Int).Set(d.coef.raw())
}

// Prec returns number of digits in the coefficient.
func (d Decimal) Prec() int {
	return d.coef.prec()
}

// MinScale returns the smallest number of digits after the decimal point
// required to represent d exactly.
func (d Decimal) MinScale() int {
	if d.IsZero() {
		return 0
	}
	z := d.coef.ntz()
	if z > Scale {
		return 0
	}
	return Scale - z
}

// IsInt returns true if fractional part of d is zero.
func (d Decimal) IsInt() bool {
	_, r, _ := d.coef.quoRem(unit)
	return r.isZero()
}

// WithinOne returns true if -1 < d < 1.
func (d Decimal) WithinOne() bool {
	return d.coef.cmp(unit) < 0
}

// int64 returns d as an integer and reports whether d is an integer
// that fits into int64.
func (d Decimal) int64() (int64, bool) {
	if !d.IsInt() {
		return 0, false
	}
	u, ok := d.coef.rshDown(Scale).uint64()
	switch {
	case !ok:
		return 0, false
	case d.neg && u <= 1<<63:
		return -int64(u), true
	case !d.neg && u <= math.MaxInt64:
		return int64(u), true
	}
	return 0, false
}

// Int64 returns the integer part of d truncated towards zero.
//
// Int64 panics if the integer part does not fit into int64.
func (d Decimal) Int64() int64 {
	u, ok := d.coef.rshDown(Scale).uint64()
	switch {
	case !ok, d.neg && u > 1<<63, !d.neg && u > math.MaxInt64:
		panic(fmt.Sprintf("%q.Int64() failed: %v", d, errIntOverflow))
	case d.neg:
		return -int64(u)
	}
	return int64(u)
}

// Uint64 returns the integer part of d truncated towards zero.
//
// Uint64 panics if d is negative or the integer part does not fit into uint64.
func (d Decimal) Uint64() uint64 {
	if d.IsNeg() {
		panic(fmt.Sprintf("%q.Uint64() failed: %v", d, errNegativeUint))
	}
	u, ok := d.coef.rshDown(Scale).uint64()
	if !ok {
		panic(fmt.Sprintf("%q.Uint64() failed: %v", d, errIntOverflow))
	}
	return u
}

// Uint256 returns the integer part of d truncated towards zero.
//
// Uint256 panics if d is negative.
func (d Decimal) Uint256() *uint256.Int {
	if d.IsNeg() {
		panic(fmt.Sprintf("%q.Uint256() failed: %v", d, errNegativeUint))
	}
	q := d.coef.rshDown(Scale)
	return new(uint256.Int).Set(q.raw())
}

// BigInt returns the integer part of d truncated towards zero.
func (d Decimal) BigInt() *big.Int {
	b := d.coef.rshDown(Scale).big()
	if d.IsNeg() {
		b.Neg(b)
	}
	return b
}

// Round returns d that is rounded to the specified number of digits after
// the decimal point using "half to even" rule.
//
// Round panics if:
//   - the number of places is less than 0 or greater than [Scale];
//   - the rounded coefficient does not fit into 256 bits.
func (d Decimal) Round(places int) Decimal {
	return d.rescale("Round", places, func(x wint, shift int) wint {
		return x.rshHalfEven(shift)
	})
}

// Trunc returns d that is truncated to the specified number of digits after
// the decimal point.
//
// Trunc panics if the number of places is less than 0 or greater than [Scale].
func (d Decimal) Trunc(places int) Decimal {
	return d.rescale("Trunc", places, func(x wint, shift int) wint {
		return x.rshDown(shift)
	})
}

// Ceil returns d that is rounded up to the specified number of digits after
// the decimal point.
// Also see method [Decimal.Floor].
//
// Ceil panics if:
//   - the number of places is less than 0 or greater than [Scale];
//   - the rounded coefficient does not fit into 256 bits.
func (d Decimal) Ceil(places int) Decimal {
	return d.rescale("Ceil", places, func(x wint, shift int) wint {
		if d.IsNeg() {
			return x.rshDown(shift)
		}
		return x.rshUp(shift)
	})
}

// Floor returns d that is rounded down to the specified number of digits after
// the decimal point.
// Also see method [Decimal.Ceil].
//
// Floor panics if:
//   - the number of places is less than 0 or greater than [Scale];
//   - the rounded coefficient does not fit into 256 bits.
func (d Decimal) Floor(places int) Decimal {
	return d.rescale("Floor", places, func(x wint, shift int) wint {
		if d.IsNeg() {
			return x.rshUp(shift)
		}
		return x.rshDown(shift)
	})
}

func (d Decimal) rescale(method string, places int, rsh func(x wint, shift int) wint) Decimal {
	if places < 0 || places > Scale {
		panic(fmt.Sprintf("%q.%v(%v) failed: %v", d, method, places, errPlacesRange))
	}
	coef := rsh(d.coef, Scale-places)
	coef, ok := coef.lsh(Scale - places)
	if !ok {
		panic(fmt.Sprintf("%q.%v(%v) failed: %v", d, method, places, errCoefOverflow))
	}
	return newDecimal(d.IsNeg(), coef)
}
