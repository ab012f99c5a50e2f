package fpdecimal

import (
	"fmt"
)

const (
	// expTerms is the number of Taylor terms summed by Exp.
	expTerms = 2*Scale + 1
	// maxRatioDen is the largest denominator recognized in
	// tabulated rational exponents.
	maxRatioDen = 15
)

var (
	// expMin is a bound below which e^d is less than 10^-18.
	expMin = NewFromInt64(-42)
	// ratioMax is the largest absolute exponent checked for a rational form.
	ratioMax = NewFromInt64(1000)
)

// Exp returns e raised to the power of d.
// Results smaller than [ULP] are zero.
//
// Exp panics if the coefficient of the result does not fit into 256 bits.
func (d Decimal) Exp() Decimal {
	f, err := exp(d)
	if err != nil {
		panic(fmt.Sprintf("%q.Exp() failed: %v", d, err))
	}
	return f
}

func exp(d Decimal) (Decimal, error) {
	// Special cases
	switch {
	case d.IsZero():
		return One(), nil
	case d.Less(expMin):
		return Decimal{}, nil
	}

	// Tabulated powers of e and logarithms of nice bases
	if n, ok := d.int64(); ok {
		if f, ok := eulerBase.exactPow(n); ok {
			return f, nil
		}
	}
	for _, b := range niceBases {
		if d == b.ln() {
			return b.base(), nil
		}
	}

	// Negative exponent
	if d.IsNeg() {
		f, err := exp(d.Neg())
		if err != nil {
			return Decimal{}, err
		}
		return quo(One(), f)
	}

	// Range reduction
	var err error
	ten := NewFromInt64(10)
	acc := One()
	for d.GreaterOrEqual(ten) {
		d = d.Sub(ten)
		acc, err = mul(acc, constE10)
		if err != nil {
			return Decimal{}, err
		}
	}
	switch {
	case d.IsZero():
		return acc, nil
	case d.IsOne():
		return mul(acc, constE)
	}

	// Taylor series
	sum, term := One(), One()
	for i := int64(1); i <= expTerms; i++ {
		term = term.Mul(d).Quo(NewFromInt64(i))
		sum = sum.Add(term)
	}
	return mul(acc, sum)
}

// Pow returns d raised to the power of e.
// Cases are resolved in the following order:
//
//   - 0^e is 0 for positive e and 1 for zero e;
//   - d^0 is 1;
//   - d^(1/2) is the square root of d;
//   - 1^e is 1;
//   - negative d requires an integer e, the result is negative for odd e;
//   - d^(-1/2) is the reciprocal of the square root of d;
//   - tabulated powers of nice bases with rational exponents p/q, q <= 15;
//   - e^x is [Decimal.Exp];
//   - otherwise the result is exp(e * ln(d)).
//
// Integer exponents of other bases take the general case as well.
// [Decimal.PowInt] uses repeated squaring instead.
//
// Pow returns an error of class:
//   - [ErrUndefined] if d is 0 and e is negative;
//   - [ErrNotSupported] if d is negative and e is not an integer.
//
// Pow panics if the coefficient of the result does not fit into 256 bits.
func (d Decimal) Pow(e Decimal) (Decimal, error) {
	half := New(5, 1)

	// Special cases
	switch {
	case d.IsZero():
		switch {
		case e.IsPos():
			return Decimal{}, nil
		case e.IsZero():
			return One(), nil
		}
		return Decimal{}, ErrUndefined.New("zero raised to negative power %v", e)
	case e.IsZero():
		return One(), nil
	case e == half:
		return d.Sqrt()
	case d.IsOne():
		return One(), nil
	case d.IsNeg():
		if !e.IsInt() {
			return Decimal{}, ErrNotSupported.New("negative number %v raised to non-integer power %v", d, e)
		}
		f, err := d.Neg().Pow(e)
		if err != nil {
			return Decimal{}, err
		}
		if e.isOdd() {
			f = f.Neg()
		}
		return f, nil
	case e == half.Neg():
		f, err := d.Sqrt()
		if err != nil {
			return Decimal{}, err
		}
		return f.Inv(), nil
	}

	// Tabulated powers
	if f, ok := powTabulated(d, e); ok {
		return f, nil
	}
	if d == constE {
		return e.Exp(), nil
	}

	// General case
	return powGeneric(d, e), nil
}

// isOdd reports whether the integer part of d is odd.
func (d Decimal) isOdd() bool {
	n := d.coef.rshDown(Scale)
	return n.raw().Uint64()&1 == 1
}

// powGeneric calculates exp(e * ln(d)) for a positive d.
func powGeneric(d, e Decimal) Decimal {
	return e.Mul(d.MustLn()).Exp()
}

// powTabulated returns d^e if d is a tabulated power b^i of a nice base
// and e is a ratio p/q such that b^(i*p/q) is also tabulated.
func powTabulated(d, e Decimal) (Decimal, bool) {
	p, q, ok := e.ratio(maxRatioDen)
	if !ok {
		return Decimal{}, false
	}
	b, i, ok := findExactLog(d)
	if !ok || (i*p)%q != 0 {
		return Decimal{}, false
	}
	return b.exactPow(i * p / q)
}

// ratio returns p and q such that p/q, truncated to [Scale] digits,
// is equal to d, with the smallest q not greater than maxDen.
func (d Decimal) ratio(maxDen int64) (p, q int64, ok bool) {
	if d.Abs().Greater(ratioMax) {
		return 0, 0, false
	}
	for q = 1; q <= maxDen; q++ {
		// p = round(|d| * q)
		t, _ := d.coef.mul(wintFromUint64(uint64(q)))
		u, _ := t.rshHalfEven(Scale).uint64()
		// ⌊p * 10^18 / q⌋ must be equal to |d|
		c, _ := wintFromUint64(u).mulQuo(unit, wintFromUint64(uint64(q)))
		if c == d.coef {
			p = int64(u)
			if d.IsNeg() {
				p = -p
			}
			return p, q, true
		}
	}
	return 0, 0, false
}
