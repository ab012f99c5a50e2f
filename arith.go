package fpdecimal

import (
	"fmt"
)

// Neg returns d with opposite sign.
// The negation of zero is zero.
func (d Decimal) Neg() Decimal {
	return newDecimal(!d.IsNeg(), d.coef)
}

// Abs returns absolute value of d.
func (d Decimal) Abs() Decimal {
	return newDecimal(false, d.coef)
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d == 0
//	+1 if d > 0
func (d Decimal) Sign() int {
	switch {
	case d.neg:
		return -1
	case d.coef.isZero():
		return 0
	}
	return 1
}

// IsPos returns true if d > 0.
func (d Decimal) IsPos() bool {
	return !d.coef.isZero() && !d.neg
}

// IsNeg returns true if d < 0.
func (d Decimal) IsNeg() bool {
	return d.neg
}

// IsZero returns true if d == 0.
func (d Decimal) IsZero() bool {
	return d.coef.isZero()
}

// IsOne returns true if d == 1.
func (d Decimal) IsOne() bool {
	return !d.neg && d.coef == unit
}

// Add returns the sum of d and e.
//
// Add panics if the coefficient of the sum does not fit into 256 bits.
func (d Decimal) Add(e Decimal) Decimal {
	f, err := add(d, e)
	if err != nil {
		panic(fmt.Sprintf("%q.Add(%q) failed: %v", d, e, err))
	}
	return f
}

// Sub returns the difference of d and e.
//
// Sub panics if the coefficient of the difference does not fit into 256 bits.
func (d Decimal) Sub(e Decimal) Decimal {
	f, err := add(d, e.Neg())
	if err != nil {
		panic(fmt.Sprintf("%q.Sub(%q) failed: %v", d, e, err))
	}
	return f
}

// add is the signed-magnitude addition used by both Add and Sub.
func add(d, e Decimal) (Decimal, error) {
	// Same signs
	if d.IsNeg() == e.IsNeg() {
		coef, ok := d.coef.add(e.coef)
		if !ok {
			return Decimal{}, errCoefOverflow
		}
		return newDecimal(d.IsNeg(), coef), nil
	}
	// Different signs, the larger magnitude wins
	if d.coef.cmp(e.coef) >= 0 {
		coef, _ := d.coef.sub(e.coef)
		return newDecimal(d.IsNeg(), coef), nil
	}
	coef, _ := e.coef.sub(d.coef)
	return newDecimal(e.IsNeg(), coef), nil
}

// Mul returns the product of d and e truncated to [Scale] digits
// after the decimal point.
//
// Mul panics if the coefficient of the product does not fit into 256 bits.
func (d Decimal) Mul(e Decimal) Decimal {
	f, err := mul(d, e)
	if err != nil {
		panic(fmt.Sprintf("%q.Mul(%q) failed: %v", d, e, err))
	}
	return f
}

// mul splits both coefficients into integer and fractional parts,
// so that no partial product exceeds the coefficient of the result:
//
//	|d| * |e| = di*ei + di*ef + df*ei + df*ef
//
// The last term is rescaled in two steps, which gives the same result
// as truncating the exact product once.
func mul(d, e Decimal) (Decimal, error) {
	var (
		ok    bool
		coef  wint
		cross wint
	)

	di, df, _ := d.coef.quoRem(unit)
	ei, ef, _ := e.coef.quoRem(unit)

	// Integer parts
	coef, ok = di.mul(ei)
	if ok {
		coef, ok = coef.lsh(Scale)
	}
	if !ok {
		return Decimal{}, errCoefOverflow
	}

	// Cross products
	for _, p := range [2][2]wint{{di, ef}, {df, ei}} {
		cross, ok = p[0].mul(p[1])
		if ok {
			coef, ok = coef.add(cross)
		}
		if !ok {
			return Decimal{}, errCoefOverflow
		}
	}

	// Fractional parts, df*ef < 10^36
	cross, _ = df.mul(ef)
	cross = cross.rshDown(halfScale).rshDown(halfScale)
	coef, ok = coef.add(cross)
	if !ok {
		return Decimal{}, errCoefOverflow
	}

	return newDecimal(d.IsNeg() != e.IsNeg(), coef), nil
}

// Quo returns the quotient of d and e truncated to [Scale] digits
// after the decimal point.
//
// Quo panics if:
//   - e is 0;
//   - the coefficient of the quotient does not fit into 256 bits.
func (d Decimal) Quo(e Decimal) Decimal {
	f, err := quo(d, e)
	if err != nil {
		panic(fmt.Sprintf("%q.Quo(%q) failed: %v", d, e, err))
	}
	return f
}

// quo calculates (|d| * 10^18) / |e| with a 512-bit intermediate product.
func quo(d, e Decimal) (Decimal, error) {
	neg := d.IsNeg() != e.IsNeg()

	// Special cases
	switch {
	case e.IsZero():
		return Decimal{}, errDivisionByZero
	case e.coef == unit:
		return newDecimal(neg, d.coef), nil
	}

	// General case
	coef, ok := d.coef.mulQuo(unit, e.coef)
	if !ok {
		return Decimal{}, errCoefOverflow
	}
	return newDecimal(neg, coef), nil
}

// Inv returns the reciprocal 1 / d truncated to [Scale] digits
// after the decimal point.
//
// Inv panics if d is 0.
func (d Decimal) Inv() Decimal {
	f, err := quo(One(), d)
	if err != nil {
		panic(fmt.Sprintf("%q.Inv() failed: %v", d, err))
	}
	return f
}

// PowInt returns d raised to the integer power n.
// Negative powers are calculated as the reciprocal of the positive power.
// Powers that are too small to be represented are zero.
//
// PowInt panics if:
//   - the coefficient of the power does not fit into 256 bits;
//   - d is 0 and n is negative;
//   - n is negative and d^|n| is too small to be represented.
func (d Decimal) PowInt(n int) Decimal {
	f, err := powInt(d, int64(n))
	if err != nil {
		panic(fmt.Sprintf("%q.PowInt(%v) failed: %v", d, n, err))
	}
	return f
}

func powInt(d Decimal, n int64) (Decimal, error) {
	if n < 0 {
		if d.IsZero() {
			return Decimal{}, errDivisionByZero
		}
		f, err := powUint(d, uint64(-n))
		if err != nil {
			// |d|^|n| is greater than the maximum, so its reciprocal is zero
			return Decimal{}, nil
		}
		return quo(One(), f)
	}
	return powUint(d, uint64(n))
}

// powUint uses exponentiation by squaring.
func powUint(d Decimal, n uint64) (Decimal, error) {
	var err error
	f := One()
	for n > 0 {
		if n&1 == 1 {
			f, err = mul(f, d)
			if err != nil {
				return Decimal{}, err
			}
		}
		n >>= 1
		if n > 0 {
			d, err = mul(d, d)
			if err != nil {
				return Decimal{}, err
			}
		}
	}
	return f, nil
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
func (d Decimal) Cmp(e Decimal) int {
	// Special case: different signs
	switch {
	case e.Sign() < d.Sign():
		return 1
	case d.Sign() < e.Sign():
		return -1
	}
	// General case
	switch d.coef.cmp(e.coef) {
	case 1:
		return d.Sign()
	case -1:
		return -e.Sign()
	}
	return 0
}

// Equal returns true if d == e.
func (d Decimal) Equal(e Decimal) bool {
	return d.Cmp(e) == 0
}

// Less returns true if d < e.
func (d Decimal) Less(e Decimal) bool {
	return d.Cmp(e) < 0
}

// LessOrEqual returns true if d <= e.
func (d Decimal) LessOrEqual(e Decimal) bool {
	return d.Cmp(e) <= 0
}

// Greater returns true if d > e.
func (d Decimal) Greater(e Decimal) bool {
	return d.Cmp(e) > 0
}

// GreaterOrEqual returns true if d >= e.
func (d Decimal) GreaterOrEqual(e Decimal) bool {
	return d.Cmp(e) >= 0
}

// Max returns maximum of d and e.
func (d Decimal) Max(e Decimal) Decimal {
	if d.Cmp(e) >= 0 {
		return d
	}
	return e
}

// Min returns minimum of d and e.
func (d Decimal) Min(e Decimal) Decimal {
	if d.Cmp(e) <= 0 {
		return d
	}
	return e
}
