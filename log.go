package fpdecimal

const (
	// lnTerms is the number of odd terms summed by lnSeries.
	lnTerms = Scale
	// agmShift is the power of two applied to the argument of lnAGM.
	agmShift = 32
	// agmMaxIter caps the AGM iteration.
	agmMaxIter = 100
)

var (
	// agmTolerance is the largest difference between the arithmetic and
	// geometric means at which the AGM iteration stops.
	agmTolerance = New(10, Scale)
	// agmLow and agmHigh bound the interval [agmLow, agmHigh) where
	// Ln uses the AGM method. Above agmHigh the error of the AGM method
	// would exceed |ln(d)|, so lnSeries is used up to 1.
	agmLow  = New(5, 1)
	agmHigh = New(99999999, 8)
	// agmPi is the value of π in the AGM formula. It is not [Pi]:
	// ln(0.5) = -0.693147180435828445 is reproduced with this value.
	agmPi = MustParse("3.141592653589793115")
	// agmFactor is 2^agmShift.
	agmFactor = NewFromInt64(1 << agmShift)
)

// Ln returns the natural logarithm of d.
//
// Ln returns an error of class:
//   - [ErrUndefined] if d is 0;
//   - [ErrNotSupported] if d is negative.
func (d Decimal) Ln() (Decimal, error) {
	switch {
	case d.IsZero():
		return Decimal{}, ErrUndefined.New("logarithm of zero")
	case d.IsNeg():
		return Decimal{}, ErrNotSupported.New("logarithm of negative number %v", d)
	case d.IsOne():
		return Decimal{}, nil
	}

	// Tabulated powers of e and nice bases
	if n, ok := eulerBase.exactLog(d); ok {
		return NewFromInt64(n), nil
	}
	for _, b := range niceBases {
		if d == b.base() {
			return b.ln(), nil
		}
	}

	// General case
	if d.GreaterOrEqual(agmLow) && d.Less(agmHigh) {
		return lnAGM(d), nil
	}
	return lnSeries(d), nil
}

// lnSeries calculates the natural logarithm of a positive d.
// The argument is first reduced to the interval [1, e] by factors of 10 and e.
// The remaining v is expanded around 1.5:
//
//	ln(v) = ln(1.5) + 2 * (m + m^3/3 + m^5/5 + ...), where m = (v - 1.5) / (v + 3)
func lnSeries(d Decimal) Decimal {
	var (
		v     = d
		f     Decimal
		ten   = NewFromInt64(10)
		tenth = New(1, 1)
		two   = NewFromInt64(2)
	)

	// Range reduction
	for v.LessOrEqual(tenth) {
		v = v.Mul(ten)
		f = f.Sub(constLn10)
	}
	for v.GreaterOrEqual(ten) {
		v = v.Quo(ten)
		f = f.Add(constLn10)
	}
	for v.Less(One()) {
		v = v.Mul(constE)
		f = f.Sub(One())
	}
	for v.Greater(constE) {
		v = v.Quo(constE)
		f = f.Add(One())
	}

	// Special cases
	switch {
	case v.IsOne():
		return f
	case v == constE:
		return f.Add(One())
	}

	// Series
	v = v.Sub(New(15, 1))
	f = f.Add(constLn1p5)
	m := v.Quo(v.Add(NewFromInt64(3)))
	f = f.Add(two.Mul(m))
	m2 := m.Mul(m)
	for i := int64(3); i < 3+2*lnTerms; i += 2 {
		m = m.Mul(m2)
		f = f.Add(two.Mul(m).Quo(NewFromInt64(i)))
	}
	return f
}

// lnAGM calculates the natural logarithm of a positive d using
// the arithmetic-geometric mean:
//
//	ln(d) ≈ π / (2 * agm(1, 4 / s)) - m * ln(2), where s = d * 2^m
func lnAGM(d Decimal) Decimal {
	two := NewFromInt64(2)
	s := d.Mul(agmFactor)
	a := One()
	b := NewFromInt64(4).Quo(s)
	for i := 0; i < agmMaxIter && a.Sub(b).Abs().Greater(agmTolerance); i++ {
		a, b = a.Add(b).Quo(two), a.Mul(b).MustSqrt()
	}
	return agmPi.Quo(two.Mul(a)).Sub(NewFromInt64(agmShift).Mul(constLn2))
}

// Log returns the logarithm of d to the given base.
// If both d and base are tabulated powers of the same nice base
// (e, 2, 3, 5, 7, 10, 11), the exact ratio of their exponents is returned.
//
// Log returns an error of class:
//   - [ErrUndefined] if d is 0, or base is 0 or 1;
//   - [ErrNotSupported] if d or base is negative.
func (d Decimal) Log(base Decimal) (Decimal, error) {
	switch {
	case base.IsZero():
		return Decimal{}, ErrUndefined.New("logarithm to base zero")
	case base.IsNeg():
		return Decimal{}, ErrNotSupported.New("logarithm to negative base %v", base)
	case base.IsOne():
		return Decimal{}, ErrUndefined.New("logarithm to base one")
	case d.IsZero():
		return Decimal{}, ErrUndefined.New("logarithm of zero")
	case d.IsNeg():
		return Decimal{}, ErrNotSupported.New("logarithm of negative number %v", d)
	case d.IsOne():
		return Decimal{}, nil
	}

	// Tabulated powers
	for _, b := range niceBases {
		i, ok := b.exactLog(d)
		if !ok {
			continue
		}
		j, ok := b.exactLog(base)
		if !ok {
			continue
		}
		return NewFromInt64(i).Quo(NewFromInt64(j)), nil
	}

	// General case
	x, err := d.Ln()
	if err != nil {
		return Decimal{}, err
	}
	y, err := base.Ln()
	if err != nil {
		return Decimal{}, err
	}
	if y.IsZero() {
		return Decimal{}, ErrUndefined.New("logarithm to base %v", base)
	}
	return x.Quo(y), nil
}
