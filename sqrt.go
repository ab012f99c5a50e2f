package fpdecimal

// sqrtMaxIter bounds the Newton iteration, since truncated iterates
// may oscillate between two neighbouring values instead of converging.
const sqrtMaxIter = 300

// Sqrt returns the square root of d with [Scale] digits after the decimal
// point. The result is the truncated root, except for inputs on which the
// iteration oscillates between two neighbours until the iteration cap.
// Then it is the last iterate, which may exceed the truncated root by one [ULP].
//
// Sqrt returns an error of class [ErrNotSupported] if d is negative.
func (d Decimal) Sqrt() (Decimal, error) {
	switch {
	case d.IsNeg():
		return Decimal{}, ErrNotSupported.New("square root of negative number %v", d)
	case d.IsZero():
		return Decimal{}, nil
	}
	f, _ := sqrtNewton(d)
	return f, nil
}

// sqrtNewton calculates the square root of a positive d using
// the Babylonian method and returns the result together with
// the number of iterations performed.
func sqrtNewton(d Decimal) (Decimal, int) {
	two := New(2, 0)
	x := d.Quo(two)
	if x.IsZero() {
		x = d
	}
	for i := 1; i <= sqrtMaxIter; i++ {
		y := x.Add(d.Quo(x)).Quo(two)
		if y == x {
			return y, i
		}
		x = y
	}
	return x, sqrtMaxIter
}
