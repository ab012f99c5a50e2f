package fpdecimal

import "fmt"

// MustSqrt is like [Decimal.Sqrt] but panics if computing error.
func (d Decimal) MustSqrt() Decimal {
	f, err := d.Sqrt()
	if err != nil {
		panic(fmt.Sprintf("%q.MustSqrt() failed: %v", d, err))
	}
	return f
}

// MustLn is like [Decimal.Ln] but panics if computing error.
func (d Decimal) MustLn() Decimal {
	f, err := d.Ln()
	if err != nil {
		panic(fmt.Sprintf("%q.MustLn() failed: %v", d, err))
	}
	return f
}

// MustLog is like [Decimal.Log] but panics if computing error.
func (d Decimal) MustLog(base Decimal) Decimal {
	f, err := d.Log(base)
	if err != nil {
		panic(fmt.Sprintf("%q.MustLog(%q) failed: %v", d, base, err))
	}
	return f
}

// MustPow is like [Decimal.Pow] but panics if computing error.
func (d Decimal) MustPow(e Decimal) Decimal {
	f, err := d.Pow(e)
	if err != nil {
		panic(fmt.Sprintf("%q.MustPow(%q) failed: %v", d, e, err))
	}
	return f
}
