package fpdecimal

import "github.com/zeebo/errs"

// Error classes returned by the package.
// Use Class.Has to check whether an error belongs to a class:
//
//	if fpdecimal.ErrNotSupported.Has(err) { ... }
var (
	// ErrNotSupported is returned when a result would require a complex number.
	ErrNotSupported = errs.Class("not supported")
	// ErrUndefined is returned when a result is mathematically undefined,
	// such as the logarithm of zero.
	ErrUndefined = errs.Class("undefined")
	// ErrParse is returned when text does not represent a decimal.
	ErrParse = errs.Class("invalid decimal")
	// ErrOverflow is returned when a value does not fit into 256 bits.
	ErrOverflow = errs.Class("overflow")
)

var (
	errDivisionByZero = ErrUndefined.New("division by zero")
	errCoefOverflow   = ErrOverflow.New("coefficient exceeds 256 bits")
	errPlacesRange    = errs.New("number of places out of range")
	errNegativeUint   = ErrOverflow.New("negative value cannot be unsigned")
	errIntOverflow    = ErrOverflow.New("integer part exceeds target width")
)
