/*
Package fpdecimal implements immutable fixed-point decimal numbers with
exactly 18 digits after the decimal point.
It is designed for financial computations that must produce bit-identical
results on every platform, such as prices, quantities, fees and margins
on an exchange.
No floating-point arithmetic is used anywhere in the package.

# Representation

[Decimal] is a struct with two fields:

  - Sign: a boolean indicating whether the decimal is negative.
  - Coefficient: an unsigned 256-bit integer equal to the absolute value of
    the decimal multiplied by 10^18.
    For example, a decimal with a coefficient of 1_500_000_000_000_000_000
    represents the value 1.5.

The numerical value of a decimal is calculated as:

  - -Coefficient / 10^18, if Sign is true.
  - Coefficient / 10^18, if Sign is false.

Every value has a single representation.
Zero is always non-negative, so there is no negative zero.

# Constraints

The smallest positive decimal is 0.000000000000000001 (see [ULP]).
The largest decimal is (2^256 - 1) / 10^18, which is slightly above 1.15 * 10^59.
Operations whose result exceeds this range panic.

# Conversions

The package provides methods for converting decimals:

  - from/to string:
    [Parse], [MustParse], [Decimal.String], [Decimal.Format].
  - from/to integers:
    [New], [NewFromInt64], [NewFromUint64], [NewFromBigInt], [NewFromCoef],
    [Decimal.Int64], [Decimal.Uint64], [Decimal.BigInt], [Decimal.Uint256],
    [Decimal.Coef].

Conversions to integers truncate the fractional part.

# Operations

Arithmetic operations truncate their results towards zero:

  - [Decimal.Add], [Decimal.Sub]
  - [Decimal.Mul]
  - [Decimal.Quo], [Decimal.Inv]
  - [Decimal.PowInt]

Transcendental functions:

  - [Decimal.Sqrt] uses Newton's method.
  - [Decimal.Ln] uses a series expansion after range reduction, and the
    arithmetic-geometric mean for arguments in [0.5, 1).
  - [Decimal.Log] returns the exact ratio of exponents for tabulated powers of
    e, 2, 3, 5, 7, 10 and 11, and ln(d) / ln(base) otherwise.
  - [Decimal.Exp] uses a Taylor series after range reduction.
  - [Decimal.Pow] returns tabulated powers of the same bases exactly,
    and exp(e * ln(d)) otherwise.

# Rounding

To round a decimal to fewer digits after the decimal point, use
[Decimal.Round] (half to even), [Decimal.Trunc], [Decimal.Ceil]
or [Decimal.Floor].

# Errors

Transcendental functions return errors of two classes:

  - [ErrNotSupported]: the result would be a complex number, for example
    the square root of a negative number.
  - [ErrUndefined]: the result is undefined, for example the logarithm of zero.

Conditions that indicate a programming error panic instead:
division by zero, coefficient overflow, and conversion of a negative
decimal to an unsigned integer.

# Serialization

[Decimal] implements text, JSON and YAML marshaling, [database/sql]
scanning, and [zapcore.ObjectMarshaler] for structured logging.
All of them use the same format as [Decimal.String].

[zapcore.ObjectMarshaler]: https://pkg.go.dev/go.uber.org/zap/zapcore#ObjectMarshaler
*/
package fpdecimal
