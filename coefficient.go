package fpdecimal

import (
	"math/big"

	"github.com/holiman/uint256"
)

// wint (Wide INTeger) is a wrapper around uint256.Int.
// All methods treat their operands as values and never mutate them.
type wint uint256.Int

// maxPow10 is the largest power of 10 that fits into wint.
const maxPow10 = 77

// pow10 is a cache of powers of 10, where pow10[x] = 10^x.
var pow10 = newPow10Cache()

func newPow10Cache() [maxPow10 + 1]wint {
	var p [maxPow10 + 1]wint
	p[0] = wintFromUint64(1)
	ten := wintFromUint64(10)
	for i := 1; i < len(p); i++ {
		p[i], _ = p[i-1].mul(ten)
	}
	return p
}

func wintFromUint64(x uint64) wint {
	var z wint
	z.raw().SetUint64(x)
	return z
}

// wintFromBig converts a non-negative big integer and checks overflow.
func wintFromBig(b *big.Int) (z wint, ok bool) {
	if b.Sign() < 0 {
		return wint{}, false
	}
	overflow := z.raw().SetFromBig(b)
	if overflow {
		return wint{}, false
	}
	return z, true
}

func (x *wint) raw() *uint256.Int {
	return (*uint256.Int)(x)
}

// add calculates x + y and checks overflow.
func (x wint) add(y wint) (z wint, ok bool) {
	_, overflow := z.raw().AddOverflow(x.raw(), y.raw())
	if overflow {
		return wint{}, false
	}
	return z, true
}

// sub calculates x - y and checks underflow.
func (x wint) sub(y wint) (z wint, ok bool) {
	_, underflow := z.raw().SubOverflow(x.raw(), y.raw())
	if underflow {
		return wint{}, false
	}
	return z, true
}

// mul calculates x * y and checks overflow.
func (x wint) mul(y wint) (z wint, ok bool) {
	_, overflow := z.raw().MulOverflow(x.raw(), y.raw())
	if overflow {
		return wint{}, false
	}
	return z, true
}

// quoRem calculates q = ⌊x / y⌋, r = x - y * q.
func (x wint) quoRem(y wint) (q, r wint, ok bool) {
	if y.isZero() {
		return wint{}, wint{}, false
	}
	q.raw().DivMod(x.raw(), y.raw(), r.raw())
	return q, r, true
}

// mulQuo calculates ⌊x * y / d⌋ with a 512-bit intermediate product
// and checks overflow of the quotient.
func (x wint) mulQuo(y, d wint) (z wint, ok bool) {
	if d.isZero() {
		return wint{}, false
	}
	_, overflow := z.raw().MulDivOverflow(x.raw(), y.raw(), d.raw())
	if overflow {
		return wint{}, false
	}
	return z, true
}

func (x wint) cmp(y wint) int {
	return x.raw().Cmp(y.raw())
}

func (x wint) isZero() bool {
	return x.raw().IsZero()
}

func (x wint) isOdd() bool {
	return x[0]&1 != 0
}

// lsh (Left Shift) calculates x * 10^shift and checks overflow.
func (x wint) lsh(shift int) (z wint, ok bool) {
	// Special cases
	switch {
	case shift <= 0:
		return x, true
	case shift >= len(pow10):
		if x.isZero() {
			return x, true
		}
		return wint{}, false
	}
	// General case
	return x.mul(pow10[shift])
}

// fsa (Fused Shift and Addition) calculates x * 10^shift + b and checks overflow.
func (x wint) fsa(shift int, b byte) (z wint, ok bool) {
	z, ok = x.lsh(shift)
	if !ok {
		return wint{}, false
	}
	return z.add(wintFromUint64(uint64(b)))
}

// rshHalfEven (Right Shift) calculates round(x / 10^shift) and rounds result
// using "half to even" rule.
func (x wint) rshHalfEven(shift int) wint {
	// Special cases
	switch {
	case x.isZero():
		return x
	case shift <= 0:
		return x
	case shift >= len(pow10):
		return wint{}
	}
	// General case
	y := pow10[shift]
	z, r, _ := x.quoRem(y)
	var h wint
	h.raw().Rsh(y.raw(), 1) // h = y / 2, which is exact as y is a multiple of 10
	if c := r.cmp(h); c > 0 || (c == 0 && z.isOdd()) {
		z.raw().AddUint64(z.raw(), 1)
	}
	return z
}

// rshUp (Right Shift) calculates ⌈x / 10^shift⌉ and rounds result away from zero.
func (x wint) rshUp(shift int) wint {
	// Special cases
	switch {
	case x.isZero():
		return x
	case shift <= 0:
		return x
	case shift >= len(pow10):
		return wintFromUint64(1)
	}
	// General case
	z, r, _ := x.quoRem(pow10[shift])
	if !r.isZero() {
		z.raw().AddUint64(z.raw(), 1)
	}
	return z
}

// rshDown (Right Shift) calculates ⌊x / 10^shift⌋ and rounds result towards zero.
func (x wint) rshDown(shift int) wint {
	// Special cases
	switch {
	case x.isZero():
		return x
	case shift <= 0:
		return x
	case shift >= len(pow10):
		return wint{}
	}
	// General case
	z, _, _ := x.quoRem(pow10[shift])
	return z
}

// prec returns length of x in decimal digits.
// prec assumes that 0 has no digits.
func (x wint) prec() int {
	left, right := 0, len(pow10)
	for left < right {
		mid := (left + right) / 2
		if x.cmp(pow10[mid]) < 0 {
			right = mid
		} else {
			left = mid + 1
		}
	}
	return left
}

// ntz returns number of trailing zeros in x.
// ntz assumes that 0 has no trailing zeros.
func (x wint) ntz() int {
	if x.isZero() {
		return 0
	}
	n := 0
	for n < maxPow10 {
		_, r, _ := x.quoRem(pow10[n+1])
		if !r.isZero() {
			break
		}
		n++
	}
	return n
}

// uint64 returns x as uint64 and reports whether it fits.
func (x wint) uint64() (uint64, bool) {
	u, overflow := x.raw().Uint64WithOverflow()
	return u, !overflow
}

func (x wint) big() *big.Int {
	return x.raw().ToBig()
}

// string returns x in base 10 without leading zeros.
func (x wint) string() string {
	return x.raw().Dec()
}
