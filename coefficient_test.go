package fpdecimal

import (
	"testing"

	"github.com/holiman/uint256"
)

func wintFromDec(s string) wint {
	return wint(*uint256.MustFromDecimal(s))
}

func TestWint_pow10(t *testing.T) {
	if got := pow10[0].string(); got != "1" {
		t.Errorf("pow10[0] = %v, want 1", got)
	}
	if got := pow10[Scale].string(); got != "1000000000000000000" {
		t.Errorf("pow10[%v] = %v, want 10^18", Scale, got)
	}
	if got := pow10[maxPow10].prec(); got != maxPow10+1 {
		t.Errorf("pow10[%v].prec() = %v, want %v", maxPow10, got, maxPow10+1)
	}
}

func TestWint_lsh(t *testing.T) {
	tests := []struct {
		x      string
		shift  int
		want   string
		wantOk bool
	}{
		{"0", 0, "0", true},
		{"0", 100, "0", true},
		{"1", 0, "1", true},
		{"1", 77, "100000000000000000000000000000000000000000000000000000000000000000000000000000", true},
		{"1", 78, "0", false},
		{"12", 76, "0", false},
		{"5", -1, "5", true},
	}
	for _, tt := range tests {
		x := wintFromDec(tt.x)
		got, ok := x.lsh(tt.shift)
		if ok != tt.wantOk || (ok && got.string() != tt.want) {
			t.Errorf("%v.lsh(%v) = (%v, %v), want (%v, %v)", tt.x, tt.shift, got.string(), ok, tt.want, tt.wantOk)
		}
	}
}

func TestWint_fsa(t *testing.T) {
	x := wintFromDec("12")
	got, ok := x.fsa(1, 3)
	if !ok || got.string() != "123" {
		t.Errorf("12.fsa(1, 3) = (%v, %v), want (123, true)", got.string(), ok)
	}
	x = wintFromDec("11579208923731619542357098500868790785326998466564056403945758400791312963993")
	got, ok = x.fsa(1, 5)
	if !ok || got.string() != "115792089237316195423570985008687907853269984665640564039457584007913129639935" {
		t.Errorf("fsa(1, 5) = (%v, %v), want (2^256 - 1, true)", got.string(), ok)
	}
	if _, ok = x.fsa(1, 6); ok {
		t.Errorf("fsa(1, 6) did not overflow")
	}
}

func TestWint_rsh(t *testing.T) {
	tests := []struct {
		x                    string
		shift                int
		wantHalfEven, wantUp string
		wantDown             string
	}{
		{"0", 1, "0", "0", "0"},
		{"15", 0, "15", "15", "15"},
		{"15", 1, "2", "2", "1"},
		{"25", 1, "2", "3", "2"},
		{"26", 1, "3", "3", "2"},
		{"24", 1, "2", "3", "2"},
		{"20", 1, "2", "2", "2"},
		{"1", 78, "0", "1", "0"},
		{"1500000000000000000", 18, "2", "2", "1"},
		{"2500000000000000000", 18, "2", "3", "2"},
	}
	for _, tt := range tests {
		x := wintFromDec(tt.x)
		if got := x.rshHalfEven(tt.shift).string(); got != tt.wantHalfEven {
			t.Errorf("%v.rshHalfEven(%v) = %v, want %v", tt.x, tt.shift, got, tt.wantHalfEven)
		}
		if got := x.rshUp(tt.shift).string(); got != tt.wantUp {
			t.Errorf("%v.rshUp(%v) = %v, want %v", tt.x, tt.shift, got, tt.wantUp)
		}
		if got := x.rshDown(tt.shift).string(); got != tt.wantDown {
			t.Errorf("%v.rshDown(%v) = %v, want %v", tt.x, tt.shift, got, tt.wantDown)
		}
	}
}

func TestWint_prec(t *testing.T) {
	tests := []struct {
		x    string
		want int
	}{
		{"0", 0},
		{"1", 1},
		{"9", 1},
		{"10", 2},
		{"999999999999999999", 18},
		{"1000000000000000000", 19},
		{"115792089237316195423570985008687907853269984665640564039457584007913129639935", 78},
	}
	for _, tt := range tests {
		x := wintFromDec(tt.x)
		if got := x.prec(); got != tt.want {
			t.Errorf("%v.prec() = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestWint_ntz(t *testing.T) {
	tests := []struct {
		x    string
		want int
	}{
		{"0", 0},
		{"1", 0},
		{"10", 1},
		{"1500", 2},
		{"1000000000000000000", 18},
		{"100000000000000000000000000000000000000000000000000000000000000000000000000000", 77},
	}
	for _, tt := range tests {
		x := wintFromDec(tt.x)
		if got := x.ntz(); got != tt.want {
			t.Errorf("%v.ntz() = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestWint_mulQuo(t *testing.T) {
	tests := []struct {
		x, y, d string
		want    string
		wantOk  bool
	}{
		{"1", "1000000000000000000", "3", "333333333333333333", true},
		{"115792089237316195423570985008687907853269984665640564039457584007913129639935", "2", "2", "115792089237316195423570985008687907853269984665640564039457584007913129639935", true},
		{"115792089237316195423570985008687907853269984665640564039457584007913129639935", "2", "1", "0", false},
		{"1", "1", "0", "0", false},
	}
	for _, tt := range tests {
		x, y, d := wintFromDec(tt.x), wintFromDec(tt.y), wintFromDec(tt.d)
		got, ok := x.mulQuo(y, d)
		if ok != tt.wantOk || (ok && got.string() != tt.want) {
			t.Errorf("%v.mulQuo(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, tt.d, got.string(), ok, tt.want, tt.wantOk)
		}
	}
}

func TestWint_quoRem(t *testing.T) {
	x := wintFromDec("17")
	if _, _, ok := x.quoRem(wint{}); ok {
		t.Errorf("17.quoRem(0) did not fail")
	}
	q, r, ok := x.quoRem(wintFromDec("5"))
	if !ok || q.string() != "3" || r.string() != "2" {
		t.Errorf("17.quoRem(5) = (%v, %v, %v), want (3, 2, true)", q.string(), r.string(), ok)
	}
}
