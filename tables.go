package fpdecimal

// Mathematical constants rounded to [Scale] digits after the decimal point.
var (
	constE     = MustParse("2.718281828459045235")
	constPi    = MustParse("3.141592653589793238")
	constLn2   = MustParse("0.693147180559945309")
	constLn10  = MustParse("2.302585092994045684")
	constLn1p5 = MustParse("0.405465108108164382")
)

// E returns Euler's number rounded to [Scale] digits after the decimal point.
func E() Decimal {
	return constE
}

// Pi returns π rounded to [Scale] digits after the decimal point.
func Pi() Decimal {
	return constPi
}

// niceBase is a base with exactly tabulated integer powers.
// Logarithms and powers check every nice base before falling back
// to series expansions.
type niceBase interface {
	// base returns the base itself.
	base() Decimal
	// ln returns the natural logarithm of the base.
	ln() Decimal
	// exactLog returns n such that base^n == d.
	exactLog(d Decimal) (n int64, ok bool)
	// exactPow returns base^n.
	exactPow(n int64) (d Decimal, ok bool)
}

// powerTable maps exponents to powers and back.
// Tables are built during package initialization and never modified.
type powerTable struct {
	b    Decimal
	lnb  Decimal
	pows map[int64]Decimal
	logs map[Decimal]int64
}

func (t *powerTable) base() Decimal {
	return t.b
}

func (t *powerTable) ln() Decimal {
	return t.lnb
}

func (t *powerTable) exactLog(d Decimal) (int64, bool) {
	n, ok := t.logs[d]
	return n, ok
}

func (t *powerTable) exactPow(n int64) (Decimal, bool) {
	if n == 0 {
		return One(), true
	}
	d, ok := t.pows[n]
	return d, ok
}

func (t *powerTable) add(n int64, d Decimal) {
	t.pows[n] = d
	t.logs[d] = n
}

// newIntegerTable tabulates b^n for minExp <= n <= maxExp, n != 0.
// Positive powers are exact, negative powers are truncated reciprocals.
func newIntegerTable(b int64, ln string, minExp, maxExp int64) *powerTable {
	t := &powerTable{
		b:    NewFromInt64(b),
		lnb:  MustParse(ln),
		pows: make(map[int64]Decimal),
		logs: make(map[Decimal]int64),
	}
	p := One()
	for n := int64(1); n <= maxExp || n <= -minExp; n++ {
		p = p.Mul(t.b)
		if n <= maxExp {
			t.add(n, p)
		}
		if -n >= minExp {
			t.add(-n, p.Inv())
		}
	}
	return t
}

// newEulerTable tabulates e^n for -15 <= n <= 15, n != 0,
// rounded to [Scale] digits after the decimal point.
func newEulerTable() *powerTable {
	t := &powerTable{
		b:    constE,
		lnb:  One(),
		pows: make(map[int64]Decimal),
		logs: make(map[Decimal]int64),
	}
	for n, s := range map[int64]string{
		-15: "0.000000305902320502",
		-14: "0.000000831528719104",
		-13: "0.000002260329406981",
		-12: "0.000006144212353328",
		-11: "0.000016701700790246",
		-10: "0.000045399929762485",
		-9:  "0.000123409804086680",
		-8:  "0.000335462627902512",
		-7:  "0.000911881965554516",
		-6:  "0.002478752176666358",
		-5:  "0.006737946999085467",
		-4:  "0.018315638888734180",
		-3:  "0.049787068367863943",
		-2:  "0.135335283236612692",
		-1:  "0.367879441171442322",
		1:   "2.718281828459045235",
		2:   "7.389056098930650227",
		3:   "20.085536923187667741",
		4:   "54.598150033144239078",
		5:   "148.413159102576603421",
		6:   "403.428793492735122608",
		7:   "1096.633158428458599264",
		8:   "2980.957987041728274744",
		9:   "8103.083927575384007710",
		10:  "22026.465794806716516958",
		11:  "59874.141715197818455326",
		12:  "162754.791419003920808005",
		13:  "442413.392008920503326103",
		14:  "1202604.284164776777749237",
		15:  "3269017.372472110639301855",
	} {
		t.add(n, MustParse(s))
	}
	return t
}

var (
	eulerBase = newEulerTable()

	// niceBases are checked in this order.
	niceBases = []niceBase{
		eulerBase,
		newIntegerTable(2, "0.693147180559945309", -15, 15),
		newIntegerTable(3, "1.098612288668109691", -15, 15),
		newIntegerTable(5, "1.609437912434100375", -15, 15),
		newIntegerTable(7, "1.945910149055313305", -15, 15),
		newIntegerTable(10, "2.302585092994045684", -18, 59),
		newIntegerTable(11, "2.397895272798370544", -15, 15),
	}

	// constE10 is e^10, used by the range reduction of Exp.
	constE10, _ = eulerBase.exactPow(10)
)

// findExactLog returns the nice base b and the exponent n such that b^n == d.
func findExactLog(d Decimal) (niceBase, int64, bool) {
	for _, b := range niceBases {
		if n, ok := b.exactLog(d); ok {
			return b, n, true
		}
	}
	return nil, 0, false
}
