package ec

import (
	"math/big"
	"testing"
)

func bi(v int64) *big.Int { return big.NewInt(v) }

func mustCurve(t *testing.T, p, a, b int64) Curve {
	t.Helper()
	c, err := NewCurve(bi(p), bi(a), bi(b))
	if err != nil {
		t.Fatalf("NewCurve: %v", err)
	}
	return c
}

func pt(x, y int64) Point { return Point{X: bi(x), Y: bi(y)} }

func TestModArith(t *testing.T) {
	fp := NewModulus(bi(11))
	if fp.Reduce(bi(-1)).Cmp(bi(10)) != 0 {
		t.Fatal("Reduce(-1) mod 11 should be 10")
	}
	if fp.Add(bi(8), bi(5)).Cmp(bi(2)) != 0 {
		t.Fatal("(8+5) mod 11 should be 2")
	}
	if fp.Sub(bi(3), bi(5)).Cmp(bi(9)) != 0 {
		t.Fatal("(3-5) mod 11 should be 9")
	}
	if fp.Mul(bi(7), bi(5)).Cmp(bi(2)) != 0 {
		t.Fatal("(7*5) mod 11 should be 2")
	}
	inv, err := fp.Inv(bi(5))
	if err != nil || inv.Cmp(bi(9)) != 0 {
		t.Fatalf("inverse of 5 mod 11 should be 9, got %v %v", inv, err)
	}
	if _, err := fp.Inv(bi(0)); err == nil {
		t.Fatal("inverse of 0 must fail")
	}
}

func TestLegendreAndSqrt(t *testing.T) {
	p := bi(11)
	if Legendre(bi(0), p) != 0 {
		t.Fatal("Legendre(0) must be 0")
	}
	if Legendre(bi(2), p) != -1 {
		t.Fatal("2 is a non-residue mod 11")
	}
	if Legendre(bi(4), p) != 1 {
		t.Fatal("4 is a residue mod 11")
	}
	y, err := SqrtModP(bi(4), p)
	if err != nil {
		t.Fatalf("SqrtModP(4): %v", err)
	}
	if y.Cmp(bi(9)) != 0 {
		t.Fatalf("expected sqrt(4) mod 11 = 9, got %v", y)
	}
}

func TestSingularCurveRejected(t *testing.T) {
	// 4*0^3 + 27*0^2 = 0 -> singular
	if _, err := NewCurve(bi(11), bi(0), bi(0)); err == nil {
		t.Fatal("expected singular curve error")
	}
}

func TestAddDoubleNegate(t *testing.T) {
	// y^2 = x^3 + 2x + 3 over F_263
	c := mustCurve(t, 263, 2, 3)
	P := pt(0, 23)
	if !c.OnCurve(P) {
		t.Skip("fixture point not on curve, adjust fixture")
	}
	dbl, err := c.Double(P)
	if err != nil {
		t.Fatalf("double: %v", err)
	}
	if !c.OnCurve(dbl) {
		t.Fatal("2P must be on curve")
	}
	sum, err := c.Add(P, dbl)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !c.OnCurve(sum) {
		t.Fatal("P+2P must be on curve")
	}
	neg := c.Negate(P)
	back, err := c.Add(P, neg)
	if err != nil {
		t.Fatalf("add(P,-P): %v", err)
	}
	if !back.Inf {
		t.Fatal("P + (-P) must be identity")
	}
}

func TestAddIdentity(t *testing.T) {
	c := mustCurve(t, 11, 2, 10)
	P := pt(4, 4)
	sum, err := c.Add(P, Identity())
	if err != nil || !c.Equal(sum, P) {
		t.Fatalf("P + O must equal P, got %+v err=%v", sum, err)
	}
}

func TestDoubleOrderTwoPoint(t *testing.T) {
	// y=0 gives a point of order 2; doubling it must not crash and must
	// return the identity.
	c := mustCurve(t, 11, 1, 0) // y^2 = x^3 + x, (0,0) has y=0
	P := pt(0, 0)
	if !c.OnCurve(P) {
		t.Skip("fixture point not on curve, adjust fixture")
	}
	dbl, err := c.Double(P)
	if err != nil {
		t.Fatalf("double of order-2 point must not error: %v", err)
	}
	if !dbl.Inf {
		t.Fatal("doubling an order-2 point must yield identity")
	}
}

func TestScalarMult(t *testing.T) {
	c := mustCurve(t, 263, 2, 3)
	P := pt(0, 23)
	if !c.OnCurve(P) {
		t.Skip("fixture point not on curve, adjust fixture")
	}
	one, err := c.ScalarMult(P, bi(1))
	if err != nil || !c.Equal(one, P) {
		t.Fatalf("1*P must equal P, got %+v err=%v", one, err)
	}
	two, err := c.ScalarMult(P, bi(2))
	if err != nil {
		t.Fatalf("2*P: %v", err)
	}
	dbl, _ := c.Double(P)
	if !c.Equal(two, dbl) {
		t.Fatal("2*P via ScalarMult must equal Double(P)")
	}
	zero, err := c.ScalarMult(P, bi(0))
	if err != nil || !zero.Inf {
		t.Fatalf("0*P must be identity, got %+v err=%v", zero, err)
	}
}

func TestCompareOrder(t *testing.T) {
	if Compare(Identity(), pt(1, 1)) >= 0 {
		t.Fatal("identity must sort before any finite point")
	}
	if Compare(pt(1, 1), pt(1, 1)) != 0 {
		t.Fatal("equal points must compare equal")
	}
	if Compare(pt(1, 2), pt(2, 1)) >= 0 {
		t.Fatal("x=1 must sort before x=2")
	}
	if Compare(pt(1, 1), pt(1, 2)) >= 0 {
		t.Fatal("same x, smaller y must sort first")
	}
}
