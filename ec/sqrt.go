package ec

import "math/big"

// Legendre returns the Legendre symbol (a|p): -1, 0, or +1.
func Legendre(a, p *big.Int) int {
	fp := NewModulus(p)
	A := fp.Reduce(a)
	if A.Sign() == 0 {
		return 0
	}
	e := new(big.Int).Rsh(new(big.Int).Sub(p, big.NewInt(1)), 1)
	v := fp.Exp(A, e)
	switch {
	case v.Cmp(big.NewInt(1)) == 0:
		return 1
	case v.Sign() == 0:
		return 0
	default:
		return -1
	}
}

// SqrtModP returns y such that y^2 ≡ a (mod p), via Tonelli-Shanks.
// p must be an odd prime. Used only to build test fixtures (finding a
// point on the curve for a given x) — never in the rho hot loop.
func SqrtModP(a, p *big.Int) (*big.Int, error) {
	fp := NewModulus(p)
	A := fp.Reduce(a)
	if A.Sign() == 0 {
		return new(big.Int), nil
	}
	if Legendre(A, p) != 1 {
		return nil, ErrNonResidue
	}
	one := big.NewInt(1)
	three := big.NewInt(3)
	// p ≡ 3 mod 4 shortcut
	if new(big.Int).And(new(big.Int).Sub(p, three), big.NewInt(3)).Sign() == 0 {
		e := new(big.Int).Rsh(new(big.Int).Add(p, one), 2)
		return fp.Exp(A, e), nil
	}
	// factor p-1 = q * 2^s
	q := new(big.Int).Sub(p, one)
	s := 0
	for q.Bit(0) == 0 {
		q.Rsh(q, 1)
		s++
	}
	z := big.NewInt(2)
	for Legendre(z, p) != -1 {
		z.Add(z, one)
	}
	c := fp.Exp(z, q)
	x := fp.Exp(A, new(big.Int).Rsh(new(big.Int).Add(q, one), 1))
	t := fp.Exp(A, q)
	m := s
	for t.Cmp(one) != 0 {
		i := 1
		b := fp.Mul(t, t)
		for i < m {
			if b.Cmp(one) == 0 {
				break
			}
			b = fp.Mul(b, b)
			i++
		}
		if i == m {
			return nil, ErrNonResidue
		}
		b = new(big.Int).Set(c)
		for j := 0; j < m-i-1; j++ {
			b = fp.Mul(b, b)
		}
		x = fp.Mul(x, b)
		bb := fp.Mul(b, b)
		t = fp.Mul(t, bb)
		c = bb
		m = i
	}
	return x, nil
}

// PointFromX returns the lexicographically-smaller-y point on c with the
// given x-coordinate, and reports whether x lies on the curve at all.
func PointFromX(c Curve, x *big.Int) (Point, bool) {
	fp := NewModulus(c.P)
	xr := fp.Reduce(x)
	rhs := fp.Add(fp.Add(fp.Mul(xr, fp.Mul(xr, xr)), fp.Mul(c.A, xr)), c.B)
	switch Legendre(rhs, c.P) {
	case 0:
		return Point{X: xr, Y: new(big.Int)}, true
	case 1:
		y, err := SqrtModP(rhs, c.P)
		if err != nil {
			return Point{}, false
		}
		negY := fp.Neg(y)
		if negY.Cmp(y) < 0 {
			y = negY
		}
		return Point{X: xr, Y: y}, true
	default:
		return Point{}, false
	}
}
