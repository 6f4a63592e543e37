// Package ec implements the short-Weierstrass curve and field arithmetic
// that the rho package treats as an external collaborator: affine point
// addition/doubling/negation, on-curve testing, scalar multiplication, and
// the modular arithmetic underlying both F_p point coordinates and Z/nZ
// scalar witnesses.
package ec

import (
	cryptorand "crypto/rand"
	"errors"
	"math/big"
)

var (
	// ErrNoInverse is returned when a value has no modular inverse, i.e.
	// it shares a nontrivial factor with the modulus (or is zero).
	ErrNoInverse = errors.New("ec: no modular inverse")
	// ErrSingularCurve is returned by NewCurve when 4A^3+27B^2 ≡ 0 mod P.
	ErrSingularCurve = errors.New("ec: singular curve (discriminant is zero)")
	// ErrNonResidue is returned by SqrtModP when the argument has no square root.
	ErrNonResidue = errors.New("ec: non-residue, no square root")
)

// Modulus wraps a prime modulus and provides the arithmetic both F_p point
// coordinates and Z/nZ scalar witnesses need: add, sub, mul, negate, invert.
// Two instances of it (one for P, one for the curve order N) are all the
// "Big-int"/"F_p"/"Z/nZ" rows of the external interface need.
type Modulus struct{ N *big.Int }

// NewModulus returns a Modulus over n.
func NewModulus(n *big.Int) Modulus { return Modulus{N: n} }

// Reduce returns a mod m.N, normalised into [0, m.N).
func (m Modulus) Reduce(a *big.Int) *big.Int {
	z := new(big.Int).Mod(a, m.N)
	if z.Sign() < 0 {
		z.Add(z, m.N)
	}
	return z
}

// Add returns (a+b) mod m.N.
func (m Modulus) Add(a, b *big.Int) *big.Int { return m.Reduce(new(big.Int).Add(a, b)) }

// Sub returns (a-b) mod m.N.
func (m Modulus) Sub(a, b *big.Int) *big.Int { return m.Reduce(new(big.Int).Sub(a, b)) }

// Mul returns (a*b) mod m.N.
func (m Modulus) Mul(a, b *big.Int) *big.Int { return m.Reduce(new(big.Int).Mul(a, b)) }

// Neg returns (-a) mod m.N.
func (m Modulus) Neg(a *big.Int) *big.Int { return m.Sub(new(big.Int), a) }

// Inv returns the modular inverse of a. N is assumed prime, so every
// nonzero a has one.
func (m Modulus) Inv(a *big.Int) (*big.Int, error) {
	if a.Sign() == 0 {
		return nil, ErrNoInverse
	}
	inv := new(big.Int).ModInverse(a, m.N)
	if inv == nil {
		return nil, ErrNoInverse
	}
	return inv, nil
}

// Exp returns a^e mod m.N.
func (m Modulus) Exp(a, e *big.Int) *big.Int { return new(big.Int).Exp(a, e, m.N) }

// Rand returns a uniform sample in [0, m.N) read from crypto/rand.
func (m Modulus) Rand() (*big.Int, error) {
	return cryptorand.Int(cryptorand.Reader, m.N)
}

// Curve is a short-Weierstrass curve y^2 = x^3 + Ax + B over F_P.
type Curve struct {
	P, A, B *big.Int
	fp      Modulus
}

// NewCurve validates and builds a Curve. P must be an odd prime > 3.
func NewCurve(p, a, b *big.Int) (Curve, error) {
	fp := NewModulus(p)
	c := Curve{P: p, A: fp.Reduce(a), B: fp.Reduce(b), fp: fp}
	if c.isSingular() {
		return Curve{}, ErrSingularCurve
	}
	return c, nil
}

func (c Curve) isSingular() bool {
	a2 := c.fp.Mul(c.A, c.A)
	a3 := c.fp.Mul(a2, c.A)
	term := c.fp.Add(c.fp.Mul(big.NewInt(4), a3), c.fp.Mul(big.NewInt(27), c.fp.Mul(c.B, c.B)))
	return term.Sign() == 0
}

// Point is an affine point; Inf marks the identity O.
type Point struct {
	X, Y *big.Int
	Inf  bool
}

// Identity returns O.
func Identity() Point { return Point{Inf: true} }

// Equal reports whether p and q are the same point.
func (c Curve) Equal(p, q Point) bool {
	if p.Inf || q.Inf {
		return p.Inf == q.Inf
	}
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// OnCurve reports whether p satisfies the curve equation (O always does).
func (c Curve) OnCurve(p Point) bool {
	if p.Inf {
		return true
	}
	x3 := c.fp.Mul(p.X, c.fp.Mul(p.X, p.X))
	rhs := c.fp.Add(c.fp.Add(x3, c.fp.Mul(c.A, p.X)), c.B)
	y2 := c.fp.Mul(p.Y, p.Y)
	return y2.Cmp(rhs) == 0
}

// Negate returns -p = (x, -y).
func (c Curve) Negate(p Point) Point {
	if p.Inf {
		return p
	}
	return Point{X: new(big.Int).Set(p.X), Y: c.fp.Neg(p.Y)}
}

// Add computes p+q in affine coordinates, handling identity, the
// equal-x/opposite-y case (result is O), and doubling (p == q).
func (c Curve) Add(p, q Point) (Point, error) {
	if p.Inf {
		return q, nil
	}
	if q.Inf {
		return p, nil
	}
	if p.X.Cmp(q.X) == 0 {
		ySum := c.fp.Add(p.Y, q.Y)
		if ySum.Sign() == 0 {
			return Identity(), nil
		}
		return c.Double(p)
	}
	num := c.fp.Sub(q.Y, p.Y)
	den := c.fp.Sub(q.X, p.X)
	inv, err := c.fp.Inv(den)
	if err != nil {
		return Point{}, err
	}
	lambda := c.fp.Mul(num, inv)
	return c.fromLambda(lambda, p, q), nil
}

// Double computes 2p, handling the order-2 case (vertical tangent, p.Y == 0).
func (c Curve) Double(p Point) (Point, error) {
	if p.Inf {
		return p, nil
	}
	if p.Y.Sign() == 0 {
		return Identity(), nil
	}
	num := c.fp.Add(c.fp.Mul(big.NewInt(3), c.fp.Mul(p.X, p.X)), c.A)
	den := c.fp.Mul(big.NewInt(2), p.Y)
	inv, err := c.fp.Inv(den)
	if err != nil {
		return Point{}, err
	}
	lambda := c.fp.Mul(num, inv)
	return c.fromLambda(lambda, p, p), nil
}

func (c Curve) fromLambda(lambda *big.Int, p, q Point) Point {
	xr := c.fp.Sub(c.fp.Sub(c.fp.Mul(lambda, lambda), p.X), q.X)
	yr := c.fp.Sub(c.fp.Mul(lambda, c.fp.Sub(p.X, xr)), p.Y)
	return Point{X: xr, Y: yr}
}

// ScalarMult computes k*p via right-to-left (least significant bit first)
// double-and-add. Used for triple generation, ingress validation and final
// verification, never in the per-step additive walk.
func (c Curve) ScalarMult(p Point, k *big.Int) (Point, error) {
	if k.Sign() == 0 || p.Inf {
		return Identity(), nil
	}
	result := Identity()
	addend := p
	kk := new(big.Int).Abs(k)
	for i := 0; i < kk.BitLen(); i++ {
		if kk.Bit(i) == 1 {
			var err error
			result, err = c.Add(result, addend)
			if err != nil {
				return Point{}, err
			}
		}
		var err error
		addend, err = c.Double(addend)
		if err != nil {
			return Point{}, err
		}
	}
	if k.Sign() < 0 {
		result = c.Negate(result)
	}
	return result, nil
}
