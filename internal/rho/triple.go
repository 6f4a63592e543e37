package rho

import (
	"math/big"

	"ecrho/ec"
)

// Triple is the fundamental value object of the walk: a curve point R
// together with an algebraic witness (a, b) such that R = a*P + b*Q.
type Triple struct {
	R    ec.Point
	A, B *big.Int
}

// group bundles the shared, read-only-after-init context every triple
// operation needs: the curve, its order, and the base points.
type group struct {
	curve ec.Curve
	fn    ec.Modulus // arithmetic mod n (curve order)
	p, q  ec.Point
}

// generate samples a, b uniformly in [0, n) and sets R = a*P + b*Q.
// Negation-map canonicalisation, if enabled, is applied by the caller
// (the walk loop or branch table setup).
func (g group) generate() (Triple, error) {
	a, err := g.fn.Rand()
	if err != nil {
		return Triple{}, err
	}
	b, err := g.fn.Rand()
	if err != nil {
		return Triple{}, err
	}
	return g.fromWitness(a, b)
}

func (g group) fromWitness(a, b *big.Int) (Triple, error) {
	aP, err := g.curve.ScalarMult(g.p, a)
	if err != nil {
		return Triple{}, err
	}
	bQ, err := g.curve.ScalarMult(g.q, b)
	if err != nil {
		return Triple{}, err
	}
	r, err := g.curve.Add(aP, bQ)
	if err != nil {
		return Triple{}, err
	}
	return Triple{R: r, A: a, B: b}, nil
}

// copyTriple returns a deep copy of t: Triple holds *big.Int pointers, so
// a plain struct assignment would alias them across walks, violating the
// single-owner-per-triple discipline each goroutine depends on.
func copyTriple(t Triple) Triple {
	return Triple{
		R: ec.Point{X: cloneBig(t.R.X), Y: cloneBig(t.R.Y), Inf: t.R.Inf},
		A: cloneBig(t.A),
		B: cloneBig(t.B),
	}
}

func cloneBig(z *big.Int) *big.Int {
	if z == nil {
		return nil
	}
	return new(big.Int).Set(z)
}

// compare orders two triples by their point R only; a and b are ignored.
func compare(l, r Triple) int { return ec.Compare(l.R, r.R) }

// double returns (2R, 2a mod n, 2b mod n).
func (g group) double(t Triple) (Triple, error) {
	r, err := g.curve.Double(t.R)
	if err != nil {
		return Triple{}, err
	}
	return Triple{R: r, A: g.fn.Add(t.A, t.A), B: g.fn.Add(t.B, t.B)}, nil
}

// add returns x+y component-wise: R=x.R+y.R, a=x.a+y.a mod n, b=x.b+y.b
// mod n. Safe to alias (callers may pass x or y as the eventual receiver
// since all intermediate big.Int results are freshly allocated before
// being assigned).
func (g group) add(x, y Triple) (Triple, error) {
	r, err := g.curve.Add(x.R, y.R)
	if err != nil {
		return Triple{}, err
	}
	return Triple{R: r, A: g.fn.Add(x.A, y.A), B: g.fn.Add(x.B, y.B)}, nil
}

// isValid returns true iff R is on the curve and a*P + b*Q == R. Too
// expensive for the inner loop (two scalar multiplications); used by the
// coordinator on ingress only.
func (g group) isValid(t Triple) bool {
	if !g.curve.OnCurve(t.R) {
		return false
	}
	check, err := g.fromWitness(t.A, t.B)
	if err != nil {
		return false
	}
	return g.curve.Equal(check.R, t.R)
}

// negationMap canonicalises t to the representative with the
// lexicographically smaller y, negating (a, b) mod n when it flips.
// Reports whether it was applied.
func (g group) negationMap(t Triple) (Triple, bool) {
	if t.R.Inf {
		return t, false
	}
	negY := g.curve.Negate(t.R).Y
	if negY.Cmp(t.R.Y) < 0 {
		return Triple{
			R: ec.Point{X: t.R.X, Y: negY},
			A: g.fn.Neg(t.A),
			B: g.fn.Neg(t.B),
		}, true
	}
	return t, false
}
