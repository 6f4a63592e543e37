package rho

import (
	"log"
	"math/big"
)

// coordinator is the sole consumer of the distinguished-point queue and
// the sole owner of the collision dictionary: every mutation happens on
// one goroutine, so neither needs a lock of its own.
type coordinator struct {
	g        group
	queue    *distinguishedQueue
	dict     dictionary
	counts   *counters
	seen     int64
	discards int64
}

// run drains the queue until a genuine collision yields the discrete log,
// then reports it on result and closes done so every worker can stop.
func (c *coordinator) run(result chan<- *big.Int, done chan struct{}) {
	for {
		t := c.queue.pop()
		c.seen++

		switch {
		case t.R.Inf:
			log.Printf("rho: discarding identity point off the queue")
			c.discards++
			continue
		case !c.g.curve.OnCurve(t.R):
			log.Printf("rho: discarding off-curve point off the queue")
			c.discards++
			continue
		case !c.g.isValid(t):
			log.Printf("rho: discarding triple with invalid witness (a*P+b*Q != R)")
			c.discards++
			continue
		}

		existing, found := c.dict.lookup(t.R)
		if !found {
			c.dict.insert(t)
			continue
		}

		k, ok := solveCollision(c.g, existing, t)
		if !ok {
			log.Printf("rho: discarding degenerate collision (delta-b = 0)")
			c.discards++
			continue
		}

		select {
		case result <- k:
		default:
		}
		close(done)
		return
	}
}

// solveCollision takes two triples known to share the same point R and
// recovers k such that Q = k*P, using x.a + x.b*k = y.a + y.b*k (mod n),
// i.e. k = (x.a - y.a) * (y.b - x.b)^-1 mod n. Fails only if y.b == x.b,
// in which case the pair carries no information about k (the collision
// is degenerate and is discarded by the caller).
func solveCollision(g group, x, y Triple) (*big.Int, bool) {
	db := g.fn.Sub(y.B, x.B)
	if db.Sign() == 0 {
		return nil, false
	}
	dbInv, err := g.fn.Inv(db)
	if err != nil {
		return nil, false
	}
	da := g.fn.Sub(x.A, y.A)
	k := g.fn.Mul(da, dbInv)
	return k, true
}
