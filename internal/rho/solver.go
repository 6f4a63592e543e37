package rho

import (
	"math/big"
	"sync"

	"ecrho/ec"
)

// Options configures a Solve run.
type Options struct {
	// Workers is the number of concurrent random-walk goroutines. Defaults
	// to 8 if zero or negative.
	Workers int

	// UseNegationMap enables (x,y)~(x,-y) canonicalisation, halving the
	// expected number of steps to a collision at the cost of occasional
	// 2-cycle escapes.
	UseNegationMap bool

	// DistinguishBits overrides the number of required leading zero bits
	// a point's x-coordinate must have to be reported as distinguished.
	// Zero selects the default of bitLen(n)/4, or 1 if that is zero.
	DistinguishBits int
}

// DefaultOptions returns the standard configuration: 8 workers with the
// negation map enabled. Solve fills in only Workers on its own, so a
// zero-value Options runs without the negation map.
func DefaultOptions() Options {
	return Options{Workers: 8, UseNegationMap: true}
}

// Solve recovers k such that Q = k*P on curve, given that P has order n,
// using the parallel Pollard's rho method with distinguished points.
func Solve(curve ec.Curve, n *big.Int, p, q ec.Point, opts Options) (*big.Int, Stats, error) {
	if opts.Workers <= 0 {
		opts.Workers = DefaultOptions().Workers
	}
	if q.Inf {
		return nil, Stats{}, ErrBadPrecondition
	}

	g := group{curve: curve, fn: ec.NewModulus(n), p: p, q: q}

	primeBits := curve.P.BitLen()
	distinguishBits := opts.DistinguishBits
	if distinguishBits == 0 {
		distinguishBits = n.BitLen() / 4
		if distinguishBits == 0 {
			distinguishBits = 1
		}
	}

	bt, err := buildBranchTable(g, opts.UseNegationMap)
	if err != nil {
		return nil, Stats{}, ErrFatalInit
	}

	queue := &distinguishedQueue{}
	counts := &counters{}
	done := make(chan struct{})
	result := make(chan *big.Int, 1)

	co := &coordinator{g: g, queue: queue, counts: counts}
	go co.run(result, done)

	var wg sync.WaitGroup
	for i := 0; i < opts.Workers; i++ {
		initial, err := g.generate()
		if err != nil {
			close(done)
			wg.Wait()
			return nil, Stats{}, ErrFatalInit
		}
		if opts.UseNegationMap {
			initial, _ = g.negationMap(initial)
		}

		w := &walker{
			g:               g,
			bt:              bt,
			queue:           queue,
			counts:          counts,
			done:            done,
			useNegationMap:  opts.UseNegationMap,
			distinguishBits: distinguishBits,
			primeBits:       primeBits,
		}
		wg.Add(1)
		go func(initial Triple) {
			defer wg.Done()
			w.run(initial)
		}(initial)
	}

	k := <-result
	wg.Wait()

	check, err := curve.ScalarMult(p, k)
	if err != nil || !curve.Equal(check, q) {
		return nil, Stats{}, ErrVerificationFailed
	}

	hist, max := counts.loops.snapshot()
	stats := Stats{
		Iterations:          counts.totalIterations(),
		DistinguishedPoints: int64(co.dict.size),
		Discards:            co.discards,
		LoopHistogram:       hist,
		MaxLoopDistance:     max,
	}
	return k, stats, nil
}
