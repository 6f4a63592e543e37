package rho

import "log"

// flushEvery is the local-iteration batch size a worker accumulates
// before flushing into the shared counter.
const flushEvery = 10000

// walker is a per-worker stateful iterator: it owns its current triple,
// its loop-detection buffer, and a batch of unflushed local iterations.
// No field here is ever touched by any other goroutine.
type walker struct {
	g               group
	bt              branchTable
	queue           *distinguishedQueue
	counts          *counters
	done            <-chan struct{}
	useNegationMap  bool
	distinguishBits int
	primeBits       int
}

// run is the worker's main loop: on each outer iteration, detect and
// escape any short cycle at the current triple, emit it if distinguished,
// advance by one branch step, canonicalise, and repeat until done fires.
func (w *walker) run(initial Triple) {
	t := initial
	var lb loopBuffer
	var local int64

	for {
		select {
		case <-w.done:
			if local > 0 {
				w.counts.addIterations(local)
			}
			return
		default:
		}

		extra := w.detectAndEscape(&t, &lb)
		local += int64(1 + extra)
		w.sendIfDistinguished(t)

		next, _, err := w.g.addBranch(t, w.bt)
		if err != nil {
			next, err = w.g.generate()
			if err != nil {
				continue // degrade: retry next outer iteration
			}
		}
		if w.useNegationMap {
			next, _ = w.g.negationMap(next)
		}
		t = next

		if local >= flushEvery {
			w.counts.addIterations(local)
			local = 0
		}
	}
}

// isDistinguished reports whether t.R's x-coordinate has at least D
// leading zero bits over a field element of width ⌈log2 p⌉. The identity
// is never distinguished; it is rejected on ingress by the coordinator
// regardless.
func (w *walker) isDistinguished(t Triple) bool {
	if t.R.Inf {
		return false
	}
	msb := t.R.X.BitLen() - 1
	return msb < w.primeBits-w.distinguishBits
}

func (w *walker) sendIfDistinguished(t Triple) {
	if w.isDistinguished(t) {
		w.queue.push(t, w.done)
	}
}

// detectAndEscape scans the loop buffer for a point repeat, classifies
// and reports it, and escapes by rotating to a fresh branch, bounded at
// loopSize attempts before forcing a full regeneration rather than
// risking an unbounded chase against an adversarial coincidence.
// Returns the number of extra steps the escape chain consumed; the
// caller still counts its own step on top of this.
func (w *walker) detectAndEscape(t *Triple, lb *loopBuffer) int {
	extra := 0
	for attempt := 0; attempt < loopSize; attempt++ {
		matched, i, found := lb.scan(*t)
		lb.push(*t)
		if !found {
			return extra
		}

		w.classifyMatch(*t, matched)
		w.counts.loops.record(i)

		j := selector(*t)
		var next Triple
		var err error
		if (i+1)%numBranches == 0 {
			next, err = w.g.generate()
		} else {
			next, err = w.g.addBranchIndex(*t, w.bt, (j+i+1)%numBranches)
		}
		if err != nil {
			if next, err = w.g.generate(); err != nil {
				return extra
			}
		}
		if w.useNegationMap {
			next, _ = w.g.negationMap(next)
		}
		w.sendIfDistinguished(next)
		*t = next
		extra++
	}

	// Bounded escape attempts exhausted: force a full regeneration
	// rather than looping forever against an adversarial coincidence.
	if fresh, err := w.g.generate(); err == nil {
		if w.useNegationMap {
			fresh, _ = w.g.negationMap(fresh)
		}
		*t = fresh
	}
	return extra
}

// classifyMatch distinguishes three cases once a repeat is found in the
// loop buffer: matching a (own-orbit re-entry, silent; b is not compared),
// only b matching (a degenerate re-entry, logged but otherwise ignored),
// or neither matching (a genuine algebraic collision within this single
// walk — both triples are forwarded to the coordinator, which resolves
// it with the same delta-a/delta-b/inverse logic used for cross-walk
// collisions).
func (w *walker) classifyMatch(current, matched Triple) {
	if matched.A.Cmp(current.A) == 0 {
		return
	}
	if matched.B.Cmp(current.B) != 0 {
		log.Printf("rho: loop falsely detected inside one walk; forwarding both triples")
		w.queue.push(matched, w.done)
		w.queue.push(current, w.done)
		return
	}
	log.Printf("rho: loop falsely detected (degenerate re-entry, only b matches)")
}
