package rho

// numBranches is the size of the branch table: a fixed power of two so
// the selector h(R) can be computed with a mask.
const numBranches = 128

// branchTable holds the precomputed random triples used as additive
// perturbations in the iteration function. Built once at solver init and
// never mutated afterwards — read-only for the lifetime of the worker
// pool, so no lock is needed around it.
type branchTable [numBranches]Triple

func buildBranchTable(g group, useNegationMap bool) (branchTable, error) {
	var bt branchTable
	for j := range bt {
		t, err := g.generate()
		if err != nil {
			return bt, err
		}
		if useNegationMap {
			t, _ = g.negationMap(t)
		}
		bt[j] = t
	}
	return bt, nil
}

// selector computes h(R): the least-significant machine word of R's
// x-coordinate masked to the branch-table size. This is a weak
// distribution source for small curves where X fits in one limb, but is
// kept as the canonical selector for consistency across curve sizes.
func selector(t Triple) int {
	if t.R.Inf {
		return 0
	}
	limb0 := t.R.X.Uint64()
	return int(limb0 & uint64(numBranches-1))
}

// addBranch advances t by one step of the additive walk: pick the branch
// by h(R), add it. Returns the new triple and the chosen branch index j.
func (g group) addBranch(t Triple, bt branchTable) (Triple, int, error) {
	j := selector(t)
	next, err := g.add(t, bt[j])
	if err != nil {
		return Triple{}, 0, err
	}
	return next, j, nil
}

// addBranchIndex advances t by a specific branch index, used by the
// loop-detection escape rotation.
func (g group) addBranchIndex(t Triple, bt branchTable, idx int) (Triple, error) {
	return g.add(t, bt[idx%numBranches])
}
