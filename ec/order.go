package ec

// Compare defines a total order over curve points, used by the collision
// dictionary and by loop-detection equality checks: the identity is
// strictly less than every finite point; among finite points, ordering is
// by X then by Y as big integers.
func Compare(p, q Point) int {
	if p.Inf != q.Inf {
		if p.Inf {
			return -1
		}
		return 1
	}
	if p.Inf {
		return 0
	}
	if cx := p.X.Cmp(q.X); cx != 0 {
		return cx
	}
	return p.Y.Cmp(q.Y)
}
