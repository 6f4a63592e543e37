package rho

import "ecrho/ec"

// rbColor is a red-black tree node color.
type rbColor bool

const (
	red   rbColor = true
	black rbColor = false
)

type rbNode struct {
	triple              Triple
	color               rbColor
	left, right, parent *rbNode
}

func isRed(n *rbNode) bool { return n != nil && n.color == red }

// dictionary is the coordinator's collision index: an ordered map from
// point R to Triple under a total order over curve points, implemented
// as a red-black tree for O(log N) search/insert. Owned solely by the
// coordinator goroutine, so it carries no lock of its own — a single
// writer never needs to synchronize with itself.
type dictionary struct {
	root *rbNode
	size int
}

// lookup returns the triple keyed by r, if present.
func (d *dictionary) lookup(r ec.Point) (Triple, bool) {
	n := d.root
	for n != nil {
		switch c := ec.Compare(r, n.triple.R); {
		case c == 0:
			return n.triple, true
		case c < 0:
			n = n.left
		default:
			n = n.right
		}
	}
	return Triple{}, false
}

// insert adds t keyed by t.R. The coordinator must have already rejected
// identity/invalid triples and checked for an existing key via lookup;
// insert is a no-op if the key is already present.
func (d *dictionary) insert(t Triple) {
	var parent *rbNode
	n := d.root
	for n != nil {
		parent = n
		c := ec.Compare(t.R, n.triple.R)
		switch {
		case c == 0:
			return
		case c < 0:
			n = n.left
		default:
			n = n.right
		}
	}

	node := &rbNode{triple: t, color: red, parent: parent}
	switch {
	case parent == nil:
		d.root = node
	case ec.Compare(t.R, parent.triple.R) < 0:
		parent.left = node
	default:
		parent.right = node
	}
	d.size++
	d.insertFixup(node)
}

func (d *dictionary) rotateLeft(x *rbNode) {
	y := x.right
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	y.parent = x.parent
	switch {
	case x.parent == nil:
		d.root = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

func (d *dictionary) rotateRight(x *rbNode) {
	y := x.left
	x.left = y.right
	if y.right != nil {
		y.right.parent = x
	}
	y.parent = x.parent
	switch {
	case x.parent == nil:
		d.root = y
	case x == x.parent.right:
		x.parent.right = y
	default:
		x.parent.left = y
	}
	y.right = x
	x.parent = y
}

// insertFixup restores red-black invariants after a red-leaf insert
// (standard CLRS algorithm).
func (d *dictionary) insertFixup(z *rbNode) {
	for z.parent != nil && isRed(z.parent) {
		gp := z.parent.parent
		if gp == nil {
			break
		}
		if z.parent == gp.left {
			uncle := gp.right
			if isRed(uncle) {
				z.parent.color = black
				uncle.color = black
				gp.color = red
				z = gp
				continue
			}
			if z == z.parent.right {
				z = z.parent
				d.rotateLeft(z)
			}
			z.parent.color = black
			gp.color = red
			d.rotateRight(gp)
		} else {
			uncle := gp.left
			if isRed(uncle) {
				z.parent.color = black
				uncle.color = black
				gp.color = red
				z = gp
				continue
			}
			if z == z.parent.left {
				z = z.parent
				d.rotateRight(z)
			}
			z.parent.color = black
			gp.color = red
			d.rotateLeft(gp)
		}
	}
	d.root.color = black
}

// forEach visits every entry in ascending key order.
func (d *dictionary) forEach(f func(Triple)) {
	var visit func(n *rbNode)
	visit = func(n *rbNode) {
		if n == nil {
			return
		}
		visit(n.left)
		f(n.triple)
		visit(n.right)
	}
	visit(d.root)
}
