// Package spatial provides the two-kd-tree index over catalog stars and
// their geometric quads.
package spatial

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Tree is a balanced, read-only kd-tree over fixed-dimension coordinates
// of type F, carrying an arbitrary payload P at each node. It is built
// once via NewTree (ordered-float bulk-load, median-split) and never
// mutated afterward.
type Tree[F constraints.Float, P any] struct {
	root *node[F, P]
	dims int
}

type node[F constraints.Float, P any] struct {
	coords      []F
	payload     P
	left, right *node[F, P]
}

type entry[F constraints.Float, P any] struct {
	coords  []F
	payload P
}

// NewTree bulk-loads a kd-tree from parallel coords/payloads slices.
// Every coords[i] must share the same dimensionality. Construction always
// picks the median along the axis cycling with tree depth, producing a
// balanced tree with no incremental insertion.
func NewTree[F constraints.Float, P any](coords [][]F, payloads []P) *Tree[F, P] {
	dims := 0
	if len(coords) > 0 {
		dims = len(coords[0])
	}
	entries := make([]entry[F, P], len(coords))
	for i := range coords {
		entries[i] = entry[F, P]{coords: coords[i], payload: payloads[i]}
	}
	return &Tree[F, P]{root: build(entries, 0, dims), dims: dims}
}

func build[F constraints.Float, P any](entries []entry[F, P], depth, dims int) *node[F, P] {
	if len(entries) == 0 {
		return nil
	}
	axis := depth % dims
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].coords[axis] < entries[j].coords[axis]
	})
	mid := len(entries) / 2
	n := &node[F, P]{coords: entries[mid].coords, payload: entries[mid].payload}
	n.left = build(entries[:mid], depth+1, dims)
	n.right = build(entries[mid+1:], depth+1, dims)
	return n
}

// Len reports the number of points stored in the tree.
func (t *Tree[F, P]) Len() int {
	if t == nil {
		return 0
	}
	return countNodes(t.root)
}

func countNodes[F constraints.Float, P any](n *node[F, P]) int {
	if n == nil {
		return 0
	}
	return 1 + countNodes(n.left) + countNodes(n.right)
}

// All returns every (coords, payload) pair stored in the tree, in no
// particular order.
func (t *Tree[F, P]) All() (coords [][]F, payloads []P) {
	if t == nil {
		return nil, nil
	}
	var walk func(n *node[F, P])
	walk = func(n *node[F, P]) {
		if n == nil {
			return
		}
		coords = append(coords, n.coords)
		payloads = append(payloads, n.payload)
		walk(n.left)
		walk(n.right)
	}
	walk(t.root)
	return coords, payloads
}

func sqDist[F constraints.Float](a, b []F) F {
	var sum F
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

type neighbor[F constraints.Float, P any] struct {
	payload P
	distSq  F
}

// NearestK returns up to k payloads nearest to target by Euclidean
// distance, nearest first.
func (t *Tree[F, P]) NearestK(target []F, k int) []P {
	if t == nil || t.root == nil || k <= 0 {
		return nil
	}

	var best []neighbor[F, P]

	var walk func(n *node[F, P], depth int)
	walk = func(n *node[F, P], depth int) {
		if n == nil {
			return
		}
		d := sqDist(n.coords, target)
		best = insertBounded(best, neighbor[F, P]{payload: n.payload, distSq: d}, k)

		axis := depth % t.dims
		diff := target[axis] - n.coords[axis]

		near, far := n.left, n.right
		if diff >= 0 {
			near, far = n.right, n.left
		}

		walk(near, depth+1)
		if len(best) < k || diff*diff < best[len(best)-1].distSq {
			walk(far, depth+1)
		}
	}
	walk(t.root, 0)

	out := make([]P, len(best))
	for i, b := range best {
		out[i] = b.payload
	}
	return out
}

func insertBounded[F constraints.Float, P any](best []neighbor[F, P], n neighbor[F, P], k int) []neighbor[F, P] {
	i := sort.Search(len(best), func(i int) bool { return best[i].distSq > n.distSq })
	best = append(best, neighbor[F, P]{})
	copy(best[i+1:], best[i:])
	best[i] = n
	if len(best) > k {
		best = best[:k]
	}
	return best
}

// Within returns every payload within radius r of target, by Euclidean
// distance. No ordering over the result is promised.
func (t *Tree[F, P]) Within(target []F, r F) []P {
	if t == nil || t.root == nil {
		return nil
	}
	rSq := r * r

	var out []P
	var walk func(n *node[F, P], depth int)
	walk = func(n *node[F, P], depth int) {
		if n == nil {
			return
		}
		if sqDist(n.coords, target) <= rSq {
			out = append(out, n.payload)
		}
		axis := depth % t.dims
		diff := target[axis] - n.coords[axis]
		if diff <= 0 {
			walk(n.left, depth+1)
			if diff*diff <= rSq {
				walk(n.right, depth+1)
			}
		} else {
			walk(n.right, depth+1)
			if diff*diff <= rSq {
				walk(n.left, depth+1)
			}
		}
	}
	walk(t.root, 0)
	return out
}
