// Package quad builds the rotation/translation/scale-invariant four-point
// geometric fingerprint used to match star patterns between a catalog and
// an observed image.
package quad

import "math"

// Point is a 2-D coordinate in the plane a quad hash is computed over.
type Point struct {
	X, Y float64
}

func sub(a, b Point) Point { return Point{a.X - b.X, a.Y - b.Y} }
func dist(a, b Point) float64 {
	d := sub(a, b)
	return math.Hypot(d.X, d.Y)
}

// GHash is the four-number fingerprint [C.x, C.y, D.x, D.y] in the
// AB-aligned basis described by ComputeGhash.
type GHash [4]float64

// Quad is a four-star geometric fingerprint: the canonical [A,B,C,D]
// arrangement of stars alongside the resulting GHash.
type Quad[S any] struct {
	Stars [4]S
	GHash GHash
	Meta  any
}

// New builds a Quad from four (point, star) pairs. ok is false when the
// four points admit no canonical arrangement (ComputeGhash fails).
func New[S any](points [4]Point, stars [4]S, meta any) (Quad[S], bool) {
	hash, arrangement, ok := ComputeGhash(points)
	if !ok {
		return Quad[S]{}, false
	}
	return Quad[S]{
		Stars: [4]S{
			stars[arrangement[0]],
			stars[arrangement[1]],
			stars[arrangement[2]],
			stars[arrangement[3]],
		},
		GHash: hash,
		Meta:  meta,
	}, true
}

// ComputeGhash picks the canonical [A,B,C,D] arrangement of four points —
// A,B the maximum-distance pair, C,D the remainder, mapped into a basis
// where A is the origin and B is (1,1) — and returns the resulting
// fingerprint along with the index arrangement into the input array.
//
// ok is false when C or D falls outside the disk with diameter AB, or
// when all four points are collinear; no canonical quad exists for such
// inputs.
func ComputeGhash(points [4]Point) (hash GHash, arrangement [4]int, ok bool) {
	aIdx, bIdx := 0, 1
	maxDist := dist(points[0], points[1])
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			d := dist(points[i], points[j])
			if d > maxDist {
				maxDist = d
				aIdx, bIdx = i, j
			}
		}
	}

	cIdx := 0
	for cIdx == aIdx || cIdx == bIdx {
		cIdx++
	}
	dIdx := 0
	for dIdx == aIdx || dIdx == bIdx || dIdx == cIdx {
		dIdx++
	}

	a := points[aIdx]
	b := sub(points[bIdx], a)
	c := sub(points[cIdx], a)
	d := sub(points[dIdx], a)

	const r = math.Sqrt2 / 2

	// Rotate b by -45 degrees and scale by 1/sqrt(2) for the basis x-axis;
	// the y-axis is the x-axis rotated +90 degrees. Under this basis A is
	// the origin and B maps to (1,1).
	xaxis := Point{
		X: (r*b.X + r*b.Y) / math.Sqrt2,
		Y: (-r*b.X + r*b.Y) / math.Sqrt2,
	}
	yaxis := Point{X: -xaxis.Y, Y: xaxis.X}

	det := xaxis.X*yaxis.Y - yaxis.X*xaxis.Y
	toBasis := func(p Point) Point {
		return Point{
			X: (yaxis.Y*p.X - yaxis.X*p.Y) / det,
			Y: (xaxis.X*p.Y - p.X*xaxis.Y) / det,
		}
	}
	cb := toBasis(c)
	db := toBasis(d)

	// Invariant 2: C and D must lie within the AB-disk.
	mid := Point{0.5, 0.5}
	if dist(cb, mid) > r || dist(db, mid) > r {
		return GHash{}, [4]int{}, false
	}

	// Four collinear points put C and D on the line AB (y == x in this
	// basis), inside the disk but with no canonical arrangement.
	const collinearTol = 1e-9
	if math.Abs(cb.Y-cb.X) < collinearTol && math.Abs(db.Y-db.X) < collinearTol {
		return GHash{}, [4]int{}, false
	}

	// Invariant 3: half-plane. Swap A,B (equivalently reflect) if violated.
	if cb.X+db.X > 1.0 {
		cb = Point{1 - cb.X, 1 - cb.Y}
		db = Point{1 - db.X, 1 - db.Y}
		aIdx, bIdx = bIdx, aIdx
	}

	// Invariant 4: ordering.
	if cb.X > db.X {
		cb, db = db, cb
		cIdx, dIdx = dIdx, cIdx
	}

	return GHash{cb.X, cb.Y, db.X, db.Y}, [4]int{aIdx, bIdx, cIdx, dIdx}, true
}
