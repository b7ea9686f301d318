package spatial

import (
	"encoding/gob"
	"io"

	"github.com/platesolve/starindex/quad"
	"github.com/platesolve/starindex/usnob"
)

// Index is the built, immutable spatial index over a catalog partition:
// a position tree over [ra,dec] and a separate tree over quad ghashes.
// Nside records the healpix-style partition resolution the index was
// built for, carried along for the caller's bookkeeping.
type Index struct {
	Nside uint32

	positionTree *Tree[float64, *usnob.Star]
	quadTree     *Tree[float64, quad.Quad[*usnob.Star]]

	starCount int
	quadCount int
}

// payload is the on-disk, gob-friendly representation of an Index. The
// kd-trees themselves hold unexported node pointers and are never
// encoded directly; instead Save/Load round-trip the flat coordinate and
// payload lists and rebuild the trees deterministically on Load.
type payload struct {
	Nside uint32

	StarPositions [][2]float64
	Stars         []*usnob.Star

	QuadGHashes [][4]float64
	Quads       []quad.Quad[*usnob.Star]
}

// Build constructs an Index from a catalog's stars and their precomputed
// quads. The result is immutable; there is no incremental update.
func Build(nside uint32, stars []*usnob.Star, quads []quad.Quad[*usnob.Star]) *Index {
	posCoords := make([][]float64, len(stars))
	for i, s := range stars {
		posCoords[i] = []float64{s.RA, s.Dec}
	}

	ghCoords := make([][]float64, len(quads))
	for i, q := range quads {
		ghCoords[i] = []float64{q.GHash[0], q.GHash[1], q.GHash[2], q.GHash[3]}
	}

	return &Index{
		Nside:        nside,
		positionTree: NewTree(posCoords, stars),
		quadTree:     NewTree(ghCoords, quads),
		starCount:    len(stars),
		quadCount:    len(quads),
	}
}

// StarCount reports how many stars were indexed.
func (idx *Index) StarCount() int { return idx.starCount }

// QuadCount reports how many quads were indexed.
func (idx *Index) QuadCount() int { return idx.quadCount }

// NearestStars returns the k stars nearest to (ra, dec), nearest first.
func (idx *Index) NearestStars(ra, dec float64, k int) []*usnob.Star {
	return idx.positionTree.NearestK([]float64{ra, dec}, k)
}

// StarsWithin returns every indexed star within radius r (in the same
// units as ra/dec) of (ra, dec).
func (idx *Index) StarsWithin(ra, dec, r float64) []*usnob.Star {
	return idx.positionTree.Within([]float64{ra, dec}, r)
}

// NearestQuads returns the k quads whose ghash is nearest to target,
// nearest first.
func (idx *Index) NearestQuads(target quad.GHash, k int) []quad.Quad[*usnob.Star] {
	return idx.quadTree.NearestK(target[:], k)
}

// QuadsWithin returns every indexed quad whose ghash lies within radius r
// of target in ghash space.
func (idx *Index) QuadsWithin(target quad.GHash, r float64) []quad.Quad[*usnob.Star] {
	return idx.quadTree.Within(target[:], r)
}

// Save writes the index as a single self-describing gob blob. Load
// reconstructs an Index that round-trips bit-identically: the same
// stars, quads, and (since tree construction is a deterministic
// median-split) the same tree shape.
func (idx *Index) Save(w io.Writer) error {
	p := payload{
		Nside:         idx.Nside,
		StarPositions: make([][2]float64, idx.starCount),
		Stars:         make([]*usnob.Star, idx.starCount),
		QuadGHashes:   make([][4]float64, idx.quadCount),
		Quads:         make([]quad.Quad[*usnob.Star], idx.quadCount),
	}

	_, stars := idx.positionTree.All()
	for i, s := range stars {
		p.Stars[i] = s
		p.StarPositions[i] = [2]float64{s.RA, s.Dec}
	}

	_, quads := idx.quadTree.All()
	for i, q := range quads {
		p.Quads[i] = q
		p.QuadGHashes[i] = [4]float64(q.GHash)
	}

	return gob.NewEncoder(w).Encode(p)
}

// Load decodes an Index previously written by Save, rebuilding both
// kd-trees from the flat position/ghash lists.
func Load(r io.Reader) (*Index, error) {
	var p payload
	if err := gob.NewDecoder(r).Decode(&p); err != nil {
		return nil, err
	}

	posCoords := make([][]float64, len(p.StarPositions))
	for i, pos := range p.StarPositions {
		posCoords[i] = []float64{pos[0], pos[1]}
	}

	ghCoords := make([][]float64, len(p.QuadGHashes))
	for i, gh := range p.QuadGHashes {
		ghCoords[i] = []float64{gh[0], gh[1], gh[2], gh[3]}
	}

	return &Index{
		Nside:        p.Nside,
		positionTree: NewTree(posCoords, p.Stars),
		quadTree:     NewTree(ghCoords, p.Quads),
		starCount:    len(p.Stars),
		quadCount:    len(p.Quads),
	}, nil
}
