package spatial

import (
	"math"
	"math/rand"
	"sort"
	"testing"
)

func bruteNearest(coords [][]float64, target []float64, k int) [][]float64 {
	type entry struct {
		c []float64
		d float64
	}
	entries := make([]entry, len(coords))
	for i, c := range coords {
		entries[i] = entry{c: c, d: sqDist(c, target)}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].d < entries[j].d })
	if k > len(entries) {
		k = len(entries)
	}
	out := make([][]float64, k)
	for i := 0; i < k; i++ {
		out[i] = entries[i].c
	}
	return out
}

func TestNearestKMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	n := 200
	coords := make([][]float64, n)
	payloads := make([]int, n)
	for i := 0; i < n; i++ {
		coords[i] = []float64{rng.Float64() * 100, rng.Float64() * 100, rng.Float64() * 100}
		payloads[i] = i
	}
	tree := NewTree(coords, payloads)

	target := []float64{50, 50, 50}
	const k = 7

	wantCoords := bruteNearest(coords, target, k)
	wantDists := make([]float64, k)
	for i, c := range wantCoords {
		wantDists[i] = sqDist(c, target)
	}

	got := tree.NearestK(target, k)
	if len(got) != k {
		t.Fatalf("got %d results, want %d", len(got), k)
	}
	for i, idx := range got {
		gotDist := sqDist(coords[idx], target)
		if math.Abs(gotDist-wantDists[i]) > 1e-9 {
			t.Errorf("result %d: distSq=%v, want %v", i, gotDist, wantDists[i])
		}
	}
}

func TestWithinMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	n := 150
	coords := make([][]float64, n)
	payloads := make([]int, n)
	for i := 0; i < n; i++ {
		coords[i] = []float64{rng.Float64() * 10, rng.Float64() * 10}
		payloads[i] = i
	}
	tree := NewTree(coords, payloads)

	target := []float64{5, 5}
	const r = 2.5

	var want []int
	for i, c := range coords {
		if sqDist(c, target) <= r*r {
			want = append(want, i)
		}
	}
	sort.Ints(want)

	got := tree.Within(target, r)
	sort.Ints(got)

	if len(got) != len(want) {
		t.Fatalf("got %d within radius, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestNearestKReturnsAllWhenFewerThanK(t *testing.T) {
	coords := [][]float64{{0, 0}, {1, 1}}
	payloads := []string{"a", "b"}
	tree := NewTree(coords, payloads)

	got := tree.NearestK([]float64{0, 0}, 10)
	if len(got) != 2 {
		t.Fatalf("got %d results, want 2", len(got))
	}
}

func TestEmptyTree(t *testing.T) {
	tree := NewTree([][]float64{}, []int{})
	if got := tree.NearestK([]float64{0, 0}, 3); got != nil {
		t.Errorf("NearestK on empty tree = %v, want nil", got)
	}
	if got := tree.Within([]float64{0, 0}, 5); got != nil {
		t.Errorf("Within on empty tree = %v, want nil", got)
	}
	if got := tree.Len(); got != 0 {
		t.Errorf("Len on empty tree = %d, want 0", got)
	}
}

func TestAllReturnsEveryEntry(t *testing.T) {
	coords := [][]float64{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}}
	payloads := []int{0, 1, 2, 3, 4}
	tree := NewTree(coords, payloads)

	_, got := tree.All()
	sort.Ints(got)
	for i, v := range got {
		if v != i {
			t.Errorf("All() missing or duplicated payload %d in %v", i, got)
		}
	}
}
