package extract

import "testing"

func TestBitMatrixGetSet(t *testing.T) {
	m := NewBitMatrix(10, 10)

	if m.Get(3, 4) {
		t.Fatalf("new matrix should start unset")
	}

	m.Set(3, 4, true)
	if !m.Get(3, 4) {
		t.Fatalf("Set(3,4,true) should make Get(3,4) true")
	}
	if m.Get(4, 3) {
		t.Fatalf("setting (3,4) should not affect (4,3)")
	}
}

func TestBitMatrixDataSize(t *testing.T) {
	m := NewBitMatrix(5, 3)
	want := (5*3 + 7) / 8
	if len(m.Data()) != want {
		t.Fatalf("backing size = %d, want %d", len(m.Data()), want)
	}
}
