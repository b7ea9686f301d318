package digits

import (
	"reflect"
	"testing"
)

func TestExtract(t *testing.T) {
	cases := []struct {
		name   string
		n      uint32
		widths []int
		want   []uint32
	}{
		{"single word", 1234, []int{4}, []uint32{1234}},
		{"two chunks", 123456, []int{2, 2}, []uint32{56, 34}},
		{"discards high digits", 9123456, []int{2, 2}, []uint32{56, 34}},
		{"four chunks", 98765432, []int{2, 3, 2, 1}, []uint32{32, 654, 87, 9}},
		{"zero", 0, []int{3, 3, 1, 1, 1, 1}, []uint32{0, 0, 0, 0, 0, 0}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Extract(c.n, c.widths)
			if !reflect.DeepEqual(got, c.want) {
				t.Fatalf("Extract(%d, %v) = %v, want %v", c.n, c.widths, got, c.want)
			}
		})
	}
}
