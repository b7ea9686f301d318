// Package digits extracts fixed-width decimal digit groups from a packed
// 32-bit integer, the way USNO-B squeezes several small decimal fields into
// a single word.
package digits

// Extract returns, for each width in widths, the least-significant digits
// of n covered by that width, consuming them from n in order. The first
// width takes the least-significant digits, the next width takes the next
// most-significant digits, and so on; any digits left over once all widths
// are consumed are discarded.
//
// Extract(123456, []int{2, 2}) -> [56, 34]
func Extract(n uint32, widths []int) []uint32 {
	out := make([]uint32, len(widths))
	for i, w := range widths {
		div := pow10(w)
		out[i] = n % div
		n /= div
	}
	return out
}

func pow10(w int) uint32 {
	p := uint32(1)
	for i := 0; i < w; i++ {
		p *= 10
	}
	return p
}
