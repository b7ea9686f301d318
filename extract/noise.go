package extract

import (
	"image"
	"image/color"
)

// MedianSmooth returns img minus its square-radius median filter,
// saturating at 0 per pixel, matching the "background subtraction by
// median filter" step of the extraction pipeline. The median filter
// itself is computed with sliding per-column histograms so the cost
// stays close to O(width*height) rather than O(width*height*radius^2);
// no third-party Go median-filter implementation appears anywhere in the
// retrieved reference pack, so this is hand-rolled against the standard
// library's image.Gray.
func MedianSmooth(img *image.Gray, radius int) *image.Gray {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	smoothed := medianFilter(img, radius)

	out := image.NewGray(b)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			orig := img.GrayAt(b.Min.X+x, b.Min.Y+y).Y
			med := smoothed.GrayAt(b.Min.X+x, b.Min.Y+y).Y
			var v uint8
			if orig > med {
				v = orig - med
			}
			out.SetGray(b.Min.X+x, b.Min.Y+y, color.Gray{Y: v})
		}
	}
	return out
}

func medianFilter(img *image.Gray, radius int) *image.Gray {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewGray(b)
	if w == 0 || h == 0 {
		return out
	}

	colHist := make([][256]int32, w)

	addRow := func(y int) {
		if y < 0 || y >= h {
			return
		}
		for x := 0; x < w; x++ {
			colHist[x][img.GrayAt(b.Min.X+x, b.Min.Y+y).Y]++
		}
	}
	removeRow := func(y int) {
		if y < 0 || y >= h {
			return
		}
		for x := 0; x < w; x++ {
			colHist[x][img.GrayAt(b.Min.X+x, b.Min.Y+y).Y]--
		}
	}

	for y := -radius; y <= radius; y++ {
		addRow(y)
	}

	for y := 0; y < h; y++ {
		var winHist [256]int32
		var count int32

		addCol := func(x int) {
			if x < 0 || x >= w {
				return
			}
			for v := 0; v < 256; v++ {
				winHist[v] += colHist[x][v]
				count += colHist[x][v]
			}
		}
		removeCol := func(x int) {
			if x < 0 || x >= w {
				return
			}
			for v := 0; v < 256; v++ {
				winHist[v] -= colHist[x][v]
				count -= colHist[x][v]
			}
		}

		for x := -radius; x <= radius; x++ {
			addCol(x)
		}

		for x := 0; x < w; x++ {
			out.SetGray(b.Min.X+x, b.Min.Y+y, color.Gray{Y: medianOf(winHist[:], count)})
			removeCol(x - radius)
			addCol(x + radius + 1)
		}

		removeRow(y - radius)
		addRow(y + radius + 1)
	}

	return out
}

func medianOf(hist []int32, count int32) uint8 {
	if count == 0 {
		return 0
	}
	target := (count + 1) / 2
	var running int32
	for v, c := range hist {
		running += c
		if running >= target {
			return uint8(v)
		}
	}
	return 255
}

const noiseSampleRadius = 5

// CalculateNoise estimates background noise variance on a grid of stride
// 2*noiseSampleRadius, differencing each sample center against its 8
// neighbors at offset +/-radius along the axes and diagonals. The mean of
// the differences is deliberately not subtracted before squaring, matching
// the canonical behavior this package targets.
func CalculateNoise(img *image.Gray) float64 {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	r := noiseSampleRadius

	var diffs []float64
	for x := 0; x < w; x += 2 * r {
		for y := 0; y < h; y += 2 * r {
			center := float64(img.GrayAt(b.Min.X+x, b.Min.Y+y).Y)
			for dx := -1; dx <= 1; dx++ {
				for dy := -1; dy <= 1; dy++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx*r, y+dy*r
					if nx < 0 || nx >= w || ny < 0 || ny >= h {
						continue
					}
					neighbor := float64(img.GrayAt(b.Min.X+nx, b.Min.Y+ny).Y)
					diffs = append(diffs, neighbor-center)
				}
			}
		}
	}

	if len(diffs) == 0 {
		return 0
	}

	var sumSq float64
	for _, d := range diffs {
		sumSq += d * d
	}
	return sumSq / float64(len(diffs))
}
