// Package extract implements the source extractor: background
// estimation, thresholding, and connected-component detection that turns
// a grayscale image into a list of candidate star detections.
package extract

import (
	"errors"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"math"

	_ "golang.org/x/image/tiff"
)

// ErrImageDecodeFailed is returned when the input stream cannot be
// decoded as any registered image format.
var ErrImageDecodeFailed = errors.New("extract: image decode failed")

// DetectedObject is one connected bright region found by ExtractSources.
type DetectedObject struct {
	X, Y          int
	Width, Height int
	CenterX       float64
	CenterY       float64
}

const backgroundRadius = 100
const thresholdSigma = 8.0

// ExtractSources decodes r as a grayscale image, subtracts a median-filter
// background estimate, and returns one DetectedObject per 8-connected
// region whose flux clears the noise-derived threshold. No ordering over
// the result is promised.
func ExtractSources(r io.Reader) ([]DetectedObject, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, ErrImageDecodeFailed
	}

	gray := toGray(img)
	smoothed := MedianSmooth(gray, backgroundRadius)
	sigmaSq := CalculateNoise(smoothed)
	threshold := thresholdSigma * math.Sqrt(sigmaSq)

	return findObjects(smoothed, threshold), nil
}

func toGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	b := img.Bounds()
	gray := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			gray.Set(x, y, img.At(x, y))
		}
	}
	return gray
}

type pixel struct{ x, y int }

func findObjects(img *image.Gray, threshold float64) []DetectedObject {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	visited := NewBitMatrix(w, h)

	var objects []DetectedObject
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			if visited.Get(x, y) {
				continue
			}
			visited.Set(x, y, true)

			flux := float64(img.GrayAt(b.Min.X+x, b.Min.Y+y).Y)
			if flux < threshold || flux == 0 {
				continue
			}
			if obj, ok := findObject(img, x, y, threshold, visited); ok {
				objects = append(objects, obj)
			}
		}
	}
	return objects
}

// findObject performs an 8-connected flood fill starting at (x, y),
// including only pixels whose flux is nonzero and at least threshold (so
// a zero threshold on a flat image includes nothing); all touched pixels,
// included or not, are marked visited so the outer scan never revisits
// them.
func findObject(img *image.Gray, x, y int, threshold float64, visited *BitMatrix) (DetectedObject, bool) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	var included []pixel
	stack := []pixel{{x, y}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		visited.Set(p.x, p.y, true)

		flux := float64(img.GrayAt(b.Min.X+p.x, b.Min.Y+p.y).Y)
		if flux < threshold || flux == 0 {
			continue
		}
		included = append(included, p)

		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := p.x+dx, p.y+dy
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				if visited.Get(nx, ny) {
					continue
				}
				stack = append(stack, pixel{nx, ny})
			}
		}
	}

	if len(included) == 0 {
		return DetectedObject{}, false
	}

	minX, maxX := included[0].x, included[0].x
	minY, maxY := included[0].y, included[0].y
	for _, p := range included {
		if p.x < minX {
			minX = p.x
		}
		if p.x > maxX {
			maxX = p.x
		}
		if p.y < minY {
			minY = p.y
		}
		if p.y > maxY {
			maxY = p.y
		}
	}

	width := maxX - minX + 1
	height := maxY - minY + 1

	// Stub centroid: bounding-box center. A real implementation would do
	// flux-weighted centroiding instead.
	centerX := float64(minX) + float64(width)/2.0
	centerY := float64(minY) + float64(height)/2.0

	return DetectedObject{
		X: minX, Y: minY,
		Width: width, Height: height,
		CenterX: centerX, CenterY: centerY,
	}, true
}
