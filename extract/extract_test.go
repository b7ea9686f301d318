package extract

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"math/rand"
	"testing"
)

func gaussianTestImage(t *testing.T, size int, peakX, peakY, sigma, amplitude, background float64) *image.Gray {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, size, size))
	rng := rand.New(rand.NewSource(1))

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) - peakX
			dy := float64(y) - peakY
			g := amplitude * math.Exp(-(dx*dx+dy*dy)/(2*sigma*sigma))
			noise := float64(rng.Intn(3) - 1) // -1, 0, or 1
			v := background + g + noise
			if v < 0 {
				v = 0
			}
			if v > 255 {
				v = 255
			}
			img.SetGray(x, y, color.Gray{Y: uint8(v)})
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) *bytes.Reader {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return bytes.NewReader(buf.Bytes())
}

func TestExtractSourcesSingleGaussian(t *testing.T) {
	img := gaussianTestImage(t, 512, 100.5, 200.5, 2.0, 200.0, 40.0)

	objects, err := ExtractSources(encodePNG(t, img))
	if err != nil {
		t.Fatalf("ExtractSources: %v", err)
	}
	if len(objects) != 1 {
		t.Fatalf("got %d objects, want 1: %+v", len(objects), objects)
	}

	obj := objects[0]
	if 100 < obj.X || 100 > obj.X+obj.Width-1 {
		t.Errorf("bounding box x-range [%d,%d] does not contain 100", obj.X, obj.X+obj.Width-1)
	}
	if 200 < obj.Y || 200 > obj.Y+obj.Height-1 {
		t.Errorf("bounding box y-range [%d,%d] does not contain 200", obj.Y, obj.Y+obj.Height-1)
	}
	if obj.Width < 1 || obj.Height < 1 {
		t.Errorf("object has non-positive dimensions: %+v", obj)
	}
	if obj.CenterX < float64(obj.X) || obj.CenterX > float64(obj.X+obj.Width) {
		t.Errorf("CenterX %v outside bounding box", obj.CenterX)
	}
	if obj.CenterY < float64(obj.Y) || obj.CenterY > float64(obj.Y+obj.Height) {
		t.Errorf("CenterY %v outside bounding box", obj.CenterY)
	}
}

func TestExtractSourcesUniformImageHasNoDetections(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 128, 128))
	for y := 0; y < 128; y++ {
		for x := 0; x < 128; x++ {
			img.SetGray(x, y, color.Gray{Y: 128})
		}
	}

	objects, err := ExtractSources(encodePNG(t, img))
	if err != nil {
		t.Fatalf("ExtractSources: %v", err)
	}
	if len(objects) != 0 {
		t.Fatalf("got %d objects, want 0 for a uniform image", len(objects))
	}
}
