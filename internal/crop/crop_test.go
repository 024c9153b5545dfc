package crop

import (
	"image"
	"image/color"
	"testing"

	"github.com/example/snipshot/internal/geom"
)

// gradient builds a source where every pixel encodes its own coordinates,
// so crops can be verified pixel for pixel.
func gradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: uint8(x + y), A: 255})
		}
	}
	return img
}

func TestCropRoundTrip(t *testing.T) {
	src := gradient(200, 150)
	out := Crop(src, geom.Rect{X0: 20, Y0: 20, X1: 70, Y1: 60})
	if got := out.Bounds(); got.Dx() != 50 || got.Dy() != 40 {
		t.Fatalf("unexpected crop size %v, want 50x40", got)
	}
	for j := 0; j < 40; j++ {
		for i := 0; i < 50; i++ {
			want := src.RGBAAt(20+i, 20+j)
			if got := out.RGBAAt(i, j); got != want {
				t.Fatalf("pixel (%d,%d): got %+v want %+v", i, j, got, want)
			}
		}
	}
}

func TestCropZeroAreaYieldsEmptyBuffer(t *testing.T) {
	src := gradient(10, 10)
	out := Crop(src, geom.Rect{X0: 5, Y0: 5, X1: 5, Y1: 5})
	if !out.Bounds().Empty() {
		t.Fatalf("expected empty buffer, got %v", out.Bounds())
	}
}

func TestCropFractionalCoordinatesTruncate(t *testing.T) {
	src := gradient(100, 100)
	out := Crop(src, geom.Rect{X0: 10.7, Y0: 20.9, X1: 40.7, Y1: 50.9})
	if got := out.Bounds(); got.Dx() != 30 || got.Dy() != 30 {
		t.Fatalf("unexpected crop size %v, want 30x30", got)
	}
	if got, want := out.RGBAAt(0, 0), src.RGBAAt(10, 20); got != want {
		t.Fatalf("origin pixel: got %+v want %+v", got, want)
	}
}

func TestCropIsOwnedCopy(t *testing.T) {
	src := gradient(50, 50)
	out := Crop(src, geom.Rect{X0: 0, Y0: 0, X1: 10, Y1: 10})
	src.SetRGBA(0, 0, color.RGBA{R: 99, G: 99, B: 99, A: 255})
	if got := out.RGBAAt(0, 0); got == src.RGBAAt(0, 0) {
		t.Fatal("crop shares pixels with the source")
	}
}
