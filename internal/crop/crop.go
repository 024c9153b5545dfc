// Package crop materializes the selected pixels as an owned buffer.
package crop

import (
	"image"
	"image/draw"

	"github.com/example/snipshot/internal/geom"
)

// Crop copies the pixels of src covered by r into a fresh zero-based RGBA
// buffer. The rectangle must already be clamped to the source bounds;
// fractional coordinates truncate after flooring at zero, matching the
// clamp contract. A zero-area rectangle yields an empty buffer rather than
// an error, so callers must guard before handing the result to actions
// that need pixels.
func Crop(src *image.RGBA, r geom.Rect) *image.RGBA {
	px := r.ImageRect()
	if px.Empty() {
		return image.NewRGBA(image.Rectangle{})
	}
	dst := image.NewRGBA(image.Rect(0, 0, px.Dx(), px.Dy()))
	draw.Draw(dst, dst.Bounds(), src, px.Min, draw.Src)
	return dst
}
