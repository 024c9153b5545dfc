// Package overlay computes the geometry of the "dim everything outside the
// selection" visual. It returns rectangles only; the painter applies the
// colors and alpha from the active theme.
package overlay

import (
	"github.com/example/snipshot/internal/geom"
)

// BorderWidth is the stroke width of the selection outline, in pixels.
const BorderWidth = 1

// Masks are the four rectangles that tile the frame minus the selection:
// Top and Bottom span the full frame width, Left and Right fill the
// remaining band beside the selection. They never overlap each other or the
// selection, and together with it they cover the frame exactly.
type Masks struct {
	Top    geom.Rect
	Bottom geom.Rect
	Left   geom.Rect
	Right  geom.Rect
}

// Rects returns the four mask rectangles in painting order.
func (m Masks) Rects() [4]geom.Rect {
	return [4]geom.Rect{m.Top, m.Bottom, m.Left, m.Right}
}

// MaskRects computes the dim regions around sel within frame. sel must
// already be clamped to frame; the tiling guarantee only holds for a
// contained selection.
func MaskRects(sel, frame geom.Rect) Masks {
	return Masks{
		Top:    geom.Rect{X0: frame.X0, Y0: frame.Y0, X1: frame.X1, Y1: sel.Y0},
		Bottom: geom.Rect{X0: frame.X0, Y0: sel.Y1, X1: frame.X1, Y1: frame.Y1},
		Left:   geom.Rect{X0: frame.X0, Y0: sel.Y0, X1: sel.X0, Y1: sel.Y1},
		Right:  geom.Rect{X0: sel.X1, Y0: sel.Y0, X1: frame.X1, Y1: sel.Y1},
	}
}

// Border returns the stroke outline for the selection rectangle.
func Border(sel geom.Rect) geom.Rect { return sel }

// IdleMask returns the single low-opacity rectangle shown when no selection
// or drag is active: the whole frame, lightly dimmed as a hint that the
// session is waiting for a drag.
func IdleMask(frame geom.Rect) geom.Rect { return frame }
