package overlay

import (
	"testing"

	"github.com/example/snipshot/internal/geom"
)

func TestMaskRectsTileFrameExactly(t *testing.T) {
	frame := geom.FromSize(1920, 1080)
	selections := []geom.Rect{
		{X0: 100, Y0: 100, X1: 500, Y1: 400},
		{X0: 0, Y0: 0, X1: 1920, Y1: 1080},      // whole frame
		{X0: 0, Y0: 0, X1: 300, Y1: 200},        // top-left corner
		{X0: 1620, Y0: 880, X1: 1920, Y1: 1080}, // bottom-right corner
		{X0: 0, Y0: 500, X1: 1920, Y1: 600},     // full-width band
		{X0: 960, Y0: 540, X1: 960, Y1: 540},    // zero area
	}
	for _, sel := range selections {
		m := MaskRects(sel, frame)
		total := sel.Area()
		for _, r := range m.Rects() {
			if r.Width() < 0 || r.Height() < 0 {
				t.Errorf("sel %+v: mask rect has negative size: %+v", sel, r)
			}
			total += r.Area()
		}
		if total != frame.Area() {
			t.Errorf("sel %+v: masks+selection cover %v, frame is %v", sel, total, frame.Area())
		}
	}
}

func TestMaskRectsDoNotOverlapSelection(t *testing.T) {
	frame := geom.FromSize(800, 600)
	sel := geom.Rect{X0: 200, Y0: 150, X1: 600, Y1: 450}
	m := MaskRects(sel, frame)
	inside := geom.Pt(400, 300)
	for i, r := range m.Rects() {
		if r.Contains(inside) {
			t.Errorf("mask rect %d covers the selection interior: %+v", i, r)
		}
	}
	// Each point outside the selection is covered by exactly one mask.
	outside := []geom.Point{
		geom.Pt(10, 10), geom.Pt(400, 10), geom.Pt(790, 10),
		geom.Pt(10, 300), geom.Pt(790, 300),
		geom.Pt(10, 590), geom.Pt(400, 590), geom.Pt(790, 590),
	}
	for _, p := range outside {
		covers := 0
		for _, r := range m.Rects() {
			if r.Contains(p) {
				covers++
			}
		}
		if covers != 1 {
			t.Errorf("point %+v covered by %d masks, want 1", p, covers)
		}
	}
}

func TestIdleMaskIsFullFrame(t *testing.T) {
	frame := geom.FromSize(1024, 768)
	if got := IdleMask(frame); got != frame {
		t.Fatalf("got %+v, want %+v", got, frame)
	}
}

func TestBorderMatchesSelection(t *testing.T) {
	sel := geom.Rect{X0: 10, Y0: 20, X1: 110, Y1: 220}
	if got := Border(sel); got != sel {
		t.Fatalf("got %+v, want %+v", got, sel)
	}
}
