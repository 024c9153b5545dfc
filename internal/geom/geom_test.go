package geom

import (
	"image"
	"testing"
)

func TestNormalizeNonNegative(t *testing.T) {
	points := []struct{ p0, p1 Point }{
		{Pt(0, 0), Pt(10, 10)},
		{Pt(10, 10), Pt(0, 0)},
		{Pt(-5, 30), Pt(12, -7)},
		{Pt(3.5, 3.5), Pt(3.5, 3.5)},
		{Pt(100.25, 2), Pt(-0.75, 99)},
	}
	for _, tc := range points {
		r := Normalize(tc.p0, tc.p1)
		if r.Width() < 0 || r.Height() < 0 {
			t.Errorf("Normalize(%v, %v) has negative size: %+v", tc.p0, tc.p1, r)
		}
		if got := Normalize(tc.p1, tc.p0); got != r {
			t.Errorf("Normalize is not symmetric: %+v vs %+v", r, got)
		}
	}
}

func TestNormalizeSpansPoints(t *testing.T) {
	r := Normalize(Pt(50, 40), Pt(10, 10))
	want := Rect{X0: 10, Y0: 10, X1: 50, Y1: 40}
	if r != want {
		t.Fatalf("got %+v, want %+v", r, want)
	}
}

func TestClampToBoundsIdempotent(t *testing.T) {
	rects := []Rect{
		{X0: -10, Y0: -10, X1: 50, Y1: 50},
		{X0: 10, Y0: 10, X1: 500, Y1: 500},
		{X0: -100, Y0: -100, X1: -50, Y1: -50},
		{X0: 0, Y0: 0, X1: 100, Y1: 100},
	}
	for _, r := range rects {
		once := ClampToBounds(r, 100, 100)
		twice := ClampToBounds(once, 100, 100)
		if once != twice {
			t.Errorf("ClampToBounds not idempotent for %+v: %+v vs %+v", r, once, twice)
		}
	}
}

func TestClampToBoundsFullyOutside(t *testing.T) {
	r := ClampToBounds(Rect{X0: 120, Y0: 130, X1: 150, Y1: 160}, 100, 100)
	if !r.Empty() {
		t.Fatalf("expected zero-area rect, got %+v", r)
	}
	// Collapsed at the nearest corner of the bounds.
	if r.X0 != 100 || r.Y0 != 100 {
		t.Fatalf("expected collapse at (100,100), got %+v", r)
	}
}

func TestClampToBoundsClips(t *testing.T) {
	r := ClampToBounds(Rect{X0: -20, Y0: 10, X1: 120, Y1: 90}, 100, 100)
	want := Rect{X0: 0, Y0: 10, X1: 100, Y1: 90}
	if r != want {
		t.Fatalf("got %+v, want %+v", r, want)
	}
}

func TestUnionWithEmpty(t *testing.T) {
	r := Rect{X0: 5, Y0: 5, X1: 20, Y1: 20}
	if got := r.Union(Rect{}); got != r {
		t.Errorf("union with empty changed rect: %+v", got)
	}
	if got := (Rect{}).Union(r); got != r {
		t.Errorf("empty union with rect lost it: %+v", got)
	}
	s := Rect{X0: 15, Y0: 0, X1: 30, Y1: 10}
	want := Rect{X0: 5, Y0: 0, X1: 30, Y1: 20}
	if got := r.Union(s); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestImageRectTruncation(t *testing.T) {
	r := Rect{X0: 10.9, Y0: -3.2, X1: 50.4, Y1: 20.8}
	got := r.ImageRect()
	// Origin floors through max(0, coord) truncation, size truncates.
	want := image.Rect(10, 0, 10+39, 0+24)
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestImageRectEmpty(t *testing.T) {
	if got := (Rect{X0: 5, Y0: 5, X1: 5, Y1: 9}).ImageRect(); !got.Empty() {
		t.Fatalf("expected empty pixel rect, got %v", got)
	}
}
