package appstate

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/example/snipshot/internal/action"
	"github.com/example/snipshot/internal/geom"
	"github.com/example/snipshot/internal/theme"
)

func TestOpenMenuInsideFrame(t *testing.T) {
	frame := image.Rect(0, 0, 800, 600)
	m := openMenu(image.Pt(100, 100), frame)
	if m.rect.Min != image.Pt(100, 100) {
		t.Errorf("menu anchored at %v, want (100,100)", m.rect.Min)
	}
	if !m.rect.In(frame) {
		t.Errorf("menu %v escapes frame %v", m.rect, frame)
	}
	if got := m.rect.Dy(); got != len(m.items)*menuItemHeight {
		t.Errorf("menu height = %d, want %d", got, len(m.items)*menuItemHeight)
	}
}

func TestOpenMenuClampsToFrame(t *testing.T) {
	frame := image.Rect(0, 0, 800, 600)
	m := openMenu(image.Pt(795, 595), frame)
	if !m.rect.In(frame) {
		t.Errorf("menu %v escapes frame %v", m.rect, frame)
	}
	if m.rect.Max.X != 800 || m.rect.Max.Y != 600 {
		t.Errorf("menu %v should hug the bottom-right corner", m.rect)
	}
}

func TestMenuHit(t *testing.T) {
	frame := image.Rect(0, 0, 800, 600)
	m := openMenu(image.Pt(50, 50), frame)
	if got := m.hit(image.Pt(49, 50)); got != -1 {
		t.Errorf("hit left of menu = %d, want -1", got)
	}
	for i := range m.items {
		r := m.itemRect(i)
		p := image.Pt(r.Min.X+1, r.Min.Y+1)
		if got := m.hit(p); got != i {
			t.Errorf("hit(%v) = %d, want %d", p, got, i)
		}
	}
	below := image.Pt(m.rect.Min.X+1, m.rect.Max.Y)
	if got := m.hit(below); got != -1 {
		t.Errorf("hit below menu = %d, want -1", got)
	}
}

func TestMenuActionsOrder(t *testing.T) {
	want := []action.Action{action.ActionCopy, action.ActionSave, action.ActionScan, action.ActionQuit}
	got := menuActions()
	if len(got) != len(want) {
		t.Fatalf("menu has %d actions, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("menu item %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func grayFrame(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.RGBA{100, 100, 100, 255}}, image.Point{}, draw.Src)
	return img
}

func TestPaintRegionSelection(t *testing.T) {
	src := grayFrame(100, 80)
	dst := image.NewRGBA(src.Bounds())
	th := theme.Default()
	sel := geom.Rect{X0: 20, Y0: 20, X1: 60, Y1: 50}

	paintRegion(dst, src, dst.Bounds(), sel, true, th)

	inside := dst.RGBAAt(40, 35)
	if inside != src.RGBAAt(40, 35) {
		t.Errorf("interior pixel = %v, want untouched %v", inside, src.RGBAAt(40, 35))
	}
	outside := dst.RGBAAt(5, 5)
	if outside.R >= 100 || outside.A != 255 {
		t.Errorf("masked pixel = %v, want dimmed opaque gray", outside)
	}
	if border := dst.RGBAAt(20, 20); border != th.Border {
		t.Errorf("border pixel = %v, want %v", border, th.Border)
	}
	if border := dst.RGBAAt(59, 49); border != th.Border {
		t.Errorf("border pixel = %v, want %v", border, th.Border)
	}
}

func TestPaintRegionIdleHint(t *testing.T) {
	src := grayFrame(100, 80)
	idle := image.NewRGBA(src.Bounds())
	masked := image.NewRGBA(src.Bounds())
	th := theme.Default()

	paintRegion(idle, src, idle.Bounds(), geom.Rect{}, false, th)
	paintRegion(masked, src, masked.Bounds(), geom.Rect{X0: 90, Y0: 70, X1: 95, Y1: 75}, true, th)

	ip := idle.RGBAAt(5, 5)
	mp := masked.RGBAAt(5, 5)
	if ip.R >= 100 {
		t.Errorf("idle pixel = %v, want dimmed below source", ip)
	}
	if ip.R <= mp.R {
		t.Errorf("idle hint %v should be lighter than the selection mask %v", ip, mp)
	}
}

func TestPaintRegionDirtyOnly(t *testing.T) {
	src := grayFrame(100, 80)
	dst := image.NewRGBA(src.Bounds())
	th := theme.Default()

	paintRegion(dst, src, image.Rect(0, 0, 50, 80), geom.Rect{}, false, th)

	if got := dst.RGBAAt(75, 40); got != (color.RGBA{}) {
		t.Errorf("pixel outside dirty region = %v, want untouched zero", got)
	}
	if got := dst.RGBAAt(25, 40); got.A != 255 {
		t.Errorf("pixel inside dirty region = %v, want painted", got)
	}
}
