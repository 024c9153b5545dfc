package appstate

import (
	"image"
	"image/draw"
	"log"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/example/snipshot/internal/geom"
	"github.com/example/snipshot/internal/overlay"
	"github.com/example/snipshot/internal/theme"
)

var messageFace font.Face

func init() {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Fatalf("parse font: %v", err)
	}
	messageFace, err = opentype.NewFace(f, &opentype.FaceOptions{Size: 20, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		log.Fatalf("font face: %v", err)
	}
}

// pixelRect converts a float rectangle to the pixel rectangle that fully
// covers it. Floor/ceil rather than truncation so adjacent mask rectangles
// never leave a seam.
func pixelRect(r geom.Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X0)), int(math.Floor(r.Y0)),
		int(math.Ceil(r.X1)), int(math.Ceil(r.Y1)),
	)
}

// paintRegion repaints the dirty region of dst: the captured frame pixels
// first, then the dim mask and selection border on top. With no active
// selection the whole region gets the lighter idle hint instead.
func paintRegion(dst, src *image.RGBA, dirty image.Rectangle, sel geom.Rect, haveSel bool, th *theme.Theme) {
	dirty = dirty.Intersect(dst.Bounds())
	if dirty.Empty() {
		return
	}
	draw.Draw(dst, dirty, src, dirty.Min, draw.Src)

	if !haveSel {
		draw.Draw(dst, dirty, &image.Uniform{th.IdleMask}, image.Point{}, draw.Over)
		return
	}

	frame := geom.FromSize(float64(src.Bounds().Dx()), float64(src.Bounds().Dy()))
	for _, m := range overlay.MaskRects(sel, frame).Rects() {
		r := pixelRect(m).Intersect(dirty)
		if r.Empty() {
			continue
		}
		draw.Draw(dst, r, &image.Uniform{th.Mask}, image.Point{}, draw.Over)
	}

	border := pixelRect(overlay.Border(sel))
	for _, strip := range borderStrips(border) {
		r := strip.Intersect(dirty)
		if r.Empty() {
			continue
		}
		draw.Draw(dst, r, &image.Uniform{th.Border}, image.Point{}, draw.Src)
	}
}

// borderStrips returns the four one-side strips that outline r at
// overlay.BorderWidth thickness, drawn just inside the rectangle.
func borderStrips(r image.Rectangle) [4]image.Rectangle {
	bw := overlay.BorderWidth
	return [4]image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+bw),
		image.Rect(r.Min.X, r.Max.Y-bw, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y+bw, r.Min.X+bw, r.Max.Y-bw),
		image.Rect(r.Max.X-bw, r.Min.Y+bw, r.Max.X, r.Max.Y-bw),
	}
}

func strokeRect(dst *image.RGBA, r image.Rectangle, th *theme.Theme) {
	for _, strip := range borderStrips(r) {
		draw.Draw(dst, strip, &image.Uniform{th.MenuBorder}, image.Point{}, draw.Src)
	}
}

func (m *menu) draw(dst *image.RGBA, th *theme.Theme) {
	draw.Draw(dst, m.rect, &image.Uniform{th.MenuBackground}, image.Point{}, draw.Src)
	for i, it := range m.items {
		r := m.itemRect(i)
		if i == m.hover {
			draw.Draw(dst, r, &image.Uniform{th.MenuHover}, image.Point{}, draw.Src)
		}
		d := &font.Drawer{Dst: dst, Src: image.NewUniform(th.MenuText), Face: basicfont.Face7x13,
			Dot: fixed.P(r.Min.X+menuPadX, r.Min.Y+16)}
		d.DrawString(it.Label())
	}
	strokeRect(dst, m.rect, th)
}

// messageRect returns the snackbar rectangle for msg, centred near the
// bottom of the frame.
func messageRect(frame image.Rectangle, msg string) image.Rectangle {
	d := &font.Drawer{Face: messageFace}
	w := d.MeasureString(msg).Ceil()
	ascent := messageFace.Metrics().Ascent.Ceil()
	descent := messageFace.Metrics().Descent.Ceil()
	px := frame.Min.X + (frame.Dx()-w)/2
	py := frame.Max.Y - 48
	return image.Rect(px-12, py-ascent-8, px+w+12, py+descent+8)
}

func drawMessage(dst *image.RGBA, frame image.Rectangle, msg string, th *theme.Theme) {
	rect := messageRect(frame, msg)
	draw.Draw(dst, rect, &image.Uniform{th.MessageBackground}, image.Point{}, draw.Src)
	strokeRect(dst, rect, th)
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(th.MessageText), Face: messageFace}
	d.Dot = fixed.P(rect.Min.X+12, frame.Max.Y-48)
	d.DrawString(msg)
}
