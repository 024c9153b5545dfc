package appstate

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/example/snipshot/internal/action"
)

const (
	menuItemHeight = 24
	menuPadX       = 12
)

// menu is the pop-up action list shown once a selection is committed. Its
// rectangle is fixed at open time; hover is the index of the highlighted
// item, or -1.
type menu struct {
	items []action.Action
	rect  image.Rectangle
	hover int
}

func menuActions() []action.Action {
	return []action.Action{action.ActionCopy, action.ActionSave, action.ActionScan, action.ActionQuit}
}

// openMenu places the action menu with its top-left corner at anchor,
// shifted as needed so the whole menu stays inside frame. The width is sized
// to the longest label.
func openMenu(anchor image.Point, frame image.Rectangle) *menu {
	items := menuActions()
	d := &font.Drawer{Face: basicfont.Face7x13}
	width := 0
	for _, it := range items {
		if w := d.MeasureString(it.Label()).Ceil(); w > width {
			width = w
		}
	}
	width += 2 * menuPadX
	height := len(items) * menuItemHeight

	x := anchor.X
	y := anchor.Y
	if x+width > frame.Max.X {
		x = frame.Max.X - width
	}
	if y+height > frame.Max.Y {
		y = frame.Max.Y - height
	}
	if x < frame.Min.X {
		x = frame.Min.X
	}
	if y < frame.Min.Y {
		y = frame.Min.Y
	}
	return &menu{
		items: items,
		rect:  image.Rect(x, y, x+width, y+height),
		hover: -1,
	}
}

func (m *menu) itemRect(i int) image.Rectangle {
	y := m.rect.Min.Y + i*menuItemHeight
	return image.Rect(m.rect.Min.X, y, m.rect.Max.X, y+menuItemHeight)
}

// hit returns the index of the item under p, or -1 when p is outside the
// menu.
func (m *menu) hit(p image.Point) int {
	if !p.In(m.rect) {
		return -1
	}
	idx := (p.Y - m.rect.Min.Y) / menuItemHeight
	if idx < 0 || idx >= len(m.items) {
		return -1
	}
	return idx
}
