package appstate

import (
	"errors"
	"image"
	"log"
	"sync"
	"time"
	"unicode"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/snipshot/internal/action"
	"github.com/example/snipshot/internal/crop"
	"github.com/example/snipshot/internal/geom"
	"github.com/example/snipshot/internal/selection"
	"github.com/example/snipshot/internal/theme"
)

// messageDuration is how long a transient status message stays on screen.
const messageDuration = 2 * time.Second

// AppState holds the overlay session configuration: the captured frame to
// pick a region from, the colors to draw with, and the dispatcher that
// performs the chosen action.
type AppState struct {
	Image      *image.RGBA
	Theme      *theme.Theme
	Dispatcher *action.Dispatcher

	onClose   func()
	closeOnce sync.Once
}

// Option modifies an AppState during creation.
type Option func(*AppState)

// WithImage sets the captured frame the overlay is drawn over.
func WithImage(img *image.RGBA) Option { return func(a *AppState) { a.Image = img } }

// WithTheme sets the overlay colors.
func WithTheme(th *theme.Theme) Option { return func(a *AppState) { a.Theme = th } }

// WithDispatcher sets the dispatcher that performs actions on the selection.
func WithDispatcher(d *action.Dispatcher) Option { return func(a *AppState) { a.Dispatcher = d } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(a *AppState) { a.onClose = fn } }

// New creates an AppState with the provided options.
func New(opts ...Option) *AppState {
	a := &AppState{Theme: theme.Default()}
	for _, o := range opts {
		o(a)
	}
	return a
}

func (a *AppState) notifyClose() {
	a.closeOnce.Do(func() {
		if a.onClose != nil {
			a.onClose()
		}
	})
}

// Run executes the UI loop using shiny's driver.
func (a *AppState) Run() { driver.Main(a.Main) }

func (a *AppState) Main(s screen.Screen) {
	src := a.Image
	frame := src.Bounds()
	width := frame.Dx()
	height := frame.Dy()

	w, err := s.NewWindow(&screen.NewWindowOptions{Width: width, Height: height, Title: "snipshot"})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer w.Release()
	defer a.notifyClose()

	b, err := s.NewBuffer(image.Point{width, height})
	if err != nil {
		log.Fatalf("new buffer: %v", err)
	}
	defer b.Release()

	machine := selection.New(float64(width), float64(height))
	var mn *menu
	var message string
	var messageUntil time.Time
	var lastMouse image.Point

	// currentSel is the rectangle the overlay dims around right now: the
	// committed selection if one exists, otherwise the in-progress drag.
	currentSel := func() (geom.Rect, bool) {
		if sel, ok := machine.Committed(); ok {
			return sel, true
		}
		return machine.DragRect()
	}

	repaint := func(dirty image.Rectangle) {
		dirty = dirty.Intersect(frame)
		if dirty.Empty() {
			return
		}
		dst := b.RGBA()
		sel, ok := currentSel()
		paintRegion(dst, src, dirty, sel, ok, a.Theme)
		if mn != nil && mn.rect.Overlaps(dirty) {
			mn.draw(dst, a.Theme)
			dirty = dirty.Union(mn.rect)
		}
		if message != "" && time.Now().Before(messageUntil) {
			if mr := messageRect(frame, message); mr.Overlaps(dirty) {
				drawMessage(dst, frame, message, a.Theme)
				dirty = dirty.Union(mr)
			}
		}
		w.Upload(dirty.Min, b, dirty)
		w.Publish()
	}

	showMessage := func(msg string) {
		message = msg
		log.Print(message)
		messageUntil = time.Now().Add(messageDuration)
		repaint(messageRect(frame, message))
	}

	clearMessage := func() {
		if message == "" {
			return
		}
		stale := messageRect(frame, message)
		message = ""
		messageUntil = time.Time{}
		repaint(stale)
	}

	// dispatch crops the committed selection, runs the action, and reports
	// whether the overlay should exit. A scan miss keeps the session alive
	// with a status message so the user can adjust the selection.
	dispatch := func(act action.Action) bool {
		sel, ok := machine.Committed()
		if !ok {
			return false
		}
		quit, err := a.Dispatcher.Do(act, crop.Crop(src, sel))
		if err != nil {
			mn = nil
			if errors.Is(err, action.ErrNoQRCode) {
				repaint(frame)
				showMessage("no QR code found")
			} else {
				log.Printf("%s: %v", act.Label(), err)
				repaint(frame)
				showMessage(act.Label() + " failed")
			}
			return false
		}
		return quit
	}

	openMenuAt := func(anchor image.Point) {
		mn = openMenu(anchor, frame)
		repaint(mn.rect)
	}

	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
		case size.Event:
			w.Send(paint.Event{})
		case paint.Event:
			repaint(frame)
		case mouse.Event:
			p := image.Pt(int(e.X), int(e.Y))
			fp := geom.Pt(float64(e.X), float64(e.Y))
			lastMouse = p
			switch {
			case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress:
				clearMessage()
				if mn != nil {
					if idx := mn.hit(p); idx >= 0 {
						if dispatch(mn.items[idx]) {
							return
						}
						continue
					}
					// A press outside the menu dismisses it and starts a
					// fresh drag in one motion.
					stale := mn.rect
					mn = nil
					if dirty, ok := machine.PointerDown(fp); ok {
						repaint(pixelRect(dirty).Union(stale))
					} else {
						repaint(stale)
					}
					continue
				}
				if dirty, ok := machine.PointerDown(fp); ok {
					repaint(pixelRect(dirty))
				}
			case e.Button == mouse.ButtonRight && e.Direction == mouse.DirPress:
				clearMessage()
				if _, ok := machine.SelectAll(); ok {
					repaint(frame)
					openMenuAt(p)
				}
			case e.Direction == mouse.DirNone:
				if mn != nil {
					prev := mn.hover
					mn.hover = mn.hit(p)
					if mn.hover != prev {
						repaint(mn.rect)
					}
					continue
				}
				if dirty, ok := machine.PointerMove(fp); ok {
					repaint(pixelRect(dirty))
				}
			case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirRelease:
				if mn != nil {
					continue
				}
				wasDragging := machine.State() == selection.StateDragging
				if sel, ok := machine.PointerUp(fp); ok {
					repaint(pixelRect(sel))
					openMenuAt(p)
				} else if wasDragging {
					// Sub-threshold release: the drag visuals revert to the
					// idle hint.
					repaint(frame)
				}
			}
		case key.Event:
			if e.Direction != key.DirPress {
				continue
			}
			if e.Code == key.CodeEscape {
				machine.Cancel()
				return
			}
			switch unicode.ToLower(e.Rune) {
			case 'q':
				return
			case 'a':
				clearMessage()
				if _, ok := machine.SelectAll(); ok {
					repaint(frame)
					openMenuAt(lastMouse)
				}
			case 'c':
				if dispatch(action.ActionCopy) {
					return
				}
			case 's':
				if dispatch(action.ActionSave) {
					return
				}
			case 'x':
				if dispatch(action.ActionScan) {
					return
				}
			}
		}
	}
}
