// Package selection owns the drag lifecycle for the region picker: a drag
// starts on pointer press, tracks the pointer while it moves, and commits a
// rectangle on release when it is large enough to be intentional. Each move
// reports the dirty region the host must repaint, so the overlay never has
// to redraw the whole frame while the user drags.
package selection

import (
	"github.com/example/snipshot/internal/geom"
)

// State identifies the phase of the drag lifecycle.
type State int

const (
	// StateIdle means no drag is in progress and nothing is committed.
	StateIdle State = iota
	// StateDragging means a pointer-down happened and the pointer has not
	// been released yet.
	StateDragging
	// StateCommitted means a release produced a usable rectangle.
	StateCommitted
	// StateCancelled is terminal; the session is over and no further
	// transitions are accepted.
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateCommitted:
		return "committed"
	case StateCancelled:
		return "cancelled"
	}
	return "unknown"
}

// dirtyMargin outsets the repaint region so the border stroke around the
// previous rectangle is fully invalidated.
const dirtyMargin = 2.0

// commitThreshold rejects accidental clicks: a drag commits only when both
// extents strictly exceed it, in the same units as the pointer coordinates.
const commitThreshold = 1.0

// Machine tracks one selection session over a fixed frame. It is mutated
// only by the event-handling path and holds no reference to the pixels.
type Machine struct {
	bounds    geom.Rect
	state     State
	start     geom.Point
	current   geom.Point
	committed geom.Rect
	hasCommit bool
	// prev is the drag rectangle produced by the previous move, kept so the
	// dirty region covers both the stale and the fresh border.
	prev geom.Rect
}

// New creates a Machine for a frame of the given size, starting at Idle.
func New(width, height float64) *Machine {
	return &Machine{bounds: geom.FromSize(width, height)}
}

// State returns the current lifecycle phase.
func (m *Machine) State() State { return m.state }

// Bounds returns the full frame rectangle.
func (m *Machine) Bounds() geom.Rect { return m.bounds }

// Committed returns the finalized rectangle, if one exists.
func (m *Machine) Committed() (geom.Rect, bool) {
	return m.committed, m.hasCommit
}

// DragRect returns the in-progress rectangle while a drag is active.
func (m *Machine) DragRect() (geom.Rect, bool) {
	if m.state != StateDragging {
		return geom.Rect{}, false
	}
	return geom.Normalize(m.start, m.current), true
}

// PointerDown starts a new drag at p. A press always starts fresh: any
// previously committed rectangle is discarded, never edited. The returned
// dirty region covers everything whose appearance changes; since the mask
// restyles from the idle hint (or the old selection) to a fresh drag, that
// is the whole frame.
func (m *Machine) PointerDown(p geom.Point) (geom.Rect, bool) {
	if m.state == StateCancelled {
		return geom.Rect{}, false
	}
	m.state = StateDragging
	m.start = p
	m.current = p
	m.committed = geom.Rect{}
	m.hasCommit = false
	m.prev = geom.Normalize(p, p)
	return m.bounds, true
}

// PointerMove updates the drag endpoint and returns the region to repaint:
// the union of the previous and new drag rectangles, outset so border
// strokes are invalidated, clipped to the frame. Moves while Idle,
// Committed, or Cancelled are no-ops.
func (m *Machine) PointerMove(p geom.Point) (geom.Rect, bool) {
	if m.state != StateDragging {
		return geom.Rect{}, false
	}
	old := m.prev
	m.current = p
	next := geom.Normalize(m.start, p)
	m.prev = next
	dirty := old.Union(next).Outset(dirtyMargin)
	return geom.ClampToBounds(dirty, m.bounds.X1, m.bounds.Y1), true
}

// PointerUp ends the drag. The selection commits only when both extents
// strictly exceed the click threshold; a sub-threshold release returns the
// machine to Idle with nothing committed, silently. The committed rectangle
// is clamped to the frame.
func (m *Machine) PointerUp(p geom.Point) (geom.Rect, bool) {
	if m.state != StateDragging {
		return geom.Rect{}, false
	}
	sel := geom.Normalize(m.start, p)
	if sel.Width() > commitThreshold && sel.Height() > commitThreshold {
		m.committed = geom.ClampToBounds(sel, m.bounds.X1, m.bounds.Y1)
		m.hasCommit = true
		m.state = StateCommitted
		return m.committed, true
	}
	m.state = StateIdle
	m.committed = geom.Rect{}
	m.hasCommit = false
	return geom.Rect{}, false
}

// SelectAll is the whole-image shortcut. When nothing is committed it
// commits the full frame directly, bypassing the drag threshold; when a
// rectangle is already committed it leaves it in place. Either way the
// returned rectangle is the one actions should operate on.
func (m *Machine) SelectAll() (geom.Rect, bool) {
	if m.state == StateCancelled {
		return geom.Rect{}, false
	}
	if m.hasCommit {
		return m.committed, true
	}
	m.committed = m.bounds
	m.hasCommit = true
	m.state = StateCommitted
	return m.committed, true
}

// Cancel moves the machine to its terminal state. The host observes this
// and ends the session; no transition leaves StateCancelled.
func (m *Machine) Cancel() {
	m.state = StateCancelled
	m.committed = geom.Rect{}
	m.hasCommit = false
}
