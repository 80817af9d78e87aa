package giodrag

import (
	"errors"
	"fmt"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/op"
	"github.com/esimov/dragdrop"
)

// PickFunc returns the item under a press point and the source it belongs to.
type PickFunc func(at f32.Point) (*dragdrop.Item, dragdrop.Source, bool)

// Handler drives the sessions of a Manager from the pointer events
// received by a drag area. A session starts once the pointer travelled
// more than Slop pixels from the press point.
type Handler struct {
	Manager *dragdrop.Manager
	Pick    PickFunc
	Slop    float32

	pressed  bool
	dragging bool
	pid      pointer.ID
	start    f32.Point
	last     f32.Point
}

// Add registers the handler for the pointer events of the current clip area.
// The handler grabs the pointer while a session is running.
func (h *Handler) Add(ops *op.Ops) {
	pointer.InputOp{
		Tag:   h,
		Grab:  h.dragging,
		Types: pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
	}.Add(ops)
}

// Dragging reports whether the handler runs a session.
func (h *Handler) Dragging() bool { return h.dragging }

// Pressed reports whether a pointer is pressing.
func (h *Handler) Pressed() bool { return h.pressed }

// Events processes the queued pointer events and returns the errors
// reported by the manager, if any.
func (h *Handler) Events(q event.Queue) error {
	var errs []error
	for _, e := range q.Events(h) {
		e, ok := e.(pointer.Event)
		if !ok {
			continue
		}
		if err := h.handle(e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (h *Handler) handle(e pointer.Event) error {
	switch e.Type {
	case pointer.Press:
		if !(e.Buttons == pointer.ButtonPrimary || e.Source == pointer.Touch) {
			return nil
		}
		if h.pressed {
			return nil
		}
		h.pressed = true
		h.pid = e.PointerID
		h.start, h.last = e.Position, e.Position
	case pointer.Drag:
		if !h.pressed || e.PointerID != h.pid {
			return nil
		}
		h.last = e.Position
		if !h.dragging {
			diff := e.Position.Sub(h.start)
			if diff.X*diff.X+diff.Y*diff.Y <= h.Slop*h.Slop {
				return nil
			}
			if err := h.begin(); err != nil {
				return err
			}
			if !h.dragging {
				return nil
			}
		}
		return h.Manager.Update(e.Position)
	case pointer.Release:
		if !h.pressed || e.PointerID != h.pid {
			return nil
		}
		return h.finish(e.Position, false)
	case pointer.Cancel:
		if !h.pressed {
			return nil
		}
		return h.finish(h.last, true)
	}
	return nil
}

func (h *Handler) begin() error {
	if h.Pick == nil {
		h.reset()
		return nil
	}
	item, src, ok := h.Pick(h.start)
	if !ok {
		h.reset()
		return nil
	}
	if _, err := h.Manager.Start(item, src, h.start); err != nil {
		h.reset()
		return fmt.Errorf("start drag: %w", err)
	}
	h.dragging = true
	return nil
}

func (h *Handler) finish(at f32.Point, cancelled bool) error {
	dragging := h.dragging
	h.reset()
	if !dragging {
		return nil
	}
	return h.Manager.End(at, cancelled)
}

func (h *Handler) reset() {
	h.pressed = false
	h.dragging = false
}
