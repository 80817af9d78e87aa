package main

import (
	"image"
	"log"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/unit"
	"github.com/esimov/dragdrop"
	"github.com/esimov/dragdrop/giodrag"
)

// touchSlop is the distance, in dp, a pointer travels before a drag starts.
const touchSlop = 3

// runWindow is the Gio main loop of the demo. Window events and the tasks
// scheduled by the drag manager are served by the same goroutine, so the
// manager never runs concurrently with the painting.
func runWindow(b *board, loop *dragdrop.Loop, title string) error {
	w := app.NewWindow(
		app.Title(title),
		app.Size(unit.Dp(b.size.X), unit.Dp(b.size.Y)),
	)

	var ops op.Ops
	h := &giodrag.Handler{
		Manager: b.manager,
		Pick:    b.pick,
	}

	for {
		select {
		case e := <-w.Events():
			switch e := e.(type) {
			case system.FrameEvent:
				gtx := layout.NewContext(&ops, e)
				h.Slop = touchSlop * e.Metric.PxPerDp

				if err := h.Events(gtx.Queue); err != nil {
					log.Println(err)
				}
				b.size = f32.Pt(float32(e.Size.X), float32(e.Size.Y))
				b.layout()
				paintBoard(gtx.Ops, b)

				area := clip.Rect(image.Rectangle{Max: e.Size}).Push(gtx.Ops)
				h.Add(gtx.Ops)
				area.Pop()

				// Keep drawing while a snapshot is animated.
				if b.manager.Session() != nil {
					op.InvalidateOp{}.Add(gtx.Ops)
				}
				e.Frame(gtx.Ops)
			case key.Event:
				switch e.Name {
				case key.NameEscape:
					if b.manager.Session() != nil {
						b.manager.Cancel()
						w.Invalidate()
						continue
					}
					w.Perform(system.ActionClose)
				}
			case system.DestroyEvent:
				b.manager.Detach()
				loop.Close()
				return e.Err
			}
		case fn := <-loop.Tasks():
			fn()
			w.Invalidate()
		}
	}
}

// paintBoard paints the board scene, then the dragged snapshot above it.
func paintBoard(ops *op.Ops, b *board) {
	for _, s := range b.scene() {
		r := s.rect
		if s.clip != (dragdrop.Rectangle{}) {
			r = r.Intersect(s.clip)
		}
		c := s.color
		if s.tint {
			c.A = 96
		}
		giodrag.FillRect(ops, r, c)
	}
	giodrag.PaintSnapshot(ops, b.draggedSnapshot())
}
