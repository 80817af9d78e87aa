package main

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"github.com/esimov/dragdrop"
	"github.com/esimov/dragdrop/giodrag"
	"github.com/esimov/dragdrop/imop"
	"github.com/esimov/dragdrop/utils"
)

// scriptQueue feeds the scripted pointer events to the drag handler.
type scriptQueue struct {
	events []event.Event
}

func (q *scriptQueue) Events(event.Tag) []event.Event {
	e := q.events
	q.events = nil
	return e
}

func (q *scriptQueue) push(step StepSpec) {
	var typ pointer.Type
	switch step.Action {
	case "press":
		typ = pointer.Press
	case "move":
		typ = pointer.Drag
	case "release":
		typ = pointer.Release
	case "cancel":
		typ = pointer.Cancel
	}
	q.events = append(q.events, pointer.Event{
		Type:     typ,
		Source:   pointer.Mouse,
		Buttons:  pointer.ButtonPrimary,
		Position: f32.Pt(step.X, step.Y),
	})
}

// replay runs the layout script without a window and writes one frame
// per pointer step and per scheduled task.
type replay struct {
	board   *board
	loop    *dragdrop.Loop
	handler *giodrag.Handler
	out     string
	deco    utils.Decorator
	frames  int
}

func newReplay(b *board, loop *dragdrop.Loop, out string, deco utils.Decorator) *replay {
	return &replay{
		board: b,
		loop:  loop,
		out:   out,
		deco:  deco,
		handler: &giodrag.Handler{
			Manager: b.manager,
			Pick:    b.pick,
			Slop:    3,
		},
	}
}

// Run replays the script, then waits for the last session to settle.
func (r *replay) Run(ctx context.Context, script []StepSpec) error {
	if err := os.MkdirAll(r.out, 0o755); err != nil {
		return fmt.Errorf("unable to create the frames directory: %w", err)
	}
	now := time.Now()

	q := &scriptQueue{}
	for i, step := range script {
		r.board.layout()
		q.push(step)
		if err := r.handler.Events(q); err != nil {
			r.status(fmt.Sprintf("step %d (%s): %v", i, step.Action, err), utils.ErrorMessage)
		}
		if err := r.render(); err != nil {
			return err
		}
		if step.Hold > 0 {
			if err := r.pump(ctx, step.Hold); err != nil {
				return err
			}
		}
	}

	if s := r.board.manager.Session(); s != nil {
		timeout := r.board.manager.Config().AckTimeout
		if err := r.pumpUntil(ctx, s.Done(), timeout); err != nil {
			return err
		}
	}

	r.status(fmt.Sprintf("%d frames written to %s in %s",
		r.frames, r.out, utils.FormatTime(time.Since(now))), utils.SuccessMessage)
	return nil
}

// pump runs the scheduled tasks for the given duration, rendering after each of them.
func (r *replay) pump(ctx context.Context, d time.Duration) error {
	return r.pumpUntil(ctx, nil, d)
}

func (r *replay) pumpUntil(ctx context.Context, done <-chan struct{}, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-done:
			return nil
		case <-timer.C:
			return nil
		case fn := <-r.loop.Tasks():
			fn()
			r.board.layout()
			if err := r.render(); err != nil {
				return err
			}
		}
	}
}

func (r *replay) render() error {
	img := renderFrame(r.board)
	name := filepath.Join(r.out, fmt.Sprintf("frame_%04d.png", r.frames))
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("unable to create the frame file: %w", err)
	}
	defer f.Close()

	if err := dragdrop.EncodeFrame(f, img); err != nil {
		return fmt.Errorf("unable to encode frame %d: %w", r.frames, err)
	}
	r.frames++
	return nil
}

func (r *replay) status(msg string, typ utils.MessageType) {
	fmt.Fprintf(os.Stderr, "%s %s\n",
		r.deco.Text("⇢ DRAGDEMO", utils.StatusMessage),
		r.deco.Text(msg, typ),
	)
}

// renderFrame flattens the board scene and the dragged snapshot into an image.
func renderFrame(b *board) *image.NRGBA {
	dst := image.NewNRGBA(image.Rectangle{Max: giodrag.ImageRect(dragdrop.Rectangle{Max: b.size}).Max})

	op := imop.InitOp()
	tint := &imop.Blend{OpType: imop.Multiply}

	for _, s := range b.scene() {
		r := s.rect
		if s.clip != (dragdrop.Rectangle{}) {
			r = r.Intersect(s.clip)
		}
		var blend *imop.Blend
		if s.tint {
			blend = tint
		}
		op.Fill(dst, giodrag.ImageRect(r), s.color, blend)
	}

	if snap := b.draggedSnapshot(); snap != nil {
		op.DrawAt(dst, snap.Render(), giodrag.ImageRect(snap.Bounds()).Min, nil)
	}
	return dst
}
