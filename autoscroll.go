package dragdrop

import (
	"time"

	"gioui.org/f32"
)

// DirectionFor returns the autoscroll direction for a point inside the visible
// bounds of a scrollable container. A direction is set for every edge whose
// inset band contains the point. Points outside the bounds never autoscroll.
func DirectionFor(at f32.Point, visible Rectangle, in Insets) Direction {
	if !visible.Contains(at) {
		return DirectionNone
	}
	dir := DirectionNone
	if at.Y < visible.Min.Y+in.Top {
		dir |= DirectionUp
	}
	if at.Y >= visible.Max.Y-in.Bottom {
		dir |= DirectionDown
	}
	if at.X < visible.Min.X+in.Left {
		dir |= DirectionLeft
	}
	if at.X >= visible.Max.X-in.Right {
		dir |= DirectionRight
	}
	return dir
}

// autoscroller scrolls the container of the current destination while
// the drag point stays inside one of its autoscroll bands.
type autoscroller struct {
	sched     Scheduler
	interval  time.Duration
	increment float32

	target Autoscroller
	dir    Direction
	at     f32.Point
	timer  Timer
}

func newAutoscroller(sched Scheduler, cfg Config) *autoscroller {
	return &autoscroller{
		sched:     sched,
		interval:  cfg.AutoscrollInterval,
		increment: cfg.AutoscrollIncrement,
	}
}

// update recomputes the direction for the destination under the point,
// scheduling or cancelling the recurring tick accordingly.
func (a *autoscroller) update(dest Destination, at f32.Point) {
	target, ok := dest.(Autoscroller)
	if !ok {
		a.stop()
		return
	}
	container := target.AutoscrollContainer()
	if container == nil {
		a.stop()
		return
	}

	a.target, a.at = target, at
	a.dir = DirectionFor(at, container.VisibleBounds(), target.AutoscrollInsets())
	if a.dir.IsNone() {
		a.cancel()
		return
	}
	if a.timer == nil {
		a.timer = a.sched.AfterFunc(a.interval, a.tick)
	}
}

func (a *autoscroller) tick() {
	a.timer = nil
	if a.target == nil || a.dir.IsNone() {
		return
	}
	container := a.target.AutoscrollContainer()
	if container == nil {
		a.stop()
		return
	}

	h, v := a.increments()
	var delta f32.Point
	if a.dir.Has(DirectionUp) {
		delta.Y -= v
	}
	if a.dir.Has(DirectionDown) {
		delta.Y += v
	}
	if a.dir.Has(DirectionLeft) {
		delta.X -= h
	}
	if a.dir.Has(DirectionRight) {
		delta.X += h
	}
	container.ScrollBy(delta)
	a.target.AutoscrollUpdated(a.dir, a.at)

	// The destination may have stopped the drag from its callback.
	if a.target != nil && !a.dir.IsNone() && a.timer == nil {
		a.timer = a.sched.AfterFunc(a.interval, a.tick)
	}
}

// increments returns the horizontal and vertical scroll steps.
func (a *autoscroller) increments() (h, v float32) {
	h, v = a.increment, a.increment
	if inc, ok := a.target.(HorizontalIncrementer); ok {
		if n := inc.AutoscrollHorizontalIncrement(); n > 0 {
			h = n
		}
	}
	if inc, ok := a.target.(VerticalIncrementer); ok {
		if n := inc.AutoscrollVerticalIncrement(); n > 0 {
			v = n
		}
	}
	return h, v
}

// scheduled reports whether a tick is pending.
func (a *autoscroller) scheduled() bool {
	return a.timer != nil
}

// cancel stops the pending tick but keeps the target.
func (a *autoscroller) cancel() {
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.dir = DirectionNone
}

// stop tears the autoscroll state down.
func (a *autoscroller) stop() {
	a.cancel()
	a.target = nil
}
