package dragdrop

import (
	"gioui.org/f32"
	"github.com/esimov/dragdrop/utils"
)

// AnimationPhase tells which animation a context belongs to.
type AnimationPhase uint8

const (
	PhaseLift AnimationPhase = iota
	PhaseDrop
)

func (p AnimationPhase) String() string {
	if p == PhaseLift {
		return "Lift"
	}
	return "Drop"
}

// AnimationContext is handed to custom animators. The session stays suspended
// until Complete is called; only the first call is honoured.
type AnimationContext struct {
	session     *Session
	phase       AnimationPhase
	destination Destination
	region      Region
	operation   Operation

	coord    *coordinator
	resume   func()
	watchdog Timer
	done     bool
	stale    bool
}

// Session returns the animated session.
func (c *AnimationContext) Session() *Session { return c.session }

// Phase returns whether the lift or the drop is animated.
func (c *AnimationContext) Phase() AnimationPhase { return c.phase }

// Snapshot returns the snapshot to animate.
func (c *AnimationContext) Snapshot() *Snapshot { return c.session.item.Snapshot() }

// Destination returns the destination which accepted the drop,
// or nil if the drop was not accepted.
func (c *AnimationContext) Destination() Destination { return c.destination }

// Operation returns the drop operation, OperationNone without a destination.
func (c *AnimationContext) Operation() Operation { return c.operation }

// Source returns the dragging source.
func (c *AnimationContext) Source() Source { return c.session.source }

// Target returns where the snapshot is expected to land: the center of the
// accepting destination region, or the initial snapshot position otherwise.
func (c *AnimationContext) Target() f32.Point {
	if c.region != nil {
		return c.region.Bounds().Center()
	}
	return c.session.origin.Add(c.session.grabOffset)
}

// Complete acknowledges the end of the animation.
func (c *AnimationContext) Complete() {
	if c.stale {
		return
	}
	if c.done {
		c.coord.warnf("%v animation of session %s acknowledged more than once", c.phase, c.session.id)
		return
	}
	c.done = true
	if c.watchdog != nil {
		c.watchdog.Stop()
		c.watchdog = nil
	}
	if c.resume != nil {
		c.resume()
	}
}

// invalidate drops a context whose session moved on. Late acknowledgments are ignored.
func (c *AnimationContext) invalidate() {
	c.stale = true
	if c.watchdog != nil {
		c.watchdog.Stop()
		c.watchdog = nil
	}
}

// coordinator runs the lift and drop animations of the active session.
type coordinator struct {
	cfg    Config
	sched  Scheduler
	warnf  func(format string, args ...any)
	lifted *AnimationContext
	drops  *AnimationContext
	frames Timer
}

func newCoordinator(sched Scheduler, cfg Config, warnf func(string, ...any)) *coordinator {
	return &coordinator{cfg: cfg, sched: sched, warnf: warnf}
}

// lift animates the pick-up, through the source animator when there is one.
func (c *coordinator) lift(s *Session) {
	ctx := &AnimationContext{session: s, phase: PhaseLift, coord: c}
	a, ok := s.source.(Animator)
	if !ok {
		snap := s.item.Snapshot()
		snap.Scale = c.cfg.LiftScale
		snap.Alpha = c.cfg.LiftAlpha
		return
	}
	ctx.resume = func() {
		if c.lifted == ctx {
			c.lifted = nil
		}
	}
	c.lifted = ctx
	ctx.watchdog = c.watch(ctx)
	a.AnimateLift(ctx)
}

// drop animates the end of the session and calls finish once acknowledged.
// The destination animates accepted drops, the source animates the others,
// the default animation runs when neither of them is an Animator.
func (c *coordinator) drop(s *Session, finish func()) {
	if c.lifted != nil {
		c.lifted.invalidate()
		c.lifted = nil
	}

	ctx := &AnimationContext{
		session:   s,
		phase:     PhaseDrop,
		operation: s.negotiated,
		coord:     c,
	}
	if s.outcome == OutcomeCompleted {
		ctx.destination = s.current.dest
		ctx.region = s.current.region
	}
	ctx.resume = func() {
		c.stopFrames()
		if c.drops == ctx {
			c.drops = nil
		}
		finish()
	}
	c.drops = ctx

	var animator Animator
	if a, ok := ctx.destination.(Animator); ok {
		animator = a
	} else if a, ok := s.source.(Animator); ok {
		animator = a
	}
	if animator == nil {
		c.defaultDrop(ctx)
		return
	}
	ctx.watchdog = c.watch(ctx)
	animator.AnimateDrop(ctx)
}

// abort acknowledges the pending drop immediately.
func (c *coordinator) abort() {
	if c.lifted != nil {
		c.lifted.invalidate()
		c.lifted = nil
	}
	if c.drops != nil {
		c.drops.Complete()
	}
}

// watch forces the acknowledgment of ctx once the timeout elapsed.
func (c *coordinator) watch(ctx *AnimationContext) Timer {
	return c.sched.AfterFunc(c.cfg.AckTimeout, func() {
		ctx.watchdog = nil
		if ctx.done || ctx.stale {
			return
		}
		c.warnf("%v animation of session %s not acknowledged after %v, forcing completion",
			ctx.phase, ctx.session.id, c.cfg.AckTimeout)
		ctx.Complete()
	})
}

// defaultDrop moves the snapshot to its target while fading and shrinking it.
func (c *coordinator) defaultDrop(ctx *AnimationContext) {
	snap := ctx.Snapshot()
	from, to := snap.Center, ctx.Target()
	fromScale, fromAlpha := snap.Scale, snap.Alpha
	toScale := float32(1)
	if ctx.destination != nil {
		toScale = fromScale * 0.5
	}

	var frames int
	if c.cfg.FrameInterval > 0 {
		frames = int(c.cfg.DropDuration / c.cfg.FrameInterval)
	}
	apply := func(t float32) {
		// Ease out.
		t = 1 - (1-t)*(1-t)
		snap.Center = f32.Pt(utils.Lerp(from.X, to.X, t), utils.Lerp(from.Y, to.Y, t))
		snap.Scale = utils.Lerp(fromScale, toScale, t)
		snap.Alpha = utils.Lerp(fromAlpha, 0, t)
	}
	if frames < 1 {
		apply(1)
		ctx.Complete()
		return
	}

	var step int
	var tick func()
	tick = func() {
		c.frames = nil
		step++
		apply(float32(step) / float32(frames))
		if step >= frames {
			ctx.Complete()
			return
		}
		c.frames = c.sched.AfterFunc(c.cfg.FrameInterval, tick)
	}
	c.frames = c.sched.AfterFunc(c.cfg.FrameInterval, tick)
}

func (c *coordinator) stopFrames() {
	if c.frames != nil {
		c.frames.Stop()
		c.frames = nil
	}
}
