package dragdrop

import (
	"fmt"
	"image"
	"io"
	"log"
	"sort"
	"time"

	"gioui.org/f32"
)

// fakeClock is a deterministic Scheduler advanced by hand.
type fakeClock struct {
	now    time.Duration
	seq    int
	timers []*fakeTimer
}

type fakeTimer struct {
	at      time.Duration
	seq     int
	fn      func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

func (c *fakeClock) AfterFunc(d time.Duration, fn func()) Timer {
	c.seq++
	t := &fakeTimer{at: c.now + d, seq: c.seq, fn: fn}
	c.timers = append(c.timers, t)
	return t
}

// Advance fires, in order, every timer due within d, including the ones
// scheduled by the callbacks themselves.
func (c *fakeClock) Advance(d time.Duration) {
	end := c.now + d
	for {
		next := c.next(end)
		if next == nil {
			break
		}
		c.now = next.at
		next.fired = true
		next.fn()
	}
	c.now = end
}

func (c *fakeClock) next(end time.Duration) *fakeTimer {
	var pending []*fakeTimer
	for _, t := range c.timers {
		if !t.stopped && !t.fired && t.at <= end {
			pending = append(pending, t)
		}
	}
	if len(pending) == 0 {
		return nil
	}
	sort.Slice(pending, func(i, j int) bool {
		if pending[i].at == pending[j].at {
			return pending[i].seq < pending[j].seq
		}
		return pending[i].at < pending[j].at
	})
	return pending[0]
}

// Pending returns the number of timers neither fired nor stopped.
func (c *fakeClock) Pending() int {
	var n int
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

type rectRegion struct {
	r    Rectangle
	dead bool
}

func region(x0, y0, x1, y1 float32) *rectRegion {
	return &rectRegion{r: Rect(x0, y0, x1, y1)}
}

func (r *rectRegion) Bounds() Rectangle { return r.r }
func (r *rectRegion) Alive() bool           { return !r.dead }

type testSource struct {
	offered Operation
	began   int
	moves   []f32.Point
	ended   []Operation
	events  *[]string
}

func newSource(offered Operation, events *[]string) *testSource {
	return &testSource{offered: offered, events: events}
}

func (s *testSource) record(e string) {
	if s.events != nil {
		*s.events = append(*s.events, e)
	}
}

func (s *testSource) OfferedOperations(*Session) Operation { return s.offered }
func (s *testSource) Began(*Session) {
	s.began++
	s.record("source.began")
}
func (s *testSource) Moved(_ *Session, delta f32.Point) {
	s.moves = append(s.moves, delta)
}
func (s *testSource) Ended(_ *Session, op Operation) {
	s.ended = append(s.ended, op)
	s.record("source.ended:" + op.String())
}

type testDest struct {
	name    string
	offer   Operation
	prepare bool

	entered, updated, exited, prepared, completed int
	locations                                     []f32.Point
	events                                        *[]string
}

func newDest(name string, offer Operation, events *[]string) *testDest {
	return &testDest{name: name, offer: offer, prepare: true, events: events}
}

func (d *testDest) record(e string) {
	if d.events != nil {
		*d.events = append(*d.events, d.name+"."+e)
	}
}

func (d *testDest) Entered(info *Info) Operation {
	d.entered++
	d.locations = append(d.locations, info.Location())
	d.record("entered")
	return d.offer
}

func (d *testDest) Updated(info *Info) Operation {
	d.updated++
	d.locations = append(d.locations, info.Location())
	return d.offer
}

func (d *testDest) Exited(*Info) {
	d.exited++
	d.record("exited")
}

func (d *testDest) Prepare(*Info) bool {
	d.prepared++
	d.record("prepare")
	return d.prepare
}

func (d *testDest) Complete(*Info) {
	d.completed++
	d.record("complete")
}

type testScroller struct {
	visible Rectangle
	offset  f32.Point
	calls   int
}

func (s *testScroller) VisibleBounds() Rectangle { return s.visible }
func (s *testScroller) ScrollBy(delta f32.Point) {
	s.calls++
	s.offset = s.offset.Add(delta)
}

type scrollDest struct {
	*testDest
	insets    Insets
	container *testScroller
	updates   []Direction
}

func (d *scrollDest) AutoscrollInsets() Insets { return d.insets }

func (d *scrollDest) AutoscrollContainer() Scrollable {
	if d.container == nil {
		return nil
	}
	return d.container
}

func (d *scrollDest) AutoscrollUpdated(dir Direction, at f32.Point) {
	d.updates = append(d.updates, dir)
}

type steppedScrollDest struct {
	*scrollDest
	h, v float32
}

func (d *steppedScrollDest) AutoscrollHorizontalIncrement() float32 { return d.h }
func (d *steppedScrollDest) AutoscrollVerticalIncrement() float32   { return d.v }

type animSource struct {
	*testSource
	lifts []*AnimationContext
	drops []*AnimationContext
}

func (s *animSource) AnimateLift(ctx *AnimationContext) { s.lifts = append(s.lifts, ctx) }
func (s *animSource) AnimateDrop(ctx *AnimationContext) { s.drops = append(s.drops, ctx) }

type animDest struct {
	*testDest
	drops []*AnimationContext
}

func (d *animDest) AnimateLift(ctx *AnimationContext) { ctx.Complete() }
func (d *animDest) AnimateDrop(ctx *AnimationContext) { d.drops = append(d.drops, ctx) }

func testItem() *Item {
	return NewItem(map[string]any{"id": 7, "title": "card"}, NewSnapshot(image.NewNRGBA(image.Rect(0, 0, 20, 10))))
}

// newTestManager returns an attached manager over a 400x400 container.
func newTestManager() (*Manager, *fakeClock) {
	clock := &fakeClock{}
	m := NewManager(clock, DefaultConfig())
	m.Logger = log.New(io.Discard, "", 0)
	if err := m.Attach(region(0, 0, 400, 400)); err != nil {
		panic(fmt.Sprintf("attach: %v", err))
	}
	return m, clock
}
