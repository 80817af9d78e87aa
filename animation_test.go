package dragdrop

import (
	"bytes"
	"log"
	"testing"
	"time"

	"gioui.org/f32"
	"github.com/stretchr/testify/assert"
)

func TestAnimation_DefaultDrop(t *testing.T) {
	assert := assert.New(t)
	m, clock := newTestManager()

	dest := newDest("list", OperationGeneric, nil)
	m.Register(region(100, 100, 200, 200), dest)

	item := testItem()
	s, err := m.Start(item, newSource(OperationGeneric, nil), f32.Pt(10, 10))
	assert.NoError(err)
	assert.NoError(m.End(f32.Pt(120, 130), false))

	snap := item.Snapshot()
	assert.Equal(f32.Pt(120, 130), snap.Center)

	clock.Advance(16 * time.Millisecond)
	assert.Equal(StateEnding, s.State())
	assert.Greater(snap.Center.X, float32(120))
	assert.Less(snap.Center.X, float32(150))
	assert.Less(snap.Alpha, float32(0.85))

	// 250ms rendered in 16ms frames.
	clock.Advance(15 * 16 * time.Millisecond)
	assert.Equal(StateIdle, s.State())
	assert.InDelta(150, snap.Center.X, 1e-3)
	assert.InDelta(150, snap.Center.Y, 1e-3)
	assert.InDelta(0.55, snap.Scale, 1e-3)
	assert.InDelta(0, snap.Alpha, 1e-3)
	assert.Equal(1, dest.completed)
	assert.Equal(0, clock.Pending())
}

func TestAnimation_DefaultCancelReturnsToOrigin(t *testing.T) {
	assert := assert.New(t)
	m, clock := newTestManager()

	item := testItem()
	_, err := m.Start(item, newSource(OperationGeneric, nil), f32.Pt(10, 20))
	assert.NoError(err)
	assert.NoError(m.Update(f32.Pt(300, 300)))
	assert.NoError(m.Cancel())

	clock.Advance(time.Second)
	snap := item.Snapshot()
	assert.InDelta(10, snap.Center.X, 1e-3)
	assert.InDelta(20, snap.Center.Y, 1e-3)
	assert.InDelta(1, snap.Scale, 1e-3)
	assert.InDelta(0, snap.Alpha, 1e-3)
}

func TestAnimation_ZeroDurationIsSynchronous(t *testing.T) {
	assert := assert.New(t)

	cfg := DefaultConfig()
	cfg.DropDuration = 0
	clock := &fakeClock{}
	m := NewManager(clock, cfg)
	assert.NoError(m.Attach(region(0, 0, 100, 100)))

	src := newSource(OperationGeneric, nil)
	s, err := m.Start(testItem(), src, f32.Pt(10, 10))
	assert.NoError(err)
	assert.NoError(m.End(f32.Pt(10, 10), false))
	assert.Equal(StateIdle, s.State())
	assert.Equal([]Operation{OperationNone}, src.ended)
	assert.Nil(m.Session())
}

func TestAnimation_SourceLift(t *testing.T) {
	assert := assert.New(t)
	m, clock := newTestManager()

	var buf bytes.Buffer
	m.Logger = log.New(&buf, "", 0)

	src := &animSource{testSource: newSource(OperationGeneric, nil)}
	item := testItem()
	s, err := m.Start(item, src, f32.Pt(10, 10))
	assert.NoError(err)
	assert.Len(src.lifts, 1)
	assert.Equal(PhaseLift, src.lifts[0].Phase())
	assert.Same(s, src.lifts[0].Session())
	assert.Same(item.Snapshot(), src.lifts[0].Snapshot())

	// The default lift is not applied.
	assert.Equal(float32(1), item.Snapshot().Scale)

	src.lifts[0].Complete()
	assert.Equal(StateDragging, s.State())
	assert.Equal(0, clock.Pending())
	assert.Empty(buf.String())
}

func TestAnimation_LiftInvalidatedByDrop(t *testing.T) {
	assert := assert.New(t)
	m, clock := newTestManager()

	var buf bytes.Buffer
	m.Logger = log.New(&buf, "", 0)

	src := &animSource{testSource: newSource(OperationGeneric, nil)}
	s, err := m.Start(testItem(), src, f32.Pt(10, 10))
	assert.NoError(err)
	assert.NoError(m.End(f32.Pt(10, 10), false))

	// Cancelled drops are animated by the source.
	assert.Len(src.drops, 1)
	drop := src.drops[0]
	assert.Equal(PhaseDrop, drop.Phase())
	assert.Nil(drop.Destination())
	assert.Equal(OperationNone, drop.Operation())
	assert.Equal(f32.Pt(10, 10), drop.Target())

	// A late lift acknowledgment is silently ignored.
	src.lifts[0].Complete()
	assert.Equal(StateEnding, s.State())
	assert.Empty(buf.String())

	drop.Complete()
	assert.Equal(StateIdle, s.State())
	assert.Equal([]Operation{OperationNone}, src.ended)
	assert.Equal(0, clock.Pending())
}

func TestAnimation_DestinationDrop(t *testing.T) {
	assert := assert.New(t)
	m, _ := newTestManager()

	src := &animSource{testSource: newSource(OperationGeneric | OperationDelete, nil)}
	dest := &animDest{testDest: newDest("trash", OperationDelete, nil)}
	m.Register(region(100, 100, 200, 300), dest)

	s, err := m.Start(testItem(), src, f32.Pt(10, 10))
	assert.NoError(err)
	src.lifts[0].Complete()

	assert.NoError(m.End(f32.Pt(150, 150), false))
	assert.Empty(src.drops)
	assert.Len(dest.drops, 1)

	ctx := dest.drops[0]
	assert.Equal(Destination(dest), ctx.Destination())
	assert.Equal(OperationDelete, ctx.Operation())
	assert.Equal(f32.Pt(150, 200), ctx.Target())
	assert.Equal(Source(src), ctx.Source())
	assert.Equal(0, dest.completed)

	ctx.Complete()
	assert.Equal(1, dest.completed)
	assert.Equal(StateIdle, s.State())
	assert.Equal([]Operation{OperationDelete}, src.ended)
}

func TestAnimation_RejectedDropSkipsDestinationAnimator(t *testing.T) {
	assert := assert.New(t)
	m, clock := newTestManager()

	dest := &animDest{testDest: newDest("trash", OperationDelete, nil)}
	m.Register(region(100, 100, 200, 200), dest)

	s, err := m.Start(testItem(), newSource(OperationGeneric, nil), f32.Pt(10, 10))
	assert.NoError(err)
	assert.NoError(m.End(f32.Pt(150, 150), false))
	assert.ErrorIs(s.Err(), ErrRejectedByDestination)
	assert.Empty(dest.drops)

	clock.Advance(time.Second)
	assert.Equal(StateIdle, s.State())
}

func TestAnimation_DoubleAcknowledgment(t *testing.T) {
	assert := assert.New(t)
	m, _ := newTestManager()

	var buf bytes.Buffer
	m.Logger = log.New(&buf, "", 0)

	src := &animSource{testSource: newSource(OperationGeneric, nil)}
	_, err := m.Start(testItem(), src, f32.Pt(10, 10))
	assert.NoError(err)
	src.lifts[0].Complete()
	assert.NoError(m.Cancel())

	src.drops[0].Complete()
	src.drops[0].Complete()
	assert.Len(src.ended, 1)
	assert.Contains(buf.String(), "acknowledged more than once")
}

func TestAnimation_Watchdog(t *testing.T) {
	assert := assert.New(t)
	m, clock := newTestManager()

	var buf bytes.Buffer
	m.Logger = log.New(&buf, "", 0)

	src := &animSource{testSource: newSource(OperationGeneric, nil)}
	s, err := m.Start(testItem(), src, f32.Pt(10, 10))
	assert.NoError(err)
	src.lifts[0].Complete()
	assert.NoError(m.Cancel())

	clock.Advance(4 * time.Second)
	assert.Equal(StateEnding, s.State())

	clock.Advance(time.Second)
	assert.Equal(StateIdle, s.State())
	assert.Equal([]Operation{OperationNone}, src.ended)
	assert.Contains(buf.String(), "not acknowledged after 5s")

	// Acknowledging after the timeout is reported but has no effect.
	src.drops[0].Complete()
	assert.Len(src.ended, 1)
}

func TestAnimation_PhaseString(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("Lift", PhaseLift.String())
	assert.Equal("Drop", PhaseDrop.String())
}
