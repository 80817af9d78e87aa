package main

import (
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gioui.org/f32"
	"github.com/esimov/dragdrop"
	"github.com/esimov/dragdrop/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// manualClock runs the scheduled calls when advanced.
type manualClock struct {
	now   time.Duration
	calls []*manualCall
}

type manualCall struct {
	at   time.Duration
	fn   func()
	done bool
}

func (c *manualCall) Stop() bool {
	if c.done {
		return false
	}
	c.done = true
	return true
}

func (c *manualClock) AfterFunc(d time.Duration, fn func()) dragdrop.Timer {
	call := &manualCall{at: c.now + d, fn: fn}
	c.calls = append(c.calls, call)
	return call
}

func (c *manualClock) Advance(d time.Duration) {
	end := c.now + d
	for {
		var next *manualCall
		for _, call := range c.calls {
			if !call.done && call.at <= end && (next == nil || call.at < next.at) {
				next = call
			}
		}
		if next == nil {
			break
		}
		c.now = next.at
		next.done = true
		next.fn()
	}
	c.now = end
}

func testBoard(t *testing.T, sched dragdrop.Scheduler, cfg dragdrop.Config) *board {
	t.Helper()

	lay, err := LoadLayout("")
	require.NoError(t, err)

	m := dragdrop.NewManager(sched, cfg)
	m.Logger = log.New(io.Discard, "", 0)

	b, err := newBoard(m, sched, lay, nil)
	require.NoError(t, err)
	return b
}

func titles(l *list) []string {
	var out []string
	for _, c := range l.cards {
		out = append(out, c.title)
	}
	return out
}

func TestBoard_Pick(t *testing.T) {
	assert := assert.New(t)
	b := testBoard(t, &manualClock{}, dragdrop.DefaultConfig())

	item, src, ok := b.pick(f32.Pt(120, 45))
	require.True(t, ok)
	assert.Same(b.list("todo"), src)

	v, _ := item.Value("title")
	assert.Equal("design", v)
	v, _ = item.Value("list")
	assert.Equal("todo", v)

	snap := item.Snapshot()
	r := b.list("todo").cardRect(0)
	assert.Equal(r.Min.Add(r.Max).Mul(0.5), snap.Center)
	assert.Equal(int(r.Dx()), snap.Image.Bounds().Dx())
	assert.Equal(cardHeight, snap.Image.Bounds().Dy())

	_, _, ok = b.pick(f32.Pt(600, 20))
	assert.False(ok)
}

func TestBoard_MoveBetweenLists(t *testing.T) {
	assert := assert.New(t)

	cfg := dragdrop.DefaultConfig()
	cfg.DropDuration = 0
	b := testBoard(t, &manualClock{}, cfg)

	var logs []string
	b.logf = func(format string, args ...any) { logs = append(logs, format) }

	item, src, ok := b.pick(f32.Pt(120, 45))
	require.True(t, ok)
	_, err := b.manager.Start(item, src, f32.Pt(120, 45))
	require.NoError(t, err)

	done := b.list("done")
	require.NoError(t, b.manager.Update(f32.Pt(330, 200)))
	assert.True(done.hovered)
	assert.Equal(2, done.insertAt)

	require.NoError(t, b.manager.End(f32.Pt(330, 200), false))
	assert.Nil(b.manager.Session())
	assert.False(done.hovered)
	assert.Zero(b.dragged)

	assert.Equal([]string{"setup", "prototype", "design"}, titles(done))
	assert.Len(b.list("todo").cards, 9)
	assert.Equal("review", b.list("todo").cards[0].title)
	assert.Len(logs, 1)
}

func TestBoard_ReorderWithinList(t *testing.T) {
	assert := assert.New(t)

	cfg := dragdrop.DefaultConfig()
	cfg.DropDuration = 0
	b := testBoard(t, &manualClock{}, cfg)
	todo := b.list("todo")

	item, src, _ := b.pick(f32.Pt(120, 45))
	_, err := b.manager.Start(item, src, f32.Pt(120, 45))
	require.NoError(t, err)

	// Drop between the third and fourth cards.
	at := todo.scroller.FromContent(f32.Pt(100, cardPadding+3*cardPitch))
	require.NoError(t, b.manager.End(at, false))

	assert.Equal([]string{"review", "deploy", "design", "monitor"}, titles(todo)[:4])
	assert.Len(todo.cards, 10)
}

func TestBoard_DeleteIntoTrash(t *testing.T) {
	assert := assert.New(t)

	clock := &manualClock{}
	b := testBoard(t, clock, dragdrop.DefaultConfig())
	todo := b.list("todo")

	item, src, _ := b.pick(f32.Pt(120, 45))
	_, err := b.manager.Start(item, src, f32.Pt(120, 45))
	require.NoError(t, err)

	require.NoError(t, b.manager.Update(f32.Pt(530, 410)))
	assert.True(b.trash.hovered)
	assert.Equal(dragdrop.OperationDelete, b.manager.Session().Operation())

	require.NoError(t, b.manager.End(f32.Pt(530, 410), false))
	s := b.manager.Session()
	require.NotNil(t, s)
	assert.Equal(dragdrop.StateEnding, s.State())

	clock.Advance(3 * b.manager.Config().FrameInterval)
	assert.NotNil(b.manager.Session())
	assert.Less(item.Snapshot().Scale, float32(1))

	clock.Advance(trashFrames * b.manager.Config().FrameInterval)
	assert.Nil(b.manager.Session())
	assert.Equal(float32(0), item.Snapshot().Scale)
	assert.Equal(1, b.trash.count)
	assert.Len(todo.cards, 9)
	assert.Equal(-1, todo.indexOf(1))
	assert.Equal("trash (1 deleted)", b.trash.String())
}

func TestBoard_Autoscroll(t *testing.T) {
	assert := assert.New(t)

	clock := &manualClock{}
	b := testBoard(t, clock, dragdrop.DefaultConfig())
	todo := b.list("todo")

	item, src, _ := b.pick(f32.Pt(120, 45))
	_, err := b.manager.Start(item, src, f32.Pt(120, 45))
	require.NoError(t, err)

	require.NoError(t, b.manager.Update(f32.Pt(120, 445)))
	assert.Equal(dragdrop.DirectionDown, b.manager.AutoscrollDirection())

	clock.Advance(5 * b.manager.Config().AutoscrollInterval)
	assert.Greater(todo.scroller.Offset().Y, float32(0))

	require.NoError(t, b.manager.Cancel())
	clock.Advance(time.Second)
	assert.Nil(b.manager.Session())
	assert.Len(todo.cards, 10)
}

func TestBoard_SceneAndFrame(t *testing.T) {
	assert := assert.New(t)
	b := testBoard(t, &manualClock{}, dragdrop.DefaultConfig())

	shapes := b.scene()
	// background, two lists, twelve cards, trash
	assert.Len(shapes, 16)

	img := renderFrame(b)
	assert.Equal(640, img.Bounds().Dx())
	assert.Equal(480, img.Bounds().Dy())
	assert.Equal(backgroundColor, img.NRGBAAt(5, 5))
	assert.Equal(trashColor, img.NRGBAAt(530, 410))
	assert.Equal(listColor, img.NRGBAAt(300, 300))

	// The hover tint is multiplied with the white list background.
	b.list("done").hovered = true
	img = renderFrame(b)
	assert.Equal(hoverColor, img.NRGBAAt(300, 300))
	assert.Equal(backgroundColor, img.NRGBAAt(5, 5))
	b.list("done").hovered = false

	item, src, _ := b.pick(f32.Pt(120, 45))
	_, err := b.manager.Start(item, src, f32.Pt(120, 45))
	require.NoError(t, err)
	assert.Len(b.scene(), 15)
	assert.Same(item.Snapshot(), b.draggedSnapshot())
}

func TestReplay_WritesFrames(t *testing.T) {
	assert := assert.New(t)

	loop := dragdrop.NewLoop()
	defer loop.Close()

	cfg := dragdrop.DefaultConfig()
	cfg.DropDuration = 0
	b := testBoard(t, loop, cfg)

	out := filepath.Join(t.TempDir(), "frames")
	r := newReplay(b, loop, out, utils.Decorator{})
	script := []StepSpec{
		{Action: "press", X: 120, Y: 45},
		{Action: "move", X: 200, Y: 80},
		{Action: "move", X: 330, Y: 200},
		{Action: "release", X: 330, Y: 200},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, r.Run(ctx, script))

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Len(entries, 4)
	assert.Equal(4, r.frames)
	assert.Equal("design", b.list("done").cards[2].title)
}
