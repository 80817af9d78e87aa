package giodrag

import (
	"testing"

	"gioui.org/f32"
	"github.com/esimov/dragdrop"
	"github.com/stretchr/testify/assert"
)

func TestArea_Liveness(t *testing.T) {
	assert := assert.New(t)

	tracker := &Tracker{}
	a := tracker.NewArea()
	assert.False(a.Alive())

	tracker.Begin()
	a.Layout(dragdrop.Rect(0, 0, 10, 10))
	assert.True(a.Alive())
	assert.Equal(dragdrop.Rect(0, 0, 10, 10), a.Bounds())

	// Events of the next frame are handled before its layout.
	tracker.Begin()
	assert.True(a.Alive())

	tracker.Begin()
	assert.False(a.Alive())

	a.Layout(dragdrop.Rect(5, 5, 10, 10))
	assert.True(a.Alive())
	a.Remove()
	assert.False(a.Alive())
}

func TestScroller_Clamp(t *testing.T) {
	assert := assert.New(t)

	s := &Scroller{
		Viewport: dragdrop.Rect(10, 10, 110, 60),
		Content:  f32.Pt(100, 200),
	}
	assert.Equal(dragdrop.Rect(10, 10, 110, 60), s.VisibleBounds())

	s.ScrollBy(f32.Pt(0, -10))
	assert.Equal(f32.Point{}, s.Offset())

	s.ScrollBy(f32.Pt(5, 40))
	assert.Equal(f32.Pt(0, 40), s.Offset())
	assert.Equal(f32.Pt(20, 70), s.ToContent(f32.Pt(30, 40)))
	assert.Equal(f32.Pt(30, 40), s.FromContent(f32.Pt(20, 70)))

	s.ScrollBy(f32.Pt(0, 1000))
	assert.Equal(f32.Pt(0, 150), s.Offset())

	s.SetContent(f32.Pt(100, 80))
	assert.Equal(f32.Pt(0, 30), s.Offset())
}

func TestPaint_ImageRect(t *testing.T) {
	assert := assert.New(t)

	r := ImageRect(dragdrop.Rect(0.5, 1.2, 10.1, 20))
	assert.Equal(0, r.Min.X)
	assert.Equal(1, r.Min.Y)
	assert.Equal(11, r.Max.X)
	assert.Equal(20, r.Max.Y)
}
