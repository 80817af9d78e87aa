package giodrag

import (
	"gioui.org/f32"
	"github.com/esimov/dragdrop"
	"github.com/esimov/dragdrop/utils"
)

// Scroller is a scrollable viewport over a content larger than itself.
// It implements dragdrop.Scrollable.
type Scroller struct {
	// Viewport is the visible part, in container coordinates.
	Viewport dragdrop.Rectangle
	// Content is the size of the scrolled content.
	Content f32.Point

	offset f32.Point
}

// VisibleBounds returns the viewport.
func (s *Scroller) VisibleBounds() dragdrop.Rectangle {
	return s.Viewport
}

// ScrollBy moves the content, keeping it within the viewport.
func (s *Scroller) ScrollBy(delta f32.Point) {
	s.offset = s.clamp(s.offset.Add(delta))
}

// Offset returns the scrolled distance from the content origin.
func (s *Scroller) Offset() f32.Point {
	return s.offset
}

// SetContent updates the content size and clamps the offset to it.
func (s *Scroller) SetContent(size f32.Point) {
	s.Content = size
	s.offset = s.clamp(s.offset)
}

// ToContent converts a point of the viewport to content coordinates.
func (s *Scroller) ToContent(p f32.Point) f32.Point {
	return p.Sub(s.Viewport.Min).Add(s.offset)
}

// FromContent converts a content point to container coordinates.
func (s *Scroller) FromContent(p f32.Point) f32.Point {
	return p.Sub(s.offset).Add(s.Viewport.Min)
}

func (s *Scroller) clamp(p f32.Point) f32.Point {
	size := s.Viewport.Size()
	maxX := utils.Max(0, s.Content.X-size.X)
	maxY := utils.Max(0, s.Content.Y-size.Y)
	return f32.Pt(utils.Clamp(p.X, 0, maxX), utils.Clamp(p.Y, 0, maxY))
}
