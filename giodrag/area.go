package giodrag

import "github.com/esimov/dragdrop"

// Tracker hands out the frame generations used to decide whether
// an Area is still part of the visual tree.
type Tracker struct {
	gen uint64
}

// Begin starts a new frame. Areas not laid out during the previous
// or the current frame stop being alive.
func (t *Tracker) Begin() {
	t.gen++
}

// NewArea returns an area which is not alive until its first Layout.
func (t *Tracker) NewArea() *Area {
	return &Area{tracker: t}
}

// Area is a rectangle of the window registered as a drag and drop region.
// It implements dragdrop.Region.
type Area struct {
	tracker *Tracker
	bounds  dragdrop.Rectangle
	seen    uint64
	removed bool
}

// Layout records the area bounds, in container coordinates, for the current frame.
func (a *Area) Layout(r dragdrop.Rectangle) {
	a.bounds = r
	a.seen = a.tracker.gen
}

// Remove marks the area as torn down.
func (a *Area) Remove() {
	a.removed = true
}

// Bounds returns the rectangle recorded by the last Layout.
func (a *Area) Bounds() dragdrop.Rectangle {
	return a.bounds
}

// Alive reports whether the area was laid out recently and not removed.
// Pointer events are processed before the layout of a frame, so the
// previous frame still counts.
func (a *Area) Alive() bool {
	if a.removed || a.seen == 0 {
		return false
	}
	return a.seen+1 >= a.tracker.gen
}
