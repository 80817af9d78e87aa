package dragdrop

import "gioui.org/f32"

// Info is handed to destinations and describes the dragged item
// relative to the destination region.
type Info struct {
	session *Session
	region  Region
}

func newInfo(s *Session, r Region) *Info {
	return &Info{session: s, region: r}
}

// Session returns the session being dragged.
func (i *Info) Session() *Session { return i.session }

// Snapshot returns the snapshot shown under the pointer.
func (i *Info) Snapshot() *Snapshot { return i.session.item.Snapshot() }

// SnapshotCenter returns the snapshot center in the destination coordinate system.
func (i *Info) SnapshotCenter() f32.Point {
	return i.toLocal(i.Snapshot().Center)
}

// Location returns the drag point in the destination coordinate system.
func (i *Info) Location() f32.Point {
	return i.toLocal(i.session.lastPoint)
}

// Source returns the dragging source.
func (i *Info) Source() Source { return i.session.source }

// SourceOperations returns the operations offered by the source.
func (i *Info) SourceOperations() Operation { return i.session.offered }

// Payload returns a copy of the dragged item payload.
func (i *Info) Payload() map[string]any { return i.session.item.Payload() }

// Value returns a single payload value.
func (i *Info) Value(key string) (any, bool) { return i.session.item.Value(key) }

func (i *Info) toLocal(p f32.Point) f32.Point {
	if i.region == nil {
		return p
	}
	return p.Sub(i.region.Bounds().Min)
}
