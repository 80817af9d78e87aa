package dragdrop

import "gioui.org/f32"

// Source is the party a dragged item originates from.
type Source interface {
	// OfferedOperations returns the operations the source allows.
	// It is queried once per session and must not return OperationNone.
	OfferedOperations(s *Session) Operation
	// Began is called once the session started.
	Began(s *Session)
	// Moved reports the translation since the previous update.
	Moved(s *Session, delta f32.Point)
	// Ended is called after the drop and its animation completed,
	// with the final operation or OperationNone if the drag was cancelled.
	Ended(s *Session, op Operation)
}

// Destination is a registered drop target.
type Destination interface {
	// Entered is called when the drag point enters the destination region.
	Entered(info *Info) Operation
	// Updated is called on every move inside the region.
	Updated(info *Info) Operation
	// Exited is called when the point leaves the region or the drag is
	// cancelled while inside it.
	Exited(info *Info)
	// Prepare is called at drop time if the last offer was not OperationNone.
	// Returning false rejects the drop.
	Prepare(info *Info) bool
	// Complete is called after a successful Prepare, once the drop animation is done.
	Complete(info *Info)
}

// Region is a non-owning handle to a node of the host's visual tree.
// Implementations must be comparable, since regions key the registry.
type Region interface {
	// Bounds reports the region rectangle in container coordinates.
	Bounds() Rectangle
	// Alive reports whether the node is still part of the visual tree.
	// Regions which are not alive are ignored by the hit test.
	Alive() bool
}

// Insets are the widths of the autoscroll bands along each edge.
type Insets struct {
	Top, Bottom, Left, Right float32
}

// UniformInsets returns insets with the same width on every edge.
func UniformInsets(v float32) Insets {
	return Insets{Top: v, Bottom: v, Left: v, Right: v}
}

// Scrollable is a container which can be scrolled programmatically.
type Scrollable interface {
	// VisibleBounds is the visible part of the container in container coordinates.
	VisibleBounds() Rectangle
	// ScrollBy moves the content by delta.
	ScrollBy(delta f32.Point)
}

// Autoscroller is implemented by destinations whose region scrolls
// while the drag point stays close to its edges.
type Autoscroller interface {
	AutoscrollInsets() Insets
	AutoscrollContainer() Scrollable
	AutoscrollUpdated(dir Direction, at f32.Point)
}

// VerticalIncrementer overrides the vertical autoscroll step of an Autoscroller.
type VerticalIncrementer interface {
	AutoscrollVerticalIncrement() float32
}

// HorizontalIncrementer overrides the horizontal autoscroll step of an Autoscroller.
type HorizontalIncrementer interface {
	AutoscrollHorizontalIncrement() float32
}

// Animator customizes the lift and drop animations. A source implementing it
// animates the lift, and the drop when the item is not accepted; a destination
// implementing it animates the drops it accepts.
// Every call must be acknowledged exactly once through AnimationContext.Complete.
type Animator interface {
	AnimateLift(ctx *AnimationContext)
	AnimateDrop(ctx *AnimationContext)
}
