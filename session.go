package dragdrop

import (
	"time"

	"gioui.org/f32"
	"github.com/google/uuid"
)

// State is the lifecycle stage of a session.
type State uint8

const (
	StateIdle State = iota
	StateBegan
	StateDragging
	StateEnding
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateBegan:
		return "Began"
	case StateDragging:
		return "Dragging"
	case StateEnding:
		return "Ending"
	}
	return "Unknown"
}

// Outcome is the terminal result of a session.
type Outcome uint8

const (
	// OutcomePending is reported until the drop has been decided.
	OutcomePending Outcome = iota
	OutcomeCompleted
	OutcomeCancelled
)

func (o Outcome) String() string {
	switch o {
	case OutcomePending:
		return "Pending"
	case OutcomeCompleted:
		return "Completed"
	case OutcomeCancelled:
		return "Cancelled"
	}
	return "Unknown"
}

// Session is a single drag interaction, from pick-up to drop or cancellation.
// Sessions are created by Manager.Start.
type Session struct {
	id      uuid.UUID
	state   State
	source  Source
	item    *Item
	started time.Time

	current    *registration
	offered    Operation
	negotiated Operation

	origin     f32.Point
	lastPoint  f32.Point
	grabOffset f32.Point

	outcome Outcome
	err     error
	done    chan struct{}
}

// ID returns the unique session identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// State returns the current lifecycle stage.
func (s *Session) State() State { return s.state }

// Item returns the dragged item.
func (s *Session) Item() *Item { return s.item }

// Source returns the source the item is dragged from.
func (s *Session) Source() Source { return s.source }

// OfferedOperations returns the operations offered by the source.
func (s *Session) OfferedOperations() Operation { return s.offered }

// Operation returns the operation negotiated with the current destination.
// It is always a subset of OfferedOperations.
func (s *Session) Operation() Operation { return s.negotiated }

// Destination returns the destination under the drag point, or the one which
// accepted the drop. It is nil otherwise.
func (s *Session) Destination() Destination {
	if s.current == nil {
		return nil
	}
	return s.current.dest
}

// Region returns the region of the current destination.
func (s *Session) Region() Region {
	if s.current == nil {
		return nil
	}
	return s.current.region
}

// Location returns the most recent drag point.
func (s *Session) Location() f32.Point { return s.lastPoint }

// Origin returns the point where the drag started.
func (s *Session) Origin() f32.Point { return s.origin }

// StartedAt returns the session creation time.
func (s *Session) StartedAt() time.Time { return s.started }

// Outcome returns the terminal result, OutcomePending while the drop is undecided.
func (s *Session) Outcome() Outcome { return s.outcome }

// Err returns the reason of a cancelled session: ErrCancelled,
// ErrNoDestination or ErrRejectedByDestination. It is nil otherwise.
func (s *Session) Err() error { return s.err }

// Done is closed once the session ended and its resources were released.
func (s *Session) Done() <-chan struct{} { return s.done }
