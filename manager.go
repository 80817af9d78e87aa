package dragdrop

import (
	"fmt"
	"log"
	"time"

	"gioui.org/f32"
	"github.com/google/uuid"
)

// Manager owns the dragging session of a container. It resolves the destination
// under the drag point, negotiates the operation between source and destination,
// drives autoscrolling and coordinates the lift and drop animations.
//
// A Manager is not safe for concurrent use. All methods, and the callbacks
// scheduled through its Scheduler, must run on the same execution context.
type Manager struct {
	// Logger receives contract violations and, with Debug set, session traces.
	Logger *log.Logger
	Debug  bool

	cfg       Config
	sched     Scheduler
	registry  *Registry
	container Region
	attached  bool
	session   *Session
	scroller  *autoscroller
	anim      *coordinator
}

// NewManager creates a detached manager. A zero Config is replaced by DefaultConfig,
// the unset or invalid fields of any other Config take their default value.
func NewManager(sched Scheduler, cfg Config) *Manager {
	if cfg == (Config{}) {
		cfg = DefaultConfig()
	}
	cfg = cfg.withDefaults()
	m := &Manager{
		Logger:   log.Default(),
		cfg:      cfg,
		sched:    sched,
		registry: NewRegistry(),
	}
	m.scroller = newAutoscroller(sched, cfg)
	m.anim = newCoordinator(sched, cfg, m.warnf)
	return m
}

// Config returns the manager configuration.
func (m *Manager) Config() Config { return m.cfg }

// Attach binds the manager to the container in which dragging takes place.
func (m *Manager) Attach(container Region) error {
	if m.attached {
		return fmt.Errorf("%w: manager is already attached", ErrInvalidState)
	}
	if container == nil {
		return fmt.Errorf("%w: nil container", ErrInvalidState)
	}
	m.container = container
	m.attached = true
	m.tracef("attached to container %v", container.Bounds())
	return nil
}

// Detach cancels the active session, if any, and drops the registrations.
// The manager can be attached again afterwards.
func (m *Manager) Detach() {
	if s := m.session; s != nil {
		if s.state == StateDragging {
			m.End(s.lastPoint, true)
		}
		// Detaching does not wait for the drop animation.
		m.anim.abort()
	}
	m.scroller.stop()
	m.registry.Reset()
	m.container = nil
	m.attached = false
}

// Container returns the region the manager is attached to.
func (m *Manager) Container() Region { return m.container }

// Registry returns the destination registry.
func (m *Manager) Registry() *Registry { return m.registry }

// Register makes dest handle drops inside region.
func (m *Manager) Register(region Region, dest Destination) {
	m.registry.Register(region, dest)
}

// Unregister removes the destination of region.
func (m *Manager) Unregister(region Region) bool {
	return m.registry.Unregister(region)
}

// Session returns the active session, or nil when idle.
func (m *Manager) Session() *Session { return m.session }

// State returns the state of the active session, StateIdle without one.
func (m *Manager) State() State {
	if m.session == nil {
		return StateIdle
	}
	return m.session.state
}

// AutoscrollDirection returns the direction currently autoscrolled.
func (m *Manager) AutoscrollDirection() Direction { return m.scroller.dir }

// Autoscrolling reports whether an autoscroll tick is scheduled.
func (m *Manager) Autoscrolling() bool { return m.scroller.scheduled() }

// Start begins a dragging session for item, picked up from src at the given point.
func (m *Manager) Start(item *Item, src Source, at f32.Point) (*Session, error) {
	switch {
	case !m.attached:
		return nil, fmt.Errorf("%w: manager is not attached", ErrInvalidState)
	case m.session != nil:
		return nil, fmt.Errorf("%w: session %s is %v", ErrInvalidState, m.session.id, m.session.state)
	case item == nil:
		return nil, fmt.Errorf("%w: nil item", ErrInvalidState)
	case src == nil:
		return nil, fmt.Errorf("%w: nil source", ErrInvalidState)
	case item.InUse():
		return nil, fmt.Errorf("%w: item is owned by another session", ErrInvalidState)
	}

	s := &Session{
		id:        uuid.New(),
		state:     StateBegan,
		source:    src,
		item:      item,
		started:   time.Now(),
		origin:    at,
		lastPoint: at,
		done:      make(chan struct{}),
	}
	s.offered = src.OfferedOperations(s).Intersect(OperationAll)
	if s.offered.IsNone() {
		return nil, fmt.Errorf("%w: source offers no operation", ErrInvalidState)
	}
	item.claim()

	// The snapshot keeps its offset to the finger if the caller placed it.
	snap := item.Snapshot()
	if snap.Center != (f32.Point{}) {
		s.grabOffset = snap.Center.Sub(at)
	}
	snap.Center = at.Add(s.grabOffset)

	m.session = s
	m.tracef("session %s began at %v, offering %v", s.id, at, s.offered)

	src.Began(s)
	m.anim.lift(s)
	s.state = StateDragging
	return s, nil
}

// Update moves the drag point of the active session.
func (m *Manager) Update(at f32.Point) error {
	s := m.session
	if s == nil || s.state != StateDragging {
		return fmt.Errorf("%w: update while %v", ErrInvalidState, m.State())
	}
	m.update(s, at)
	return nil
}

func (m *Manager) update(s *Session, at f32.Point) {
	delta := at.Sub(s.lastPoint)
	m.move(s, at)
	m.hitTest(s)
	s.source.Moved(s, delta)
	m.scroller.update(s.Destination(), at)
}

func (m *Manager) move(s *Session, at f32.Point) {
	s.lastPoint = at
	s.item.Snapshot().Center = at.Add(s.grabOffset)
}

// hitTest resolves the destination under the drag point and refreshes the negotiated operation.
func (m *Manager) hitTest(s *Session) {
	e := m.registry.resolve(s.lastPoint)
	if e == s.current {
		if e != nil {
			s.negotiated = e.dest.Updated(newInfo(s, e.region)).Intersect(s.offered)
		}
		return
	}

	if prev := s.current; prev != nil {
		m.tracef("session %s exited %v", s.id, prev.region.Bounds())
		prev.dest.Exited(newInfo(s, prev.region))
	}
	s.current = e
	if e == nil {
		s.negotiated = OperationNone
		return
	}
	s.negotiated = e.dest.Entered(newInfo(s, e.region)).Intersect(s.offered)
	m.tracef("session %s entered %v, negotiated %v", s.id, e.region.Bounds(), s.negotiated)
}

// End drops the item at the given point. A cancelled drop never reaches a destination.
// The session is released once the drop animation has been acknowledged.
func (m *Manager) End(at f32.Point, cancelled bool) error {
	s := m.session
	if s == nil || s.state != StateDragging {
		return fmt.Errorf("%w: end while %v", ErrInvalidState, m.State())
	}

	if at != s.lastPoint {
		if cancelled {
			delta := at.Sub(s.lastPoint)
			m.move(s, at)
			s.source.Moved(s, delta)
		} else {
			m.update(s, at)
		}
	}

	s.state = StateEnding
	s.outcome, s.err = m.outcome(s, cancelled)
	if s.outcome == OutcomeCancelled {
		s.negotiated = OperationNone
	}
	m.scroller.stop()
	m.tracef("session %s ending: %v (%v)", s.id, s.outcome, s.err)

	m.anim.drop(s, func() { m.finish(s) })
	return nil
}

// Cancel ends the active session without dropping it.
func (m *Manager) Cancel() error {
	s := m.session
	if s == nil {
		return fmt.Errorf("%w: cancel while %v", ErrInvalidState, StateIdle)
	}
	return m.End(s.lastPoint, true)
}

// outcome decides how the session ends. The destination is exited on every
// path which does not complete the drop.
func (m *Manager) outcome(s *Session, cancelled bool) (Outcome, error) {
	cur := s.current
	var err error
	switch {
	case cancelled:
		err = ErrCancelled
	case cur == nil:
		err = ErrNoDestination
	case s.negotiated.IsNone():
		err = ErrRejectedByDestination
	case !cur.dest.Prepare(newInfo(s, cur.region)):
		err = ErrRejectedByDestination
	default:
		return OutcomeCompleted, nil
	}
	if cur != nil {
		cur.dest.Exited(newInfo(s, cur.region))
		s.current = nil
	}
	return OutcomeCancelled, err
}

// finish runs once the drop animation has been acknowledged.
func (m *Manager) finish(s *Session) {
	if s.outcome == OutcomeCompleted {
		s.current.dest.Complete(newInfo(s, s.current.region))
	}
	s.source.Ended(s, s.negotiated)

	s.item.release()
	s.state = StateIdle
	if m.session == s {
		m.session = nil
	}
	close(s.done)
	m.tracef("session %s ended after %v", s.id, time.Since(s.started))
}

func (m *Manager) tracef(format string, args ...any) {
	if m.Debug && m.Logger != nil {
		m.Logger.Printf(format, args...)
	}
}

func (m *Manager) warnf(format string, args ...any) {
	if m.Logger != nil {
		m.Logger.Printf(format, args...)
	}
}
