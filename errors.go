package dragdrop

import "errors"

var (
	// ErrInvalidState is returned when the session lifecycle is misused:
	// starting while a session is active, updating or ending while idle.
	ErrInvalidState = errors.New("dragdrop: invalid session state")

	// ErrRejectedByDestination records a cancelled session whose destination
	// declined the drop, either by offering no operation or at preparation time.
	ErrRejectedByDestination = errors.New("dragdrop: rejected by destination")

	// ErrNoDestination records a cancelled session dropped outside any destination.
	ErrNoDestination = errors.New("dragdrop: no destination")

	// ErrCancelled records a session cancelled by the caller.
	ErrCancelled = errors.New("dragdrop: cancelled")
)
