package dragdrop

import "strings"

// Operation is a bit set describing the drop outcomes a source allows
// and a destination accepts.
type Operation uint8

// OperationNone is the empty set. A destination returning it rejects the drop.
const OperationNone Operation = 0

const (
	// OperationGeneric is a non-destructive drop, e.g. move or copy.
	OperationGeneric Operation = 1 << iota
	// OperationDelete removes the dragged item once dropped.
	OperationDelete
)

// OperationAll is the union of every known operation.
const OperationAll = OperationGeneric | OperationDelete

// Union returns the operations present in o or in other.
func (o Operation) Union(other Operation) Operation { return o | other }

// Intersect returns the operations present both in o and in other.
func (o Operation) Intersect(other Operation) Operation { return o & other }

// Contains reports whether every operation of other is also in o.
func (o Operation) Contains(other Operation) bool { return o&other == other }

// IsNone reports whether the set is empty.
func (o Operation) IsNone() bool { return o&OperationAll == OperationNone }

func (o Operation) String() string {
	if o.IsNone() {
		return "None"
	}
	var names []string
	if o&OperationGeneric != 0 {
		names = append(names, "Generic")
	}
	if o&OperationDelete != 0 {
		names = append(names, "Delete")
	}
	return strings.Join(names, "|")
}
