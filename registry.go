package dragdrop

import "gioui.org/f32"

// Registry maps regions of the visual tree to the destinations handling drops inside them.
//
// Regions are held as non-owning handles. Owners are expected to Unregister a
// region when it is torn down; regions reporting Alive() == false are skipped
// by Resolve until they are unregistered or pruned.
type Registry struct {
	entries map[Region]*registration
	seq     uint64
}

type registration struct {
	region Region
	dest   Destination
	seq    uint64
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[Region]*registration)}
}

// Register associates dest with region, replacing any previous destination of the region.
// Registering a nil destination removes the region.
func (r *Registry) Register(region Region, dest Destination) {
	if region == nil {
		return
	}
	if dest == nil {
		r.Unregister(region)
		return
	}
	r.seq++
	r.entries[region] = &registration{region: region, dest: dest, seq: r.seq}
}

// Unregister removes region and reports whether it was registered.
func (r *Registry) Unregister(region Region) bool {
	if region == nil {
		return false
	}
	if _, ok := r.entries[region]; !ok {
		return false
	}
	delete(r.entries, region)
	return true
}

// Destination returns the destination registered for region.
func (r *Registry) Destination(region Region) (Destination, bool) {
	e, ok := r.entries[region]
	if !ok {
		return nil, false
	}
	return e.dest, true
}

// Len returns the number of registrations, stale ones included.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Prune removes the registrations whose region is no longer alive
// and returns how many were removed.
func (r *Registry) Prune() int {
	var n int
	for region := range r.entries {
		if !region.Alive() {
			delete(r.entries, region)
			n++
		}
	}
	return n
}

// Reset removes every registration.
func (r *Registry) Reset() {
	r.entries = make(map[Region]*registration)
}

// Resolve returns the destination owning the point at, if any.
// When several live regions contain the point, the most deeply nested one wins,
// and the most recently registered one among regions of equal depth.
// Resolve has no side effects.
func (r *Registry) Resolve(at f32.Point) (Destination, Region, bool) {
	e := r.resolve(at)
	if e == nil {
		return nil, nil, false
	}
	return e.dest, e.region, true
}

func (r *Registry) resolve(at f32.Point) *registration {
	var hits []*registration
	for region, e := range r.entries {
		if !region.Alive() {
			continue
		}
		if region.Bounds().Contains(at) {
			hits = append(hits, e)
		}
	}

	var (
		best      *registration
		bestDepth = -1
	)
	for _, e := range hits {
		depth := nestingDepth(e, hits)
		if depth > bestDepth || (depth == bestDepth && e.seq > best.seq) {
			best, bestDepth = e, depth
		}
	}
	return best
}

// nestingDepth counts the hits strictly enclosing e.
func nestingDepth(e *registration, hits []*registration) int {
	inner := e.region.Bounds()
	var depth int
	for _, o := range hits {
		if o == e {
			continue
		}
		outer := o.region.Bounds()
		if outer != inner && outer.Encloses(inner) {
			depth++
		}
	}
	return depth
}
