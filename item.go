package dragdrop

import "sort"

// Item is the payload carried by a dragging session. It is created by the
// caller before starting a session and cannot be modified afterwards.
type Item struct {
	payload  map[string]any
	snapshot *Snapshot
	claimed  bool
}

// NewItem creates an item from a payload and the snapshot shown while dragging.
// The payload map is copied.
func NewItem(payload map[string]any, snapshot *Snapshot) *Item {
	p := make(map[string]any, len(payload))
	for k, v := range payload {
		p[k] = v
	}
	if snapshot == nil {
		snapshot = NewSnapshot(nil)
	}
	return &Item{payload: p, snapshot: snapshot}
}

// Value returns the payload value stored under key.
func (i *Item) Value(key string) (any, bool) {
	v, ok := i.payload[key]
	return v, ok
}

// Keys returns the payload keys in sorted order.
func (i *Item) Keys() []string {
	keys := make([]string, 0, len(i.payload))
	for k := range i.payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Payload returns a copy of the payload.
func (i *Item) Payload() map[string]any {
	p := make(map[string]any, len(i.payload))
	for k, v := range i.payload {
		p[k] = v
	}
	return p
}

// Snapshot returns the visual representation of the item.
func (i *Item) Snapshot() *Snapshot {
	return i.snapshot
}

// InUse reports whether the item is owned by an active session.
func (i *Item) InUse() bool {
	return i.claimed
}

func (i *Item) claim() bool {
	if i.claimed {
		return false
	}
	i.claimed = true
	return true
}

func (i *Item) release() {
	i.claimed = false
}
