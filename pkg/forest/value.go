package forest

import "github.com/grovekit/grove/pkg/clone"

// Value is the constraint for values stored in a forest. Each value must
// expose a unique, stable identifier; the forest's index maps that
// identifier to the node holding the value.
type Value interface {
	ID() string
}

// Metadata stores arbitrary key-value pairs attached to a value.
// Metadata maps are JSON-compatible and survive all three serialization
// formats unchanged. It is an alias rather than a defined type so that
// Metadata values nested anywhere inside a cloned structure match the
// clone package's map variant.
type Metadata = map[string]any

// Item is a ready-made value type for forests keyed by plain string IDs
// with freeform metadata. The CLI, the HTTP API and most tests use
// Forest[Item]; applications with richer value types implement Value
// themselves.
type Item struct {
	UID  string   `json:"id"`
	Meta Metadata `json:"meta,omitempty"`
}

// ID implements Value.
func (it Item) ID() string { return it.UID }

// CloneValue returns a structurally independent copy of the item.
// Metadata is deep-copied via the clone package, so container, timestamp
// and pattern values inside it are reconstructed rather than shared.
func (it Item) CloneValue() Item {
	out := Item{UID: it.UID}
	if it.Meta != nil {
		out.Meta, _ = clone.Deep(it.Meta).(Metadata)
	}
	return out
}
