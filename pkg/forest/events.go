package forest

import "github.com/google/uuid"

// EventKind identifies a category of structural change.
type EventKind int

// Event kinds emitted by forest mutations.
const (
	// NodeAdded fires after AddChild links and indexes a new node.
	NodeAdded EventKind = iota
	// NodeRemoved fires after Remove detaches a subtree; the event carries
	// the removed subtree's former root.
	NodeRemoved
	// NodeUpdated fires after Replace swaps a node's value.
	NodeUpdated
	// NodeMoved fires after Move re-attaches a node under a new parent.
	NodeMoved
)

// String returns the event kind's wire name.
func (k EventKind) String() string {
	switch k {
	case NodeAdded:
		return "node_added"
	case NodeRemoved:
		return "node_removed"
	case NodeUpdated:
		return "node_updated"
	case NodeMoved:
		return "node_moved"
	default:
		return "unknown"
	}
}

// Event describes a structural change delivered to handlers.
type Event[V Value] struct {
	Kind EventKind
	Node *Node[V] // The affected node
}

// Handler receives events synchronously at the point of mutation.
// Handlers must not call back into mutation operations of the same forest.
type Handler[V Value] func(Event[V])

// Subscription is the token returned by On and consumed by Off.
// Go functions have no usable identity, so unsubscription is by token
// rather than by handler reference.
type Subscription struct {
	kind  EventKind
	token uuid.UUID
}

type subscriber[V Value] struct {
	token uuid.UUID
	fn    Handler[V]
}

// On registers handler for the given event kind and returns a token for
// Off. Handlers run synchronously in registration order.
func (f *Forest[V]) On(kind EventKind, handler Handler[V]) Subscription {
	sub := subscriber[V]{token: uuid.New(), fn: handler}
	f.subs[kind] = append(f.subs[kind], sub)
	return Subscription{kind: kind, token: sub.token}
}

// Off removes the handler registered under sub and reports whether one
// was found.
func (f *Forest[V]) Off(sub Subscription) bool {
	handlers := f.subs[sub.kind]
	for i, s := range handlers {
		if s.token == sub.token {
			f.subs[sub.kind] = append(handlers[:i], handlers[i+1:]...)
			return true
		}
	}
	return false
}

// emit delivers the event to every handler registered for kind, in
// registration order.
func (f *Forest[V]) emit(kind EventKind, node *Node[V]) {
	for _, s := range f.subs[kind] {
		s.fn(Event[V]{Kind: kind, Node: node})
	}
}
