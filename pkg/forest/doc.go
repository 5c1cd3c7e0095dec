// Package forest implements an in-memory multi-root tree container with
// indexed lookup, structural mutation, traversal, validation and three
// serialization formats.
//
// # Overview
//
// A [Forest] owns an ordered list of root nodes and an identity index
// mapping each value's ID to its node, so ID lookup is O(1) regardless of
// tree shape. Structural mutations (add, remove, move) keep the index
// consistent incrementally and notify registered event handlers. Values
// are generic: anything exposing a unique, stable identifier via the
// [Value] constraint can be stored; [Item] is a ready-made value type for
// ID-plus-metadata use cases.
//
// # Invariants
//
// After every public operation returns:
//
//   - the index contains exactly the set of nodes reachable from the roots
//   - every non-root node appears exactly once in its parent's child list
//   - no node is its own ancestor
//   - roots have no parent
//
// IDs are unique while the first invariant holds; the index silently
// overwrites on collision, and [Forest.Validate] flags duplicates as a
// detectable inconsistency rather than preventing them at insert time.
//
// # Traversal
//
// [Forest.Walk] supports pre-order, post-order and breadth-first
// strategies, each optionally depth-bounded through
// [Forest.WalkToDepth]. All three are iterative, so deep trees cannot
// exhaust the stack. Path, ancestor, descendant and sibling queries read
// the live graph without copying.
//
// # Serialization
//
// Three independent, non-interchangeable formats:
//
//   - versioned nested JSON ([Forest.Serialize]/[Forest.Deserialize]):
//     the durable wire format, tagged with [FormatVersion]
//   - flat parent-pointer records ([Forest.Flatten]/[Forest.Unflatten]):
//     one record per node carrying its parent's ID
//   - plain nested JSON ([Forest.ToPlain]/[Forest.FromPlain]): untagged
//     value-plus-children trees
//
// # Concurrency
//
// A Forest is owned by a single goroutine: no internal locking, no
// background work. [Forest.DeserializeFrom] is the one suspension point -
// it awaits an externally fetched payload before applying the rebuild
// synchronously. Event handlers run synchronously during mutation and must
// not re-enter mutation operations of the same forest.
package forest
