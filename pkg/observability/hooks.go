// Package observability provides hooks for metrics and benchmarking.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register
// hooks at startup to receive events about forest mutations, traversals
// and serialization; the default implementations are no-ops.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define a hook interface for forest events
//   - Provide a no-op default implementation
//   - Allow registration of a custom implementation at startup
//
// This keeps the core library dependency-free from observability
// frameworks while allowing any backend (OpenTelemetry, Prometheus,
// plain benchmarking counters) to be plugged in.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetForestHooks(&myHooks{})
//	    // ... run application
//	}
//
// The library emits events through the registered hooks:
//
//	observability.Forest().OnTraversal("pre-order", visited, elapsed)
package observability

import (
	"sync"
	"time"
)

// ForestHooks receives events from forest operations.
type ForestHooks interface {
	// OnMutation records a structural mutation (add_root, add_child,
	// remove, move, replace, clear) and the affected node's ID.
	OnMutation(op, nodeID string)

	// OnTraversal records a completed traversal: the strategy, the number
	// of nodes visited and the elapsed time.
	OnTraversal(order string, visited int, duration time.Duration)

	// OnSerialize records an encode or decode pass: the format, the
	// payload size in bytes, the elapsed time and the outcome.
	OnSerialize(format string, bytes int, duration time.Duration, err error)
}

// NoopForestHooks is a no-op implementation of ForestHooks.
type NoopForestHooks struct{}

func (NoopForestHooks) OnMutation(string, string)                     {}
func (NoopForestHooks) OnTraversal(string, int, time.Duration)        {}
func (NoopForestHooks) OnSerialize(string, int, time.Duration, error) {}

var (
	mu          sync.RWMutex
	forestHooks ForestHooks = NoopForestHooks{}
)

// SetForestHooks registers a custom hooks implementation.
// Passing nil restores the no-op default. Registration normally happens
// once at startup, before the forest is used.
func SetForestHooks(h ForestHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		forestHooks = NoopForestHooks{}
		return
	}
	forestHooks = h
}

// Forest returns the registered hooks implementation.
// Never returns nil.
func Forest() ForestHooks {
	mu.RLock()
	defer mu.RUnlock()
	return forestHooks
}
