// Package collections owns the two named album collections and their
// synchronization with durable storage.
//
// [Store] holds the in-memory state and is the only component that
// mutates it. Every successful mutation is followed synchronously by
// one write-through persistence of the affected collection; the other
// collection is untouched. Persistence failures are logged and
// swallowed; in-memory state stays authoritative and the next
// mutation re-attempts persistence of current state.
//
// Presentation layers observe changes through [Store.SetOnChange],
// keeping rendering decoupled from persistence.
package collections
