// Package tasks implements the asynchronous query-orchestration core.
//
// [Catalog] is the single controller owning the shared mutable state:
// the collection store handle, the transient prediction list, the
// current search results, the search busy flag, and the generation
// counter. Presentation layers issue commands (Add, Remove, Suggest,
// Search) and observe non-blocking updates via channels.
//
// [Debouncer] throttles prediction requests while the user types with
// an explicit Idle/Pending/Fired state machine and cancel-on-new-input
// semantics.
//
// Search staleness uses a most-recent-wins policy: each invocation
// captures a generation at call time and a response is applied only if
// no newer invocation has started since. Superseded responses are
// discarded without effect; requests are never hard-cancelled.
package tasks
