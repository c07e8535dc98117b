// Package repositories provides the persistence layer for collection
// snapshots.
//
// The [Gateway] interface models an asynchronous key/value store with
// string values. [SnapshotRepository] implements it over SQLite using
// the shared database helpers and migration runner. The collection
// store treats the gateway as write-through storage: every mutation is
// followed by one Set of the affected collection's serialized form.
package repositories
