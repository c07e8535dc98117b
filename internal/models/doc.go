// Package models defines domain entities for the shelf album catalog.
//
// The package contains two categories of types:
//
// 1. Transient candidates: data returned by the discovery service
//   - [SearchResult] : Album candidate extracted from completion output
//
// 2. Cataloged entries: records held in a named collection
//   - [Record] : Album entry with creation-time id and added date
//
// Collections are identified by name ([CollectionHave], [CollectionWant])
// and serialize independently as ordered JSON arrays of Records under
// the keys produced by [StorageKey].
package models
