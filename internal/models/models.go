// package models defines the data model for the shelf album catalog
package models

import (
	"time"
)

// Collection names. The catalog keeps exactly two collections, each
// persisted independently.
const (
	CollectionHave = "have"
	CollectionWant = "want"
)

// Collections lists the valid collection names in display order.
var Collections = []string{CollectionHave, CollectionWant}

// ValidCollection reports whether name refers to a known collection.
func ValidCollection(name string) bool {
	return name == CollectionHave || name == CollectionWant
}

// StorageKey returns the persistence key for the named collection.
func StorageKey(name string) string {
	return "collection:" + name
}

// SearchResult is a candidate album returned by the search-augmented
// completion endpoint. It becomes a [Record] only on explicit add.
type SearchResult struct {
	Artist   string `json:"artist"`
	Album    string `json:"album"`
	Year     string `json:"year"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// Record is a cataloged album entry. Records are immutable once
// created; they are removed, never edited.
type Record struct {
	ID        int64  `json:"id"`
	Artist    string `json:"artist"`
	Album     string `json:"album"`
	Year      string `json:"year"`
	ImageURL  string `json:"imageUrl,omitempty"`
	AddedDate string `json:"addedDate"`
}

// NewRecord creates a Record from a search candidate, assigning the id
// from the creation time and stamping the added date.
//
// lastID is the highest id already present in the target collection;
// when two adds land within the same millisecond the id is bumped past
// it so ids stay unique within the collection.
func NewRecord(candidate SearchResult, now time.Time, lastID int64) Record {
	id := now.UnixMilli()
	if id <= lastID {
		id = lastID + 1
	}

	return Record{
		ID:        id,
		Artist:    candidate.Artist,
		Album:     candidate.Album,
		Year:      candidate.Year,
		ImageURL:  candidate.ImageURL,
		AddedDate: now.UTC().Format(time.RFC3339),
	}
}
