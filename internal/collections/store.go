package collections

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/acrompton/shelf/internal/models"
	"github.com/acrompton/shelf/internal/repositories"
	"github.com/acrompton/shelf/internal/shared"
	"github.com/charmbracelet/log"
)

// Store owns the ordered album collections and their write-through
// persistence. All mutations go through Add and Remove; no record
// exists in memory without an explicit add or a load.
type Store struct {
	mu       sync.Mutex
	gateway  repositories.Gateway
	logger   *log.Logger
	now      func() time.Time
	loaded   bool
	records  map[string][]models.Record
	onChange func(name string, records []models.Record)
}

// NewStore creates a Store backed by the given persistence gateway.
func NewStore(gateway repositories.Gateway, logger *log.Logger) *Store {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	records := make(map[string][]models.Record, len(models.Collections))
	for _, name := range models.Collections {
		records[name] = nil
	}

	return &Store{
		gateway: gateway,
		logger:  logger,
		now:     time.Now,
		records: records,
	}
}

// SetOnChange registers an observer invoked synchronously after each
// mutation with the affected collection's name and current records.
// Intended for presentation layers; persistence does not depend on it.
func (s *Store) SetOnChange(fn func(name string, records []models.Record)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Load reads both persisted snapshots into memory.
//
// An absent snapshot yields an empty collection. A malformed snapshot
// is logged as corrupt state and also yields an empty collection,
// never a fatal error. Write-through is blocked until Load completes
// so an empty startup state cannot overwrite existing data.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, name := range models.Collections {
		value, ok, err := s.gateway.Get(ctx, models.StorageKey(name))
		if err != nil {
			return fmt.Errorf("failed to load collection %q: %w", name, err)
		}

		if !ok {
			s.records[name] = nil
			continue
		}

		var records []models.Record
		if err := json.Unmarshal([]byte(value), &records); err != nil {
			s.logger.Warn("treating collection as empty",
				"collection", name, "error", fmt.Errorf("%w: %v", shared.ErrCorruptState, err))
			s.records[name] = nil
			continue
		}

		s.records[name] = records
	}

	s.loaded = true
	return nil
}

// Loaded reports whether Load has completed.
func (s *Store) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Add appends the candidate to the named collection as a new Record,
// assigning its id from the creation time, and persists that
// collection. Duplicate candidates are permitted and receive distinct
// ids.
func (s *Store) Add(ctx context.Context, name string, candidate models.SearchResult) (models.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return models.Record{}, shared.ErrNotLoaded
	}
	if !models.ValidCollection(name) {
		return models.Record{}, fmt.Errorf("%w: %q", shared.ErrUnknownCollection, name)
	}

	var lastID int64
	for _, r := range s.records[name] {
		if r.ID > lastID {
			lastID = r.ID
		}
	}

	record := models.NewRecord(candidate, s.now(), lastID)
	s.records[name] = append(s.records[name], record)

	s.persist(ctx, name)
	s.notify(name)

	return record, nil
}

// Remove filters out the record with the matching id from the named
// collection and persists it. Removing an absent id is a no-op, not an
// error.
func (s *Store) Remove(ctx context.Context, name string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return shared.ErrNotLoaded
	}
	if !models.ValidCollection(name) {
		return fmt.Errorf("%w: %q", shared.ErrUnknownCollection, name)
	}

	kept := s.records[name][:0:0]
	for _, r := range s.records[name] {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	s.records[name] = kept

	s.persist(ctx, name)
	s.notify(name)

	return nil
}

// Records returns a copy of the named collection in insertion order.
func (s *Store) Records(name string) []models.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]models.Record, len(s.records[name]))
	copy(records, s.records[name])
	return records
}

// Len returns the number of records in the named collection.
func (s *Store) Len(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records[name])
}

// persist writes the named collection through to the gateway.
//
// Failures are logged and swallowed: in-memory state remains
// authoritative and the next mutation re-attempts with current state.
// Callers must hold s.mu.
func (s *Store) persist(ctx context.Context, name string) {
	records := s.records[name]
	if records == nil {
		records = []models.Record{}
	}

	data, err := json.Marshal(records)
	if err != nil {
		s.logger.Error("failed to serialize collection", "collection", name, "error", err)
		return
	}

	if err := s.gateway.Set(ctx, models.StorageKey(name), string(data)); err != nil {
		s.logger.Warn("keeping in-memory state",
			"collection", name, "error", fmt.Errorf("%w: %v", shared.ErrStorage, err))
	}
}

// notify invokes the change observer, if any. Callers must hold s.mu.
func (s *Store) notify(name string) {
	if s.onChange == nil {
		return
	}

	records := make([]models.Record, len(s.records[name]))
	copy(records, s.records[name])
	s.onChange(name, records)
}
