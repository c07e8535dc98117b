package collections

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/acrompton/shelf/internal/models"
	"github.com/acrompton/shelf/internal/shared"
	st "github.com/acrompton/shelf/internal/testing"
)

func loadedStore(t *testing.T, gateway *st.MemoryGateway) *Store {
	t.Helper()

	store := NewStore(gateway, shared.NewLogger(nil))
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	return store
}

func TestStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Load", func(t *testing.T) {
		t.Run("Absent Snapshots Yield Empty Collections", func(t *testing.T) {
			store := loadedStore(t, st.NewMemoryGateway())

			for _, name := range models.Collections {
				if got := store.Len(name); got != 0 {
					t.Errorf("expected empty collection %q, got %d records", name, got)
				}
			}
		})

		t.Run("Restores Order And Content", func(t *testing.T) {
			gateway := st.NewMemoryGateway()
			gateway.Seed("collection:have", `[
				{"id":10,"artist":"Radiohead","album":"OK Computer","year":"1997","addedDate":"2026-01-01T00:00:00Z"},
				{"id":11,"artist":"Portishead","album":"Dummy","year":"1994","addedDate":"2026-01-02T00:00:00Z"}
			]`)

			store := loadedStore(t, gateway)

			records := store.Records(models.CollectionHave)
			if len(records) != 2 {
				t.Fatalf("expected 2 records, got %d", len(records))
			}
			if records[0].Album != "OK Computer" || records[1].Album != "Dummy" {
				t.Errorf("expected insertion order preserved, got %v", records)
			}
			if store.Len(models.CollectionWant) != 0 {
				t.Error("expected want collection to stay empty")
			}
		})

		t.Run("Corrupt Snapshot Treated As Empty", func(t *testing.T) {
			gateway := st.NewMemoryGateway()
			gateway.Seed("collection:want", `{"not":"an array"`)

			store := loadedStore(t, gateway)

			if got := store.Len(models.CollectionWant); got != 0 {
				t.Errorf("expected corrupt collection to be empty, got %d records", got)
			}
		})

		t.Run("Gateway Failure Propagates", func(t *testing.T) {
			gateway := st.NewMemoryGateway()
			gateway.FailGets(errors.New("disk gone"))

			store := NewStore(gateway, shared.NewLogger(nil))
			if err := store.Load(ctx); err == nil {
				t.Error("expected load error when gateway fails")
			}
			if store.Loaded() {
				t.Error("store should not report loaded after failed load")
			}
		})
	})

	t.Run("Add", func(t *testing.T) {
		t.Run("Requires Load", func(t *testing.T) {
			store := NewStore(st.NewMemoryGateway(), shared.NewLogger(nil))

			_, err := store.Add(ctx, models.CollectionHave, models.SearchResult{Artist: "Can", Album: "Ege Bamyasi"})
			if !errors.Is(err, shared.ErrNotLoaded) {
				t.Errorf("expected ErrNotLoaded, got %v", err)
			}
		})

		t.Run("Rejects Unknown Collection", func(t *testing.T) {
			store := loadedStore(t, st.NewMemoryGateway())

			_, err := store.Add(ctx, "maybe", models.SearchResult{Artist: "Can", Album: "Tago Mago"})
			if !errors.Is(err, shared.ErrUnknownCollection) {
				t.Errorf("expected ErrUnknownCollection, got %v", err)
			}
		})

		t.Run("Persists Only The Affected Collection", func(t *testing.T) {
			gateway := st.NewMemoryGateway()
			store := loadedStore(t, gateway)

			if _, err := store.Add(ctx, models.CollectionWant, models.SearchResult{Artist: "Low", Album: "Things We Lost in the Fire", Year: "2001"}); err != nil {
				t.Fatalf("failed to add: %v", err)
			}

			keys := gateway.SetKeys()
			if len(keys) != 1 || keys[0] != "collection:want" {
				t.Errorf("expected exactly one write to collection:want, got %v", keys)
			}
		})

		t.Run("Duplicate Candidates Get Distinct IDs", func(t *testing.T) {
			store := loadedStore(t, st.NewMemoryGateway())

			fixed := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
			store.now = func() time.Time { return fixed }

			candidate := models.SearchResult{Artist: "Neu!", Album: "Neu! 75", Year: "1975"}
			first, err := store.Add(ctx, models.CollectionHave, candidate)
			if err != nil {
				t.Fatalf("first add failed: %v", err)
			}
			second, err := store.Add(ctx, models.CollectionHave, candidate)
			if err != nil {
				t.Fatalf("second add failed: %v", err)
			}

			if first.ID == second.ID {
				t.Errorf("expected distinct ids for duplicate adds, both were %d", first.ID)
			}
			if store.Len(models.CollectionHave) != 2 {
				t.Errorf("expected both duplicates kept, got %d records", store.Len(models.CollectionHave))
			}
		})

		t.Run("Storage Failure Keeps Memory Authoritative", func(t *testing.T) {
			gateway := st.NewMemoryGateway()
			store := loadedStore(t, gateway)
			gateway.FailSets(errors.New("disk full"))

			record, err := store.Add(ctx, models.CollectionHave, models.SearchResult{Artist: "Broadcast", Album: "Tender Buttons"})
			if err != nil {
				t.Fatalf("add should succeed despite storage failure, got %v", err)
			}
			if record.ID == 0 {
				t.Error("expected record id to be assigned")
			}
			if store.Len(models.CollectionHave) != 1 {
				t.Error("expected record kept in memory")
			}

			// Next mutation re-attempts persistence of current state.
			gateway.FailSets(nil)
			if _, err := store.Add(ctx, models.CollectionHave, models.SearchResult{Artist: "Stereolab", Album: "Dots and Loops"}); err != nil {
				t.Fatalf("second add failed: %v", err)
			}

			value, ok := gateway.Value("collection:have")
			if !ok {
				t.Fatal("expected snapshot written after recovery")
			}
			if value == "" || value == "[]" {
				t.Errorf("expected snapshot with both records, got %q", value)
			}
		})
	})

	t.Run("Remove", func(t *testing.T) {
		t.Run("Removes Matching Record Preserving Order", func(t *testing.T) {
			store := loadedStore(t, st.NewMemoryGateway())

			a, _ := store.Add(ctx, models.CollectionHave, models.SearchResult{Artist: "A", Album: "First"})
			b, _ := store.Add(ctx, models.CollectionHave, models.SearchResult{Artist: "B", Album: "Second"})
			c, _ := store.Add(ctx, models.CollectionHave, models.SearchResult{Artist: "C", Album: "Third"})

			if err := store.Remove(ctx, models.CollectionHave, b.ID); err != nil {
				t.Fatalf("remove failed: %v", err)
			}

			records := store.Records(models.CollectionHave)
			if len(records) != 2 {
				t.Fatalf("expected 2 records after remove, got %d", len(records))
			}
			if records[0].ID != a.ID || records[1].ID != c.ID {
				t.Errorf("expected remaining order [%d %d], got [%d %d]", a.ID, c.ID, records[0].ID, records[1].ID)
			}
		})

		t.Run("Absent ID Is A NoOp", func(t *testing.T) {
			store := loadedStore(t, st.NewMemoryGateway())

			record, _ := store.Add(ctx, models.CollectionWant, models.SearchResult{Artist: "Slint", Album: "Spiderland"})

			if err := store.Remove(ctx, models.CollectionWant, record.ID+999); err != nil {
				t.Fatalf("expected no error for absent id, got %v", err)
			}
			if store.Len(models.CollectionWant) != 1 {
				t.Error("expected collection unchanged after no-op remove")
			}
		})
	})

	t.Run("Round Trip", func(t *testing.T) {
		// Replaying the persisted snapshot after reload reproduces the
		// exact final in-memory sequence.
		gateway := st.NewMemoryGateway()
		store := loadedStore(t, gateway)

		first, _ := store.Add(ctx, models.CollectionHave, models.SearchResult{Artist: "Talk Talk", Album: "Laughing Stock", Year: "1991", ImageURL: "https://img/ls.jpg"})
		second, _ := store.Add(ctx, models.CollectionHave, models.SearchResult{Artist: "Talk Talk", Album: "Spirit of Eden", Year: "1988"})
		third, _ := store.Add(ctx, models.CollectionHave, models.SearchResult{Artist: "Mark Hollis", Album: "Mark Hollis", Year: "1998"})
		store.Remove(ctx, models.CollectionHave, second.ID)

		reloaded := loadedStore(t, gateway)

		want := []int64{first.ID, third.ID}
		got := reloaded.Records(models.CollectionHave)
		if len(got) != len(want) {
			t.Fatalf("expected %d records after reload, got %d", len(want), len(got))
		}
		for i, id := range want {
			if got[i].ID != id {
				t.Errorf("record %d: expected id %d, got %d", i, id, got[i].ID)
			}
		}
		if got[0].ImageURL != "https://img/ls.jpg" {
			t.Errorf("expected image URL to survive reload, got %q", got[0].ImageURL)
		}
		if got[0].AddedDate == "" {
			t.Error("expected added date to survive reload")
		}
	})

	t.Run("OnChange Observer", func(t *testing.T) {
		store := loadedStore(t, st.NewMemoryGateway())

		var gotName string
		var gotCount int
		store.SetOnChange(func(name string, records []models.Record) {
			gotName = name
			gotCount = len(records)
		})

		store.Add(ctx, models.CollectionWant, models.SearchResult{Artist: "Life Without Buildings", Album: "Any Other City"})

		if gotName != models.CollectionWant || gotCount != 1 {
			t.Errorf("expected observer called for want with 1 record, got %q/%d", gotName, gotCount)
		}
	})
}
