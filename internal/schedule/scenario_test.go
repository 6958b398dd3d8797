package schedule

import (
	"testing"

	"github.com/google/uuid"

	"github.com/nuanu-wifi/backend/internal/models"
)

// Walks the admin flow against an in-memory window set: create, conflicting
// create, inactive create, delete, retry.
func TestScheduleLifecycle(t *testing.T) {
	var store []models.ScheduleWindow

	create := func(w models.ScheduleWindow) *ConflictError {
		if conflict := FindConflict(w, store); conflict != nil {
			return conflict
		}
		store = append(store, w)
		return nil
	}
	remove := func(id uuid.UUID) {
		kept := store[:0]
		for _, w := range store {
			if w.ID != id {
				kept = append(kept, w)
			}
		}
		store = kept
	}

	a := window(t, "2024-06-01", "00:00:00", "2024-06-10", "23:59:59", true)
	a.Title = "campaign A"
	if conflict := create(a); conflict != nil {
		t.Fatalf("creating A should succeed: %v", conflict)
	}

	b := window(t, "2024-06-05", "00:00:00", "2024-06-15", "23:59:59", true)
	conflict := create(b)
	if conflict == nil {
		t.Fatal("creating B over A must conflict")
	}
	if conflict.ID != a.ID || conflict.Title != "campaign A" {
		t.Fatalf("conflict should reference A, got %+v", conflict)
	}

	c := b
	c.ID = uuid.New()
	c.IsActive = false
	if conflict := create(c); conflict != nil {
		t.Fatalf("inactive C may overlap freely: %v", conflict)
	}

	remove(a.ID)
	if conflict := create(b); conflict != nil {
		t.Fatalf("after deleting A, B should succeed: %v", conflict)
	}
}
