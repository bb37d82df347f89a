package store

import (
	"testing"

	"backend/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupStore(t *testing.T) (*gorm.DB, *Store) {
	t.Helper()
	// Use a unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&model.KVEntry{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db, New(db)
}

func TestRoundTrip(t *testing.T) {
	_, s := setupStore(t)

	written := []model.StockItem{
		{ID: 1, Name: "Projector", Quantity: 4, UnitCost: 45000, Description: "Seminar hall projectors"},
		{ID: 2, Name: "Markers", Quantity: 120, UnitCost: 35},
	}
	s.Set(StockKey, written)

	read := []model.StockItem{}
	if !s.Get(StockKey, &read) {
		t.Fatal("expected stock key to decode")
	}
	if len(read) != 2 {
		t.Fatalf("expected 2 items got %d", len(read))
	}
	for i := range written {
		if read[i] != written[i] {
			t.Fatalf("round-trip mismatch at %d: %+v != %+v", i, read[i], written[i])
		}
	}
}

func TestGetMissingKeyLeavesFallback(t *testing.T) {
	_, s := setupStore(t)

	fallback := []model.StockItem{{ID: 9, Name: "fallback"}}
	if s.Get("nope", &fallback) {
		t.Fatal("expected miss on absent key")
	}
	if len(fallback) != 1 || fallback[0].Name != "fallback" {
		t.Fatalf("fallback mutated: %+v", fallback)
	}
}

func TestGetCorruptPayloadLeavesFallback(t *testing.T) {
	db, s := setupStore(t)

	if err := db.Create(&model.KVEntry{Key: StockKey, Value: "{not json"}).Error; err != nil {
		t.Fatalf("seed corrupt row: %v", err)
	}

	out := []model.StockItem{}
	if s.Get(StockKey, &out) {
		t.Fatal("expected corrupt payload to be reported as a miss")
	}
	if len(out) != 0 {
		t.Fatalf("fallback mutated: %+v", out)
	}
}

func TestRemoveAndHas(t *testing.T) {
	_, s := setupStore(t)

	if s.Has(BudgetKey) {
		t.Fatal("unexpected budget key before write")
	}
	s.Set(BudgetKey, model.BudgetState{TotalBudget: 100})
	if !s.Has(BudgetKey) {
		t.Fatal("expected budget key after write")
	}

	s.Remove(BudgetKey)
	if s.Has(BudgetKey) {
		t.Fatal("expected budget key gone after remove")
	}
	// Removing again is a no-op.
	s.Remove(BudgetKey)
}

func TestSetOverwritesWholesale(t *testing.T) {
	_, s := setupStore(t)

	s.Set(RequestsKey, []model.Request{{ID: 1}, {ID: 2}})
	s.Set(RequestsKey, []model.Request{{ID: 3}})

	out := []model.Request{}
	if !s.Get(RequestsKey, &out) {
		t.Fatal("expected requests key to decode")
	}
	if len(out) != 1 || out[0].ID != 3 {
		t.Fatalf("expected wholesale overwrite, got %+v", out)
	}
}
