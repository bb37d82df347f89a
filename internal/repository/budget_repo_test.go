package repository

import (
	"testing"

	"backend/internal/model"
	"backend/internal/store"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&model.KVEntry{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return store.New(db)
}

func TestBudgetLazyInit(t *testing.T) {
	s := newTestStore(t)
	repo := NewBudgetRepository(s)

	budget := repo.Get()
	if budget.TotalBudget != 0 || budget.TotalSpent != 0 {
		t.Fatalf("expected zero envelope, got %+v", budget)
	}
	if !s.Has(store.BudgetKey) {
		t.Fatal("expected first read to persist the envelope")
	}
}

func TestBudgetSanitizesStoredState(t *testing.T) {
	s := newTestStore(t)
	s.Set(store.BudgetKey, model.BudgetState{TotalBudget: -50, TotalSpent: 10.005})

	budget := NewBudgetRepository(s).Get()
	if budget.TotalBudget != 0 {
		t.Fatalf("expected negative total clamped, got %v", budget.TotalBudget)
	}
	if budget.TotalSpent != 10.01 {
		t.Fatalf("expected spent rounded half away from zero, got %v", budget.TotalSpent)
	}

	// The sanitized form must have been written back.
	stored := model.BudgetState{}
	s.Get(store.BudgetKey, &stored)
	if stored != budget {
		t.Fatalf("stored %+v differs from sanitized %+v", stored, budget)
	}
}

func TestSetTotalRefusesBelowSpent(t *testing.T) {
	s := newTestStore(t)
	repo := NewBudgetRepository(s)
	repo.SetTotal(1000)
	repo.ApplyDelta(600)

	if repo.SetTotal(599.99) {
		t.Fatal("expected total below spent to be refused")
	}
	if got := repo.Get().TotalBudget; got != 1000 {
		t.Fatalf("refused set must not mutate, total = %v", got)
	}

	// Exactly the spent amount is allowed and leaves nothing remaining.
	if !repo.SetTotal(600) {
		t.Fatal("expected total == spent to be accepted")
	}
	if got := repo.Remaining(); got != 0 {
		t.Fatalf("expected zero remaining, got %v", got)
	}
}

func TestApplyDeltaGate(t *testing.T) {
	s := newTestStore(t)
	repo := NewBudgetRepository(s)
	repo.SetTotal(200000)

	if !repo.ApplyDelta(180000) {
		t.Fatal("expected delta within budget to be admitted")
	}
	budget := repo.Get()
	if budget.TotalSpent != 180000 {
		t.Fatalf("spent = %v, want 180000", budget.TotalSpent)
	}
	if got := repo.Remaining(); got != 20000 {
		t.Fatalf("remaining = %v, want 20000", got)
	}

	if repo.ApplyDelta(20000.01) {
		t.Fatal("expected delta above remaining to be refused")
	}
	if got := repo.Get().TotalSpent; got != 180000 {
		t.Fatalf("refused delta must not mutate, spent = %v", got)
	}

	// Spending exactly the remaining headroom succeeds.
	if !repo.ApplyDelta(20000) {
		t.Fatal("expected delta == remaining to be admitted")
	}
	if got := repo.Remaining(); got != 0 {
		t.Fatalf("remaining = %v, want 0", got)
	}
}

func TestApplyDeltaRefundFloorsAtZero(t *testing.T) {
	s := newTestStore(t)
	repo := NewBudgetRepository(s)
	repo.SetTotal(500)
	repo.ApplyDelta(100)

	// Refunds always land, even when they exceed the recorded spend.
	if !repo.ApplyDelta(-250) {
		t.Fatal("expected refund to be admitted")
	}
	budget := repo.Get()
	if budget.TotalSpent != 0 {
		t.Fatalf("spent = %v, want 0 (floored)", budget.TotalSpent)
	}
	if got := repo.Remaining(); got != 500 {
		t.Fatalf("remaining = %v, want 500", got)
	}
}
