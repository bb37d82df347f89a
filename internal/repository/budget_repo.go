package repository

import (
	"backend/internal/model"
	"backend/internal/store"
	"backend/pkg/money"
)

// BudgetRepository is the budget ledger: total envelope and aggregate spend,
// with the solvency gate applied before any positive delta is admitted.
type BudgetRepository interface {
	Get() model.BudgetState
	SetTotal(amount float64) bool
	ApplyDelta(delta float64) bool
	Remaining() float64
}

type budgetRepository struct {
	store *store.Store
}

func NewBudgetRepository(s *store.Store) BudgetRepository {
	return &budgetRepository{store: s}
}

// Get lazily creates the {0, 0} envelope and sanitizes whatever was stored:
// both fields rounded to the cent, negatives clamped to zero. The sanitized
// form is written back only when it differs from the stored form.
func (r *budgetRepository) Get() model.BudgetState {
	var budget model.BudgetState
	if !r.store.Get(store.BudgetKey, &budget) {
		budget = model.BudgetState{}
		r.store.Set(store.BudgetKey, budget)
		return budget
	}

	sanitized := model.BudgetState{
		TotalBudget: money.Round(budget.TotalBudget),
		TotalSpent:  money.Round(budget.TotalSpent),
	}
	if sanitized.TotalBudget < 0 {
		sanitized.TotalBudget = 0
	}
	if sanitized.TotalSpent < 0 {
		sanitized.TotalSpent = 0
	}
	if sanitized != budget {
		r.store.Set(store.BudgetKey, sanitized)
	}
	return sanitized
}

// SetTotal replaces the budget envelope. It refuses (no mutation) any amount
// below what has already been spent; amount == totalSpent is allowed.
func (r *budgetRepository) SetTotal(amount float64) bool {
	budget := r.Get()
	total := money.Round(amount)
	if total < budget.TotalSpent {
		return false
	}
	budget.TotalBudget = total
	r.store.Set(store.BudgetKey, budget)
	return true
}

// ApplyDelta adds delta to the aggregate spend. A positive delta larger than
// the remaining headroom is refused without mutation; this is the admission
// gate for every stock cost change. Negative deltas (refunds) always land,
// with the spend floored at zero.
func (r *budgetRepository) ApplyDelta(delta float64) bool {
	budget := r.Get()
	change := money.Round(delta)
	remaining := money.Round(budget.TotalBudget - budget.TotalSpent)
	if change > 0 && change > remaining {
		return false
	}
	budget.TotalSpent = money.Round(budget.TotalSpent + change)
	if budget.TotalSpent < 0 {
		budget.TotalSpent = 0
	}
	r.store.Set(store.BudgetKey, budget)
	return true
}

func (r *budgetRepository) Remaining() float64 {
	budget := r.Get()
	return money.Round(budget.TotalBudget - budget.TotalSpent)
}
