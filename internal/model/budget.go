package model

// BudgetState is the process-wide budget envelope. Singleton, lazily
// initialized to {0, 0}. Both fields are kept rounded to the cent; the
// remaining headroom (TotalBudget − TotalSpent) is derived, never stored.
type BudgetState struct {
	TotalBudget float64 `json:"totalBudget"`
	TotalSpent  float64 `json:"totalSpent"`
}
