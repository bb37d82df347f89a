package service

import (
	"context"

	"backend/internal/repository"
)

// BudgetSummary is the glue-facing view of the budget envelope.
type BudgetSummary struct {
	TotalBudget float64 `json:"totalBudget"`
	TotalSpent  float64 `json:"totalSpent"`
	Remaining   float64 `json:"remaining"`
}

// SetBudgetRequest carries the proposed total budget envelope.
type SetBudgetRequest struct {
	Amount float64 `json:"amount" binding:"gte=0"`
}

type BudgetService interface {
	Summary(ctx context.Context) (BudgetSummary, error)
	SetTotal(ctx context.Context, req SetBudgetRequest) (BudgetSummary, error)
}

type budgetService struct {
	budgetRepo repository.BudgetRepository
	runner     repository.ExclusiveRunner
}

func NewBudgetService(budgetRepo repository.BudgetRepository, runner repository.ExclusiveRunner) BudgetService {
	return &budgetService{budgetRepo: budgetRepo, runner: runner}
}

func (s *budgetService) Summary(ctx context.Context) (BudgetSummary, error) {
	var summary BudgetSummary
	err := s.runner.RunExclusive(ctx, func(ctx context.Context) error {
		budget := s.budgetRepo.Get()
		summary = BudgetSummary{
			TotalBudget: budget.TotalBudget,
			TotalSpent:  budget.TotalSpent,
			Remaining:   s.budgetRepo.Remaining(),
		}
		return nil
	})
	return summary, err
}

// SetTotal replaces the budget envelope. Fails without mutation when the
// new total is below what has already been spent.
func (s *budgetService) SetTotal(ctx context.Context, req SetBudgetRequest) (BudgetSummary, error) {
	var summary BudgetSummary
	err := s.runner.RunExclusive(ctx, func(ctx context.Context) error {
		if !s.budgetRepo.SetTotal(req.Amount) {
			return ErrBudgetBelowSpent
		}
		budget := s.budgetRepo.Get()
		summary = BudgetSummary{
			TotalBudget: budget.TotalBudget,
			TotalSpent:  budget.TotalSpent,
			Remaining:   s.budgetRepo.Remaining(),
		}
		return nil
	})
	return summary, err
}
