package service

import (
	"context"

	"backend/internal/model"
	"backend/internal/repository"
)

// DashboardSummary feeds the badge counters and budget cards the glue layer
// re-renders on every tick.
type DashboardSummary struct {
	Budget              BudgetSummary `json:"budget"`
	StockItems          int           `json:"stockItems"`
	OutOfStock          int           `json:"outOfStock"`
	PendingRequests     int           `json:"pendingRequests"`
	UnreadNotifications int           `json:"unreadNotifications"`
}

type SummaryService interface {
	Summarize(ctx context.Context) (DashboardSummary, error)
}

type summaryService struct {
	stockRepo        repository.StockRepository
	requestRepo      repository.RequestRepository
	notificationRepo repository.NotificationRepository
	budgetRepo       repository.BudgetRepository
	runner           repository.ExclusiveRunner
}

func NewSummaryService(
	stockRepo repository.StockRepository,
	requestRepo repository.RequestRepository,
	notificationRepo repository.NotificationRepository,
	budgetRepo repository.BudgetRepository,
	runner repository.ExclusiveRunner,
) SummaryService {
	return &summaryService{
		stockRepo:        stockRepo,
		requestRepo:      requestRepo,
		notificationRepo: notificationRepo,
		budgetRepo:       budgetRepo,
		runner:           runner,
	}
}

func (s *summaryService) Summarize(ctx context.Context) (DashboardSummary, error) {
	var summary DashboardSummary
	err := s.runner.RunExclusive(ctx, func(ctx context.Context) error {
		budget := s.budgetRepo.Get()
		summary.Budget = BudgetSummary{
			TotalBudget: budget.TotalBudget,
			TotalSpent:  budget.TotalSpent,
			Remaining:   s.budgetRepo.Remaining(),
		}

		for _, item := range s.stockRepo.List() {
			summary.StockItems++
			if item.Quantity == 0 {
				summary.OutOfStock++
			}
		}
		for _, req := range s.requestRepo.List() {
			if req.Status == model.RequestPending {
				summary.PendingRequests++
			}
		}
		for _, n := range s.notificationRepo.List() {
			if !n.Read {
				summary.UnreadNotifications++
			}
		}
		return nil
	})
	return summary, err
}
