package service

import (
	"context"

	"backend/internal/model"
	"backend/internal/repository"
	"backend/pkg/money"
)

// DTOs

type CreateStockRequest struct {
	Name        string  `json:"name" binding:"required"`
	Quantity    int     `json:"quantity" binding:"gte=0"`
	UnitCost    float64 `json:"unitCost" binding:"gte=0"`
	Description string  `json:"description"`
}

type UpdateStockRequest struct {
	Name        string  `json:"name" binding:"required"`
	Quantity    int     `json:"quantity" binding:"gte=0"`
	UnitCost    float64 `json:"unitCost" binding:"gte=0"`
	Description string  `json:"description"`
}

type StockService interface {
	List(ctx context.Context) ([]model.StockItem, error)
	Create(ctx context.Context, req CreateStockRequest) (model.StockItem, error)
	Update(ctx context.Context, id int64, req UpdateStockRequest) (model.StockItem, error)
	Delete(ctx context.Context, id int64) error
}

// stockService coordinates the stock registry with the budget ledger.
// The registry knows nothing about money: every cost change is admitted
// through the ledger first, and reversed by hand if the registry mutation
// then fails. Compensation, not transactions.
type stockService struct {
	stockRepo  repository.StockRepository
	budgetRepo repository.BudgetRepository
	runner     repository.ExclusiveRunner
}

func NewStockService(
	stockRepo repository.StockRepository,
	budgetRepo repository.BudgetRepository,
	runner repository.ExclusiveRunner,
) StockService {
	return &stockService{stockRepo: stockRepo, budgetRepo: budgetRepo, runner: runner}
}

func (s *stockService) List(ctx context.Context) ([]model.StockItem, error) {
	var items []model.StockItem
	err := s.runner.RunExclusive(ctx, func(ctx context.Context) error {
		items = s.stockRepo.List()
		return nil
	})
	return items, err
}

// Create admits the item's full cost against the remaining budget, then
// registers the item.
func (s *stockService) Create(ctx context.Context, req CreateStockRequest) (model.StockItem, error) {
	var created model.StockItem
	err := s.runner.RunExclusive(ctx, func(ctx context.Context) error {
		delta := money.Total(req.UnitCost, req.Quantity)
		if !s.budgetRepo.ApplyDelta(delta) {
			return ErrInsufficientFunds
		}
		created = s.stockRepo.Add(model.StockItem{
			Name:        req.Name,
			Quantity:    req.Quantity,
			UnitCost:    money.Round(req.UnitCost),
			Description: req.Description,
		})
		return nil
	})
	return created, err
}

// Update replaces the item's fields. The spend delta (new total − current
// total) is admitted first; if the registry then reports the item gone, the
// delta is refunded before the error is surfaced.
func (s *stockService) Update(ctx context.Context, id int64, req UpdateStockRequest) (model.StockItem, error) {
	var updated model.StockItem
	err := s.runner.RunExclusive(ctx, func(ctx context.Context) error {
		existing := s.stockRepo.FindByID(id)
		if existing == nil {
			return ErrItemNotFound
		}

		currentTotal := money.Total(existing.UnitCost, existing.Quantity)
		nextTotal := money.Total(req.UnitCost, req.Quantity)
		delta := money.Round(nextTotal - currentTotal)
		if !s.budgetRepo.ApplyDelta(delta) {
			return ErrInsufficientFunds
		}

		unitCost := money.Round(req.UnitCost)
		result := s.stockRepo.Update(id, repository.StockChanges{
			Name:        &req.Name,
			Quantity:    &req.Quantity,
			UnitCost:    &unitCost,
			Description: &req.Description,
		})
		if result == nil {
			s.budgetRepo.ApplyDelta(-delta)
			return ErrItemNotFound
		}
		updated = *result
		return nil
	})
	return updated, err
}

// Delete refunds the item's full cost to the ledger and removes it.
func (s *stockService) Delete(ctx context.Context, id int64) error {
	return s.runner.RunExclusive(ctx, func(ctx context.Context) error {
		item := s.stockRepo.FindByID(id)
		if item == nil {
			return ErrItemNotFound
		}
		refund := money.Total(item.UnitCost, item.Quantity)
		s.budgetRepo.ApplyDelta(-refund)
		s.stockRepo.Delete(id)
		return nil
	})
}
