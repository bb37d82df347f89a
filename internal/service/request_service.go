package service

import (
	"context"
	"fmt"

	"backend/internal/model"
	"backend/internal/repository"
	ws "backend/internal/websocket"
)

// DTOs

type CreateRequestDTO struct {
	ItemName string `json:"itemName" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
	Reason   string `json:"reason" binding:"required"`
}

type RequestService interface {
	List(ctx context.Context, username, role string) ([]model.Request, error)
	Create(ctx context.Context, username, role string, req CreateRequestDTO) (model.Request, error)
	Approve(ctx context.Context, id int64) (*model.Request, error)
	Reject(ctx context.Context, id int64) (*model.Request, error)
	Clear(ctx context.Context) error
}

// requestService carries the one genuinely coupled flow in the system: an
// approval touches the stock registry, the request ledger and the
// notification feed in sequence, with no transaction around them. The
// status write failing after the stock decrement is repaired by
// re-incrementing the stock, the inverse of the decrement.
type requestService struct {
	requestRepo      repository.RequestRepository
	stockRepo        repository.StockRepository
	notificationRepo repository.NotificationRepository
	runner           repository.ExclusiveRunner
	hub              *ws.Hub
}

func NewRequestService(
	requestRepo repository.RequestRepository,
	stockRepo repository.StockRepository,
	notificationRepo repository.NotificationRepository,
	runner repository.ExclusiveRunner,
	hub *ws.Hub,
) RequestService {
	return &requestService{
		requestRepo:      requestRepo,
		stockRepo:        stockRepo,
		notificationRepo: notificationRepo,
		runner:           runner,
		hub:              hub,
	}
}

// List returns all requests for admins and only the caller's own otherwise.
func (s *requestService) List(ctx context.Context, username, role string) ([]model.Request, error) {
	var requests []model.Request
	err := s.runner.RunExclusive(ctx, func(ctx context.Context) error {
		all := s.requestRepo.List()
		if role == model.RoleAdmin {
			requests = all
			return nil
		}
		requests = []model.Request{}
		for _, req := range all {
			if req.Username == username {
				requests = append(requests, req)
			}
		}
		return nil
	})
	return requests, err
}

// Create files a request with an availability snapshot taken now. The
// snapshot and the admin notification both reflect what the stock looked
// like at filing time, not a live reference.
func (s *requestService) Create(ctx context.Context, username, role string, req CreateRequestDTO) (model.Request, error) {
	var created model.Request
	var notif model.Notification
	err := s.runner.RunExclusive(ctx, func(ctx context.Context) error {
		stockState := model.StockStateAvailable
		message := fmt.Sprintf("%s (%s) requested %d unit(s) of %s. Reason: %s.",
			username, role, req.Quantity, req.ItemName, req.Reason)

		match := s.stockRepo.FindByName(req.ItemName)
		if match == nil {
			stockState = model.StockStateMissing
			message = fmt.Sprintf("%s (%s) requested %d unit(s) of %s, but that item is not currently in stock. Reason: %s.",
				username, role, req.Quantity, req.ItemName, req.Reason)
		} else if match.Quantity < req.Quantity {
			stockState = model.StockStateInsufficient
			message = fmt.Sprintf("%s (%s) requested %d unit(s) of %s, but only %d are available. Reason: %s.",
				username, role, req.Quantity, req.ItemName, match.Quantity, req.Reason)
		}

		created = s.requestRepo.Add(model.Request{
			Username:   username,
			UserRole:   role,
			ItemName:   req.ItemName,
			Quantity:   req.Quantity,
			Reason:     req.Reason,
			StockState: stockState,
		})

		ntype := model.NotifInfo
		if stockState != model.StockStateAvailable {
			ntype = model.NotifWarning
		}
		notif = s.notificationRepo.Add(model.Notification{
			Title:   "New Stock Request",
			Message: message,
			Type:    ntype,
		})
		return nil
	})
	if err == nil {
		broadcastNotification(s.hub, notif)
	}
	return created, err
}

// Approve resolves the request's item by name, checks quantity, decrements
// the stock, marks the request approved/fulfilled and appends a success
// notification. Any refusal leaves the request pending and the stock
// untouched. Requests that are missing or already resolved are a silent
// no-op, which is also what makes re-approval safe: a resolved request is
// never pending again, so it can never double-decrement.
func (s *requestService) Approve(ctx context.Context, id int64) (*model.Request, error) {
	var resolved *model.Request
	var notif model.Notification
	err := s.runner.RunExclusive(ctx, func(ctx context.Context) error {
		req := s.requestRepo.FindByID(id)
		if req == nil || req.Status != model.RequestPending {
			return nil
		}

		item := s.stockRepo.FindByName(req.ItemName)
		if item == nil {
			return ErrUnknownItem
		}
		if item.Quantity < req.Quantity {
			return ErrInsufficientStock
		}

		newQuantity := item.Quantity - req.Quantity
		if s.stockRepo.Update(item.ID, repository.StockChanges{Quantity: &newQuantity}) == nil {
			return ErrUnknownItem
		}

		resolved = s.requestRepo.UpdateStatus(id, model.RequestApproved, model.StockStateFulfilled)
		if resolved == nil {
			// Status write failed after the decrement: give the units back.
			restore := item.Quantity
			s.stockRepo.Update(item.ID, repository.StockChanges{Quantity: &restore})
			return ErrUnknownItem
		}

		notif = s.notificationRepo.Add(model.Notification{
			Title: "Request Approved",
			Message: fmt.Sprintf("%s request for %s has been approved. Remaining stock: %d units.",
				req.ItemName, req.Username, newQuantity),
			Type: model.NotifSuccess,
		})
		return nil
	})
	if err == nil && resolved != nil {
		broadcastNotification(s.hub, notif)
	}
	return resolved, err
}

// Reject marks the request rejected and warns the feed. No stock or budget
// side effects. Missing or already-resolved requests are a silent no-op.
func (s *requestService) Reject(ctx context.Context, id int64) (*model.Request, error) {
	var resolved *model.Request
	var notif model.Notification
	err := s.runner.RunExclusive(ctx, func(ctx context.Context) error {
		req := s.requestRepo.FindByID(id)
		if req == nil || req.Status != model.RequestPending {
			return nil
		}

		resolved = s.requestRepo.UpdateStatus(id, model.RequestRejected, "")
		if resolved == nil {
			return nil
		}
		notif = s.notificationRepo.Add(model.Notification{
			Title:   "Request Rejected",
			Message: fmt.Sprintf("%s request from %s was rejected.", req.ItemName, req.Username),
			Type:    model.NotifWarning,
		})
		return nil
	})
	if err == nil && resolved != nil {
		broadcastNotification(s.hub, notif)
	}
	return resolved, err
}

// Clear wipes the whole queue. The confirmation prompt lives in the glue.
func (s *requestService) Clear(ctx context.Context) error {
	return s.runner.RunExclusive(ctx, func(ctx context.Context) error {
		s.requestRepo.Clear()
		return nil
	})
}
