package repository

import (
	"backend/internal/model"
	"backend/internal/store"
)

// RequestRepository owns the request queue. Requests are never deleted
// individually, only bulk-cleared, and once resolved their status is
// final.
type RequestRepository interface {
	List() []model.Request
	FindByID(id int64) *model.Request
	Add(req model.Request) model.Request
	UpdateStatus(id int64, status, stockState string) *model.Request
	Clear()
}

type requestRepository struct {
	store *store.Store
}

func NewRequestRepository(s *store.Store) RequestRepository {
	return &requestRepository{store: s}
}

func (r *requestRepository) List() []model.Request {
	requests := []model.Request{}
	r.store.Get(store.RequestsKey, &requests)
	return requests
}

func (r *requestRepository) FindByID(id int64) *model.Request {
	for _, req := range r.List() {
		if req.ID == id {
			found := req
			return &found
		}
	}
	return nil
}

// Add stamps id, pending status and creation time onto req and appends it.
// The stock-state snapshot is supplied by the caller.
func (r *requestRepository) Add(req model.Request) model.Request {
	requests := r.List()
	var last int64
	for _, existing := range requests {
		if existing.ID > last {
			last = existing.ID
		}
	}
	req.ID = nextID(last)
	req.Status = model.RequestPending
	if req.StockState == "" {
		req.StockState = model.StockStateAvailable
	}
	req.CreatedAt = timestamp()
	requests = append(requests, req)
	r.store.Set(store.RequestsKey, requests)
	return req
}

// UpdateStatus sets the status and resolution time of the matching request.
// A non-empty stockState overwrites the snapshot (approval sets "fulfilled").
// Returns nil when no request has that id.
func (r *requestRepository) UpdateStatus(id int64, status, stockState string) *model.Request {
	requests := r.List()
	for i := range requests {
		if requests[i].ID != id {
			continue
		}
		requests[i].Status = status
		if stockState != "" {
			requests[i].StockState = stockState
		}
		requests[i].ResolvedAt = timestamp()
		r.store.Set(store.RequestsKey, requests)
		updated := requests[i]
		return &updated
	}
	return nil
}

// Clear wipes the queue unconditionally. Confirmation belongs to the caller.
func (r *requestRepository) Clear() {
	r.store.Set(store.RequestsKey, []model.Request{})
}
