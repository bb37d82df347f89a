package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"backend/internal/model"
	"backend/internal/repository"
)

type requestFixture struct {
	svc           RequestService
	stockRepo     repository.StockRepository
	requestRepo   repository.RequestRepository
	notifications repository.NotificationRepository
}

func newRequestFixture(t *testing.T) *requestFixture {
	t.Helper()
	s := newTestStore(t)
	runner := repository.NewExclusiveRunner()
	stockRepo := repository.NewStockRepository(s)
	requestRepo := repository.NewRequestRepository(s)
	notificationRepo := repository.NewNotificationRepository(s)
	return &requestFixture{
		svc:           NewRequestService(requestRepo, stockRepo, notificationRepo, runner, nil),
		stockRepo:     stockRepo,
		requestRepo:   requestRepo,
		notifications: notificationRepo,
	}
}

func TestRequestCreateSnapshotsAvailability(t *testing.T) {
	f := newRequestFixture(t)
	f.stockRepo.Add(model.StockItem{Name: "Projector", Quantity: 4, UnitCost: 45000})

	cases := []struct {
		name      string
		dto       CreateRequestDTO
		state     string
		notifType string
	}{
		{"available", CreateRequestDTO{ItemName: "projector", Quantity: 2, Reason: "lecture"}, model.StockStateAvailable, model.NotifInfo},
		{"insufficient", CreateRequestDTO{ItemName: "Projector", Quantity: 9, Reason: "expo"}, model.StockStateInsufficient, model.NotifWarning},
		{"missing", CreateRequestDTO{ItemName: "Podium", Quantity: 1, Reason: "event"}, model.StockStateMissing, model.NotifWarning},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			created, err := f.svc.Create(context.Background(), "prof.rao", model.RoleFaculty, c.dto)
			if err != nil {
				t.Fatalf("create: %v", err)
			}
			if created.StockState != c.state {
				t.Fatalf("stockState = %q, want %q", created.StockState, c.state)
			}
			if created.Status != model.RequestPending {
				t.Fatalf("status = %q, want pending", created.Status)
			}
			latest := f.notifications.List()[0]
			if latest.Type != c.notifType {
				t.Fatalf("notification type = %q, want %q", latest.Type, c.notifType)
			}
			if !strings.Contains(latest.Message, "prof.rao") {
				t.Fatalf("notification message missing requester: %q", latest.Message)
			}
		})
	}
}

func TestRequestListScopedByRole(t *testing.T) {
	f := newRequestFixture(t)
	mustCreate(t, f, "alice", model.RoleFaculty, "Chair", 1)
	mustCreate(t, f, "bob", model.RoleStaff, "Chair", 2)

	all, err := f.svc.List(context.Background(), "admin", model.RoleAdmin)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("admin sees %d requests, want 2", len(all))
	}

	own, err := f.svc.List(context.Background(), "alice", model.RoleFaculty)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(own) != 1 || own[0].Username != "alice" {
		t.Fatalf("faculty sees %+v, want only their own", own)
	}
}

func TestApproveHappyPath(t *testing.T) {
	f := newRequestFixture(t)
	item := f.stockRepo.Add(model.StockItem{Name: "Projector", Quantity: 4, UnitCost: 45000})
	req := mustCreate(t, f, "prof.rao", model.RoleFaculty, "projector", 3)

	resolved, err := f.svc.Approve(context.Background(), req.ID)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if resolved == nil {
		t.Fatal("expected the resolved request back")
	}
	if resolved.Status != model.RequestApproved {
		t.Fatalf("status = %q, want approved", resolved.Status)
	}
	if resolved.StockState != model.StockStateFulfilled {
		t.Fatalf("stockState = %q, want fulfilled", resolved.StockState)
	}
	if resolved.ResolvedAt == "" {
		t.Fatal("expected a resolution timestamp")
	}
	if got := f.stockRepo.FindByID(item.ID).Quantity; got != 1 {
		t.Fatalf("stock quantity = %d, want 1", got)
	}
	latest := f.notifications.List()[0]
	if latest.Type != model.NotifSuccess || latest.Title != "Request Approved" {
		t.Fatalf("unexpected notification %+v", latest)
	}
}

func TestApproveTwiceIsNoop(t *testing.T) {
	f := newRequestFixture(t)
	item := f.stockRepo.Add(model.StockItem{Name: "Projector", Quantity: 4, UnitCost: 45000})
	req := mustCreate(t, f, "prof.rao", model.RoleFaculty, "Projector", 3)

	if _, err := f.svc.Approve(context.Background(), req.ID); err != nil {
		t.Fatalf("first approve: %v", err)
	}
	resolved, err := f.svc.Approve(context.Background(), req.ID)
	if err != nil {
		t.Fatalf("second approve: %v", err)
	}
	if resolved != nil {
		t.Fatal("expected a silent no-op on the second approval")
	}
	// No double decrement.
	if got := f.stockRepo.FindByID(item.ID).Quantity; got != 1 {
		t.Fatalf("stock quantity = %d, want 1", got)
	}
}

func TestApproveUnknownItemLeavesPending(t *testing.T) {
	f := newRequestFixture(t)
	req := mustCreate(t, f, "prof.rao", model.RoleFaculty, "Podium", 1)

	_, err := f.svc.Approve(context.Background(), req.ID)
	if !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("expected ErrUnknownItem, got %v", err)
	}
	if got := f.requestRepo.FindByID(req.ID); got.Status != model.RequestPending {
		t.Fatalf("status = %q, want pending", got.Status)
	}
}

func TestApproveInsufficientStockLeavesPending(t *testing.T) {
	f := newRequestFixture(t)
	item := f.stockRepo.Add(model.StockItem{Name: "Projector", Quantity: 4, UnitCost: 45000})
	req := mustCreate(t, f, "prof.rao", model.RoleFaculty, "Projector", 5)

	_, err := f.svc.Approve(context.Background(), req.ID)
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	if got := f.stockRepo.FindByID(item.ID).Quantity; got != 4 {
		t.Fatalf("stock quantity = %d, want 4 untouched", got)
	}
	if got := f.requestRepo.FindByID(req.ID); got.Status != model.RequestPending {
		t.Fatalf("status = %q, want pending", got.Status)
	}
}

func TestRejectHasNoStockEffect(t *testing.T) {
	f := newRequestFixture(t)
	item := f.stockRepo.Add(model.StockItem{Name: "Projector", Quantity: 4, UnitCost: 45000})
	req := mustCreate(t, f, "prof.rao", model.RoleFaculty, "Projector", 2)

	resolved, err := f.svc.Reject(context.Background(), req.ID)
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if resolved.Status != model.RequestRejected {
		t.Fatalf("status = %q, want rejected", resolved.Status)
	}
	if resolved.ResolvedAt == "" {
		t.Fatal("expected a resolution timestamp")
	}
	if got := f.stockRepo.FindByID(item.ID).Quantity; got != 4 {
		t.Fatalf("stock quantity = %d, want 4 untouched", got)
	}

	// A rejected request cannot later be approved.
	again, err := f.svc.Approve(context.Background(), req.ID)
	if err != nil || again != nil {
		t.Fatalf("expected silent no-op, got %v / %v", again, err)
	}
}

func TestRequestClearEmptiesQueue(t *testing.T) {
	f := newRequestFixture(t)
	mustCreate(t, f, "alice", model.RoleFaculty, "Chair", 1)
	mustCreate(t, f, "bob", model.RoleStaff, "Chair", 2)

	if err := f.svc.Clear(context.Background()); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if len(f.requestRepo.List()) != 0 {
		t.Fatal("expected an empty queue")
	}
}

func mustCreate(t *testing.T, f *requestFixture, username, role, itemName string, qty int) model.Request {
	t.Helper()
	req, err := f.svc.Create(context.Background(), username, role, CreateRequestDTO{
		ItemName: itemName, Quantity: qty, Reason: "test",
	})
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	return req
}
