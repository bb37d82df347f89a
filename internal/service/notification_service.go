package service

import (
	"context"
	"encoding/json"

	"backend/internal/model"
	"backend/internal/repository"
	ws "backend/internal/websocket"
)

// NotificationEvent is the websocket payload pushed whenever an entry is
// appended to the feed, so connected dashboards refresh without polling.
type NotificationEvent struct {
	Event string             `json:"event"`
	Data  model.Notification `json:"data"`
}

type NotificationService interface {
	List(ctx context.Context) ([]model.Notification, error)
	Add(ctx context.Context, title, message, ntype string) (model.Notification, error)
	MarkRead(ctx context.Context, id int64) error
	MarkAllRead(ctx context.Context) error
	Clear(ctx context.Context) error
}

type notificationService struct {
	notificationRepo repository.NotificationRepository
	runner           repository.ExclusiveRunner
	hub              *ws.Hub
}

func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	runner repository.ExclusiveRunner,
	hub *ws.Hub,
) NotificationService {
	return &notificationService{notificationRepo: notificationRepo, runner: runner, hub: hub}
}

func (s *notificationService) List(ctx context.Context) ([]model.Notification, error) {
	var notifications []model.Notification
	err := s.runner.RunExclusive(ctx, func(ctx context.Context) error {
		notifications = s.notificationRepo.List()
		return nil
	})
	return notifications, err
}

// Add appends to the feed and broadcasts the entry to connected clients.
func (s *notificationService) Add(ctx context.Context, title, message, ntype string) (model.Notification, error) {
	var added model.Notification
	err := s.runner.RunExclusive(ctx, func(ctx context.Context) error {
		added = s.notificationRepo.Add(model.Notification{
			Title:   title,
			Message: message,
			Type:    ntype,
		})
		return nil
	})
	if err == nil {
		s.broadcast(added)
	}
	return added, err
}

func (s *notificationService) MarkRead(ctx context.Context, id int64) error {
	return s.runner.RunExclusive(ctx, func(ctx context.Context) error {
		s.notificationRepo.MarkRead(id)
		return nil
	})
}

func (s *notificationService) MarkAllRead(ctx context.Context) error {
	return s.runner.RunExclusive(ctx, func(ctx context.Context) error {
		s.notificationRepo.MarkAllRead()
		return nil
	})
}

func (s *notificationService) Clear(ctx context.Context) error {
	return s.runner.RunExclusive(ctx, func(ctx context.Context) error {
		s.notificationRepo.Clear()
		return nil
	})
}

func (s *notificationService) broadcast(n model.Notification) {
	broadcastNotification(s.hub, n)
}

// broadcastNotification pushes the event without ever blocking a mutation
// on slow websocket consumers. A nil hub drops the event.
func broadcastNotification(hub *ws.Hub, n model.Notification) {
	if hub == nil {
		return
	}
	payload, err := json.Marshal(NotificationEvent{Event: "notification", Data: n})
	if err != nil {
		return
	}
	select {
	case hub.Broadcast <- payload:
	default:
	}
}
