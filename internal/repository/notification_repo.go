package repository

import (
	"backend/internal/model"
	"backend/internal/store"
)

// NotificationRepository owns the append-only notification feed.
// Ordering invariant: newest first.
type NotificationRepository interface {
	List() []model.Notification
	Add(n model.Notification) model.Notification
	MarkRead(id int64)
	MarkAllRead()
	Clear()
}

type notificationRepository struct {
	store *store.Store
}

func NewNotificationRepository(s *store.Store) NotificationRepository {
	return &notificationRepository{store: s}
}

func (r *notificationRepository) List() []model.Notification {
	notifications := []model.Notification{}
	r.store.Get(store.NotificationsKey, &notifications)
	return notifications
}

// Add stamps id, unread state and creation time, then prepends the entry.
func (r *notificationRepository) Add(n model.Notification) model.Notification {
	notifications := r.List()
	var last int64
	for _, existing := range notifications {
		if existing.ID > last {
			last = existing.ID
		}
	}
	n.ID = nextID(last)
	if n.Type == "" {
		n.Type = model.NotifInfo
	}
	n.Read = false
	n.CreatedAt = timestamp()
	notifications = append([]model.Notification{n}, notifications...)
	r.store.Set(store.NotificationsKey, notifications)
	return n
}

// MarkRead flips the read flag of one entry; missing ids are a no-op.
func (r *notificationRepository) MarkRead(id int64) {
	notifications := r.List()
	for i := range notifications {
		if notifications[i].ID == id {
			notifications[i].Read = true
			r.store.Set(store.NotificationsKey, notifications)
			return
		}
	}
}

func (r *notificationRepository) MarkAllRead() {
	notifications := r.List()
	for i := range notifications {
		notifications[i].Read = true
	}
	r.store.Set(store.NotificationsKey, notifications)
}

func (r *notificationRepository) Clear() {
	r.store.Set(store.NotificationsKey, []model.Notification{})
}
