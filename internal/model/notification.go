package model

// Notification type constants
const (
	NotifInfo    = "info"
	NotifSuccess = "success"
	NotifWarning = "warning"
)

// Notification is one entry of the append-only system feed, newest first.
// Only the Read flag is ever mutated after creation.
type Notification struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"createdAt"`
}
