package model

import "time"

// KVEntry is one named JSON document in the key-value store. Each top-level
// collection (users, stock, requests, notifications, budget, currentUser)
// lives under its own key and is read and overwritten wholesale.
type KVEntry struct {
	Key       string    `gorm:"type:varchar(64);primaryKey" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
