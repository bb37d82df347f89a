package store

import (
	"encoding/json"
	"log"

	"backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store-level keys for the persisted collections.
const (
	UsersKey         = "users"
	StockKey         = "stock"
	RequestsKey      = "requests"
	NotificationsKey = "notifications"
	CurrentUserKey   = "currentUser"
	BudgetKey        = "budget"
)

// Store is the durable key-value adapter. Each key holds one JSON document;
// writes replace the whole document. There is no atomicity across keys;
// multi-key sequences are serialized by repository.ExclusiveRunner and
// repaired with compensating actions, not transactions.
//
// Persistence faults never propagate: reads degrade to the caller's
// fallback, writes are logged and dropped.
type Store struct {
	db *gorm.DB
}

// New wraps a gorm connection as a key-value store.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Get unmarshals the document under key into out. It returns false, leaving
// out untouched, when the key is absent or the payload does not decode, so
// callers keep whatever fallback they passed in.
func (s *Store) Get(key string, out interface{}) bool {
	var entry model.KVEntry
	if err := s.db.First(&entry, "key = ?", key).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Printf("store: failed to read %q: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal([]byte(entry.Value), out); err != nil {
		log.Printf("store: corrupt payload under %q: %v", key, err)
		return false
	}
	return true
}

// Set serializes value and overwrites the document under key.
func (s *Store) Set(key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("store: failed to encode %q: %v", key, err)
		return
	}
	entry := model.KVEntry{Key: key, Value: string(raw)}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		log.Printf("store: failed to write %q: %v", key, err)
	}
}

// Remove deletes the document under key. Missing keys are a no-op.
func (s *Store) Remove(key string) {
	if err := s.db.Delete(&model.KVEntry{}, "key = ?", key).Error; err != nil {
		log.Printf("store: failed to remove %q: %v", key, err)
	}
}

// Has reports whether any document exists under key, decodable or not.
func (s *Store) Has(key string) bool {
	var count int64
	if err := s.db.Model(&model.KVEntry{}).Where("key = ?", key).Count(&count).Error; err != nil {
		log.Printf("store: failed to probe %q: %v", key, err)
		return false
	}
	return count > 0
}
