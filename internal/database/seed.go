package database

import (
	"log"
	"time"

	"backend/internal/model"
	"backend/internal/store"
)

// Seed writes the first-boot defaults: a bootstrap admin account, two
// sample stock items, and empty collections. Strictly create-if-absent:
// a key that already exists is never touched, corrupt or not.
func Seed(s *store.Store) {
	if !s.Has(store.UsersKey) {
		s.Set(store.UsersKey, []model.User{
			{Username: "admin", Password: "admin123", Role: model.RoleAdmin},
		})
		log.Println("seeded default admin account")
	}

	if !s.Has(store.StockKey) {
		now := time.Now().UnixMilli()
		s.Set(store.StockKey, []model.StockItem{
			{
				ID:          now - 2,
				Name:        "Projector",
				Quantity:    4,
				UnitCost:    45000,
				Description: "Ceiling mounted projectors for seminar halls",
			},
			{
				ID:          now - 1,
				Name:        "Whiteboard Markers",
				Quantity:    120,
				UnitCost:    35,
				Description: "Mixed color marker set for classrooms",
			},
		})
		log.Println("seeded sample stock items")
	}

	if !s.Has(store.RequestsKey) {
		s.Set(store.RequestsKey, []model.Request{})
	}
	if !s.Has(store.NotificationsKey) {
		s.Set(store.NotificationsKey, []model.Notification{})
	}
	if !s.Has(store.BudgetKey) {
		s.Set(store.BudgetKey, model.BudgetState{})
	}
}
