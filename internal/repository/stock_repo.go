package repository

import (
	"encoding/json"
	"strings"

	"backend/internal/model"
	"backend/internal/store"
)

// StockChanges is a partial update of a stock item. Nil fields are left as-is.
type StockChanges struct {
	Name        *string
	Quantity    *int
	UnitCost    *float64
	Description *string
}

// StockRepository owns the stock collection. It never touches the budget
// ledger: callers coordinate budget deltas around these mutations and roll
// them back themselves when a mutation reports not-found.
type StockRepository interface {
	List() []model.StockItem
	FindByID(id int64) *model.StockItem
	FindByName(name string) *model.StockItem
	Add(item model.StockItem) model.StockItem
	Update(id int64, changes StockChanges) *model.StockItem
	Delete(id int64)
}

type stockRepository struct {
	store *store.Store
}

func NewStockRepository(s *store.Store) StockRepository {
	return &stockRepository{store: s}
}

// List returns all stock items. Records written before unit costs existed
// carry no unitCost field; decoding already yields 0 for them, but the
// normalized list is persisted once so later readers see a complete form.
func (r *stockRepository) List() []model.StockItem {
	stock := []model.StockItem{}
	if !r.store.Get(store.StockKey, &stock) {
		return stock
	}
	if r.needsCostBackfill() {
		r.store.Set(store.StockKey, stock)
	}
	return stock
}

// needsCostBackfill detects legacy records missing the unitCost field.
func (r *stockRepository) needsCostBackfill() bool {
	var raw []map[string]json.RawMessage
	if !r.store.Get(store.StockKey, &raw) {
		return false
	}
	for _, record := range raw {
		if _, ok := record["unitCost"]; !ok {
			return true
		}
	}
	return false
}

func (r *stockRepository) FindByID(id int64) *model.StockItem {
	for _, item := range r.List() {
		if item.ID == id {
			found := item
			return &found
		}
	}
	return nil
}

// FindByName resolves an item by case-insensitive name match. This is the
// weak string reference requests are resolved through at approval time.
func (r *stockRepository) FindByName(name string) *model.StockItem {
	for _, item := range r.List() {
		if strings.EqualFold(item.Name, name) {
			found := item
			return &found
		}
	}
	return nil
}

// Add stamps a fresh id onto item, appends it and persists the collection.
func (r *stockRepository) Add(item model.StockItem) model.StockItem {
	stock := r.List()
	var last int64
	for _, existing := range stock {
		if existing.ID > last {
			last = existing.ID
		}
	}
	item.ID = nextID(last)
	if item.Quantity < 0 {
		item.Quantity = 0
	}
	if item.UnitCost < 0 {
		item.UnitCost = 0
	}
	stock = append(stock, item)
	r.store.Set(store.StockKey, stock)
	return item
}

// Update merges changes into the matching item. Returns nil when no item
// has that id; the caller must not assume the mutation happened.
func (r *stockRepository) Update(id int64, changes StockChanges) *model.StockItem {
	stock := r.List()
	for i := range stock {
		if stock[i].ID != id {
			continue
		}
		if changes.Name != nil {
			stock[i].Name = *changes.Name
		}
		if changes.Quantity != nil {
			stock[i].Quantity = *changes.Quantity
		}
		if changes.UnitCost != nil {
			stock[i].UnitCost = *changes.UnitCost
		}
		if changes.Description != nil {
			stock[i].Description = *changes.Description
		}
		r.store.Set(store.StockKey, stock)
		updated := stock[i]
		return &updated
	}
	return nil
}

// Delete removes the matching item; absent ids are a no-op.
func (r *stockRepository) Delete(id int64) {
	stock := r.List()
	filtered := stock[:0]
	for _, item := range stock {
		if item.ID != id {
			filtered = append(filtered, item)
		}
	}
	r.store.Set(store.StockKey, filtered)
}
