package model

// StockItem represents a trackable inventory unit with quantity and per-unit cost.
// Items are owned by the stock registry and keyed by a synthetic monotonic id.
// Name doubles as the (case-insensitive) identity used to resolve requests.
type StockItem struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	UnitCost    float64 `json:"unitCost"`
	Description string  `json:"description"`
}
