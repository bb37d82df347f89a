package model

// RequestStatus constants
const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"
)

// StockState constants: availability snapshot taken when the request is filed.
// Fulfilled is only ever written by the approval flow.
const (
	StockStateAvailable    = "available"
	StockStateMissing      = "missing"
	StockStateInsufficient = "insufficient"
	StockStateFulfilled    = "fulfilled"
)

// Request is a demand raised by a non-admin user for some quantity of a named item.
// ItemName is deliberately NOT a foreign key: it is matched case-insensitively
// against StockItem.Name at approval time, so renaming a stock item strands any
// in-flight requests that reference the old name.
type Request struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	UserRole   string `json:"userRole"`
	ItemName   string `json:"itemName"`
	Quantity   int    `json:"quantity"`
	Reason     string `json:"reason"`
	Status     string `json:"status"`
	StockState string `json:"stockState"`
	CreatedAt  string `json:"createdAt"`
	ResolvedAt string `json:"resolvedAt,omitempty"`
}
