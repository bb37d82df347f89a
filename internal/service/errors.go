package service

import "errors"

// Business failures are sentinel errors, never panics. Handlers translate
// them into user-facing messages; id lookups that miss simply return nil.
var (
	// ErrInsufficientFunds: a positive budget delta would exceed the
	// remaining headroom.
	ErrInsufficientFunds = errors.New("insufficient remaining budget")

	// ErrBudgetBelowSpent: the proposed budget envelope is lower than what
	// has already been spent.
	ErrBudgetBelowSpent = errors.New("budget cannot be lower than the amount already spent")

	// ErrInsufficientStock: an approval asks for more units than are held.
	ErrInsufficientStock = errors.New("insufficient stock quantity")

	// ErrUnknownItem: the request's item name matches no current stock item.
	ErrUnknownItem = errors.New("item does not exist in stock")

	// ErrItemNotFound: an id-based stock lookup missed.
	ErrItemNotFound = errors.New("stock item not found")

	ErrUsernameTaken      = errors.New("username already in use")
	ErrInvalidCredentials = errors.New("invalid role, username, or password")
	ErrInvalidRole        = errors.New("invalid role: must be admin, faculty, or staff")
)
