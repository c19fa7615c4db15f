package ledger

import "errors"

var (
	// ErrInvalidAmount covers non-positive and non-finite amounts.
	ErrInvalidAmount = errors.New("amount must be a positive finite number")

	// ErrInsufficientFunds means a debit would overdraw the account.
	ErrInsufficientFunds = errors.New("insufficient balance")
)
