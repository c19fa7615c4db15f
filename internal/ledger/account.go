// Package ledger holds the single in-memory account balance and its mutation
// operations. All writes go through one RWMutex so the insufficient-funds
// check and the balance update always see the same snapshot; readers never
// observe a partially applied mutation.
package ledger

import (
	"math"
	"sync"
)

// Account is the one shared balance in the system.
type Account struct {
	mu      sync.RWMutex
	id      string
	balance float64
}

// NewAccount creates an account with the given opening balance.
func NewAccount(id string, openingBalance float64) *Account {
	return &Account{id: id, balance: openingBalance}
}

// ID returns the account identifier.
func (a *Account) ID() string {
	return a.id
}

// Balance returns the current balance.
func (a *Account) Balance() float64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.balance
}

// Credit adds amount to the balance and returns the new balance.
// Amount must be finite and > 0.
func (a *Account) Credit(amount float64) (float64, error) {
	if err := validateAmount(amount); err != nil {
		return 0, err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.balance += amount
	return a.balance, nil
}

// Debit subtracts amount from the balance and returns the new balance.
// The sufficiency check and the subtraction happen in the same critical
// section; on any failure the balance is left unchanged.
func (a *Account) Debit(amount float64) (float64, error) {
	if err := validateAmount(amount); err != nil {
		return 0, err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if amount > a.balance {
		return 0, ErrInsufficientFunds
	}
	a.balance -= amount
	return a.balance, nil
}

func validateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return ErrInvalidAmount
	}
	return nil
}
