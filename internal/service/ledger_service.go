package service

import (
	"errors"

	"go.uber.org/zap"

	"github.com/spec-kit/bank-ledger-service/internal/ledger"
	apperrors "github.com/spec-kit/bank-ledger-service/pkg/util"
)

// LedgerService fronts the shared account and translates domain errors into
// the wire-facing taxonomy. Validation happens inside the account before any
// write, so a failed operation never moves the balance.
type LedgerService struct {
	account *ledger.Account
	logger  *zap.Logger
}

// NewLedgerService builds the service.
func NewLedgerService(account *ledger.Account, logger *zap.Logger) *LedgerService {
	return &LedgerService{account: account, logger: logger}
}

// Balance returns the current balance for the requesting user.
func (s *LedgerService) Balance(username string) float64 {
	s.logger.Info("balance read", zap.String("username", username))
	return s.account.Balance()
}

// Deposit credits the account and returns the new balance.
func (s *LedgerService) Deposit(username string, amount float64) (float64, error) {
	newBalance, err := s.account.Credit(amount)
	if err != nil {
		return 0, mapLedgerError(err, "Invalid deposit amount")
	}
	s.logger.Info("deposit applied",
		zap.String("username", username),
		zap.Float64("amount", amount),
		zap.Float64("new_balance", newBalance),
	)
	return newBalance, nil
}

// Withdraw debits the account and returns the new balance.
func (s *LedgerService) Withdraw(username string, amount float64) (float64, error) {
	newBalance, err := s.account.Debit(amount)
	if err != nil {
		return 0, mapLedgerError(err, "Invalid withdrawal amount")
	}
	s.logger.Info("withdrawal applied",
		zap.String("username", username),
		zap.Float64("amount", amount),
		zap.Float64("new_balance", newBalance),
	)
	return newBalance, nil
}

func mapLedgerError(err error, invalidAmountMessage string) error {
	switch {
	case errors.Is(err, ledger.ErrInvalidAmount):
		return apperrors.NewInvalidAmount(invalidAmountMessage)
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return apperrors.NewInsufficientFunds("Insufficient balance for this withdrawal.")
	default:
		return apperrors.NewInternalError(err)
	}
}
