package service

import (
	"math"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/bank-ledger-service/internal/ledger"
	apperrors "github.com/spec-kit/bank-ledger-service/pkg/util"
)

func TestLedgerService_ErrorMapping(t *testing.T) {
	s := NewLedgerService(ledger.NewAccount("ACC001", 100), zap.NewNop())

	_, err := s.Deposit("user123", math.NaN())
	require.Error(t, err)
	de := apperrors.ToDomainError(err)
	assert.Equal(t, "INVALID_AMOUNT", de.Code)
	assert.Equal(t, http.StatusBadRequest, de.HTTPStatus)

	_, err = s.Withdraw("user123", 500)
	require.Error(t, err)
	de = apperrors.ToDomainError(err)
	assert.Equal(t, "INSUFFICIENT_FUNDS", de.Code)
	assert.Equal(t, http.StatusBadRequest, de.HTTPStatus)

	assert.Equal(t, 100.00, s.Balance("user123"))
}

func TestLedgerService_DepositWithdraw(t *testing.T) {
	s := NewLedgerService(ledger.NewAccount("ACC001", 1000), zap.NewNop())

	got, err := s.Deposit("user123", 250)
	require.NoError(t, err)
	assert.Equal(t, 1250.00, got)

	got, err = s.Withdraw("user123", 1250)
	require.NoError(t, err)
	assert.Equal(t, 0.00, got)
}
