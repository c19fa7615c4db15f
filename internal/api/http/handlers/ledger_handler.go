package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bank-ledger-service/internal/api/dto"
	"github.com/spec-kit/bank-ledger-service/internal/auth"
	"github.com/spec-kit/bank-ledger-service/internal/service"
	apperrors "github.com/spec-kit/bank-ledger-service/pkg/util"
)

// LedgerHandler exposes the protected balance endpoints.
type LedgerHandler struct {
	ledger *service.LedgerService
}

// NewLedgerHandler constructs handler.
func NewLedgerHandler(ledgerService *service.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledger: ledgerService}
}

// Balance handles GET /balance.
func (h *LedgerHandler) Balance(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewMissingToken("Access Denied: No token provided.")
	}

	return c.JSON(dto.BalanceResponse{
		Message: "Account balance retrieved successfully",
		Balance: h.ledger.Balance(claims.Username),
	})
}

// Deposit handles POST /deposit.
func (h *LedgerHandler) Deposit(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewMissingToken("Access Denied: No token provided.")
	}

	var req dto.AmountRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewInvalidAmount("Invalid deposit amount")
	}

	newBalance, err := h.ledger.Deposit(claims.Username, req.Amount)
	if err != nil {
		return err
	}

	return c.JSON(dto.MutationResponse{
		Message:    formatAmount(req.Amount) + " deposited successfully.",
		NewBalance: newBalance,
	})
}

// Withdraw handles POST /withdraw.
func (h *LedgerHandler) Withdraw(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewMissingToken("Access Denied: No token provided.")
	}

	var req dto.AmountRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewInvalidAmount("Invalid withdrawal amount")
	}

	newBalance, err := h.ledger.Withdraw(claims.Username, req.Amount)
	if err != nil {
		return err
	}

	return c.JSON(dto.MutationResponse{
		Message:    formatAmount(req.Amount) + " withdrawn successfully.",
		NewBalance: newBalance,
	})
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
