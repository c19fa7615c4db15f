package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bank-ledger-service/internal/api/dto"
	"github.com/spec-kit/bank-ledger-service/internal/service"
	apperrors "github.com/spec-kit/bank-ledger-service/pkg/util"
)

// AuthHandler exposes the login endpoint.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	token, _, err := h.auth.IssueCredential(c.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.LoginResponse{
		Message: "Login successful",
		Token:   token,
	})
}
