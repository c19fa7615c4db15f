package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/bank-ledger-service/internal/api/http/handlers"
	"github.com/spec-kit/bank-ledger-service/internal/auth"
	"github.com/spec-kit/bank-ledger-service/internal/config"
	"github.com/spec-kit/bank-ledger-service/internal/ledger"
	"github.com/spec-kit/bank-ledger-service/internal/observability"
	"github.com/spec-kit/bank-ledger-service/internal/service"
)

func newTestApp(t *testing.T) (*fiber.App, *observability.Metrics) {
	t.Helper()

	cfg := config.Config{
		App: config.AppConfig{Name: "bank-ledger-service", Version: "test"},
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret",
			TokenTTLMinutes: 60,
			Username:        "user123",
			Password:        "password123",
		},
		Ledger: config.LedgerConfig{AccountID: "ACC001", OpeningBalance: 1000.00},
	}

	logger := zap.NewNop()
	account := ledger.NewAccount(cfg.Ledger.AccountID, cfg.Ledger.OpeningBalance)
	identity := auth.NewStaticIdentity(cfg.Auth)
	authService := service.NewAuthService(cfg, identity, logger)
	ledgerService := service.NewLedgerService(account, logger)
	metrics := observability.NewMetrics()

	app := fiber.New()
	RegisterMiddlewares(app, logger, metrics, 0)
	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version),
		Auth:           handlers.NewAuthHandler(authService),
		Ledger:         handlers.NewLedgerHandler(ledgerService),
		AuthMiddleware: auth.NewAuthMiddleware(authService.TokenManager(), logger),
	})
	return app, metrics
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out), "body: %s", raw)
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	decodeBody(t, resp, &body)
	return body.Error.Code
}

func login(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/login", "", fiber.Map{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Message string `json:"message"`
		Token   string `json:"token"`
	}
	decodeBody(t, resp, &body)
	require.Equal(t, "Login successful", body.Message)
	require.NotEmpty(t, body.Token)
	return body.Token
}

func TestLogin_WrongCredentials(t *testing.T) {
	app, _ := newTestApp(t)

	for _, creds := range []fiber.Map{
		{"username": "user123", "password": "nope"},
		{"username": "stranger", "password": "password123"},
		{"username": "", "password": ""},
	} {
		resp := doJSON(t, app, http.MethodPost, "/login", "", creds)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "INVALID_CREDENTIALS", errorCode(t, resp))
	}
}

func TestBalance_RequiresToken(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/balance", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", errorCode(t, resp))
}

func TestBalance_RejectsForeignToken(t *testing.T) {
	app, _ := newTestApp(t)

	foreign, _, err := auth.NewTokenManager("some-other-secret", 60).GenerateToken("user123", "ACC001")
	require.NoError(t, err)

	resp := doJSON(t, app, http.MethodGet, "/balance", foreign, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", errorCode(t, resp))
}

func TestBalance_Read(t *testing.T) {
	app, _ := newTestApp(t)
	token := login(t, app, "user123", "password123")

	resp := doJSON(t, app, http.MethodGet, "/balance", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Message string  `json:"message"`
		Balance float64 `json:"balance"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "Account balance retrieved successfully", body.Message)
	assert.Equal(t, 1000.00, body.Balance)
}

// TestMoneyFlow drives the reference scenario end to end: deposit 500,
// refuse an overdraw, drain the account, refuse one more cent.
func TestMoneyFlow(t *testing.T) {
	app, _ := newTestApp(t)
	token := login(t, app, "user123", "password123")

	var mutation struct {
		Message    string  `json:"message"`
		NewBalance float64 `json:"newBalance"`
	}

	resp := doJSON(t, app, http.MethodPost, "/deposit", token, fiber.Map{"amount": 500})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &mutation)
	assert.Equal(t, "500 deposited successfully.", mutation.Message)
	assert.Equal(t, 1500.00, mutation.NewBalance)

	resp = doJSON(t, app, http.MethodPost, "/withdraw", token, fiber.Map{"amount": 2000})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_FUNDS", errorCode(t, resp))

	var balance struct {
		Balance float64 `json:"balance"`
	}
	resp = doJSON(t, app, http.MethodGet, "/balance", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &balance)
	assert.Equal(t, 1500.00, balance.Balance)

	resp = doJSON(t, app, http.MethodPost, "/withdraw", token, fiber.Map{"amount": 1500})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &mutation)
	assert.Equal(t, "1500 withdrawn successfully.", mutation.Message)
	assert.Equal(t, 0.00, mutation.NewBalance)

	resp = doJSON(t, app, http.MethodPost, "/withdraw", token, fiber.Map{"amount": 0.01})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_FUNDS", errorCode(t, resp))
}

func TestMutations_InvalidAmounts(t *testing.T) {
	app, _ := newTestApp(t)
	token := login(t, app, "user123", "password123")

	for _, amount := range []any{-5, 0, "abc"} {
		resp := doJSON(t, app, http.MethodPost, "/deposit", token, fiber.Map{"amount": amount})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_AMOUNT", errorCode(t, resp))

		resp = doJSON(t, app, http.MethodPost, "/withdraw", token, fiber.Map{"amount": amount})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_AMOUNT", errorCode(t, resp))
	}

	var balance struct {
		Balance float64 `json:"balance"`
	}
	resp := doJSON(t, app, http.MethodGet, "/balance", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &balance)
	assert.Equal(t, 1000.00, balance.Balance)
}

func TestHealthProbes(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/health/live", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/health/ready", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMetrics_CountRequestsAndErrors(t *testing.T) {
	app, metrics := newTestApp(t)

	_ = doJSON(t, app, http.MethodGet, "/balance", "", nil)
	_ = doJSON(t, app, http.MethodGet, "/health/live", "", nil)

	assert.GreaterOrEqual(t, metrics.TotalRequests(), int64(2))
	assert.Equal(t, int64(1), metrics.Errors()["/balance|GET|MISSING_TOKEN"])
}
