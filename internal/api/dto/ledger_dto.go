package dto

// AmountRequest payload for deposit and withdrawal.
type AmountRequest struct {
	Amount float64 `json:"amount"`
}

// BalanceResponse answers a balance read.
type BalanceResponse struct {
	Message string  `json:"message"`
	Balance float64 `json:"balance"`
}

// MutationResponse answers a successful deposit or withdrawal.
type MutationResponse struct {
	Message    string  `json:"message"`
	NewBalance float64 `json:"newBalance"`
}
