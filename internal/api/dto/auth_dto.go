package dto

// LoginRequest payload for credential issuance.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the signed access credential.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
