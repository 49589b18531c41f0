package response

import "time"

// LoginResponse carries the signed session token.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SaleResultResponse relays the manual-sale procedure's structured outcome.
type SaleResultResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
