package request

// LoginRequest exchanges staff credentials for a session token.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
