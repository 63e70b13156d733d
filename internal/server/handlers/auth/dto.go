package auth

// LoginRequest represents the request payload for a login.
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=1,max=256"`
}

// RefreshRequest carries the token to refresh.
type RefreshRequest struct {
	Token string `json:"token" validate:"required"`
}

// TokenResponse represents an issued access token.
type TokenResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}
