package auth

// TokenType values carried in the "type" claim.
const (
	TokenTypeEditor = "editor"
)

type TokenResponse struct {
	Token     string `json:"token"`
	Subject   string `json:"subject"`
	ExpiresAt int64  `json:"expires_at"`
}
