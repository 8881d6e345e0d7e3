package service

// SessionClaims are the claims carried by a session token. The provider
// token is the Facebook user access token obtained during login; it is the
// credential the account resolver and profile fetch authenticate with.
type SessionClaims struct {
	FacebookID    string
	ProviderToken string
}

// TokenService defines the interface for session token generation and validation.
type TokenService interface {
	// GenerateSessionToken mints a signed session token for a logged-in user.
	GenerateSessionToken(facebookID, providerToken string) (string, error)

	// ValidateSessionToken verifies a session token and extracts its claims.
	ValidateSessionToken(tokenString string) (*SessionClaims, error)
}
