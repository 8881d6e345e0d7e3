// Package auth provides concrete implementations for authentication-related
// domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"igpress/config"
	"igpress/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using
// the JWT standard. The session token carries the Facebook provider token as
// a claim so that no handler has to reach into ambient session state: the
// middleware extracts it once and passes it down explicitly.
type jwtService struct {
	secret     string        // Secret key for signing session tokens.
	sessionTTL time.Duration // Time-to-live for session tokens.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &jwtService{
		secret:     cfg.SecretKey.Session,
		sessionTTL: time.Hour * 24,
	}, nil
}

// GenerateSessionToken mints a signed session token for a logged-in user.
func (s *jwtService) GenerateSessionToken(facebookID, providerToken string) (string, error) {
	claims := jwt.MapClaims{
		"sub":      facebookID,                           // Subject (who the token is for)
		"iat":      time.Now().Unix(),                    // Issued At
		"exp":      time.Now().Add(s.sessionTTL).Unix(),  // Expiration Time
		"fb_token": providerToken,                        // Facebook user access token
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// ValidateSessionToken verifies a session token and extracts its claims.
func (s *jwtService) ValidateSessionToken(tokenString string) (*service.SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	facebookID, ok := claims["sub"].(string)
	if !ok || facebookID == "" {
		return nil, jwt.ErrTokenInvalidSubject
	}

	providerToken, ok := claims["fb_token"].(string)
	if !ok || providerToken == "" {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return &service.SessionClaims{
		FacebookID:    facebookID,
		ProviderToken: providerToken,
	}, nil
}
