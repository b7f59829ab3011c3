package scope

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"samaritans-api/internal/model"
)

// ErrInvalidToken is returned for tokens that fail signature or claim checks.
var ErrInvalidToken = errors.New("invalid token")

// TokenExpiry is the session token lifetime.
const TokenExpiry = 24 * time.Hour

// Claims is the JWT claim set carried by the session cookie.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	UserType string `json:"user_type"`
	jwt.RegisteredClaims
}

// Manager issues and verifies session tokens.
type Manager struct {
	secret []byte
}

// NewManager creates a Manager with the given signing secret.
func NewManager(secret string) Manager {
	return Manager{secret: []byte(secret)}
}

// Generate signs a new session token for the given scope.
func (m Manager) Generate(sc model.Scope) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   sc.UserID,
		Username: sc.Username,
		Email:    sc.Email,
		UserType: string(sc.UserType),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Verify parses a session token and rebuilds the request scope.
func (m Manager) Verify(tokenStr string) (model.Scope, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return model.Scope{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return model.Scope{}, ErrInvalidToken
	}

	return model.Scope{
		UserID:   claims.UserID,
		Username: claims.Username,
		Email:    claims.Email,
		UserType: model.UserType(claims.UserType),
	}, nil
}
