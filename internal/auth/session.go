package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// SessionCookieName is the cookie carrying the signed session token.
	SessionCookieName = "asiadrive_session"
	// SessionTTL is how long a session stays valid after sign-in.
	SessionTTL = 7 * 24 * time.Hour
)

// SessionClaims is the JWT payload of a session token. The token ID (jti)
// doubles as the server-side session record key.
type SessionClaims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// SessionManager issues and validates signed session tokens.
type SessionManager struct {
	secret []byte
}

// NewSessionManager creates a session manager with the given signing secret.
func NewSessionManager(secret string) *SessionManager {
	return &SessionManager{secret: []byte(secret)}
}

// IssueToken generates a session token for the user. The session ID is
// returned separately for storage in Redis.
func (m *SessionManager) IssueToken(userID uint) (sessionID string, token string, err error) {
	sessionID = uuid.New().String()
	now := time.Now()
	claims := &SessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Subject:   fmt.Sprint(userID),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	tokenObj := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err = tokenObj.SignedString(m.secret)
	return sessionID, token, err
}

// Keyfunc resolves the signing key for token validation and rejects tokens
// signed with anything other than HMAC.
func (m *SessionManager) Keyfunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.New("unexpected signing method")
	}
	return m.secret, nil
}

// ParseToken validates a session token and returns its claims.
func (m *SessionManager) ParseToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, m.Keyfunc)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.ID == "" {
		return nil, errors.New("session ID not found")
	}

	return claims, nil
}
