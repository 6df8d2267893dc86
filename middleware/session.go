package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenHeader carries the cart session token in both directions.
const TokenHeader = "X-Cart-Token"

const sessionKey = "sessionID"

type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// GenerateToken signs a session token valid for ttl
func GenerateToken(secret []byte, sessionID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseToken returns the session id of a valid token
func ParseToken(secret []byte, tokenStr string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.SessionID == "" {
		return "", jwt.ErrTokenInvalidClaims
	}
	return claims.SessionID, nil
}

// CartSession resolves the caller's cart session. A missing, expired or
// forged token starts a new session, whose token is sent back in the
// X-Cart-Token response header.
func CartSession(secret []byte, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenStr := c.GetHeader(TokenHeader); tokenStr != "" {
			if sid, err := ParseToken(secret, tokenStr); err == nil {
				c.Set(sessionKey, sid)
				c.Next()
				return
			}
		}
		sid := uuid.NewString()
		token, err := GenerateToken(secret, sid, ttl)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not start a session"})
			c.Abort()
			return
		}
		c.Header(TokenHeader, token)
		c.Set(sessionKey, sid)
		c.Next()
	}
}

// GetSessionID extracts the cart session id from context
func GetSessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}
