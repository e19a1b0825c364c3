package api

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultUserID is used when no auth secret is configured or a request
// carries no token. All unauthenticated traffic shares one preference store.
const DefaultUserID = "default"

const userIDKey = "mealer.userID"

// AuthMiddleware resolves the requesting user from a bearer token. With an
// empty secret authentication is disabled and everyone is the default user.
// Tokens that are missing, malformed or fail verification also map to the
// default user; identity is an upgrade, not a gate.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(userIDKey, resolveUserID(secret, c.GetHeader("Authorization")))
		c.Next()
	}
}

func resolveUserID(secret, header string) string {
	if secret == "" || header == "" {
		return DefaultUserID
	}

	tokenString := strings.TrimPrefix(header, "Bearer ")
	if tokenString == header {
		return DefaultUserID
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return DefaultUserID
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok {
		if sub, err := claims.GetSubject(); err == nil && sub != "" {
			return sub
		}
	}
	return DefaultUserID
}

// userIDFrom reads the resolved user ID off the request context.
func userIDFrom(c *gin.Context) string {
	if id := c.GetString(userIDKey); id != "" {
		return id
	}
	return DefaultUserID
}
