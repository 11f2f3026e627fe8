package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-backend/internal/shared/response"
	"library-backend/pkg/cache"
	"library-backend/pkg/jwt"
	"library-backend/pkg/logger"
)

// Context keys set by the auth middleware and read by handlers.
const (
	CtxUserID    = "userID"
	CtxUserEmail = "userEmail"
	CtxUserRole  = "userRole"
	CtxClaims    = "authClaims"
)

// Auth rejects requests without a valid bearer access token and attaches
// the caller's identity to the gin context.
func Auth(jwtManager *jwt.Manager, store cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := resolveToken(c, jwtManager, store)
		if !ok {
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			response.Unauthorized(c, "invalid user id in token")
			c.Abort()
			return
		}

		c.Set(CtxUserID, userID)
		c.Set(CtxUserEmail, claims.Email)
		c.Set(CtxUserRole, claims.Role)
		c.Set(CtxClaims, claims)
		c.Next()
	}
}

// OptionalAuth attaches the caller's identity when a valid token is present
// but never rejects the request. Used on public reads that personalize
// their response for signed-in users.
func OptionalAuth(jwtManager *jwt.Manager, store cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		token, ok := bearerToken(authHeader)
		if !ok {
			c.Next()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(token)
		if err != nil {
			c.Next()
			return
		}

		if revoked, err := store.Exists(c.Request.Context(), jwt.DenylistKey(claims.ID)); err == nil && revoked {
			c.Next()
			return
		}

		if userID, err := uuid.Parse(claims.UserID); err == nil {
			c.Set(CtxUserID, userID)
			c.Set(CtxUserEmail, claims.Email)
			c.Set(CtxUserRole, claims.Role)
		}

		c.Next()
	}
}

// resolveToken extracts, validates and denylist-checks the bearer token.
// On failure it writes the 401 response and aborts.
func resolveToken(c *gin.Context, jwtManager *jwt.Manager, store cache.Cache) (*jwt.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c, "missing authorization header")
		c.Abort()
		return nil, false
	}

	token, ok := bearerToken(authHeader)
	if !ok {
		response.Unauthorized(c, "invalid authorization header format")
		c.Abort()
		return nil, false
	}

	claims, err := jwtManager.ValidateAccessToken(token)
	if err != nil {
		response.Unauthorized(c, "invalid token")
		c.Abort()
		return nil, false
	}

	// Logged-out tokens live in the denylist until they expire naturally.
	// A denylist read failure does not reject the token: Redis being down
	// degrades logout, not every authenticated request.
	revoked, err := store.Exists(c.Request.Context(), jwt.DenylistKey(claims.ID))
	if err != nil {
		logger.Error("token denylist check failed", err)
	} else if revoked {
		response.Unauthorized(c, "token has been revoked")
		c.Abort()
		return nil, false
	}

	return claims, true
}

func bearerToken(authHeader string) (string, bool) {
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}
