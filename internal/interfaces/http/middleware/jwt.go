package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/taskflow/backend/internal/domain/identity"
	"github.com/taskflow/backend/internal/infrastructure/auth"
	"github.com/taskflow/backend/internal/infrastructure/logger"
	"github.com/taskflow/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// JWT context keys
const (
	JWTClaimsKey   = "jwt_claims"
	JWTUserIDKey   = "jwt_user_id"
	CurrentUserKey = "current_user"
	AuthHeaderKey  = "Authorization"
	BearerPrefix   = "Bearer "
)

// JWTMiddlewareConfig holds configuration for JWT middleware
type JWTMiddlewareConfig struct {
	// JWTService is required for token validation
	JWTService *auth.JWTService
	// UserRepo loads the authenticated user and attaches it to the context
	UserRepo identity.UserRepository
	// TokenBlacklist is optional for checking invalidated sessions
	TokenBlacklist auth.TokenBlacklist
	// Logger for middleware logging
	Logger *zap.Logger
}

// JWTAuthMiddleware creates the session gate. Every request must carry
// a Bearer token whose signature and expiry verify, whose user still
// exists, and whose session has not been invalidated.
func JWTAuthMiddleware(cfg JWTMiddlewareConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" || !strings.HasPrefix(authHeader, BearerPrefix) {
			abortUnauthorized(c, cfg, nil, "Unauthorized")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		if tokenString == "" {
			abortUnauthorized(c, cfg, nil, "Unauthorized")
			return
		}

		claims, err := cfg.JWTService.ValidateSessionToken(tokenString)
		if err != nil {
			abortUnauthorized(c, cfg, err, "Invalid token")
			return
		}

		userID, err := claims.GetUserUUID()
		if err != nil {
			abortUnauthorized(c, cfg, err, "Invalid token")
			return
		}

		ctx := c.Request.Context()

		// Sessions issued before a password change are rejected
		if cfg.TokenBlacklist != nil {
			invalidated, err := cfg.TokenBlacklist.IsUserTokenInvalidated(ctx, userID.String(), claims.GetIssuedAtTime())
			if err != nil {
				// Fail open for availability, the token signature already verified
				if cfg.Logger != nil {
					cfg.Logger.Error("Failed to check session invalidation",
						zap.String("user_id", userID.String()),
						zap.Error(err))
				}
			} else if invalidated {
				abortUnauthorized(c, cfg, auth.ErrTokenBlacklisted, "Invalid token")
				return
			}
		}

		user, err := cfg.UserRepo.FindByID(ctx, userID)
		if err != nil {
			abortUnauthorized(c, cfg, err, "Invalid token")
			return
		}

		c.Set(JWTClaimsKey, claims)
		c.Set(JWTUserIDKey, userID)
		c.Set(CurrentUserKey, user)
		c.Request = c.Request.WithContext(logger.WithUserID(ctx, userID.String()))

		c.Next()
	}
}

// abortUnauthorized rejects the request with a 401 error body
func abortUnauthorized(c *gin.Context, cfg JWTMiddlewareConfig, err error, message string) {
	if cfg.Logger != nil && err != nil {
		cfg.Logger.Warn("Authentication failed",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path))
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(message))
}

// GetJWTClaims retrieves JWT claims from gin.Context
func GetJWTClaims(c *gin.Context) *auth.Claims {
	if claims, exists := c.Get(JWTClaimsKey); exists {
		if jwtClaims, ok := claims.(*auth.Claims); ok {
			return jwtClaims
		}
	}
	return nil
}

// GetCurrentUser retrieves the authenticated user from gin.Context
func GetCurrentUser(c *gin.Context) *identity.User {
	if user, exists := c.Get(CurrentUserKey); exists {
		if u, ok := user.(*identity.User); ok {
			return u
		}
	}
	return nil
}

// MustGetCurrentUser retrieves the authenticated user or panics. Only
// valid behind the session gate.
func MustGetCurrentUser(c *gin.Context) *identity.User {
	user := GetCurrentUser(c)
	if user == nil {
		panic("current user not found in context")
	}
	return user
}
