package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Yasheenyash33/training-tracker-Dash/internal/access"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/model"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/repository"
	"github.com/Yasheenyash33/training-tracker-Dash/pkg/jwt"
	"github.com/Yasheenyash33/training-tracker-Dash/pkg/response"
)

// Context keys set by JWTAuth.
const (
	PrincipalKey = "principal"
	ClaimsKey    = "claims"
)

// RevocationChecker reports revoked token ids. *redis.Client satisfies it.
type RevocationChecker interface {
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}

// AccountLoader reloads the token's user. repository.UserRepository
// satisfies it.
type AccountLoader interface {
	GetByID(ctx context.Context, id uint, scopes ...repository.Scope) (*model.User, error)
}

// JWTAuth validates "Authorization: Bearer <access token>" and stores the
// caller's access.Principal and token claims on the context.
// With a non-nil accounts, role, staff flag and active state come from the
// stored user rather than the claims, so deactivation and role changes take
// effect before the token expires.
func JWTAuth(jwtMgr *jwt.Manager, revoked RevocationChecker, accounts AccountLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "authentication credentials were not provided")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 10002, "invalid authorization header")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, 10002, "token is invalid or expired")
			c.Abort()
			return
		}

		if claims.TokenType != jwt.TokenTypeAccess {
			response.Unauthorized(c, 10002, "token type is invalid")
			c.Abort()
			return
		}

		// a failing lookup degrades to allow, like the rate limiter
		if blocked, _ := revoked.IsBlacklisted(c.Request.Context(), claims.ID); blocked {
			response.Unauthorized(c, 10002, "token has been revoked")
			c.Abort()
			return
		}

		principal := access.Principal{
			UserID:    claims.UserID,
			Role:      model.Role(claims.Role),
			IsStaff:   claims.IsStaff,
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}
		if accounts != nil {
			user, err := accounts.GetByID(c.Request.Context(), claims.UserID)
			if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && !user.IsActiveFlag) {
				response.Unauthorized(c, 10002, "user is inactive or deleted")
				c.Abort()
				return
			}
			if err != nil {
				response.InternalError(c)
				c.Abort()
				return
			}
			principal.Role, principal.IsStaff = user.Role, user.IsStaff
		}

		c.Set(PrincipalKey, principal)
		c.Set(ClaimsKey, claims)

		c.Next()
	}
}

// Require lets the request through only when allow accepts the principal.
// It must run after JWTAuth.
func Require(allow access.Predicate) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get(PrincipalKey)
		p, ok := v.(access.Principal)
		if !exists || !ok {
			response.Unauthorized(c, 10002, "authentication credentials were not provided")
			c.Abort()
			return
		}

		if !allow(p) {
			response.Forbidden(c, 10003, "you do not have permission to perform this action")
			c.Abort()
			return
		}

		c.Next()
	}
}
