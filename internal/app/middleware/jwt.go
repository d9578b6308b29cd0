package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"gateapp-http-service/internal/domain/services"
	"gateapp-http-service/internal/domain/services/container"
	"gateapp-http-service/internal/error/response"
)

// Context keys set by the auth middleware
const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
	ContextRole     = "role"
)

// JWTAuth validates the bearer token and stores the claims on the context
func JWTAuth(c *container.ServiceContainer) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(ctx)
			ctx.Abort()
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		jwtService, ok := c.GetService("jwt").(services.InterfaceJWTService)
		if !ok {
			response.ServerError(ctx)
			ctx.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			response.Unauthorized(ctx)
			ctx.Abort()
			return
		}

		ctx.Set(ContextUserID, claims.UserID)
		ctx.Set(ContextUsername, claims.Username)
		ctx.Set(ContextRole, claims.Role)
		ctx.Next()
	}
}

// RequireRole allows only the listed roles past
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		role := ctx.GetString(ContextRole)
		for _, allowed := range roles {
			if role == allowed {
				ctx.Next()
				return
			}
		}
		response.Unauthorized(ctx)
		ctx.Abort()
	}
}
