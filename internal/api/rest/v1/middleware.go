package v1

import (
	"net/http"
	"strings"
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/auth"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

const claimsKey = "claims"

// RequestLogger logs method, path, status and latency of every request
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		status := ctx.Writer.Status()
		entry := log.With(
			"method", ctx.Request.Method,
			"path", ctx.Request.URL.Path,
			"status", status,
			"latency", time.Since(start).String(),
			"client_ip", ctx.ClientIP(),
		)
		switch {
		case status >= http.StatusInternalServerError:
			entry.Error("request failed")
		case status >= http.StatusBadRequest:
			entry.Warn("request rejected")
		default:
			entry.Info("request served")
		}
	}
}

// Authenticate accepts requests carrying a bearer access token with a live session
// and stores its claims in the context
func Authenticate(authService auth.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(token) == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "missing bearer token"})
			return
		}

		claims, err := authService.Authenticate(ctx, strings.TrimSpace(token))
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "invalid or expired token"})
			return
		}
		ctx.Set(claimsKey, claims)
		ctx.Next()
	}
}

// RequireRole rejects callers whose role ranks below role
func RequireRole(role string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims := claimsFrom(ctx)
		if claims == nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "authentication required"})
			return
		}
		if !claims.HasRole(role) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Message: "requires role " + role})
			return
		}
		ctx.Next()
	}
}

// OptionalAuthenticate stores claims when a valid bearer token is present and lets
// anonymous requests through
func OptionalAuthenticate(authService auth.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if token, found := strings.CutPrefix(ctx.GetHeader("Authorization"), "Bearer "); found {
			if claims, err := authService.Authenticate(ctx, strings.TrimSpace(token)); err == nil {
				ctx.Set(claimsKey, claims)
			}
		}
		ctx.Next()
	}
}

func claimsFrom(ctx *gin.Context) *auth.Claims {
	value, ok := ctx.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := value.(*auth.Claims)
	return claims
}
