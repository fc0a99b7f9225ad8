package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// MustAuthenticateMiddleware requires a "Bearer <token>" Authorization header
// and, on success, attaches the caller's identity to the request context.
func (rh *RestHandler) MustAuthenticateMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing Authorization header",
			})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid Authorization header format",
			})
			return
		}

		claims, err := rh.authService.ParseToken(parts[1])
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid or expired token",
			})
			return
		}

		ctx.Set("user_id", claims.ID)
		ctx.Set("username", claims.Username)
		ctx.Next()
	}
}
