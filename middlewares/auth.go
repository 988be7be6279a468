package middlewares

import (
	"strings"

	"github.com/alexlopesbr/little-lemon-api/pkg/apperr"
	"github.com/alexlopesbr/little-lemon-api/pkg/resp"
	"github.com/alexlopesbr/little-lemon-api/services"
	"github.com/alexlopesbr/little-lemon-api/utils"

	"github.com/gin-gonic/gin"
)

func bearer(c *gin.Context) (string, bool) {
	h := c.GetHeader("Authorization")
	if h == "" || !strings.HasPrefix(h, "Bearer ") {
		return "", false
	}
	tok := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	return tok, tok != ""
}

// AuthMiddleware requires a valid access token. Roles are read from the
// database on every request, so membership changes apply immediately.
func AuthMiddleware(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok, ok := bearer(c)
		if !ok {
			resp.Unauthorized(c, "authentication credentials were not provided")
			return
		}
		p, err := auth.Authenticate(tok)
		if err != nil {
			if apperr.Is(err, apperr.KindUnauthorized) {
				resp.Unauthorized(c, "invalid token")
				return
			}
			resp.Error(c, err)
			c.Abort()
			return
		}
		utils.SetPrincipal(c, p)
		c.Next()
	}
}

// OptionalAuth attaches the caller when a valid token is present and lets
// anonymous requests through.
func OptionalAuth(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tok, ok := bearer(c); ok {
			if p, err := auth.Authenticate(tok); err == nil {
				utils.SetPrincipal(c, p)
			}
		}
		c.Next()
	}
}

// RequireManager lets through admins and members of the manager group.
// Must run after AuthMiddleware.
func RequireManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := utils.CurrentPrincipal(c)
		if !ok {
			resp.Unauthorized(c, "authentication credentials were not provided")
			return
		}
		if !p.CanManage() {
			resp.Forbidden(c, "you do not have permission to perform this action")
			return
		}
		c.Next()
	}
}
