package utils

import (
	"github.com/alexlopesbr/little-lemon-api/entity"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserID    = "userId"
	ctxPrincipal = "principal"
)

// SetPrincipal stores the authenticated caller on the request context.
func SetPrincipal(c *gin.Context, p entity.Principal) {
	c.Set(ctxUserID, p.UserID)
	c.Set(ctxPrincipal, p)
}

func CurrentUserID(c *gin.Context) uint {
	return c.GetUint(ctxUserID)
}

// CurrentPrincipal returns the caller; ok is false on anonymous requests.
func CurrentPrincipal(c *gin.Context) (entity.Principal, bool) {
	v, ok := c.Get(ctxPrincipal)
	if !ok {
		return entity.Principal{}, false
	}
	p, ok := v.(entity.Principal)
	return p, ok
}
