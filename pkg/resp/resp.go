package resp

import (
	"errors"
	"net/http"

	"github.com/alexlopesbr/little-lemon-api/pkg/apperr"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
func Unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
}
func Forbidden(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"ok": false, "error": msg})
}
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"ok": false, "error": "too many requests"})
}
func ServerError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal error"})
}

// Page is the body of every list endpoint.
type Page struct {
	Items   any   `json:"items"`
	Total   int64 `json:"total"`
	Page    int   `json:"page"`
	PerPage int   `json:"perpage"`
}

var statusByKind = map[apperr.Kind]int{
	apperr.KindNotFound:     http.StatusNotFound,
	apperr.KindUnauthorized: http.StatusUnauthorized,
	apperr.KindForbidden:    http.StatusForbidden,
	apperr.KindInvalidInput: http.StatusBadRequest,
	apperr.KindInvalidState: http.StatusBadRequest,
	apperr.KindConflict:     http.StatusConflict,
}

// Error writes err using the status of its apperr kind. Unknown errors are 500.
func Error(c *gin.Context, err error) {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		ServerError(c, err)
		return
	}
	status, ok := statusByKind[ae.Kind]
	if !ok {
		ServerError(c, err)
		return
	}
	_ = c.Error(err)
	body := gin.H{"ok": false, "error": ae.Msg, "kind": ae.Kind.String()}
	if len(ae.Fields) > 0 {
		body["fields"] = ae.Fields
	}
	if ae.Retryable {
		body["retryable"] = true
	}
	c.JSON(status, body)
}
