package controllers

import (
	"strconv"

	"github.com/alexlopesbr/little-lemon-api/entity"
	"github.com/alexlopesbr/little-lemon-api/pkg/apperr"
	"github.com/alexlopesbr/little-lemon-api/repository"
	"github.com/alexlopesbr/little-lemon-api/utils"

	"github.com/gin-gonic/gin"
)

// idParam parses a positive integer path parameter. Anything else is a 404,
// the same as an unmatched route.
func idParam(c *gin.Context, name string) (uint, error) {
	n, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || n == 0 {
		return 0, apperr.NotFound("not found")
	}
	return uint(n), nil
}

func paging(c *gin.Context) (repository.Paging, error) {
	var p repository.Paging
	var err error
	if v := c.Query("page"); v != "" {
		if p.Page, err = strconv.Atoi(v); err != nil || p.Page < 1 {
			return p, apperr.Invalid("page", "must be a positive integer")
		}
	}
	if v := c.Query("perpage"); v != "" {
		if p.PerPage, err = strconv.Atoi(v); err != nil || p.PerPage < 1 {
			return p, apperr.Invalid("perpage", "must be a positive integer")
		}
	}
	return p.Normalize(), nil
}

func boolQuery(c *gin.Context, name string) (*bool, error) {
	v, ok := c.GetQuery(name)
	if !ok || v == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, apperr.Invalid(name, "must be true or false")
	}
	return &b, nil
}

// principal is set by AuthMiddleware on every protected route.
func principal(c *gin.Context) (entity.Principal, error) {
	p, ok := utils.CurrentPrincipal(c)
	if !ok {
		return p, apperr.Unauthorized("authentication credentials were not provided")
	}
	return p, nil
}
