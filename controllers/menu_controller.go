package controllers

import (
	"net/http"
	"strings"

	"github.com/alexlopesbr/little-lemon-api/pkg/resp"
	"github.com/alexlopesbr/little-lemon-api/repository"
	"github.com/alexlopesbr/little-lemon-api/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Svc *services.MenuService
}

func NewMenuController(s *services.MenuService) *MenuController {
	return &MenuController{Svc: s}
}

// GET /menu-items?search=&category=&featured=&ordering=&page=&perpage=
func (ctl *MenuController) List(c *gin.Context) {
	p, err := paging(c)
	if err != nil {
		resp.Error(c, err)
		return
	}
	featured, err := boolQuery(c, "featured")
	if err != nil {
		resp.Error(c, err)
		return
	}
	items, total, err := ctl.Svc.List(repository.MenuFilter{
		Search:       c.Query("search"),
		CategorySlug: strings.TrimSpace(c.Query("category")),
		Featured:     featured,
		Ordering:     c.Query("ordering"),
		Paging:       p,
	})
	if err != nil {
		resp.Error(c, err)
		return
	}
	out := make([]menuItemOut, 0, len(items))
	for i := range items {
		out = append(out, toMenuItem(&items[i]))
	}
	resp.OK(c, resp.Page{Items: out, Total: total, Page: p.Page, PerPage: p.PerPage})
}

// GET /menu-items/:id
func (ctl *MenuController) Get(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		resp.Error(c, err)
		return
	}
	m, err := ctl.Svc.Get(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, toMenuItem(m))
}

// POST /menu-items
func (ctl *MenuController) Create(c *gin.Context) {
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BindError(c, err)
		return
	}
	m, err := ctl.Svc.Create(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, toMenuItem(m))
}

// PUT, PATCH /menu-items/:id
func (ctl *MenuController) Update(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		resp.Error(c, err)
		return
	}
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BindError(c, err)
		return
	}
	m, err := ctl.Svc.Update(id, &req, c.Request.Method == http.MethodPut)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, toMenuItem(m))
}

// DELETE /menu-items/:id
func (ctl *MenuController) Delete(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		resp.Error(c, err)
		return
	}
	if err := ctl.Svc.Delete(id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.NoContent(c)
}

