package controllers

import (
	"net/http"

	"github.com/alexlopesbr/little-lemon-api/pkg/resp"
	"github.com/alexlopesbr/little-lemon-api/services"

	"github.com/gin-gonic/gin"
)

type CategoryController struct{ Svc *services.CategoryService }

func NewCategoryController(s *services.CategoryService) *CategoryController {
	return &CategoryController{Svc: s}
}

// GET /category
func (h *CategoryController) List(c *gin.Context) {
	p, err := paging(c)
	if err != nil {
		resp.Error(c, err)
		return
	}
	cats, total, err := h.Svc.List(p)
	if err != nil {
		resp.Error(c, err)
		return
	}
	out := make([]categoryOut, 0, len(cats))
	for i := range cats {
		out = append(out, toCategory(&cats[i]))
	}
	resp.OK(c, resp.Page{Items: out, Total: total, Page: p.Page, PerPage: p.PerPage})
}

// GET /category/:id
func (h *CategoryController) Get(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		resp.Error(c, err)
		return
	}
	cat, err := h.Svc.Get(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, toCategory(cat))
}

// POST /category
func (h *CategoryController) Create(c *gin.Context) {
	var req services.CategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BindError(c, err)
		return
	}
	cat, err := h.Svc.Create(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, toCategory(cat))
}

// PUT, PATCH /category/:id
func (h *CategoryController) Update(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		resp.Error(c, err)
		return
	}
	var req services.CategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BindError(c, err)
		return
	}
	cat, err := h.Svc.Update(id, &req, c.Request.Method == http.MethodPut)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, toCategory(cat))
}

// DELETE /category/:id
func (h *CategoryController) Delete(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		resp.Error(c, err)
		return
	}
	if err := h.Svc.Delete(id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.NoContent(c)
}
