package controllers

import (
	"github.com/alexlopesbr/little-lemon-api/pkg/resp"
	"github.com/alexlopesbr/little-lemon-api/services"
	"github.com/alexlopesbr/little-lemon-api/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart/menu-items
func (h *CartController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "authentication credentials were not provided")
		return
	}

	lines, subtotal, err := h.Svc.Get(uid)
	if err != nil {
		resp.Error(c, err)
		return
	}
	out := make([]cartLineOut, 0, len(lines))
	for i := range lines {
		out = append(out, toCartLine(&lines[i]))
	}
	resp.OK(c, gin.H{"items": out, "subtotal": subtotal.StringFixed(2)})
}

// POST /cart/menu-items
func (h *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "authentication credentials were not provided")
		return
	}

	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BindError(c, err)
		return
	}
	line, err := h.Svc.Add(uid, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, toCartLine(line))
}

// DELETE /cart/menu-items/:menuItemId
func (h *CartController) RemoveItem(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "authentication credentials were not provided")
		return
	}
	menuItemID, err := idParam(c, "menuItemId")
	if err != nil {
		resp.Error(c, err)
		return
	}
	if err := h.Svc.Remove(uid, menuItemID); err != nil {
		resp.Error(c, err)
		return
	}
	resp.NoContent(c)
}

// DELETE /cart/menu-items
func (h *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "authentication credentials were not provided")
		return
	}
	if err := h.Svc.Clear(uid); err != nil {
		resp.Error(c, err)
		return
	}
	resp.NoContent(c)
}
