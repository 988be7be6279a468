package controllers

import (
	"github.com/alexlopesbr/little-lemon-api/entity"
	"github.com/alexlopesbr/little-lemon-api/pkg/resp"
	"github.com/alexlopesbr/little-lemon-api/services"

	"github.com/gin-gonic/gin"
)

type AssignRoleRequest struct {
	Username string `json:"username" binding:"required"`
}

// GroupController serves /groups/<role>/users for one role.
type GroupController struct {
	Svc  *services.RoleService
	Role entity.Role
}

func NewGroupController(s *services.RoleService, role entity.Role) *GroupController {
	return &GroupController{Svc: s, Role: role}
}

// GET /groups/<role>/users
func (g *GroupController) List(c *gin.Context) {
	p, err := paging(c)
	if err != nil {
		resp.Error(c, err)
		return
	}
	users, total, err := g.Svc.ListMembers(g.Role, p)
	if err != nil {
		resp.Error(c, err)
		return
	}
	out := make([]userOut, 0, len(users))
	for i := range users {
		out = append(out, toUser(&users[i]))
	}
	resp.OK(c, resp.Page{Items: out, Total: total, Page: p.Page, PerPage: p.PerPage})
}

// POST /groups/<role>/users {"username": "..."}
func (g *GroupController) Assign(c *gin.Context) {
	var req AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BindError(c, err)
		return
	}
	u, err := g.Svc.Assign(g.Role, req.Username)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, toUser(u))
}

// GET /groups/<role>/users/:id
func (g *GroupController) Get(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		resp.Error(c, err)
		return
	}
	u, err := g.Svc.Member(g.Role, id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, toUser(u))
}

// DELETE /groups/<role>/users/:id
func (g *GroupController) Remove(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		resp.Error(c, err)
		return
	}
	if err := g.Svc.Remove(g.Role, id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.NoContent(c)
}
