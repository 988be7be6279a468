package controllers

import (
	"github.com/alexlopesbr/little-lemon-api/pkg/resp"
	"github.com/alexlopesbr/little-lemon-api/services"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

// POST /users
func (a *AuthController) Register(c *gin.Context) {
	var req services.RegisterIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BindError(c, err)
		return
	}
	user, err := a.Svc.Register(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, toUser(user))
}

// GET /users/me
func (a *AuthController) Me(c *gin.Context) {
	p, err := principal(c)
	if err != nil {
		resp.Error(c, err)
		return
	}
	user, err := a.Svc.Me(p.UserID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	groups := make([]string, 0, len(user.Groups))
	for _, g := range user.Groups {
		groups = append(groups, g.Name)
	}
	resp.OK(c, gin.H{
		"user":     toUser(user),
		"role":     p.Role().String(),
		"is_admin": p.IsAdmin,
		"groups":   groups,
	})
}

// POST /token
func (a *AuthController) Token(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BindError(c, err)
		return
	}
	pair, err := a.Svc.Login(req.Username, req.Password)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, pair)
}

// POST /token/refresh
func (a *AuthController) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BindError(c, err)
		return
	}
	access, err := a.Svc.Refresh(c.Request.Context(), req.Refresh)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"access": access})
}

// POST /token/blacklist
func (a *AuthController) Blacklist(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BindError(c, err)
		return
	}
	if err := a.Svc.BlacklistToken(c.Request.Context(), req.Refresh); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{})
}
