package handler

import (
	"net/http"

	"boxbox/middleware"
	"boxbox/pkg/context"
	"boxbox/pkg/response"
	"boxbox/service"
	"boxbox/types"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	AuthService service.IAuthService
	Identity    middleware.IdentityProvider
}

func (h *Auth) RegisterRouter(r gin.IRouter) {
	g := r.Group("/auth")
	g.POST("/register", context.Wrap(h.Register))
	g.POST("/login", context.Wrap(h.Login))
	g.POST("/refresh", context.Wrap(h.Refresh))
	g.POST("/logout", middleware.Auth(h.Identity), context.Wrap(h.Logout))
}

// Register 注册
func (h *Auth) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	resp, err := h.AuthService.Register(c.Request.Context(), &req)
	if err != nil {
		return err
	}

	response.Success(c, resp)
	return nil
}

// Login 登录
func (h *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	resp, err := h.AuthService.Login(c.Request.Context(), &req)
	if err != nil {
		return err
	}

	response.Success(c, resp)
	return nil
}

// Refresh 刷新访问令牌
func (h *Auth) Refresh(c *gin.Context) error {
	var req types.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	pair, err := h.AuthService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		return err
	}

	response.Success(c, pair)
	return nil
}

// Logout 登出
func (h *Auth) Logout(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.ErrUnauthorized("未登录")
	}

	if err := h.AuthService.Logout(c.Request.Context(), userID); err != nil {
		return err
	}

	response.Success(c, gin.H{"logged_out": true})
	return nil
}
