package handler

import (
	"boxbox/middleware"
	"boxbox/pkg/context"
	"boxbox/pkg/response"
	"boxbox/service"

	"github.com/gin-gonic/gin"
)

type User struct {
	UserService service.IUserService
	Identity    middleware.IdentityProvider
}

func (h *User) RegisterRouter(r gin.IRouter) {
	g := r.Group("/user")
	g.Use(middleware.Auth(h.Identity))
	g.GET("/:id", context.Wrap(h.GetProfile))
	g.DELETE("/:id", context.Wrap(h.DeleteAccount))
}

// GetProfile 用户主页
func (h *User) GetProfile(c *gin.Context) error {
	viewerID, err := context.GetUserID(c)
	if err != nil {
		return response.ErrUnauthorized("未登录")
	}

	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	profile, err := h.UserService.GetProfile(c.Request.Context(), viewerID, targetID)
	if err != nil {
		return err
	}

	response.Success(c, profile)
	return nil
}

// DeleteAccount 注销账号，仅本人
func (h *User) DeleteAccount(c *gin.Context) error {
	viewerID, err := context.GetUserID(c)
	if err != nil {
		return response.ErrUnauthorized("未登录")
	}

	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.UserService.DeleteAccount(c.Request.Context(), viewerID, targetID); err != nil {
		return err
	}

	response.Success(c, gin.H{"deleted": true})
	return nil
}
