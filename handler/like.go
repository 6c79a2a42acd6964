package handler

import (
	"boxbox/middleware"
	"boxbox/pkg/context"
	"boxbox/pkg/response"
	"boxbox/service"

	"github.com/gin-gonic/gin"
)

type Like struct {
	LikeService service.ILikeService
	Identity    middleware.IdentityProvider
}

func (h *Like) RegisterRouter(r gin.IRouter) {
	g := r.Group("/reviews")
	g.Use(middleware.Auth(h.Identity))
	g.POST("/:id/like", context.Wrap(h.Like))
	g.DELETE("/:id/like", context.Wrap(h.Unlike))
}

// Like 点赞
func (h *Like) Like(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.ErrUnauthorized("未登录")
	}

	reviewID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	resp, err := h.LikeService.Like(c.Request.Context(), userID, reviewID)
	if err != nil {
		return err
	}

	response.Success(c, resp)
	return nil
}

// Unlike 取消点赞
func (h *Like) Unlike(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.ErrUnauthorized("未登录")
	}

	reviewID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	resp, err := h.LikeService.Unlike(c.Request.Context(), userID, reviewID)
	if err != nil {
		return err
	}

	response.Success(c, resp)
	return nil
}
