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

type Follow struct {
	FollowService service.IFollowService
	Identity      middleware.IdentityProvider
}

func (h *Follow) RegisterRouter(r gin.IRouter) {
	g := r.Group("/users")
	g.Use(middleware.Auth(h.Identity))
	g.POST("/:id/follow", context.Wrap(h.FollowUser))
	g.DELETE("/:id/follow", context.Wrap(h.UnfollowUser))
	g.GET("/:id/followers", context.Wrap(h.GetFollowers))
	g.GET("/:id/following", context.Wrap(h.GetFollowing))
}

// FollowUser 关注用户
func (h *Follow) FollowUser(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.ErrUnauthorized("未登录")
	}

	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.FollowService.Follow(c.Request.Context(), userID, targetID); err != nil {
		return err
	}

	response.Success(c, gin.H{"followed": true})
	return nil
}

// UnfollowUser 取消关注
func (h *Follow) UnfollowUser(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.ErrUnauthorized("未登录")
	}

	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.FollowService.Unfollow(c.Request.Context(), userID, targetID); err != nil {
		return err
	}

	response.Success(c, gin.H{"followed": false})
	return nil
}

// GetFollowers 粉丝列表
func (h *Follow) GetFollowers(c *gin.Context) error {
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var query types.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		return response.NewError(http.StatusBadRequest, "分页参数错误")
	}

	resp, err := h.FollowService.GetFollowerList(c.Request.Context(), targetID, &query)
	if err != nil {
		return err
	}

	response.Success(c, resp)
	return nil
}

// GetFollowing 关注列表
func (h *Follow) GetFollowing(c *gin.Context) error {
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var query types.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		return response.NewError(http.StatusBadRequest, "分页参数错误")
	}

	resp, err := h.FollowService.GetFollowingList(c.Request.Context(), targetID, &query)
	if err != nil {
		return err
	}

	response.Success(c, resp)
	return nil
}
