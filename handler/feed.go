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

type Feed struct {
	FeedService service.IFeedService
	Identity    middleware.IdentityProvider
}

func (h *Feed) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(h.Identity)
	r.GET("/feed/following", authorize, context.Wrap(h.GetFollowingFeed))
	r.GET("/users/suggestions", authorize, context.Wrap(h.GetSuggestedUsers))
}

// GetFollowingFeed 关注动态流
func (h *Feed) GetFollowingFeed(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.ErrUnauthorized("未登录")
	}

	var query types.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		return response.NewError(http.StatusBadRequest, "分页参数错误")
	}

	resp, err := h.FeedService.GetFollowingFeed(c.Request.Context(), userID, &query)
	if err != nil {
		return err
	}

	response.Success(c, resp)
	return nil
}

// GetSuggestedUsers 推荐关注
func (h *Feed) GetSuggestedUsers(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.ErrUnauthorized("未登录")
	}

	var query types.SuggestQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误")
	}

	resp, err := h.FeedService.GetSuggestedUsers(c.Request.Context(), userID, &query)
	if err != nil {
		return err
	}

	response.Success(c, resp)
	return nil
}
