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

type Review struct {
	ReviewService service.IReviewService
	Identity      middleware.IdentityProvider
}

func (h *Review) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(h.Identity)
	optional := middleware.OptionalAuth(h.Identity)

	g := r.Group("/reviews")
	g.GET("", optional, context.Wrap(h.List))
	g.GET("/:id", optional, context.Wrap(h.GetByID))
	g.POST("", authorize, context.Wrap(h.Create))
	g.PUT("/:id", authorize, context.Wrap(h.Update))
	g.DELETE("/:id", authorize, context.Wrap(h.Delete))
}

// List 点评列表，可按赛事过滤，登录时附带点赞状态
func (h *Review) List(c *gin.Context) error {
	var query types.ListReviewQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误")
	}

	viewerID := context.GetOptionalUserID(c)
	reviews, err := h.ReviewService.List(c.Request.Context(), viewerID, query.RaceID)
	if err != nil {
		return err
	}

	response.Success(c, types.ReviewListResponse{Reviews: reviews})
	return nil
}

// GetByID 点评详情
func (h *Review) GetByID(c *gin.Context) error {
	reviewID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	viewerID := context.GetOptionalUserID(c)
	review, err := h.ReviewService.GetByID(c.Request.Context(), viewerID, reviewID)
	if err != nil {
		return err
	}

	response.Success(c, review)
	return nil
}

// Create 发表点评
func (h *Review) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.ErrUnauthorized("未登录")
	}

	var req types.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	review, err := h.ReviewService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}

	response.Success(c, review)
	return nil
}

// Update 修改点评，仅作者
func (h *Review) Update(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.ErrUnauthorized("未登录")
	}

	reviewID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req types.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	review, err := h.ReviewService.Update(c.Request.Context(), userID, reviewID, &req)
	if err != nil {
		return err
	}

	response.Success(c, review)
	return nil
}

// Delete 删除点评，仅作者
func (h *Review) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.ErrUnauthorized("未登录")
	}

	reviewID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.ReviewService.Delete(c.Request.Context(), userID, reviewID); err != nil {
		return err
	}

	response.Success(c, gin.H{"deleted": true})
	return nil
}
