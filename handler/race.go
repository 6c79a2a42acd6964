package handler

import (
	"boxbox/middleware"
	"boxbox/pkg/context"
	"boxbox/pkg/response"
	"boxbox/service"

	"github.com/gin-gonic/gin"
)

type Race struct {
	RaceService service.IRaceService
	Identity    middleware.IdentityProvider
}

func (h *Race) RegisterRouter(r gin.IRouter) {
	g := r.Group("/races")
	g.Use(middleware.OptionalAuth(h.Identity))
	g.GET("", context.Wrap(h.List))
	g.GET("/:slug", context.Wrap(h.GetBySlug))
}

// List 赛事列表
func (h *Race) List(c *gin.Context) error {
	races, err := h.RaceService.List(c.Request.Context())
	if err != nil {
		return err
	}

	response.Success(c, races)
	return nil
}

// GetBySlug 赛事详情
func (h *Race) GetBySlug(c *gin.Context) error {
	race, err := h.RaceService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		return err
	}

	response.Success(c, race)
	return nil
}
