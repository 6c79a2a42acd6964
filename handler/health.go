package handler

import (
	"net/http"

	"boxbox/pkg/context"
	"boxbox/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Health struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func (h *Health) RegisterRouter(r gin.IRouter) {
	r.GET("/health", context.Wrap(h.Check))
}

// Check 存活探针，依次探测数据库和 redis
func (h *Health) Check(c *gin.Context) error {
	sqlDB, err := h.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		response.Fail(c, http.StatusServiceUnavailable, "database unavailable")
		return nil
	}

	if err := h.Redis.Ping(c.Request.Context()).Err(); err != nil {
		response.Fail(c, http.StatusServiceUnavailable, "redis unavailable")
		return nil
	}

	response.Success(c, gin.H{"status": "ok"})
	return nil
}
