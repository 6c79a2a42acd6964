package handler

import (
	"net/http"
	"strconv"

	"boxbox/pkg/response"

	"github.com/gin-gonic/gin"
)

// parseIDParam 解析路径里的数字 ID
func parseIDParam(c *gin.Context, name string) (int64, error) {
	param := c.Param(name)
	if param == "" {
		return 0, response.NewError(http.StatusBadRequest, "缺少 "+name)
	}
	id, err := strconv.ParseInt(param, 10, 64)
	if err != nil || id <= 0 {
		return 0, response.NewError(http.StatusBadRequest, name+" 格式错误")
	}
	return id, nil
}
