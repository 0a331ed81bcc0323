package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseID 路径参数必须是非负整数, 否则按资源不存在处理
func parseID(c *gin.Context, key string, notFound error) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(key), 10, 64)
	if err != nil {
		return 0, notFound
	}
	return id, nil
}
