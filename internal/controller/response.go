package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"pod_dev_v1_202608/internal/service"
)

// abortWithServiceError 把服务层错误分类映射成 HTTP 响应
// 网关类错误把上游状态码和原始响应体原样透传
func abortWithServiceError(c *gin.Context, err error) {
	var gatewayErr *service.GatewayError
	var timeoutErr *service.TimeoutError

	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(404, gin.H{"code": 404, "message": err.Error()})
	case errors.Is(err, service.ErrOpenAIKeyMissing), errors.Is(err, service.ErrPrintifyKeyMissing):
		c.JSON(500, gin.H{"code": 500, "message": err.Error()})
	case errors.As(err, &timeoutErr):
		c.JSON(504, gin.H{"code": 504, "message": err.Error()})
	case errors.As(err, &gatewayErr):
		c.Data(gatewayErr.StatusCode, "application/json", []byte(gatewayErr.Body))
	default:
		c.JSON(500, gin.H{"code": 500, "message": err.Error()})
	}
}
