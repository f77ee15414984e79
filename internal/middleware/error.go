package middleware

import (
	"ecpm/pkg/logger"
	"ecpm/pkg/response"

	"github.com/gin-gonic/gin"
)

// ErrorHandler 错误处理中间件 - 主要处理panic
// 对外只返回不透明消息，详细原因记录在服务端日志
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				appLogger := logger.GetLogger()
				appLogger.Errorf("Panic recovered: %v", err)
				response.ServerError(c, "服务器内部错误")
				c.Abort()
			}
		}()

		c.Next()
	}
}
