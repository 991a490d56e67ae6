package utils

import "github.com/gin-gonic/gin"

// ErrorResponse 统一错误响应格式 {"error": "..."}
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, gin.H{"error": message})
}
