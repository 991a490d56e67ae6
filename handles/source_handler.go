package handles

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"openvid/models"
)

// HealthCheck GET /api/health，不依赖上游是否可用
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"sources": models.AllSources,
	})
}

// GetSources GET /api/sources 数据源目录
func GetSources(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"sources": models.Catalogue(),
	})
}
