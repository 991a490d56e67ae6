package routes

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"openvid/handles"
	"openvid/utils"
)

// SetupRoutes 设置路由
func SetupRoutes(r *gin.Engine, searchHandler *handles.SearchHandler, static http.Handler) {
	public := r.Group("/api")
	{
		// 健康检查
		public.GET("/health", handles.HealthCheck)

		// 聚合搜索
		public.GET("/search", searchHandler.Search)

		// 数据源目录
		public.GET("/sources", handles.GetSources)
	}

	// 其余路径交给前端静态页面
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") || static == nil {
			utils.ErrorResponse(c, http.StatusNotFound, "Not found")
			return
		}
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			utils.ErrorResponse(c, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		static.ServeHTTP(c.Writer, c.Request)
	})
}
