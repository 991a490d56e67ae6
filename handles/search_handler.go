package handles

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"openvid/models"
	"openvid/utils"
)

// Searcher 聚合搜索能力
type Searcher interface {
	Search(ctx context.Context, req models.SearchRequest) (*models.SearchResponse, error)
}

// SearchHandler 搜索接口处理器
type SearchHandler struct {
	searcher Searcher
}

// NewSearchHandler 创建处理器实例
func NewSearchHandler(searcher Searcher) *SearchHandler {
	return &SearchHandler{searcher: searcher}
}

// Search GET /api/search
func (h *SearchHandler) Search(c *gin.Context) {
	req, ok := ParseSearchRequest(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, `Query parameter "q" is required`)
		return
	}

	resp, err := h.searcher.Search(c.Request.Context(), req)
	if err != nil {
		log.WithError(err).WithField("query", req.Query).Error("搜索失败")
		utils.ErrorResponse(c, http.StatusInternalServerError, "Search failed")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ParseSearchRequest 把查询参数转换成搜索请求，q 为空时返回 false
func ParseSearchRequest(c *gin.Context) (models.SearchRequest, bool) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		return models.SearchRequest{}, false
	}

	return models.SearchRequest{
		Query:    query,
		Sources:  models.ParseSources(c.Query("sources")),
		Sort:     models.ParseSortMode(c.DefaultQuery("sort", string(models.SortRelevance))),
		Duration: models.ParseDurationBucket(c.DefaultQuery("duration", string(models.DurationAll))),
		Date:     models.ParseDateBucket(c.DefaultQuery("date", string(models.DateAll))),
	}, true
}
