// Package sources 封装五个公开视频接口，每个适配器把上游响应映射成统一的 models.Video
package sources

import (
	"context"
	"net/http"

	"openvid/models"
)

// Adapter 数据源适配器
// Search 只发一次请求，失败时返回 error，由聚合器记录日志并按空结果处理
type Adapter interface {
	Tag() models.SourceTag
	Search(ctx context.Context, query string, limit int) ([]models.Video, error)
}

// Defaults 按固定顺序返回全部线上适配器
func Defaults(httpClient *http.Client) []Adapter {
	return []Adapter{
		NewPeerTube(httpClient),
		NewArchive(httpClient),
		NewDailymotion(httpClient),
		NewWikimedia(httpClient),
		NewNASA(httpClient),
	}
}
