package sources

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"openvid/models"
	"openvid/utils"
)

const (
	nasaEndpoint  = "https://images-api.nasa.gov/search"
	nasaAssetBase = "https://images-assets.nasa.gov/video"
	nasaSite      = "https://images.nasa.gov"
)

type nasaResponse struct {
	Collection struct {
		Items []nasaItem `json:"items"`
	} `json:"collection"`
}

type nasaItem struct {
	Data  []nasaData `json:"data"`
	Links []struct {
		Href string `json:"href"`
	} `json:"links"`
}

type nasaData struct {
	NasaID      string `json:"nasa_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DateCreated string `json:"date_created"`
	Center      string `json:"center"`
}

// NASA 图片与视频库，接口不支持数量限制，取回后本地截断
type NASA struct {
	client   *Client
	endpoint string
}

func NewNASA(httpClient *http.Client) *NASA {
	return NewNASAWithEndpoint(httpClient, nasaEndpoint)
}

// NewNASAWithEndpoint 指定接口地址（测试用）
func NewNASAWithEndpoint(httpClient *http.Client, endpoint string) *NASA {
	return &NASA{
		client:   NewClient(httpClient, DefaultUserAgent, 5),
		endpoint: endpoint,
	}
}

func (n *NASA) Tag() models.SourceTag {
	return models.SourceNASA
}

func (n *NASA) Search(ctx context.Context, query string, limit int) ([]models.Video, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("media_type", "video")

	var data nasaResponse
	if err := n.client.GetJSON(ctx, n.endpoint, params, &data); err != nil {
		return nil, err
	}

	items := data.Collection.Items
	if limit >= 0 && len(items) > limit {
		items = items[:limit]
	}

	videos := make([]models.Video, 0, len(items))
	for _, item := range items {
		if len(item.Data) == 0 || item.Data[0].NasaID == "" {
			continue
		}
		datum := item.Data[0]

		thumbnail := ""
		if len(item.Links) > 0 {
			thumbnail = item.Links[0].Href
		}

		videos = append(videos, models.Video{
			ID:           datum.NasaID,
			Title:        datum.Title,
			Description:  utils.StripTags(datum.Description),
			Thumbnail:    thumbnail,
			Source:       models.SourceNASA,
			SourceLabel:  models.SourceNASA.Label(),
			Duration:     utils.NotAvailable,
			Views:        0,
			PublishedAt:  datum.DateCreated,
			ChannelTitle: strings.TrimSpace("NASA " + datum.Center),
			EmbedURL:     NASAVideoURL(datum.NasaID),
			WatchURL:     nasaSite + "/details-" + datum.NasaID,
			IsDirectFile: true,
		})
	}
	return videos, nil
}

// NASAVideoURL 按固定命名规则拼出原始视频地址
func NASAVideoURL(nasaID string) string {
	return fmt.Sprintf("%s/%s/%s~orig.mp4", nasaAssetBase, nasaID, nasaID)
}
