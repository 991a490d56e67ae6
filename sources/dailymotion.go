package sources

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"openvid/models"
	"openvid/utils"
)

const (
	dailymotionEndpoint = "https://api.dailymotion.com/videos"
	dailymotionSite     = "https://www.dailymotion.com"
	dailymotionFields   = "id,title,description,thumbnail_720_url,duration,views_total,created_time,owner.username,url"
)

type dailymotionResponse struct {
	List []dailymotionVideo `json:"list"`
}

type dailymotionVideo struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Thumbnail720  string  `json:"thumbnail_720_url"`
	Duration      float64 `json:"duration"`
	ViewsTotal    int     `json:"views_total"`
	CreatedTime   int64   `json:"created_time"`
	OwnerUsername string  `json:"owner.username"`
	URL           string  `json:"url"`
}

// Dailymotion 公开视频接口，需要显式指定返回字段
type Dailymotion struct {
	client   *Client
	endpoint string
}

func NewDailymotion(httpClient *http.Client) *Dailymotion {
	return NewDailymotionWithEndpoint(httpClient, dailymotionEndpoint)
}

// NewDailymotionWithEndpoint 指定接口地址（测试用）
func NewDailymotionWithEndpoint(httpClient *http.Client, endpoint string) *Dailymotion {
	return &Dailymotion{
		client:   NewClient(httpClient, DefaultUserAgent, 5),
		endpoint: endpoint,
	}
}

func (d *Dailymotion) Tag() models.SourceTag {
	return models.SourceDailymotion
}

func (d *Dailymotion) Search(ctx context.Context, query string, limit int) ([]models.Video, error) {
	params := url.Values{}
	params.Set("search", query)
	params.Set("fields", dailymotionFields)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("sort", "relevance")

	var data dailymotionResponse
	if err := d.client.GetJSON(ctx, d.endpoint, params, &data); err != nil {
		return nil, err
	}

	videos := make([]models.Video, 0, len(data.List))
	for _, v := range data.List {
		videos = append(videos, models.Video{
			ID:           v.ID,
			Title:        v.Title,
			Description:  utils.StripTags(v.Description),
			Thumbnail:    v.Thumbnail720,
			Source:       models.SourceDailymotion,
			SourceLabel:  models.SourceDailymotion.Label(),
			Duration:     utils.FormatSeconds(v.Duration),
			Views:        utils.NonNegative(v.ViewsTotal),
			PublishedAt:  utils.UnixToISO(v.CreatedTime),
			ChannelTitle: utils.FirstNonEmpty(v.OwnerUsername, "Dailymotion User"),
			EmbedURL:     dailymotionSite + "/embed/video/" + v.ID,
			WatchURL:     utils.FirstNonEmpty(v.URL, dailymotionSite+"/video/"+v.ID),
		})
	}
	return videos, nil
}
