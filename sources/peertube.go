package sources

import (
	"context"
	"errors"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"

	"openvid/models"
	"openvid/utils"
)

// PeerTubeInstances 可用的联邦实例，每次随机挑一个分摊负载
var PeerTubeInstances = []string{
	"https://peertube.tv",
	"https://framatube.org",
	"https://video.hardlimit.com",
}

type peerTubeResponse struct {
	Data []peerTubeVideo `json:"data"`
}

type peerTubeVideo struct {
	UUID          string  `json:"uuid"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	ThumbnailPath string  `json:"thumbnailPath"`
	Duration      float64 `json:"duration"`
	Views         int     `json:"views"`
	PublishedAt   string  `json:"publishedAt"`
	URL           string  `json:"url"`
	Account       struct {
		DisplayName string `json:"displayName"`
	} `json:"account"`
}

// PeerTube 联邦视频实例搜索
type PeerTube struct {
	client    *Client
	instances []string
	pick      func(n int) int
}

// NewPeerTube 使用默认实例列表
func NewPeerTube(httpClient *http.Client) *PeerTube {
	return NewPeerTubeWithInstances(httpClient, PeerTubeInstances)
}

// NewPeerTubeWithInstances 指定实例列表（测试用）
func NewPeerTubeWithInstances(httpClient *http.Client, instances []string) *PeerTube {
	return &PeerTube{
		client:    NewClient(httpClient, DefaultUserAgent, 5),
		instances: instances,
		pick:      rand.IntN,
	}
}

func (p *PeerTube) Tag() models.SourceTag {
	return models.SourcePeerTube
}

func (p *PeerTube) Search(ctx context.Context, query string, limit int) ([]models.Video, error) {
	if len(p.instances) == 0 {
		return nil, errors.New("没有可用的PeerTube实例")
	}
	instance := p.instances[p.pick(len(p.instances))]

	params := url.Values{}
	params.Set("search", query)
	params.Set("count", strconv.Itoa(limit))
	params.Set("sort", "-match")

	var data peerTubeResponse
	if err := p.client.GetJSON(ctx, instance+"/api/v1/search/videos", params, &data); err != nil {
		return nil, err
	}

	videos := make([]models.Video, 0, len(data.Data))
	for _, v := range data.Data {
		thumbnail := ""
		if v.ThumbnailPath != "" {
			thumbnail = instance + v.ThumbnailPath
		}

		videos = append(videos, models.Video{
			ID:           v.UUID,
			Title:        v.Name,
			Description:  utils.StripTags(v.Description),
			Thumbnail:    thumbnail,
			Source:       models.SourcePeerTube,
			SourceLabel:  models.SourcePeerTube.Label(),
			Duration:     utils.FormatSeconds(v.Duration),
			Views:        utils.NonNegative(v.Views),
			PublishedAt:  v.PublishedAt,
			ChannelTitle: utils.FirstNonEmpty(v.Account.DisplayName, "Unknown"),
			EmbedURL:     instance + "/videos/embed/" + v.UUID,
			WatchURL:     utils.FirstNonEmpty(v.URL, instance+"/w/"+v.UUID),
		})
	}
	return videos, nil
}
