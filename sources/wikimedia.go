package sources

import (
	"context"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"openvid/models"
	"openvid/utils"
)

const (
	wikimediaEndpoint  = "https://commons.wikimedia.org/w/api.php"
	wikimediaUserAgent = "OpenVid/1.0 (Portfolio Project)"
)

var fileExtRe = regexp.MustCompile(`\.[^/.]+$`)

type wikimediaResponse struct {
	Query struct {
		Pages map[string]wikimediaPage `json:"pages"`
	} `json:"query"`
}

type wikimediaPage struct {
	PageID    int                  `json:"pageid"`
	Title     string               `json:"title"`
	Index     int                  `json:"index"`
	ImageInfo []wikimediaImageInfo `json:"imageinfo"`
}

type wikimediaImageInfo struct {
	URL            string                       `json:"url"`
	ThumbURL       string                       `json:"thumburl"`
	DescriptionURL string                       `json:"descriptionurl"`
	Timestamp      string                       `json:"timestamp"`
	Mime           string                       `json:"mime"`
	ExtMetadata    map[string]wikimediaMetadata `json:"extmetadata"`
}

// extmetadata 的 value 可能是字符串也可能是数字
type wikimediaMetadata struct {
	Value interface{} `json:"value"`
}

// Wikimedia 维基共享资源，返回的是原始媒体文件
type Wikimedia struct {
	client   *Client
	endpoint string
}

func NewWikimedia(httpClient *http.Client) *Wikimedia {
	return NewWikimediaWithEndpoint(httpClient, wikimediaEndpoint)
}

// NewWikimediaWithEndpoint 指定接口地址（测试用）
func NewWikimediaWithEndpoint(httpClient *http.Client, endpoint string) *Wikimedia {
	return &Wikimedia{
		client:   NewClient(httpClient, wikimediaUserAgent, 5),
		endpoint: endpoint,
	}
}

func (w *Wikimedia) Tag() models.SourceTag {
	return models.SourceWikimedia
}

func (w *Wikimedia) Search(ctx context.Context, query string, limit int) ([]models.Video, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("generator", "search")
	params.Set("gsrnamespace", "6")
	params.Set("gsrsearch", query+" filetype:video")
	params.Set("gsrlimit", strconv.Itoa(limit))
	params.Set("prop", "imageinfo")
	params.Set("iiprop", "url|size|mime|extmetadata|timestamp")
	params.Set("iiurlwidth", "640")

	var data wikimediaResponse
	if err := w.client.GetJSON(ctx, w.endpoint, params, &data); err != nil {
		return nil, err
	}

	// pages 是以 pageid 为键的对象，按搜索排名 index 排序
	pages := make([]wikimediaPage, 0, len(data.Query.Pages))
	for _, page := range data.Query.Pages {
		pages = append(pages, page)
	}
	sort.Slice(pages, func(i, j int) bool {
		if pages[i].Index != pages[j].Index {
			return pages[i].Index < pages[j].Index
		}
		return pages[i].PageID < pages[j].PageID
	})

	videos := make([]models.Video, 0, len(pages))
	for _, page := range pages {
		if video, ok := mapWikimediaPage(page); ok {
			videos = append(videos, video)
		}
	}
	return videos, nil
}

// mapWikimediaPage 没有 imageinfo 或 mime 不是视频的页面直接跳过
func mapWikimediaPage(page wikimediaPage) (models.Video, bool) {
	if len(page.ImageInfo) == 0 {
		return models.Video{}, false
	}
	info := page.ImageInfo[0]
	if info.Mime != "" && !strings.HasPrefix(info.Mime, "video/") {
		return models.Video{}, false
	}
	meta := func(name string) interface{} {
		if m, ok := info.ExtMetadata[name]; ok {
			return m.Value
		}
		return nil
	}

	return models.Video{
		ID:           strconv.Itoa(page.PageID),
		Title:        WikimediaTitle(page.Title),
		Description:  utils.StripTags(utils.ToString(meta("ImageDescription"))),
		Thumbnail:    utils.FirstNonEmpty(info.ThumbURL, info.URL),
		Source:       models.SourceWikimedia,
		SourceLabel:  models.SourceWikimedia.Label(),
		Duration:     utils.FormatSeconds(utils.ToFloat(meta("Duration"))),
		Views:        0,
		PublishedAt:  info.Timestamp,
		ChannelTitle: utils.FirstNonEmpty(utils.StripTags(utils.ToString(meta("Artist"))), "Wikimedia User"),
		EmbedURL:     info.URL,
		WatchURL:     info.DescriptionURL,
		IsDirectFile: true,
	}, true
}

// WikimediaTitle 去掉 File: 前缀和扩展名，下划线换成空格
func WikimediaTitle(pageTitle string) string {
	title := strings.TrimPrefix(pageTitle, "File:")
	title = fileExtRe.ReplaceAllString(title, "")
	return strings.ReplaceAll(title, "_", " ")
}
