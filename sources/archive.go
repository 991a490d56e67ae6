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
	archiveEndpoint = "https://archive.org/advancedsearch.php"
	archiveSite     = "https://archive.org"
	archiveFields   = "identifier,title,description,duration,date,downloads"
)

// advancedsearch 的字段类型不固定：title/description 可能是数组，duration 可能是字符串
type archiveResponse struct {
	Response struct {
		Docs []map[string]interface{} `json:"docs"`
	} `json:"response"`
}

// Archive 互联网档案馆（只搜 movies 类型）
type Archive struct {
	client   *Client
	endpoint string
}

func NewArchive(httpClient *http.Client) *Archive {
	return NewArchiveWithEndpoint(httpClient, archiveEndpoint)
}

// NewArchiveWithEndpoint 指定接口地址（测试用）
func NewArchiveWithEndpoint(httpClient *http.Client, endpoint string) *Archive {
	return &Archive{
		client:   NewClient(httpClient, DefaultUserAgent, 5),
		endpoint: endpoint,
	}
}

func (a *Archive) Tag() models.SourceTag {
	return models.SourceArchive
}

func (a *Archive) Search(ctx context.Context, query string, limit int) ([]models.Video, error) {
	params := url.Values{}
	params.Set("q", query+" AND mediatype:(movies)")
	params.Set("fl", archiveFields)
	params.Set("rows", strconv.Itoa(limit))
	params.Set("output", "json")

	var data archiveResponse
	if err := a.client.GetJSON(ctx, a.endpoint, params, &data); err != nil {
		return nil, err
	}

	videos := make([]models.Video, 0, len(data.Response.Docs))
	for _, doc := range data.Response.Docs {
		id := utils.ToString(doc["identifier"])
		if id == "" {
			continue
		}
		escaped := url.PathEscape(id)

		videos = append(videos, models.Video{
			ID:           id,
			Title:        utils.FirstNonEmpty(utils.ToString(doc["title"]), id),
			Description:  utils.StripTags(utils.ToString(doc["description"])),
			Thumbnail:    archiveSite + "/services/img/" + escaped,
			Source:       models.SourceArchive,
			SourceLabel:  models.SourceArchive.Label(),
			Duration:     utils.FormatSeconds(utils.ToSeconds(doc["duration"])),
			Views:        utils.NonNegative(utils.ToInt(doc["downloads"])),
			PublishedAt:  utils.ToString(doc["date"]),
			ChannelTitle: models.SourceArchive.Label(),
			EmbedURL:     archiveSite + "/embed/" + escaped,
			WatchURL:     archiveSite + "/details/" + escaped,
		})
	}
	return videos, nil
}
