package handles

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openvid/models"
	"openvid/services"
	"openvid/sources"
)

type stubSearcher struct {
	mu   sync.Mutex
	reqs []models.SearchRequest
	resp *models.SearchResponse
	err  error
}

func (s *stubSearcher) Search(_ context.Context, req models.SearchRequest) (*models.SearchResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reqs = append(s.reqs, req)
	return s.resp, s.err
}

// stubAdapter 固定返回一组视频
type stubAdapter struct {
	tag    models.SourceTag
	videos []models.Video
	calls  int
}

func (a *stubAdapter) Tag() models.SourceTag { return a.tag }

func (a *stubAdapter) Search(context.Context, string, int) ([]models.Video, error) {
	a.calls++
	return a.videos, nil
}

func newRouter(searcher Searcher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewSearchHandler(searcher)
	r.GET("/api/search", h.Search)
	r.GET("/api/health", HealthCheck)
	r.GET("/api/sources", GetSources)
	return r
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestSearchRequiresQuery(t *testing.T) {
	stub := &stubSearcher{}
	r := newRouter(stub)

	for _, target := range []string{"/api/search", "/api/search?q=", "/api/search?q=%20%20"} {
		w := get(r, target)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.JSONEq(t, `{"error":"Query parameter \"q\" is required"}`, w.Body.String())
	}
	assert.Empty(t, stub.reqs)
}

func TestSearchParsesParameters(t *testing.T) {
	stub := &stubSearcher{resp: &models.SearchResponse{Results: []models.Video{}}}
	r := newRouter(stub)

	w := get(r, "/api/search?q=%20moon%20&sources=NASA,%20wikimedia,youtube&sort=views&duration=long&date=week")
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, stub.reqs, 1)

	req := stub.reqs[0]
	assert.Equal(t, "moon", req.Query)
	assert.Equal(t, []models.SourceTag{models.SourceWikimedia, models.SourceNASA}, req.Sources)
	assert.Equal(t, models.SortViews, req.Sort)
	assert.Equal(t, models.DurationLong, req.Duration)
	assert.Equal(t, models.DateWeek, req.Date)
}

func TestSearchDefaults(t *testing.T) {
	stub := &stubSearcher{resp: &models.SearchResponse{Results: []models.Video{}}}
	r := newRouter(stub)

	w := get(r, "/api/search?q=moon&sort=bogus&duration=huge")
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, stub.reqs, 1)

	req := stub.reqs[0]
	assert.Equal(t, models.AllSources, req.Sources)
	assert.Equal(t, models.SortRelevance, req.Sort)
	assert.Equal(t, models.DurationAll, req.Duration)
	assert.Equal(t, models.DateAll, req.Date)
	assert.JSONEq(t, `{"results":[],"totalResults":0}`, w.Body.String())
}

func TestSearchFailure(t *testing.T) {
	stub := &stubSearcher{err: errors.New("merge exploded")}
	r := newRouter(stub)

	w := get(r, "/api/search?q=moon")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Search failed"}`, w.Body.String())
}

func TestSearchEndToEnd(t *testing.T) {
	archive := &stubAdapter{tag: models.SourceArchive, videos: []models.Video{
		{ID: "a", Title: "A", Source: models.SourceArchive, SourceLabel: "Internet Archive", Duration: "N/A", Views: 5},
		{ID: "b", Title: "B", Source: models.SourceArchive, SourceLabel: "Internet Archive", Duration: "N/A", Views: 50},
		{ID: "c", Title: "C", Source: models.SourceArchive, SourceLabel: "Internet Archive", Duration: "N/A", Views: 1},
	}}
	nasa := &stubAdapter{tag: models.SourceNASA, videos: []models.Video{{ID: "n"}}}
	svc := services.NewSearchService([]sources.Adapter{archive, nasa})
	r := newRouter(svc)

	w := get(r, "/api/search?q=space&sources=archive&sort=views")
	require.Equal(t, http.StatusOK, w.Code)

	var body models.SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 3, body.TotalResults)
	require.Len(t, body.Results, 3)

	views := []int{body.Results[0].Views, body.Results[1].Views, body.Results[2].Views}
	assert.Equal(t, []int{50, 5, 1}, views)
	for _, v := range body.Results {
		assert.Equal(t, models.SourceArchive, v.Source)
	}
	assert.Equal(t, 1, archive.calls)
	assert.Zero(t, nasa.calls)
}

func TestHealthCheck(t *testing.T) {
	w := get(newRouter(&stubSearcher{}), "/api/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","sources":["peertube","archive","dailymotion","wikimedia","nasa"]}`, w.Body.String())
}

func TestGetSources(t *testing.T) {
	w := get(newRouter(&stubSearcher{}), "/api/sources")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"sources":[
		{"id":"peertube","label":"PeerTube"},
		{"id":"archive","label":"Internet Archive"},
		{"id":"dailymotion","label":"Dailymotion"},
		{"id":"wikimedia","label":"Wikimedia"},
		{"id":"nasa","label":"NASA"}
	]}`, w.Body.String())
}
