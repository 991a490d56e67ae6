package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/samber/lo"
	"github.com/samber/mo"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"openvid/models"
	"openvid/sources"
	"openvid/utils"
)

// LimitPerSource 每个数据源最多取回的条数
const LimitPerSource = 15

// DefaultTimeout 单个数据源的默认时间预算，超时视同失败
const DefaultTimeout = 10 * time.Second

// ErrSearchFailed 合并/筛选/排序阶段出现意外错误
var ErrSearchFailed = errors.New("search failed")

// SearchService 聚合器：并发分发到选中的数据源，等待全部完成后合并、筛选、排序
type SearchService struct {
	adapters map[models.SourceTag]sources.Adapter
	timeout  time.Duration
	shuffle  func(n int, swap func(i, j int))
	now      func() time.Time
}

// Option 聚合器配置项
type Option func(*SearchService)

// WithTimeout 设置单个数据源的时间预算
func WithTimeout(d time.Duration) Option {
	return func(s *SearchService) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithShuffle 替换 relevance 模式使用的随机源
func WithShuffle(shuffle func(n int, swap func(i, j int))) Option {
	return func(s *SearchService) {
		if shuffle != nil {
			s.shuffle = shuffle
		}
	}
}

// WithClock 替换时间筛选使用的当前时间
func WithClock(now func() time.Time) Option {
	return func(s *SearchService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewSearchService 创建聚合器
func NewSearchService(adapters []sources.Adapter, opts ...Option) *SearchService {
	s := &SearchService{
		adapters: lo.SliceToMap(adapters, func(a sources.Adapter) (models.SourceTag, sources.Adapter) {
			return a.Tag(), a
		}),
		timeout: DefaultTimeout,
		shuffle: rand.Shuffle,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// outcome 单个数据源的调用结果
type outcome struct {
	source  models.SourceTag
	result  mo.Result[[]models.Video]
	elapsed time.Duration
}

// Search 执行一次聚合搜索
// 单个数据源失败只会让它贡献空结果，不会影响整个请求
func (s *SearchService) Search(ctx context.Context, req models.SearchRequest) (resp *models.SearchResponse, err error) {
	outcomes := s.fanOut(ctx, req.Query, req.Sources)

	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Error("合并搜索结果失败")
			resp = nil
			err = fmt.Errorf("%w: %v", ErrSearchFailed, r)
		}
	}()

	videos := s.collect(req.Query, outcomes)

	if req.Filtered() {
		now := s.now()
		videos = lo.Filter(videos, func(v models.Video, _ int) bool {
			return Matches(v, req.Duration, req.Date, now)
		})
	}

	s.order(videos, req.Sort)

	return &models.SearchResponse{
		Results:      videos,
		TotalResults: len(videos),
	}, nil
}

// fanOut 按固定顺序并发调用，等全部结束才返回
func (s *SearchService) fanOut(ctx context.Context, query string, selected []models.SourceTag) []outcome {
	outcomes := make([]outcome, len(selected))

	var g errgroup.Group
	for i, tag := range selected {
		adapter, ok := s.adapters[tag]
		if !ok {
			outcomes[i] = outcome{
				source: tag,
				result: mo.Err[[]models.Video](fmt.Errorf("未注册的数据源: %s", tag)),
			}
			continue
		}
		g.Go(func() error {
			outcomes[i] = s.invoke(ctx, adapter, query)
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

func (s *SearchService) invoke(ctx context.Context, adapter sources.Adapter, query string) (out outcome) {
	start := time.Now()
	out.source = adapter.Tag()

	defer func() {
		if r := recover(); r != nil {
			out.result = mo.Err[[]models.Video](fmt.Errorf("适配器异常: %v", r))
		}
		out.elapsed = time.Since(start)
	}()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	videos, err := adapter.Search(ctx, query, LimitPerSource)
	out.result = mo.TupleToResult(videos, err)
	return out
}

// collect 记录失败原因，把每个结果收敛成切片后拼接
func (s *SearchService) collect(query string, outcomes []outcome) []models.Video {
	videos := make([]models.Video, 0)
	for _, o := range outcomes {
		entry := log.WithFields(log.Fields{
			"source":  o.source,
			"query":   query,
			"elapsed": o.elapsed,
		})
		if o.result.IsError() {
			entry.WithError(o.result.Error()).Warn("数据源搜索失败，按空结果处理")
			continue
		}
		got := o.result.OrEmpty()
		entry.WithField("count", len(got)).Debug("数据源搜索完成")
		videos = append(videos, got...)
	}
	return videos
}

// order date/views 倒序（稳定排序），relevance 整体随机打乱
func (s *SearchService) order(videos []models.Video, mode models.SortMode) {
	switch mode {
	case models.SortDate:
		sortByKey(videos, publishedMillis)
	case models.SortViews:
		sortByKey(videos, func(v models.Video) int64 { return int64(v.Views) })
	default:
		s.shuffle(len(videos), func(i, j int) {
			videos[i], videos[j] = videos[j], videos[i]
		})
	}
}

// sortByKey 按 key 倒序，key 只计算一次
func sortByKey(videos []models.Video, key func(models.Video) int64) {
	type keyed struct {
		key   int64
		video models.Video
	}
	items := lo.Map(videos, func(v models.Video, _ int) keyed {
		return keyed{key: key(v), video: v}
	})
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].key > items[j].key
	})
	for i, item := range items {
		videos[i] = item.video
	}
}

// publishedMillis 缺失或无法解析的发布时间按 0 处理
func publishedMillis(v models.Video) int64 {
	t, ok := utils.ParseTimestamp(v.PublishedAt)
	if !ok {
		return 0
	}
	return t.UnixMilli()
}
