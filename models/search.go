package models

// SortMode 排序方式
type SortMode string

const (
	SortRelevance SortMode = "relevance" // 随机混排各数据源
	SortDate      SortMode = "date"      // 发布时间倒序
	SortViews     SortMode = "views"     // 播放量倒序
)

// DurationBucket 时长筛选区间
type DurationBucket string

const (
	DurationAll    DurationBucket = "all"
	DurationShort  DurationBucket = "short"  // < 240秒
	DurationMedium DurationBucket = "medium" // 240-1200秒（含两端）
	DurationLong   DurationBucket = "long"   // > 1200秒
)

// 时长区间边界（秒）
const (
	ShortMaxSeconds  = 240
	MediumMaxSeconds = 1200
)

// DateBucket 发布时间筛选区间
type DateBucket string

const (
	DateAll   DateBucket = "all"   // 全部
	DateToday DateBucket = "today" // 1天内
	DateWeek  DateBucket = "week"  // 7天内
	DateMonth DateBucket = "month" // 30天内
	DateYear  DateBucket = "year"  // 365天内
)

// MaxDays 区间允许的最大天数，DateAll 返回 0
func (d DateBucket) MaxDays() int {
	switch d {
	case DateToday:
		return 1
	case DateWeek:
		return 7
	case DateMonth:
		return 30
	case DateYear:
		return 365
	}
	return 0
}

// ParseSortMode 未知值按 relevance 处理
func ParseSortMode(raw string) SortMode {
	switch SortMode(raw) {
	case SortDate, SortViews:
		return SortMode(raw)
	}
	return SortRelevance
}

// ParseDurationBucket 未知值按 all 处理
func ParseDurationBucket(raw string) DurationBucket {
	switch DurationBucket(raw) {
	case DurationShort, DurationMedium, DurationLong:
		return DurationBucket(raw)
	}
	return DurationAll
}

// ParseDateBucket 未知值按 all 处理
func ParseDateBucket(raw string) DateBucket {
	switch DateBucket(raw) {
	case DateToday, DateWeek, DateMonth, DateYear:
		return DateBucket(raw)
	}
	return DateAll
}

// SearchRequest 一次搜索请求
type SearchRequest struct {
	Query    string
	Sources  []SourceTag
	Sort     SortMode
	Duration DurationBucket
	Date     DateBucket
}

// Filtered 是否需要执行筛选
func (r SearchRequest) Filtered() bool {
	return r.Duration != DurationAll || r.Date != DateAll
}

// SearchResponse /api/search 的返回结构
type SearchResponse struct {
	Results      []Video `json:"results"`
	TotalResults int     `json:"totalResults"`
}
