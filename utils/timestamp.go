package utils

import (
	"math"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ISOLayout 与浏览器 Date.toISOString 输出一致的格式
const ISOLayout = "2006-01-02T15:04:05.000Z"

// ParseTimestamp 解析上游返回的发布时间，空值或无法解析时 ok 为 false
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// UnixToISO Unix秒转ISO-8601，0 返回空字符串
func UnixToISO(sec int64) string {
	if sec <= 0 {
		return ""
	}
	return time.Unix(sec, 0).UTC().Format(ISOLayout)
}

// DaysSince 按自然天数计算距离：ceil(|now - t| / 24h)
// 相差超过约292年时 Sub 会饱和，按最大值处理
func DaysSince(now, t time.Time) int {
	diff := now.Sub(t)
	if diff == math.MinInt64 {
		diff = math.MaxInt64
	}
	if diff < 0 {
		diff = -diff
	}
	day := 24 * time.Hour
	days := int(diff / day)
	if diff%day != 0 {
		days++
	}
	return days
}
