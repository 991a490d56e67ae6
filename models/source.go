package models

import (
	"strings"

	"github.com/samber/lo"
)

// SourceTag 数据源标识
type SourceTag string

const (
	SourcePeerTube    SourceTag = "peertube"
	SourceArchive     SourceTag = "archive"
	SourceDailymotion SourceTag = "dailymotion"
	SourceWikimedia   SourceTag = "wikimedia"
	SourceNASA        SourceTag = "nasa"
)

// AllSources 固定的固定顺序，聚合时按这个顺序分发
var AllSources = []SourceTag{
	SourcePeerTube,
	SourceArchive,
	SourceDailymotion,
	SourceWikimedia,
	SourceNASA,
}

var sourceLabels = map[SourceTag]string{
	SourcePeerTube:    "PeerTube",
	SourceArchive:     "Internet Archive",
	SourceDailymotion: "Dailymotion",
	SourceWikimedia:   "Wikimedia",
	SourceNASA:        "NASA",
}

// Label 返回数据源的显示名称
func (s SourceTag) Label() string {
	return sourceLabels[s]
}

// Valid 是否为已知数据源
func (s SourceTag) Valid() bool {
	_, ok := sourceLabels[s]
	return ok
}

// SourceInfo 数据源目录项（/api/sources）
type SourceInfo struct {
	ID    SourceTag `json:"id"`
	Label string    `json:"label"`
}

// Catalogue 按固定顺序返回全部数据源
func Catalogue() []SourceInfo {
	return lo.Map(AllSources, func(s SourceTag, _ int) SourceInfo {
		return SourceInfo{ID: s, Label: s.Label()}
	})
}

// ParseSources 解析逗号分隔的数据源列表
// 空字符串表示全部数据源；未知标识直接忽略；结果保持固定顺序并去重
func ParseSources(raw string) []SourceTag {
	if strings.TrimSpace(raw) == "" {
		return append([]SourceTag(nil), AllSources...)
	}

	requested := make(map[SourceTag]bool)
	for _, token := range strings.Split(raw, ",") {
		tag := SourceTag(strings.ToLower(strings.TrimSpace(token)))
		if tag.Valid() {
			requested[tag] = true
		}
	}

	return lo.Filter(AllSources, func(s SourceTag, _ int) bool {
		return requested[s]
	})
}
