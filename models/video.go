package models

// Video 统一后的视频记录，每个数据源适配器都产出这一结构
// 生命周期只在一次请求内：适配器创建，聚合器合并，序列化后丢弃
type Video struct {
	ID           string    `json:"id"`                    // 源内标识，只保证在同一数据源内唯一
	Title        string    `json:"title"`                 // 标题
	Description  string    `json:"description"`           // 简介，已去除HTML标签
	Thumbnail    string    `json:"thumbnail,omitempty"`   // 封面图，缺失时由前端使用占位图
	Source       SourceTag `json:"source"`                // 数据源标识
	SourceLabel  string    `json:"sourceLabel"`           // 数据源显示名称
	Duration     string    `json:"duration"`              // 显示时长 H:MM:SS / M:SS / N/A
	Views        int       `json:"views"`                 // 播放量，没有播放量概念的源为0
	PublishedAt  string    `json:"publishedAt,omitempty"` // ISO-8601 发布时间
	ChannelTitle string    `json:"channelTitle"`          // 上传者/频道名称
	EmbedURL     string    `json:"embedUrl"`              // 可嵌入/可播放地址
	WatchURL     string    `json:"watchUrl"`              // 源站页面地址

	// 为true时EmbedURL是原始媒体文件，需要原生播放器而不是iframe
	IsDirectFile bool `json:"isDirectFile,omitempty"`
}
