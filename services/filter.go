package services

import (
	"time"

	"openvid/models"
	"openvid/utils"
)

// Matches 判断视频是否满足时长和发布时间筛选
// 时长按显示字符串重新解析，而不是使用适配器原始数值
func Matches(video models.Video, duration models.DurationBucket, date models.DateBucket, now time.Time) bool {
	return matchesDuration(video, duration) && matchesDate(video, date, now)
}

func matchesDuration(video models.Video, bucket models.DurationBucket) bool {
	seconds := utils.ParseDisplayDuration(video.Duration)

	switch bucket {
	case models.DurationShort:
		return seconds < models.ShortMaxSeconds
	case models.DurationMedium:
		return seconds >= models.ShortMaxSeconds && seconds <= models.MediumMaxSeconds
	case models.DurationLong:
		return seconds > models.MediumMaxSeconds
	}
	return true
}

// 没有发布时间的记录不通过任何非 all 的时间筛选
func matchesDate(video models.Video, bucket models.DateBucket, now time.Time) bool {
	maxDays := bucket.MaxDays()
	if maxDays == 0 {
		return true
	}

	published, ok := utils.ParseTimestamp(video.PublishedAt)
	if !ok {
		return false
	}
	return utils.DaysSince(now, published) <= maxDays
}
