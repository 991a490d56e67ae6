package services

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"openvid/models"
	"openvid/utils"
)

func TestMatches(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	video := func(duration, published string) models.Video {
		return models.Video{Duration: duration, PublishedAt: published}
	}

	Convey("duration buckets", t, func() {
		all, date := models.DurationAll, models.DateAll

		So(Matches(video("3:59", ""), models.DurationShort, date, now), ShouldBeTrue)
		So(Matches(video("4:00", ""), models.DurationShort, date, now), ShouldBeFalse)
		So(Matches(video("N/A", ""), models.DurationShort, date, now), ShouldBeTrue)

		So(Matches(video("4:00", ""), models.DurationMedium, date, now), ShouldBeTrue)
		So(Matches(video("20:00", ""), models.DurationMedium, date, now), ShouldBeTrue)
		So(Matches(video("20:01", ""), models.DurationMedium, date, now), ShouldBeFalse)
		So(Matches(video("3:59", ""), models.DurationMedium, date, now), ShouldBeFalse)

		So(Matches(video("20:01", ""), models.DurationLong, date, now), ShouldBeTrue)
		So(Matches(video("1:00:00", ""), models.DurationLong, date, now), ShouldBeTrue)
		So(Matches(video("20:00", ""), models.DurationLong, date, now), ShouldBeFalse)

		So(Matches(video("garbage", ""), all, date, now), ShouldBeTrue)
	})

	Convey("bucket membership holds for every formatted duration", t, func() {
		for d := 0; d <= 2*3600; d += 13 {
			v := video(utils.FormatSeconds(float64(d)), "")
			seconds := utils.ParseDisplayDuration(v.Duration)
			if Matches(v, models.DurationShort, models.DateAll, now) {
				So(seconds, ShouldBeLessThan, 240)
			}
			if Matches(v, models.DurationMedium, models.DateAll, now) {
				So(seconds, ShouldBeBetweenOrEqual, 240, 1200)
			}
			if Matches(v, models.DurationLong, models.DateAll, now) {
				So(seconds, ShouldBeGreaterThan, 1200)
			}
		}
	})

	Convey("date buckets", t, func() {
		all := models.DurationAll
		hoursAgo := func(h int) string {
			return now.Add(-time.Duration(h) * time.Hour).Format(time.RFC3339)
		}

		So(Matches(video("", hoursAgo(20)), all, models.DateToday, now), ShouldBeTrue)
		So(Matches(video("", hoursAgo(30)), all, models.DateToday, now), ShouldBeFalse)
		So(Matches(video("", hoursAgo(30)), all, models.DateWeek, now), ShouldBeTrue)
		So(Matches(video("", hoursAgo(7*24)), all, models.DateWeek, now), ShouldBeTrue)
		So(Matches(video("", hoursAgo(7*24+1)), all, models.DateWeek, now), ShouldBeFalse)
		So(Matches(video("", hoursAgo(29*24)), all, models.DateMonth, now), ShouldBeTrue)
		So(Matches(video("", hoursAgo(300*24)), all, models.DateYear, now), ShouldBeTrue)
		So(Matches(video("", hoursAgo(400*24)), all, models.DateYear, now), ShouldBeFalse)

		Convey("missing or unparseable dates fail any date filter", func() {
			So(Matches(video("", ""), all, models.DateYear, now), ShouldBeFalse)
			So(Matches(video("", "someday"), all, models.DateYear, now), ShouldBeFalse)
			So(Matches(video("", ""), all, models.DateAll, now), ShouldBeTrue)
		})

		Convey("dates centuries away never pass", func() {
			So(Matches(video("", "2999-01-01T00:00:00Z"), all, models.DateToday, now), ShouldBeFalse)
			So(Matches(video("", "2999-01-01T00:00:00Z"), all, models.DateYear, now), ShouldBeFalse)
			So(Matches(video("", now.AddDate(3, 0, 0).Format(time.RFC3339)), all, models.DateYear, now), ShouldBeFalse)
		})
	})

	Convey("both dimensions must pass", t, func() {
		recentLong := video("30:00", now.Add(-time.Hour).Format(time.RFC3339))
		So(Matches(recentLong, models.DurationLong, models.DateToday, now), ShouldBeTrue)
		So(Matches(recentLong, models.DurationShort, models.DateToday, now), ShouldBeFalse)
	})
}
