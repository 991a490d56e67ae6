package utils

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestStripTags(t *testing.T) {
	Convey("StripTags", t, func() {
		So(StripTags("plain text"), ShouldEqual, "plain text")
		So(StripTags(`<a href="https://x">Jane Doe</a>`), ShouldEqual, "Jane Doe")
		So(StripTags(`<div class="description en">A <b>rocket</b> launch</div>`), ShouldEqual, "A rocket launch")
		So(StripTags("Tom &amp; Jerry"), ShouldEqual, "Tom & Jerry")
		So(StripTags("  "), ShouldEqual, "")
	})
}
