package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	log "github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSetupWithOutput(t *testing.T) {
	Convey("Logger setup", t, func() {
		var buf bytes.Buffer
		Reset(func() { SetupWithOutput(&bytes.Buffer{}, "info", false) })

		Convey("Should parse the level", func() {
			SetupWithOutput(&buf, "debug", false)
			So(log.GetLevel(), ShouldEqual, log.DebugLevel)
		})

		Convey("Should fall back to info on unknown levels", func() {
			SetupWithOutput(&buf, "loud", false)
			So(log.GetLevel(), ShouldEqual, log.InfoLevel)
		})

		Convey("Should write JSON lines when enabled", func() {
			SetupWithOutput(&buf, "info", true)
			log.WithField("source", "nasa").Warn("upstream failed")

			var entry map[string]interface{}
			So(json.Unmarshal(buf.Bytes(), &entry), ShouldBeNil)
			So(entry["source"], ShouldEqual, "nasa")
			So(entry["level"], ShouldEqual, "warning")
			So(entry["msg"], ShouldEqual, "upstream failed")
		})

		Convey("Should drop entries below the level", func() {
			SetupWithOutput(&buf, "warn", false)
			log.Info("hidden")
			So(buf.Len(), ShouldEqual, 0)
		})
	})
}
