package cmd

import (
	"bytes"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSourcesCommand(t *testing.T) {
	Convey("openvid sources", t, func() {
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetArgs([]string{"sources"})
		Reset(func() {
			rootCmd.SetOut(nil)
			rootCmd.SetArgs(nil)
		})

		So(rootCmd.Execute(), ShouldBeNil)

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		So(lines, ShouldHaveLength, 5)
		So(lines[0], ShouldStartWith, "peertube")
		So(lines[0], ShouldEndWith, "PeerTube")
		So(lines[4], ShouldStartWith, "nasa")
	})
}

func TestSearchCommandRequiresQuery(t *testing.T) {
	Convey("openvid search without a query", t, func() {
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetErr(&out)
		rootCmd.SetArgs([]string{"search"})
		Reset(func() {
			rootCmd.SetOut(nil)
			rootCmd.SetErr(nil)
			rootCmd.SetArgs(nil)
		})

		So(rootCmd.Execute(), ShouldNotBeNil)
	})
}
