// Package logger 初始化全局 logrus 日志
package logger

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// Setup 设置日志级别和输出格式，级别无法识别时使用 info
func Setup(level string, json bool) {
	SetupWithOutput(os.Stdout, level, json)
}

// SetupWithOutput 同 Setup，可指定输出位置
func SetupWithOutput(out io.Writer, level string, json bool) {
	log.SetOutput(out)

	if json {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.InfoLevel
	}
	log.SetLevel(parsed)
}
