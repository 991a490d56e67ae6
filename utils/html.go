package utils

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// StripTags 去除HTML标签，只保留文本内容（实体会被解码）
func StripTags(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.TrimSpace(s)
	}

	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() != io.EOF {
				// 解析失败时退回原始文本
				return strings.TrimSpace(s)
			}
			return strings.TrimSpace(b.String())
		case html.TextToken:
			b.Write(z.Text())
		}
	}
}
