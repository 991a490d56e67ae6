package utils

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// NotAvailable 时长未知时的显示值
const NotAvailable = "N/A"

var isoDurationRe = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+(?:\.\d+)?)S)?)?$`)

// FormatSeconds 秒数转显示时长
// 有小时用 H:MM:SS，否则 M:SS；0 或未知一律返回 N/A，不会出现 0:00
func FormatSeconds(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return NotAvailable
	}
	total := int(math.Floor(seconds))
	if total <= 0 {
		return NotAvailable
	}

	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// ParseDisplayDuration 显示时长转秒数，FormatSeconds 的逆操作
// 支持 M:SS 和 H:MM:SS，N/A 或格式错误返回 0
// 每段只能是数字，首段之后的分、秒必须小于 60
func ParseDisplayDuration(display string) int {
	display = strings.TrimSpace(display)
	if display == "" || display == NotAvailable {
		return 0
	}

	parts := strings.Split(display, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0
	}

	total := 0
	for i, part := range parts {
		if !isDigits(part) {
			return 0
		}
		n, err := strconv.Atoi(part)
		if err != nil || (i > 0 && n >= 60) {
			return 0
		}
		total = total*60 + n
	}
	return total
}

// ParseISODuration 解析 ISO-8601 时长（PT1H2M3S），无法识别返回 0
func ParseISODuration(token string) int {
	match := isoDurationRe.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(token)))
	if match == nil {
		return 0
	}

	days := atoiOrZero(match[1])
	hours := atoiOrZero(match[2])
	minutes := atoiOrZero(match[3])
	seconds := 0
	if match[4] != "" {
		if f, err := strconv.ParseFloat(match[4], 64); err == nil {
			seconds = int(f)
		}
	}

	return days*86400 + hours*3600 + minutes*60 + seconds
}

// ToSeconds 把上游返回的各种时长写法统一成秒数
// 接受数字、数字字符串、PT#H#M#S 以及 H:MM:SS / M:SS
func ToSeconds(v interface{}) float64 {
	switch val := v.(type) {
	case nil:
		return 0
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return 0
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
		if strings.HasPrefix(strings.ToUpper(s), "P") {
			return float64(ParseISODuration(s))
		}
		if strings.Contains(s, ":") {
			return float64(ParseDisplayDuration(s))
		}
		return 0
	}
	return ToFloat(v)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func atoiOrZero(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
