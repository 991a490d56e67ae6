package utils

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// 上游接口返回的字段类型不固定（有些是string，有些是数字，有些是数组）
// 以下辅助函数用于把 interface{} 转成需要的类型

// ToInt 转换为int，无法转换返回0
func ToInt(v interface{}) int {
	switch val := v.(type) {
	case int:
		return val
	case int64:
		return int(val)
	case float64:
		return int(val)
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return int(i)
		}
		if f, err := val.Float64(); err == nil {
			return int(f)
		}
	case string:
		s := strings.TrimSpace(val)
		if i, err := strconv.Atoi(s); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) {
			return int(f)
		}
	case []interface{}:
		if len(val) > 0 {
			return ToInt(val[0])
		}
	}
	return 0
}

// ToFloat 转换为float64，无法转换返回0
func ToFloat(v interface{}) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case int64:
		return float64(val)
	case json.Number:
		if f, err := val.Float64(); err == nil {
			return f
		}
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(val), 64); err == nil {
			return f
		}
	case []interface{}:
		if len(val) > 0 {
			return ToFloat(val[0])
		}
	}
	return 0
}

// ToString 转换为string，数组取第一个元素
func ToString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	case []interface{}:
		if len(val) > 0 {
			return ToString(val[0])
		}
	}
	return ""
}

// NonNegative 负数按0处理
func NonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// FirstNonEmpty 返回第一个非空字符串
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
