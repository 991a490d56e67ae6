package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// DefaultUserAgent 请求上游时使用的UA
const DefaultUserAgent = "OpenVid/1.0"

// 单个响应体的读取上限
const maxBodyBytes = 8 << 20

// HTTPClient 所有数据源共享的连接池
var HTTPClient = &http.Client{
	Timeout:   30 * time.Second,
	Transport: newTransport(),
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 20
	t.IdleConnTimeout = 60 * time.Second
	t.ResponseHeaderTimeout = 20 * time.Second
	return t
}

// HTTPError 上游返回非2xx状态码
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error: %s %s status=%d body=%s", e.Method, e.URL, e.StatusCode, snippet(e.Body, 300))
}

func snippet(b []byte, max int) string {
	s := strings.TrimSpace(string(b))
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

// Client 单个数据源的上游请求客户端
// 每个数据源持有自己的限流器，互不影响
type Client struct {
	http      *http.Client
	limiter   *rate.Limiter
	userAgent string
}

// NewClient 创建客户端，每秒最多 rps 个请求
func NewClient(httpClient *http.Client, userAgent string, rps float64) *Client {
	if httpClient == nil {
		httpClient = HTTPClient
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Client{
		http:      httpClient,
		limiter:   rate.NewLimiter(rate.Limit(rps), int(rps)+1),
		userAgent: userAgent,
	}
}

// throttle 按限流器排队，排队时间不超过剩余预算的一半，超出时直接发请求
func (c *Client) throttle(ctx context.Context) error {
	r := c.limiter.Reserve()
	if !r.OK() {
		return nil
	}
	delay := r.Delay()
	if delay <= 0 {
		return nil
	}
	if deadline, ok := ctx.Deadline(); ok && delay > time.Until(deadline)/2 {
		r.Cancel()
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		r.Cancel()
		return ctx.Err()
	}
}

// GetJSON 发起GET请求并解析JSON，不做重试
func (c *Client) GetJSON(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("解析地址失败: %w", err)
	}
	if len(params) > 0 {
		u.RawQuery = params.Encode()
	}

	if err := c.throttle(ctx); err != nil {
		return fmt.Errorf("等待限流失败: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("创建请求失败: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("请求失败: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("读取响应失败: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPError{
			Method:     req.Method,
			URL:        req.URL.String(),
			StatusCode: resp.StatusCode,
			Body:       body,
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("JSON解析失败: %w body=%s", err, snippet(body, 300))
	}
	return nil
}
