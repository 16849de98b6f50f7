package roster

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/matheus3301/dmsync/internal/store"
	"github.com/valyala/fasthttp"
)

const defaultHTTPTimeout = 10 * time.Second

// HTTPSource fetches the roster with GET url. The body is a JSON array of
// users, or an object with a "users" array.
type HTTPSource struct {
	url     string
	timeout time.Duration
	client  *fasthttp.Client
}

// NewHTTPSource creates a source for url. A zero timeout uses ten seconds.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &HTTPSource{
		url:     url,
		timeout: timeout,
		client: &fasthttp.Client{
			Name:                "dmsyncd",
			MaxIdleConnDuration: time.Minute,
		},
	}
}

func (s *HTTPSource) Users(ctx context.Context) ([]store.User, error) {
	timeout := s.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("fetch roster: %w", context.DeadlineExceeded)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(s.url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	if err := s.client.DoTimeout(req, resp, timeout); err != nil {
		return nil, fmt.Errorf("fetch roster: %w", err)
	}
	if code := resp.StatusCode(); code != fasthttp.StatusOK {
		return nil, fmt.Errorf("fetch roster: unexpected status %d", code)
	}
	return decodeUsers(resp.Body())
}

func decodeUsers(body []byte) ([]store.User, error) {
	var users []store.User
	if err := json.Unmarshal(body, &users); err == nil {
		return users, nil
	}
	var wrapped struct {
		Users []store.User `json:"users"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("decode roster: %w", err)
	}
	return wrapped.Users, nil
}
