package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/vongst/web-audio-api/internal/models"
)

// HTTPCollector fetches the post collection from a remote JSON endpoint.
type HTTPCollector struct {
	Client    *http.Client
	SourceURL string
}

func NewHTTPCollector(sourceURL string, timeout time.Duration) *HTTPCollector {
	return &HTTPCollector{
		SourceURL: sourceURL,
		Client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout: 5 * time.Second,
				MaxIdleConns:        100,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Fetch issues a GET to the source URL and decodes the body as a JSON array
// of posts. Non-2xx responses and undecodable bodies are errors; the caller
// decides what a failure means for its state.
func (c *HTTPCollector) Fetch(ctx context.Context) ([]models.Post, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.SourceURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("upstream returned %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var posts []models.Post
	if err := json.Unmarshal(body, &posts); err != nil {
		return nil, fmt.Errorf("decode post array: %w", err)
	}
	return posts, nil
}
