package audio

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// Loader fetches remote audio resources and decodes them through the
// injected engine.
type Loader struct {
	Client *http.Client
	engine Engine
}

func NewLoader(engine Engine, timeout time.Duration) *Loader {
	return &Loader{
		engine: engine,
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

// Load issues a GET for the binary resource at url and hands the bytes to
// the engine's decoder. Any fetch or decode failure is returned; the panel
// decides what an absent buffer means.
func (l *Loader) Load(ctx context.Context, url string) (Buffer, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("audio source returned %s", resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	buf, err := l.engine.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", url, err)
	}
	return buf, nil
}
