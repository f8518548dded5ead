package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	// HTTP server
	ListenAddr string `toml:"listen_addr"` // e.g. ":8080"

	// Timeout for upstream fetches (posts and audio alike)
	HTTPTimeoutSeconds int `toml:"http_timeout_seconds"`

	// Upstream post source
	SourceURL string `toml:"source_url"` // e.g. https://jsonplaceholder.typicode.com/posts

	// Audio control panel sources, loaded strictly in this order
	AudioSources []string `toml:"audio_sources"`
}

// HTTPTimeout is the upstream fetch timeout as a duration.
func (c Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}

func defaults() Config {
	return Config{
		ListenAddr:         ":8080",
		HTTPTimeoutSeconds: 10,
		SourceURL:          "https://jsonplaceholder.typicode.com/posts",
		AudioSources: []string{
			"https://www2.cs.uic.edu/~i101/SoundFiles/BabyElephantWalk60.wav",
			"https://www2.cs.uic.edu/~i101/SoundFiles/CantinaBand3.wav",
			"https://www2.cs.uic.edu/~i101/SoundFiles/StarWars3.wav",
		},
	}
}

// Load builds the configuration as defaults, then the optional TOML file at
// path, then environment overrides. Later layers win.
func Load(path string) (Config, error) {
	c := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, &c); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	c.ListenAddr = getenv("HTTP_LISTEN_ADDR", c.ListenAddr)
	if d, err := time.ParseDuration(os.Getenv("HTTP_TIMEOUT")); err == nil && d > 0 {
		c.HTTPTimeoutSeconds = int(d / time.Second)
	}
	c.SourceURL = getenv("SOURCE_URL", c.SourceURL)
	if v := os.Getenv("AUDIO_SOURCES"); v != "" {
		c.AudioSources = splitList(v)
	}

	if c.HTTPTimeoutSeconds <= 0 {
		c.HTTPTimeoutSeconds = 10
	}

	return c, nil
}

// FromEnv is Load without a config file.
func FromEnv() Config {
	c, _ := Load("")
	return c
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
