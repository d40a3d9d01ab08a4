package unicodedata

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultURL is the emoji-test.txt of the Unicode release in use.
	DefaultURL = "https://www.unicode.org/Public/17.0.0/emoji/emoji-test.txt"

	defaultTimeout = 30 * time.Second
	userAgent      = "emojigen/1.0"

	// unicode.org asks for polite access; one request per 2 seconds, burst of 2.
	defaultInterval = 2 * time.Second
	defaultBurst    = 2

	// emoji-test.txt is well under 1 MiB; anything much larger is not the file.
	maxBodySize = 8 << 20
)

// Client downloads emoji-test.txt.
type Client struct {
	http    *http.Client
	limiter *rate.Limiter
	url     string
	logger  *slog.Logger
}

// NewClient creates a client for url. Zero timeout means the default.
func NewClient(url string, timeout time.Duration, logger *slog.Logger) *Client {
	if url == "" {
		url = DefaultURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(rate.Every(defaultInterval), defaultBurst),
		url:     url,
		logger:  logger,
	}
}

// Close releases idle connections.
func (c *Client) Close() {
	c.http.CloseIdleConnections()
}

// URL returns the address the client fetches from.
func (c *Client) URL() string {
	return c.url
}

// FetchEmojiTest downloads and parses emoji-test.txt.
func (c *Client) FetchEmojiTest(ctx context.Context) (*File, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, wrapError("fetch", c.url, fmt.Errorf("rate limit wait: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, wrapError("fetch", c.url, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "text/plain")
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("fetching emoji-test.txt", "url", c.url)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, wrapError("fetch", c.url, fmt.Errorf("execute request: %w", err))
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return nil, wrapError("fetch", c.url, ErrNotFound)
	case resp.StatusCode >= 500:
		return nil, wrapError("fetch", c.url, ErrServer)
	default:
		return nil, wrapError("fetch", c.url, fmt.Errorf("%w %d", ErrUnexpectedStatus, resp.StatusCode))
	}

	file, err := Parse(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, wrapError("parse", c.url, err)
	}

	c.logger.Debug("fetched emoji-test.txt",
		"url", c.url,
		"lines", len(file.Lines),
		"skipped", len(file.Skipped),
		"duration", time.Since(start),
	)

	return file, nil
}
