package cricbuzz

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/cricstats/livestats/internal/platform/logging"
)

const (
	defaultHost    = "cricbuzz-cricket.p.rapidapi.com"
	defaultTimeout = 15 * time.Second
	maxBodyBytes   = 4 << 20
)

type ClientConfig struct {
	HTTPClient *http.Client
	Host       string
	APIKey     string
	Timeout    time.Duration
	// MaxRetries bounds additional attempts after the first; every request,
	// successful or not, counts against the budget.
	MaxRetries int
	// Backoff is the base wait between rate-limited attempts when the
	// provider does not suggest one.
	Backoff time.Duration
	// CallDelay is the fixed self-throttle applied after each successful
	// call. RapidAPI free tiers are tight enough that polite pacing beats
	// burst-then-429 loops.
	CallDelay time.Duration
	Logger    *logging.Logger
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	hostHeader string
	apiKey     string
	maxRetries int
	backoff    time.Duration
	callDelay  time.Duration
	logger     *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = defaultHost
	}
	// Host is normally a bare RapidAPI hostname; a full URL is accepted so
	// tests can target a local server.
	baseURL := host
	hostHeader := host
	if strings.Contains(host, "://") {
		hostHeader = strings.TrimPrefix(strings.TrimPrefix(host, "https://"), "http://")
	} else {
		baseURL = "https://" + host
	}
	baseURL = strings.TrimRight(baseURL, "/")

	backoff := cfg.Backoff
	if backoff <= 0 {
		backoff = 2 * time.Second
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		hostHeader: hostHeader,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		maxRetries: maxInt(cfg.MaxRetries, 0),
		backoff:    backoff,
		callDelay:  cfg.CallDelay,
		logger:     logger,
	}
}

// Enabled reports whether a credential is configured at all.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// Get fetches a provider endpoint and decodes the JSON body into a loose map.
// Rate-limit responses are retried within the attempt budget, sleeping for
// the server-suggested Retry-After when present and a growing backoff
// otherwise. Permission denials fail immediately.
func (c *Client) Get(ctx context.Context, path string, params map[string]string) (map[string]any, error) {
	if c.apiKey == "" {
		return nil, crerr.Wrapf(ErrMissingAPIKey, "get %s", path)
	}

	values := url.Values{}
	for key, value := range params {
		values.Set(key, value)
	}
	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	var lastErr error
	throttled := false
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")
		req.Header.Set("x-rapidapi-key", c.apiKey)
		req.Header.Set("x-rapidapi-host", c.hostHeader)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = fmt.Errorf("send request: %s", redactKey(err.Error(), c.apiKey))
			throttled = false
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
			_ = resp.Body.Close()

			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("read response body: %w", readErr)
				throttled = false
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				var payload map[string]any
				if err := sonic.Unmarshal(raw, &payload); err != nil {
					return nil, fmt.Errorf("decode payload for %s: %w", path, err)
				}
				c.pause(ctx, c.callDelay)
				return payload, nil
			case resp.StatusCode == http.StatusForbidden:
				return nil, crerr.Wrapf(ErrForbidden, "get %s", path)
			case resp.StatusCode == http.StatusTooManyRequests:
				lastErr = fmt.Errorf("provider throttled %s", path)
				throttled = true
				if attempt < c.maxRetries {
					c.pause(ctx, c.throttleDelay(resp.Header.Get("Retry-After"), attempt))
					if ctx.Err() != nil {
						return nil, ctx.Err()
					}
					continue
				}
			case resp.StatusCode >= http.StatusInternalServerError:
				lastErr = fmt.Errorf("provider status=%d path=%s", resp.StatusCode, path)
				throttled = false
			default:
				return nil, fmt.Errorf("provider status=%d path=%s", resp.StatusCode, path)
			}
		}

		if attempt == c.maxRetries {
			break
		}
		c.pause(ctx, time.Duration(attempt+1)*c.backoff)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	if throttled {
		lastErr = crerr.Wrapf(ErrThrottled, "get %s after %d attempts", path, c.maxRetries+1)
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed: %s", path)
	}
	c.logger.WarnContext(ctx, "cricbuzz request failed", "path", path, "error", lastErr)
	return nil, lastErr
}

// throttleDelay honors the provider's Retry-After seconds when parseable and
// falls back to a backoff that grows with the attempt number.
func (c *Client) throttleDelay(retryAfter string, attempt int) time.Duration {
	if secs, err := strconv.Atoi(strings.TrimSpace(retryAfter)); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return time.Duration(attempt+1) * c.backoff
}

func (c *Client) pause(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

func redactKey(text, key string) string {
	if key == "" {
		return text
	}
	return strings.ReplaceAll(text, key, "REDACTED")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
