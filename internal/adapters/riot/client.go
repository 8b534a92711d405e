// Package riot provides a rate-limited Riot REST client for the ingest pipeline
package riot

import (
	"context"
	"io"
	"net/http"
	"time"

	perr "riftcoach/internal/platform/errors"
	"riftcoach/internal/platform/logger"

	"golang.org/x/time/rate"
)

const (
	baseURLDefault   = "https://americas.api.riotgames.com"
	defaultTimeout   = 10 * time.Second
	defaultInterval  = 1200 * time.Millisecond
	defaultCooldown  = 5 * time.Second
	defaultMaxRetry  = 5
	defaultRetryBase = 500 * time.Millisecond
)

// Options configures the Client
type Options struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration

	// MinInterval is the request cadence floor. Every request passes
	// through one limiter, so concurrent callers raise pipeline overlap
	// but never the request rate
	MinInterval time.Duration

	// RateCooldown is the wait after a 429 without a Retry-After header
	RateCooldown time.Duration

	// Retry config for 429 and transient server errors
	MaxRetries int
	RetryBase  time.Duration
}

// Client is a minimal Riot REST client with a single admission gate
type Client struct {
	http    *http.Client
	opts    Options
	limiter *rate.Limiter
	log     logger.Logger
	now     func() time.Time
	sleep   func(time.Duration)
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MinInterval <= 0 {
		o.MinInterval = defaultInterval
	}
	if o.RateCooldown <= 0 {
		o.RateCooldown = defaultCooldown
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = defaultMaxRetry
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	return &Client{
		http:    &http.Client{Timeout: o.Timeout},
		opts:    o,
		limiter: rate.NewLimiter(rate.Every(o.MinInterval), 1),
		log:     *logger.Named("riot"),
		now:     time.Now,
		sleep:   time.Sleep,
	}
}

// Do issues a GET with the auth header, admission gating, and bounded retries
// for 429 and transient server errors. Callers own the response body
func (c *Client) Do(ctx context.Context, path string) (*http.Response, error) {
	url := c.opts.BaseURL + path
	attempts := 0
	for {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "riot new request failed")
		}
		req.Header.Set("Accept", "application/json")
		if c.opts.APIKey != "" {
			req.Header.Set("X-Riot-Token", c.opts.APIKey)
		}

		start := c.now()
		resp, err := c.http.Do(req)
		lat := c.now().Sub(start)

		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			if !c.shouldRetry(attempts) {
				return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "riot do failed")
			}
			back := c.backoff(attempts)
			c.log.Warn().Dur("retry_in", back).Int("attempt", attempts).Msg("riot transport error retrying")
			if err := c.sleepCtx(ctx, back); err != nil {
				return nil, err
			}
			attempts++
			continue
		}

		c.log.Debug().
			Str("path", path).
			Int("status", resp.StatusCode).
			Int("attempt", attempts).
			Dur("latency", lat).
			Msg("riot http response")

		switch {
		case resp.StatusCode == http.StatusOK:
			return resp, nil
		case resp.StatusCode == http.StatusNotFound:
			_ = drainAndClose(resp.Body)
			return nil, perr.NotFoundf("riot resource not found: %s", path)
		case resp.StatusCode == http.StatusTooManyRequests:
			wait := retryAfterWait(resp.Header)
			if wait <= 0 {
				wait = c.opts.RateCooldown
			}
			_ = drainAndClose(resp.Body)
			if !c.shouldRetry(attempts) {
				return nil, perr.Unavailablef("riot rate limit retries exhausted: %s", path)
			}
			c.log.Warn().Dur("sleep", wait).Int("attempt", attempts).Msg("riot rate limited backing off")
			if err := c.sleepCtx(ctx, wait); err != nil {
				return nil, err
			}
			attempts++
			continue
		case resp.StatusCode >= http.StatusInternalServerError:
			_ = drainAndClose(resp.Body)
			if !c.shouldRetry(attempts) {
				return nil, perr.Unavailablef("riot transient server error: %s", path)
			}
			back := c.backoff(attempts)
			c.log.Warn().Dur("retry_in", back).Int("attempt", attempts).Msg("riot transient error retrying")
			if err := c.sleepCtx(ctx, back); err != nil {
				return nil, err
			}
			attempts++
			continue
		default:
			// read a small tail for diagnostics then return
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
			_ = resp.Body.Close()
			return nil, perr.Newf(perr.ErrorCodeUnknown, "riot unexpected status %d body %s", resp.StatusCode, string(body))
		}
	}
}

func (c *Client) backoff(attempt int) time.Duration {
	d := c.opts.RetryBase
	// simple exponential with cap
	ms := int64(d / time.Millisecond)
	ms = ms << uint(attempt)
	max := int64(30 * time.Second / time.Millisecond)
	if ms > max {
		ms = max
	}
	return time.Duration(ms) * time.Millisecond
}

func (c *Client) shouldRetry(attempt int) bool {
	return attempt < c.opts.MaxRetries
}

// sleepCtx waits through the seam but still honors cancellation
func (c *Client) sleepCtx(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.sleep(d)
	return ctx.Err()
}
