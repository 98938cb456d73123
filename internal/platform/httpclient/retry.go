package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jsamuelsen11/go-todo-lists/internal/platform/config"
	"github.com/jsamuelsen11/go-todo-lists/internal/platform/logging"
)

// retryPolicy is exponential backoff with ±25% jitter. Only idempotent
// methods are retried; others get a single attempt.
type retryPolicy struct {
	attempts   int
	initial    time.Duration
	max        time.Duration
	multiplier float64
}

const jitter = 0.25

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	return retryPolicy{
		attempts:   max(cfg.MaxAttempts, 1),
		initial:    cfg.InitialInterval,
		max:        cfg.MaxInterval,
		multiplier: cfg.Multiplier,
	}
}

// attemptsFor returns how many tries a request with the given method gets.
func (p retryPolicy) attemptsFor(method string) int {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return p.attempts
	default:
		return 1
	}
}

// delay returns the wait before retry n, where n counts from 1.
func (p retryPolicy) delay(n int) time.Duration {
	d := float64(p.initial) * math.Pow(p.multiplier, float64(n-1))
	d = min(d, float64(p.max))
	d += d * jitter * (2*rand.Float64() - 1)
	return time.Duration(max(d, 0))
}

// wait honours a downstream Retry-After hint when one is present, capped at
// the policy's max interval.
func (p retryPolicy) wait(n int, resp *http.Response, now time.Time) time.Duration {
	if resp != nil {
		if d, ok := retryAfter(resp.Header.Get("Retry-After"), now); ok {
			return min(d, p.max)
		}
	}
	return p.delay(n)
}

// retryAfter parses a Retry-After header given either as delta-seconds or
// as an HTTP date.
func retryAfter(v string, now time.Time) (time.Duration, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, false
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs < 0 {
			return 0, false
		}
		return time.Duration(secs) * time.Second, true
	}
	at, err := http.ParseTime(v)
	if err != nil {
		return 0, false
	}
	return max(at.Sub(now), 0), true
}

// send runs req against the transport under the retry policy. When the
// final attempt still has a retryable status, its response is returned with
// the body open alongside an error.
func (c *Client) send(ctx context.Context, req *http.Request) (*http.Response, error) {
	body, err := snapshotBody(req)
	if err != nil {
		return nil, err
	}

	attempts := c.retry.attemptsFor(req.Method)
	var (
		prev    *http.Response
		lastErr error
	)
	for n := range attempts {
		if n > 0 {
			d := c.retry.wait(n, prev, time.Now())
			logging.FromContext(ctx).WarnContext(ctx, "retrying downstream request",
				slog.String("peer_service", c.name),
				slog.String("method", req.Method),
				slog.String("path", req.URL.Path),
				slog.Int("attempt", n+1),
				slog.Int("max_attempts", attempts),
				slog.Duration("wait", d),
				slog.Any("error", lastErr),
			)
			if err := sleep(ctx, d); err != nil {
				return nil, err
			}
		}

		if body != nil {
			req.Body = io.NopCloser(bytes.NewReader(body))
			req.ContentLength = int64(len(body))
		}

		resp, err := c.http.Do(req)
		if err != nil {
			if !retryableErr(err) {
				return nil, err
			}
			lastErr, prev = err, nil
			continue
		}
		if !retryableStatus(resp.StatusCode) {
			return resp, nil
		}

		lastErr = fmt.Errorf("%s responded %d", c.name, resp.StatusCode)
		if n == attempts-1 {
			return resp, lastErr
		}
		discard(resp)
		prev = resp
	}
	return nil, lastErr
}

func snapshotBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	defer req.Body.Close()
	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return b, nil
}

// discard drains and closes the body so the connection can be reused. The
// headers stay readable for Retry-After.
func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// retryableErr treats every transport failure as transient except the
// caller's own cancellation or deadline.
func retryableErr(err error) bool {
	return err != nil &&
		!errors.Is(err, context.Canceled) &&
		!errors.Is(err, context.DeadlineExceeded)
}

func retryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests, http.StatusBadGateway,
		http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return code == http.StatusInternalServerError
	}
}
