package trello

import (
	"compress/gzip"
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avast/retry-go"
)

// maxErrorBody caps how much of an error response is kept for logs and APIError
const maxErrorBody = 8192

// rateLimitedError marks a single 429 answer; it never leaves the package
type rateLimitedError struct {
	retryAfter time.Duration
}

func (e *rateLimitedError) Error() string {
	return "trello responded 429 Too Many Requests"
}

func isRateLimited(err error) bool {
	var rl *rateLimitedError
	return errors.As(err, &rl)
}

// dispatch performs the request, retrying 429 answers with exponential
// back-off up to maxRetries times. A nil body with a nil error means the
// server answered with an error status while running in soft mode.
func (c *Client) dispatch(ctx context.Context, method, rawURL string, args Arguments) ([]byte, error) {
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
	default:
		return nil, &ConfigurationError{Field: "method", Reason: "unsupported HTTP method " + method}
	}

	var (
		body     []byte
		attempts int
	)

	err := retry.Do(
		func() error {
			attempts++
			var err error
			body, err = c.attempt(ctx, method, rawURL, args)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(uint(c.maxRetries)+1),
		retry.Delay(c.retryDelay),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return c.backoff(method, rawURL, n, err, config)
		}),
		retry.RetryIf(isRateLimited),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		if isRateLimited(err) {
			c.metrics.IncError("rate_limit")
			return nil, &RateLimitError{Method: method, URL: redactURL(rawURL), Attempts: attempts}
		}
		return nil, err
	}

	return body, nil
}

// backoff computes the wait before the next attempt. maxBackoff caps the
// exponential delay only; a larger Retry-After from the server wins.
func (c *Client) backoff(method, rawURL string, n uint, err error, config *retry.Config) time.Duration {
	delay := retry.BackOffDelay(n, err, config)
	if delay <= 0 || delay > c.maxBackoff {
		delay = c.maxBackoff
	}

	var rl *rateLimitedError
	if errors.As(err, &rl) && rl.retryAfter > delay {
		delay = rl.retryAfter
	}

	c.logger.Warn().
		Str("method", method).
		Str("url", redactURL(rawURL)).
		Uint("retry", n+1).
		Dur("wait", delay).
		Msg("Waiting for Trello API rate limits")

	return delay
}

// attempt performs a single HTTP exchange
func (c *Client) attempt(ctx context.Context, method, rawURL string, args Arguments) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := c.newRequest(ctx, method, rawURL, args)
	if err != nil {
		return nil, &TransportError{Method: method, URL: redactURL(rawURL), Err: err}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveRequest(method, 0, time.Since(start))
		c.metrics.IncError("transport")
		return nil, &TransportError{Method: method, URL: redactURL(rawURL), Err: err}
	}
	defer resp.Body.Close()
	c.metrics.ObserveRequest(method, resp.StatusCode, time.Since(start))

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		_, _ = io.Copy(io.Discard, resp.Body)
		c.metrics.IncRateLimited()
		return nil, &rateLimitedError{retryAfter: parseRetryAfter(resp.Header.Get("Retry-After"))}

	case resp.StatusCode > 399:
		return nil, c.serverError(method, rawURL, args, resp)
	}

	reader, err := responseReader(resp)
	if err != nil {
		return nil, &TransportError{Method: method, URL: redactURL(rawURL), Err: err}
	}
	defer reader.Close()

	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, &TransportError{Method: method, URL: redactURL(rawURL), Err: err}
	}

	c.logger.Trace().
		Str("method", method).
		Str("url", redactURL(rawURL)).
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Msg("Trello API response")

	return body, nil
}

// serverError logs the failed exchange and, in strict mode, turns it into an APIError
func (c *Client) serverError(method, rawURL string, args Arguments, resp *http.Response) error {
	var message string
	if reader, err := responseReader(resp); err == nil {
		data, _ := io.ReadAll(io.LimitReader(reader, maxErrorBody))
		reader.Close()
		message = strings.TrimSpace(string(data))
	}

	c.metrics.IncError("server")
	c.logger.Error().
		Int("status", resp.StatusCode).
		Str("url", redactURL(rawURL)).
		Str("method", method).
		Interface("params", args).
		Str("response", message).
		Msg("Trello API request failed")

	if !c.strictErrors {
		return nil
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Method:     method,
		URL:        redactURL(rawURL),
		Body:       message,
	}
}

// newRequest encodes args into the query for GET/DELETE and into the body for POST/PUT
func (c *Client) newRequest(ctx context.Context, method, rawURL string, args Arguments) (*http.Request, error) {
	target := rawURL
	encoded := args.encode()

	var body io.Reader
	switch method {
	case http.MethodPost, http.MethodPut:
		body = strings.NewReader(encoded)
	default:
		if encoded != "" {
			sep := "?"
			if strings.Contains(target, "?") {
				sep = "&"
			}
			target += sep + encoded
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "gzip")
	req.Header.Set("User-Agent", c.userAgent)

	return req, nil
}

// responseReader unwraps gzip content encoding; other bodies pass through
func responseReader(resp *http.Response) (io.ReadCloser, error) {
	if strings.EqualFold(strings.TrimSpace(resp.Header.Get("Content-Encoding")), "gzip") {
		return gzip.NewReader(resp.Body)
	}
	return io.NopCloser(resp.Body), nil
}

// parseRetryAfter understands both delta-seconds and HTTP-date forms
func parseRetryAfter(value string) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	if secs, err := strconv.Atoi(value); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if when, err := http.ParseTime(value); err == nil {
		if d := time.Until(when); d > 0 {
			return d
		}
	}
	return 0
}

// redactURL hides the key and token before a URL reaches logs or errors
func redactURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "<invalid url>"
	}
	q := u.Query()
	for _, name := range []string{"key", "token"} {
		if q.Has(name) {
			q.Set(name, "REDACTED")
		}
	}
	u.RawQuery = q.Encode()
	return u.String()
}
