package trello

import (
	"encoding/json"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/s0up4200/trellogo/metrics"
)

const (
	defaultTimeout        = 30 * time.Second
	defaultMaxRetries     = 5
	defaultRateLimitDelay = 10 * time.Second
	defaultMaxBackoff     = 60 * time.Second

	// Trello allows 100 requests per 10 second window per token.
	defaultRequestsPerSecond = 10
	defaultBurst             = 10
)

// UnmarshalFunc decodes a response body into v
type UnmarshalFunc func(data []byte, v any) error

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL      string
	token        string
	timeout      time.Duration
	httpClient   *http.Client
	proxy        *ProxyConfig
	maxRetries   int
	retryDelay   time.Duration
	maxBackoff   time.Duration
	limiter      *rate.Limiter
	strictErrors bool
	logger       zerolog.Logger
	unmarshal    UnmarshalFunc
	metrics      *metrics.Metrics
	userAgent    string
}

// ProxyConfig describes an HTTP proxy applied to every request of one client
type ProxyConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

// URL returns the proxy URL with credentials embedded, or nil when no host is set.
func (p ProxyConfig) URL() *url.URL {
	host := strings.TrimSpace(p.Host)
	if host == "" {
		return nil
	}
	port := p.Port
	if port == 0 {
		port = 80
	}

	u := &url.URL{
		Scheme: "http",
		Host:   net.JoinHostPort(host, strconv.Itoa(port)),
	}
	if strings.TrimSpace(p.User) != "" {
		u.User = url.UserPassword(p.User, p.Password)
	}
	return u
}

func defaultOptions() clientOptions {
	return clientOptions{
		baseURL:    DefaultBaseURL,
		timeout:    defaultTimeout,
		maxRetries: defaultMaxRetries,
		retryDelay: defaultRateLimitDelay,
		maxBackoff: defaultMaxBackoff,
		limiter:    rate.NewLimiter(rate.Limit(defaultRequestsPerSecond), defaultBurst),
		logger:     zerolog.Nop(),
		unmarshal:  json.Unmarshal,
		userAgent:  "trellogo",
	}
}

// WithToken sets the member token sent with every request.
// Required for write operations and private data.
func WithToken(token string) Option {
	return func(o *clientOptions) {
		o.token = strings.TrimSpace(token)
	}
}

// WithBaseURL overrides the API root, mainly for tests and API-compatible mirrors.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithHTTPClient replaces the underlying transport. Proxy settings are ignored
// when a custom client is supplied.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithProxy routes every request of this client through an HTTP proxy.
// A zero port means 80.
func WithProxy(host string, port int, user, password string) Option {
	return func(o *clientOptions) {
		o.proxy = &ProxyConfig{Host: host, Port: port, User: user, Password: password}
	}
}

// WithMaxRetries sets how many times a 429 response is retried.
func WithMaxRetries(retries int) Option {
	return func(o *clientOptions) {
		if retries >= 0 {
			o.maxRetries = retries
		}
	}
}

// WithRateLimitBackoff sets the first wait after a 429 and the cap the
// exponential back-off grows to.
func WithRateLimitBackoff(initial, max time.Duration) Option {
	return func(o *clientOptions) {
		if initial > 0 {
			o.retryDelay = initial
		}
		if max > 0 {
			o.maxBackoff = max
		}
		if o.maxBackoff < o.retryDelay {
			o.maxBackoff = o.retryDelay
		}
	}
}

// WithRateLimit paces outgoing requests client side. A zero limit disables pacing.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(o *clientOptions) {
		if limit <= 0 {
			o.limiter = nil
			return
		}
		o.limiter = rate.NewLimiter(limit, burst)
	}
}

// WithStrictErrors makes error statuses other than 429 return *APIError
// instead of an absent result.
func WithStrictErrors() Option {
	return func(o *clientOptions) {
		o.strictErrors = true
	}
}

// WithLogger sets the logger used for request tracing and error reporting.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// WithUnmarshaler swaps the JSON decoder used for responses.
func WithUnmarshaler(fn UnmarshalFunc) Option {
	return func(o *clientOptions) {
		if fn != nil {
			o.unmarshal = fn
		}
	}
}

// WithMetrics records every attempt in the given collectors.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *clientOptions) {
		o.metrics = m
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		if userAgent != "" {
			o.userAgent = userAgent
		}
	}
}
