package trello

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/s0up4200/trellogo/metrics"
)

// Client represents a Trello API client.
//
// All fields are set by NewClient and never mutated afterwards, so a Client
// can be shared between goroutines.
type Client struct {
	baseURL      string
	apiKey       string
	token        string
	httpClient   *http.Client
	limiter      *rate.Limiter
	maxRetries   int
	retryDelay   time.Duration
	maxBackoff   time.Duration
	strictErrors bool
	unmarshal    UnmarshalFunc
	metrics      *metrics.Metrics
	userAgent    string
	logger       zerolog.Logger
}

// Arguments are optional request parameters. They travel in the query string
// for GET and DELETE and as a form-encoded body for POST and PUT.
type Arguments map[string]string

// encode returns the sorted, percent-encoded key=value form
func (a Arguments) encode() string {
	if len(a) == 0 {
		return ""
	}
	values := make(url.Values, len(a))
	for k, v := range a {
		values.Set(k, v)
	}
	return values.Encode()
}

// with returns a copy of a with extra set on top
func (a Arguments) with(extra Arguments) Arguments {
	out := make(Arguments, len(a)+len(extra))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// NewClient creates a new Trello client. The API key is mandatory.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, &ConfigurationError{Field: "api_key", Reason: "API key must be set, get one at https://trello.com/app-key"}
	}

	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	parsed, err := url.Parse(o.baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &ConfigurationError{Field: "base_url", Reason: fmt.Sprintf("invalid base URL %q", o.baseURL)}
	}

	httpClient := o.httpClient
	if httpClient == nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		if o.proxy != nil {
			if proxyURL := o.proxy.URL(); proxyURL != nil {
				transport.Proxy = http.ProxyURL(proxyURL)
			}
		}
		httpClient = &http.Client{
			Timeout:   o.timeout,
			Transport: transport,
		}
	}

	return &Client{
		baseURL:      o.baseURL,
		apiKey:       apiKey,
		token:        o.token,
		httpClient:   httpClient,
		limiter:      o.limiter,
		maxRetries:   o.maxRetries,
		retryDelay:   o.retryDelay,
		maxBackoff:   o.maxBackoff,
		strictErrors: o.strictErrors,
		unmarshal:    o.unmarshal,
		metrics:      o.metrics,
		userAgent:    o.userAgent,
		logger:       o.logger.With().Str("component", "trello").Logger(),
	}, nil
}

// TestConnection verifies the key and token by fetching the token's member
func (c *Client) TestConnection(ctx context.Context) error {
	if c.token == "" {
		return &ConfigurationError{Field: "token", Reason: "a token is required to resolve the current member"}
	}

	member, err := c.GetMember(ctx, "me")
	if err != nil {
		return fmt.Errorf("failed to connect to Trello: %w", err)
	}
	if member == nil {
		return fmt.Errorf("failed to connect to Trello: no member returned for token")
	}

	c.logger.Debug().Str("member", member.Username).Msg("Successfully connected to Trello")
	return nil
}
