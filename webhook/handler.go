package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/s0up4200/trellogo/metrics"
	"github.com/s0up4200/trellogo/trello"
)

const maxBodyBytes = 1 << 20

// Payload is the body Trello posts for every change on a watched model.
type Payload struct {
	Action trello.Action   `json:"action"`
	Model  json.RawMessage `json:"model"`
}

// Callback receives every verified payload.
type Callback func(ctx context.Context, p *Payload) error

// Handler serves Trello webhook callbacks. Trello probes a new callback URL
// with HEAD before creating the webhook, so HEAD is always answered.
type Handler struct {
	secret      string
	callbackURL string
	callback    Callback
	metrics     *metrics.Metrics
	logger      zerolog.Logger
}

// Option configures a Handler
type Option func(*Handler)

// WithSecret enables signature checks. callbackURL must be the exact URL
// the webhook was registered with.
func WithSecret(secret, callbackURL string) Option {
	return func(h *Handler) {
		h.secret = secret
		h.callbackURL = callbackURL
	}
}

// WithMetrics records callback outcomes
func WithMetrics(m *metrics.Metrics) Option {
	return func(h *Handler) {
		h.metrics = m
	}
}

// WithLogger sets the logger
func WithLogger(logger zerolog.Logger) Option {
	return func(h *Handler) {
		h.logger = logger
	}
}

// NewHandler creates a handler passing payloads to callback
func NewHandler(callback Callback, opts ...Option) *Handler {
	h := &Handler{
		callback: callback,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodHead, http.MethodGet:
		w.WriteHeader(http.StatusOK)
		return
	case http.MethodPost:
	default:
		w.Header().Set("Allow", "HEAD, GET, POST")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.reject(w, "too_large", http.StatusRequestEntityTooLarge)
			return
		}
		h.reject(w, "invalid", http.StatusBadRequest)
		return
	}

	if h.secret != "" && !Verify(h.secret, body, h.callbackURL, r.Header.Get(SignatureHeader)) {
		h.logger.Warn().Str("remote", r.RemoteAddr).Msg("Rejected webhook with invalid signature")
		h.reject(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var payload Payload
	if err := json.Unmarshal(body, &payload); err != nil {
		h.logger.Debug().Err(err).Msg("Malformed webhook payload")
		h.reject(w, "invalid", http.StatusBadRequest)
		return
	}

	h.logger.Debug().
		Str("action", string(payload.Action.Type)).
		Str("id", payload.Action.ID).
		Msg("Received webhook")

	if h.callback != nil {
		if err := h.callback(r.Context(), &payload); err != nil {
			h.logger.Error().Err(err).Str("action", string(payload.Action.Type)).Msg("Webhook callback failed")
			h.reject(w, "failed", http.StatusInternalServerError)
			return
		}
	}

	h.metrics.IncWebhook("accepted")
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) reject(w http.ResponseWriter, outcome string, status int) {
	h.metrics.IncWebhook(outcome)
	http.Error(w, http.StatusText(status), status)
}
