package webhook

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/trellogo/metrics"
	"github.com/s0up4200/trellogo/trello"
)

const (
	testSecret   = "s3cret"
	testCallback = "https://hooks.example.com/webhook"
	testPayload  = `{"action":{"id":"a1","type":"updateCard","data":{"card":{"id":"c1","name":"Ship it"},"listAfter":{"id":"l2","name":"Done"}}},"model":{"id":"b1"}}`
)

func TestSign(t *testing.T) {
	sig := Sign(testSecret, []byte(testPayload), testCallback)
	assert.NotEmpty(t, sig)
	assert.Equal(t, sig, Sign(testSecret, []byte(testPayload), testCallback))

	assert.True(t, Verify(testSecret, []byte(testPayload), testCallback, sig))
	assert.False(t, Verify("other", []byte(testPayload), testCallback, sig))
	assert.False(t, Verify(testSecret, []byte(testPayload), testCallback+"/", sig))
	assert.False(t, Verify(testSecret, []byte(testPayload+" "), testCallback, sig))
	assert.False(t, Verify(testSecret, []byte(testPayload), testCallback, ""))
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		body        string
		signature   string
		callbackErr error
		wantStatus  int
		wantCalled  bool
		wantOutcome string
	}{
		{
			name:       "head probe",
			method:     http.MethodHead,
			wantStatus: http.StatusOK,
		},
		{
			name:        "valid callback",
			method:      http.MethodPost,
			body:        testPayload,
			signature:   Sign(testSecret, []byte(testPayload), testCallback),
			wantStatus:  http.StatusOK,
			wantCalled:  true,
			wantOutcome: "accepted",
		},
		{
			name:        "bad signature",
			method:      http.MethodPost,
			body:        testPayload,
			signature:   "bm9wZQ==",
			wantStatus:  http.StatusUnauthorized,
			wantOutcome: "unauthorized",
		},
		{
			name:        "malformed json",
			method:      http.MethodPost,
			body:        `{"action":`,
			signature:   Sign(testSecret, []byte(`{"action":`), testCallback),
			wantStatus:  http.StatusBadRequest,
			wantOutcome: "invalid",
		},
		{
			name:        "callback fails",
			method:      http.MethodPost,
			body:        testPayload,
			signature:   Sign(testSecret, []byte(testPayload), testCallback),
			callbackErr: errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantCalled:  true,
			wantOutcome: "failed",
		},
		{
			name:       "unsupported method",
			method:     http.MethodDelete,
			wantStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := metrics.New(prometheus.NewRegistry())

			var got *Payload
			h := NewHandler(func(_ context.Context, p *Payload) error {
				got = p
				return tt.callbackErr
			}, WithSecret(testSecret, testCallback), WithMetrics(m))

			req := httptest.NewRequest(tt.method, Path, strings.NewReader(tt.body))
			if tt.signature != "" {
				req.Header.Set(SignatureHeader, tt.signature)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalled, got != nil)
			if tt.wantOutcome != "" {
				assert.Equal(t, 1.0, testutil.ToFloat64(m.WebhooksReceivedTotal.WithLabelValues(tt.wantOutcome)))
			}
			if tt.wantCalled {
				assert.Equal(t, trello.ActionUpdateCard, got.Action.Type)
				require.NotNil(t, got.Action.Data.Card)
				assert.Equal(t, "c1", got.Action.Data.Card.ID)
				require.NotNil(t, got.Action.Data.ListAfter)
				assert.Equal(t, "Done", got.Action.Data.ListAfter.Name)
				assert.JSONEq(t, `{"id":"b1"}`, string(got.Model))
			}
		})
	}
}

func TestHandlerWithoutSecret(t *testing.T) {
	called := false
	h := NewHandler(func(context.Context, *Payload) error {
		called = true
		return nil
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, Path, strings.NewReader(testPayload)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestHandlerBodyLimit(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	h := NewHandler(nil, WithMetrics(m))

	body := strings.Repeat("x", maxBodyBytes+1)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, Path, strings.NewReader(body)))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.WebhooksReceivedTotal.WithLabelValues("too_large")))
}

func TestRouter(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	h := NewHandler(nil, WithMetrics(m))

	srv := httptest.NewServer(NewRouter(h, reg))
	defer srv.Close()

	resp, err := http.Head(srv.URL + Path)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Post(srv.URL+Path, "application/json", strings.NewReader(testPayload))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `trellogo_webhooks_received_total{outcome="accepted"} 1`)
}

func TestServeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- Serve(ctx, "127.0.0.1:0", http.NotFoundHandler(), zerolog.Nop())
	}()

	cancel()
	assert.NoError(t, <-done)
}
