package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const okCompletion = `{
	"choices": [{"message": {"content": "hello"}}],
	"usage": {"prompt_tokens": 100, "completion_tokens": 50, "total_tokens": 150}
}`

func testClient(t *testing.T, url string) (*chatClient, *[]time.Duration) {
	t.Helper()
	c := newChatClient(
		EndpointConfig{URL: url, SupportsResponseFormat: true},
		"test-key",
		RetryPolicy{MaxRetries: 3, RetryDelay: time.Millisecond, Timeout: 5 * time.Second},
		2,
		nil,
	)
	var slept []time.Duration
	c.sleep = func(ctx context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}
	return c, &slept
}

func testMessages() []map[string]any {
	return []map[string]any{{"role": "user", "content": "hi"}}
}

func TestChatSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(okCompletion))
	}))
	defer srv.Close()

	c, slept := testClient(t, srv.URL)
	resp, err := c.chat(context.Background(), "test-model", testMessages(), false)
	require.NoError(t, err)
	assert.Equal(t, "hello", resp.Content)
	assert.Equal(t, 150, resp.Usage.TotalTokens)
	assert.Empty(t, *slept)
}

func TestChatRetriesRateLimit(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(okCompletion))
	}))
	defer srv.Close()

	c, slept := testClient(t, srv.URL)
	resp, err := c.chat(context.Background(), "test-model", testMessages(), true)
	require.NoError(t, err)
	assert.Equal(t, "hello", resp.Content)
	assert.Equal(t, int32(3), calls.Load())
	require.Len(t, *slept, 2)
	// Retry-After of 1s means at least 2s after the +1 adjustment.
	assert.GreaterOrEqual(t, (*slept)[0], 2*time.Second)
}

func TestChatRetriesServerError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(okCompletion))
	}))
	defer srv.Close()

	c, _ := testClient(t, srv.URL)
	resp, err := c.chat(context.Background(), "test-model", testMessages(), false)
	require.NoError(t, err)
	assert.Equal(t, "hello", resp.Content)
	assert.Equal(t, int32(2), calls.Load())
}

func TestChatServerErrorExhaustion(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c, _ := testClient(t, srv.URL)
	_, err := c.chat(context.Background(), "test-model", testMessages(), false)
	require.Error(t, err)
	// Persistent 5xx gives up on half the normal retry budget.
	assert.Equal(t, int32(2), calls.Load())
}

func TestChatDoesNotRetryBadRequest(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "bad request"}`))
	}))
	defer srv.Close()

	c, _ := testClient(t, srv.URL)
	_, err := c.chat(context.Background(), "test-model", testMessages(), false)
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestChatRateLimitExhaustion(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c, _ := testClient(t, srv.URL)
	_, err := c.chat(context.Background(), "test-model", testMessages(), false)
	require.Error(t, err)
	// Rate limits get double the normal retry budget.
	assert.Equal(t, int32(6), calls.Load())
}

func TestChatNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	c, _ := testClient(t, srv.URL)
	_, err := c.chat(context.Background(), "test-model", testMessages(), false)
	assert.ErrorContains(t, err, "no choices")
}

func TestChatCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c, _ := testClient(t, srv.URL)
	c.sleep = sleepCtx

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.chat(ctx, "test-model", testMessages(), false)
	assert.ErrorIs(t, err, context.Canceled)
}
