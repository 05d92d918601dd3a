package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const maxCompletionTokens = 4096

// usage mirrors the token accounting block of a chat completions response.
type usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// chatResponse is the decoded slice of a completions payload we care about.
type chatResponse struct {
	Content string
	Usage   usage
}

// statusError carries the HTTP status so the retry loop can classify it.
type statusError struct {
	Status     int
	RetryAfter string
	Body       string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("status %d: %s", e.Status, e.Body)
}

// chatClient posts chat completions to one endpoint with retries and a
// concurrency cap shared across all pages of all jobs in this process.
type chatClient struct {
	endpoint EndpointConfig
	apiKey   string
	policy   RetryPolicy
	http     *http.Client
	sem      chan struct{}
	log      *slog.Logger
	sleep    func(ctx context.Context, d time.Duration) error
}

func newChatClient(endpoint EndpointConfig, apiKey string, policy RetryPolicy, maxConcurrent int, logger *slog.Logger) *chatClient {
	policy = policy.withDefaults()
	if maxConcurrent <= 0 {
		maxConcurrent = 5
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &chatClient{
		endpoint: endpoint,
		apiKey:   apiKey,
		policy:   policy,
		http:     &http.Client{Timeout: policy.Timeout},
		sem:      make(chan struct{}, maxConcurrent),
		log:      logger,
		sleep:    sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// chat sends one completions request, waiting on the semaphore first.
// Timeouts retry MaxRetries times on an exponential schedule; 429s get
// double the attempts on the rate limit schedule. 5xx gets roughly half:
// a repeating 5xx usually means the provider is down, not a blip.
func (c *chatClient) chat(ctx context.Context, model string, messages []map[string]any, jsonResponse bool) (chatResponse, error) {
	select {
	case c.sem <- struct{}{}:
	case <-ctx.Done():
		return chatResponse{}, ctx.Err()
	}
	defer func() { <-c.sem }()

	payload := map[string]any{
		"model":      model,
		"messages":   messages,
		"max_tokens": maxCompletionTokens,
	}
	if jsonResponse && c.endpoint.SupportsResponseFormat {
		payload["response_format"] = map[string]any{"type": "json_object"}
	}

	reqID := uuid.New().String()
	start := time.Now()
	rateLimitRetries := c.policy.MaxRetries * 2
	serverErrRetries := (c.policy.MaxRetries + 1) / 2

	var lastErr error
	for attempt := 0; attempt < rateLimitRetries; attempt++ {
		raw, err := c.post(ctx, payload)
		if err == nil {
			resp, decodeErr := decodeChat(raw)
			if decodeErr != nil {
				c.log.Error("provider.chat.decode_error",
					"req_id", reqID, "error", decodeErr, "raw_bytes", len(raw))
				return chatResponse{}, decodeErr
			}
			c.log.Info("provider.chat.ok",
				"req_id", reqID,
				"model", model,
				"attempt", attempt,
				"tokens", resp.Usage.TotalTokens,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return resp, nil
		}
		lastErr = err

		var se *statusError
		switch {
		case errors.As(err, &se) && se.Status == http.StatusTooManyRequests:
			if attempt >= rateLimitRetries-1 {
				break
			}
			delay := rateLimitDelay(attempt, se.RetryAfter)
			c.log.Warn("provider.chat.rate_limited",
				"req_id", reqID, "attempt", attempt, "delay_ms", delay.Milliseconds())
			if sErr := c.sleep(ctx, delay); sErr != nil {
				return chatResponse{}, sErr
			}
			continue
		case errors.As(err, &se) && se.Status >= 500:
			if attempt >= serverErrRetries-1 {
				break
			}
			delay := retryDelay(c.policy.RetryDelay, attempt)
			c.log.Warn("provider.chat.server_error",
				"req_id", reqID, "status", se.Status, "attempt", attempt, "delay_ms", delay.Milliseconds())
			if sErr := c.sleep(ctx, delay); sErr != nil {
				return chatResponse{}, sErr
			}
			continue
		case isTimeout(err):
			if attempt >= c.policy.MaxRetries-1 {
				break
			}
			delay := retryDelay(c.policy.RetryDelay, attempt)
			c.log.Warn("provider.chat.timeout",
				"req_id", reqID, "attempt", attempt, "delay_ms", delay.Milliseconds())
			if sErr := c.sleep(ctx, delay); sErr != nil {
				return chatResponse{}, sErr
			}
			continue
		}
		break
	}

	c.log.Error("provider.chat.failed",
		"req_id", reqID,
		"model", model,
		"error", lastErr,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return chatResponse{}, lastErr
}

func (c *chatClient) post(ctx context.Context, payload map[string]any) ([]byte, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint.URL, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	for k, v := range c.endpoint.ExtraHeaders {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func(body io.ReadCloser) {
		if cErr := body.Close(); cErr != nil {
			c.log.Warn("provider.chat.body_close_error", "error", cErr)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &statusError{
			Status:     resp.StatusCode,
			RetryAfter: resp.Header.Get("Retry-After"),
			Body:       truncate(string(raw), 512),
		}
	}
	return raw, nil
}

func decodeChat(raw []byte) (chatResponse, error) {
	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Usage usage `json:"usage"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return chatResponse{}, fmt.Errorf("decode completions response: %w", err)
	}
	if len(cc.Choices) == 0 {
		return chatResponse{}, fmt.Errorf("no choices in completions response")
	}
	return chatResponse{Content: cc.Choices[0].Message.Content, Usage: cc.Usage}, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
