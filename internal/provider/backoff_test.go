package provider

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetryDelayDoubles(t *testing.T) {
	base := 2 * time.Second
	assert.Equal(t, 2*time.Second, retryDelay(base, 0))
	assert.Equal(t, 4*time.Second, retryDelay(base, 1))
	assert.Equal(t, 8*time.Second, retryDelay(base, 2))
}

func TestRateLimitDelaySchedule(t *testing.T) {
	// Base doubles from 5s and caps at 80s; jitter adds at most half again.
	for attempt, wantBase := range []time.Duration{
		5 * time.Second,
		10 * time.Second,
		20 * time.Second,
		40 * time.Second,
		80 * time.Second,
		80 * time.Second,
		80 * time.Second,
	} {
		d := rateLimitDelay(attempt, "")
		assert.GreaterOrEqual(t, d, wantBase, "attempt %d", attempt)
		assert.LessOrEqual(t, d, wantBase+wantBase/2, "attempt %d", attempt)
	}
}

func TestRateLimitDelayHonorsRetryAfter(t *testing.T) {
	d := rateLimitDelay(0, "7")
	assert.GreaterOrEqual(t, d, 8*time.Second)
	assert.LessOrEqual(t, d, 12*time.Second)
}

func TestRateLimitDelayIgnoresBadRetryAfter(t *testing.T) {
	d := rateLimitDelay(0, "soon")
	assert.GreaterOrEqual(t, d, 5*time.Second)
	assert.LessOrEqual(t, d, 5*time.Second+5*time.Second/2)
}
