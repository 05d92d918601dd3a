package provider

import (
	"math/rand"
	"strconv"
	"time"
)

// retryDelay is the schedule for timeouts and server errors.
func retryDelay(base time.Duration, attempt int) time.Duration {
	return base * (1 << attempt)
}

// rateLimitDelay is the schedule for 429 responses: honor Retry-After when
// the server sends one, otherwise back off 5s doubling to an 80s cap, plus
// jitter of up to half the base so concurrent workers spread out.
func rateLimitDelay(attempt int, retryAfter string) time.Duration {
	var base time.Duration
	if secs, err := strconv.Atoi(retryAfter); err == nil && secs >= 0 {
		base = time.Duration(secs+1) * time.Second
	} else {
		e := attempt
		if e > 4 {
			e = 4
		}
		base = 5 * time.Second * (1 << e)
	}
	jitter := time.Duration(rand.Int63n(int64(base)/2 + 1))
	return base + jitter
}
