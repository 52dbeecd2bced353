package github

import "time"

// RateLimitStatus is the quota telemetry embedded in every GraphQL response.
// It is nil until the first successful call and replaced wholesale after each
// one, never partially updated.
type RateLimitStatus struct {
	Limit     int       `json:"limit"`
	Remaining int       `json:"remaining"`
	Used      int       `json:"used"`
	ResetAt   time.Time `json:"resetAt"`
}

const (
	// defaultRateLimitThreshold is the low-water mark below which the
	// governor asks for a preemptive wait.
	defaultRateLimitThreshold = 100

	// defaultMaxPreemptiveWait bounds how long the governor is willing to
	// wait for a quota reset before a call.
	defaultMaxPreemptiveWait = 5 * time.Minute
)

// Governor decides whether to wait before issuing the next request given the
// last known quota snapshot. Both methods are pure; the governor holds no
// mutable state of its own.
type Governor struct {
	threshold int
	maxWait   time.Duration
}

// NewGovernor creates a governor with the default threshold and wait cap.
func NewGovernor() *Governor {
	return &Governor{
		threshold: defaultRateLimitThreshold,
		maxWait:   defaultMaxPreemptiveWait,
	}
}

// ShouldWait reports whether remaining quota is below the low-water mark.
// A nil status means no call has been made yet, so there is nothing to wait
// for.
func (g *Governor) ShouldWait(status *RateLimitStatus) bool {
	if status == nil {
		return false
	}
	return status.Remaining < g.threshold
}

// WaitTime returns how long to wait before the next request: zero when quota
// is healthy or the reset has already passed, otherwise the time until reset
// capped at the governor's maximum.
func (g *Governor) WaitTime(status *RateLimitStatus, now time.Time) time.Duration {
	if !g.ShouldWait(status) {
		return 0
	}
	wait := status.ResetAt.Sub(now)
	if wait <= 0 {
		return 0
	}
	if wait > g.maxWait {
		wait = g.maxWait
	}
	return wait
}
