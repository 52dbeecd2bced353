package github

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGovernor_ShouldWait(t *testing.T) {
	gov := NewGovernor()

	t.Run("nil status means no prior call and no wait", func(t *testing.T) {
		assert.False(t, gov.ShouldWait(nil))
	})

	t.Run("healthy quota does not wait", func(t *testing.T) {
		assert.False(t, gov.ShouldWait(&RateLimitStatus{Remaining: 4000, Limit: 5000}))
	})

	t.Run("quota below threshold waits", func(t *testing.T) {
		assert.True(t, gov.ShouldWait(&RateLimitStatus{Remaining: 42, Limit: 5000}))
	})

	t.Run("threshold is exclusive", func(t *testing.T) {
		assert.False(t, gov.ShouldWait(&RateLimitStatus{Remaining: defaultRateLimitThreshold}))
	})
}

func TestGovernor_WaitTime(t *testing.T) {
	gov := NewGovernor()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("zero when quota is healthy", func(t *testing.T) {
		status := &RateLimitStatus{Remaining: 4000, ResetAt: now.Add(time.Hour)}
		assert.Equal(t, time.Duration(0), gov.WaitTime(status, now))
	})

	t.Run("zero when reset already passed", func(t *testing.T) {
		status := &RateLimitStatus{Remaining: 10, ResetAt: now.Add(-time.Minute)}
		assert.Equal(t, time.Duration(0), gov.WaitTime(status, now))
	})

	t.Run("waits until reset", func(t *testing.T) {
		status := &RateLimitStatus{Remaining: 10, ResetAt: now.Add(90 * time.Second)}
		assert.Equal(t, 90*time.Second, gov.WaitTime(status, now))
	})

	t.Run("caps the wait", func(t *testing.T) {
		status := &RateLimitStatus{Remaining: 10, ResetAt: now.Add(time.Hour)}
		assert.Equal(t, defaultMaxPreemptiveWait, gov.WaitTime(status, now))
	})

	t.Run("zero for nil status", func(t *testing.T) {
		assert.Equal(t, time.Duration(0), gov.WaitTime(nil, now))
	})
}
