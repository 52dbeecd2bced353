package github

import (
	"time"

	"github.com/sirupsen/logrus"
)

// RetryPolicy bounds attempts and backoff for one logical fetch operation.
// Keeping the attempt ceiling and both backoff ladders in one value makes the
// worst-case wall-clock time auditable in one place: at the defaults,
// exhausting rate-limit retries waits at most 1s + 2s = 3s between three
// attempts, and preemptive governor waits come on top.
type RetryPolicy struct {
	MaxAttempts   int
	RateLimitBase time.Duration
	RateLimitMax  time.Duration
	TransientBase time.Duration
	TransientMax  time.Duration

	// sleep is a test seam; nil means time.Sleep.
	sleep func(time.Duration)
}

// DefaultRetryPolicy returns the production retry configuration.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:   3,
		RateLimitBase: time.Second,
		RateLimitMax:  60 * time.Second,
		TransientBase: 500 * time.Millisecond,
		TransientMax:  30 * time.Second,
	}
}

// backoff computes min(base * 2^attempt, max).
func (p RetryPolicy) backoff(base, max time.Duration, attempt int) time.Duration {
	d := base << uint(attempt)
	if d > max || d <= 0 {
		d = max
	}
	return d
}

func (p RetryPolicy) sleepFor(d time.Duration) {
	if p.sleep != nil {
		p.sleep(d)
		return
	}
	time.Sleep(d)
}

// Execute runs fn with classified retries. Rate-limit and transient errors
// back off on their own ladders and retry; any other error propagates
// immediately. The error remaining on the final attempt propagates even when
// it is recoverable, and with MaxAttempts of 1 fn runs exactly once with no
// sleep.
func (p RetryPolicy) Execute(logger logrus.FieldLogger, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt < p.MaxAttempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if attempt == p.MaxAttempts-1 {
			break
		}

		var wait time.Duration
		switch {
		case IsRateLimit(err):
			wait = p.backoff(p.RateLimitBase, p.RateLimitMax, attempt)
		case IsTransient(err):
			wait = p.backoff(p.TransientBase, p.TransientMax, attempt)
		default:
			return err
		}

		logger.WithFields(logrus.Fields{
			"attempt": attempt + 1,
			"wait":    wait.String(),
		}).WithError(err).Warn("Request failed, backing off before retry")
		p.sleepFor(wait)
	}
	return lastErr
}
