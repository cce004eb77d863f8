// Package backoff provides a retry executor with exponentially increasing,
// jittered delays and a bounded wall-clock timeout per attempt.
package backoff

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"net"
	"strings"
	"time"
)

// Policy configures the retry executor.
type Policy struct {
	MaxRetries     int           `mapstructure:"max_retries"`     // retries after the initial attempt
	InitialDelay   time.Duration `mapstructure:"initial_delay"`   // delay before the first retry
	MaxDelay       time.Duration `mapstructure:"max_delay"`       // cap on the computed delay
	Multiplier     float64       `mapstructure:"multiplier"`      // growth factor per attempt
	AttemptTimeout time.Duration `mapstructure:"attempt_timeout"` // wall-clock budget per attempt
}

// Default returns the standard policy: 3 retries, 1s initial delay doubling
// up to 10s, 30s per attempt.
func Default() Policy {
	return Policy{
		MaxRetries:     3,
		InitialDelay:   time.Second,
		MaxDelay:       10 * time.Second,
		Multiplier:     2,
		AttemptTimeout: 30 * time.Second,
	}
}

func (p Policy) normalized() Policy {
	d := Default()
	if p.MaxRetries <= 0 {
		p.MaxRetries = d.MaxRetries
	}
	if p.InitialDelay <= 0 {
		p.InitialDelay = d.InitialDelay
	}
	if p.MaxDelay <= 0 {
		p.MaxDelay = d.MaxDelay
	}
	if p.Multiplier <= 1 {
		p.Multiplier = d.Multiplier
	}
	if p.AttemptTimeout <= 0 {
		p.AttemptTimeout = d.AttemptTimeout
	}
	return p
}

// Delay returns the wait before retry number attempt (0-based): initial
// delay times multiplier^attempt, plus up to 10% jitter, capped at MaxDelay.
// Jitter is additive only, so delays stay non-decreasing across attempts
// until the cap.
func (p Policy) Delay(attempt int) time.Duration {
	p = p.normalized()

	base := float64(p.InitialDelay) * math.Pow(p.Multiplier, float64(attempt))
	jittered := base * (1 + rand.Float64()*0.1)

	if jittered > float64(p.MaxDelay) {
		return p.MaxDelay
	}
	return time.Duration(jittered)
}

// RetryableFunc reports whether an error is worth another attempt.
type RetryableFunc func(error) bool

// StatusError carries an HTTP-like status code from a backend call so the
// default predicate can tell client errors from server ones.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("status %d", e.Code)
	}
	return fmt.Sprintf("status %d: %s", e.Code, e.Message)
}

// StatusCode returns the carried code.
func (e *StatusError) StatusCode() int { return e.Code }

type statusCoder interface {
	StatusCode() int
}

// Retryable is the default predicate: network-level failures, 5xx and 429
// responses, and known temporary backend conditions retry; other 4xx client
// errors do not. Unknown error shapes default to retrying.
func Retryable(err error) bool {
	if err == nil {
		return false
	}

	var sc statusCoder
	if errors.As(err, &sc) {
		code := sc.StatusCode()
		if code >= 500 || code == 429 {
			return true
		}
		if code >= 400 {
			return false
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, s := range []string{
		"connection refused",
		"connection reset",
		"no such host",
		"timeout",
		"timed out",
		"temporarily unavailable",
		"too many connections",
		"broken pipe",
	} {
		if strings.Contains(msg, s) {
			return true
		}
	}

	// Unknown shapes retry.
	return true
}

// Retry runs fn with the default predicate. See RetryWith.
func Retry(ctx context.Context, p Policy, fn func(context.Context) error) error {
	return RetryWith(ctx, p, Retryable, fn)
}

// RetryWith executes fn up to MaxRetries+1 times, each attempt bounded by
// AttemptTimeout. Between failed attempts it sleeps the jittered exponential
// delay. When attempts exhaust or shouldRetry declines, the last error is
// returned as-is so callers can record it.
func RetryWith(ctx context.Context, p Policy, shouldRetry RetryableFunc, fn func(context.Context) error) error {
	p = p.normalized()
	if shouldRetry == nil {
		shouldRetry = Retryable
	}

	var lastErr error
	for attempt := 0; attempt <= p.MaxRetries; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, p.AttemptTimeout)
		err := fn(attemptCtx)
		cancel()

		if err == nil {
			return nil
		}
		lastErr = err

		if attempt == p.MaxRetries || !shouldRetry(err) {
			break
		}

		select {
		case <-ctx.Done():
			return lastErr
		case <-time.After(p.Delay(attempt)):
		}
	}

	return lastErr
}
