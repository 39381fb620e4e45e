package shell

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/AntonStoeckl/library-ledger/eventstore"
)

const (
	defaultMaxAttempts  = 4
	defaultBaseDelay    = 2 * time.Millisecond
	defaultJitterFactor = 0.3
)

var (
	// ErrInvalidMaxAttempts is returned when max attempts are not positive.
	ErrInvalidMaxAttempts = errors.New("max attempts must be positive")

	// ErrNegativeBaseDelay is returned when the base delay is negative.
	ErrNegativeBaseDelay = errors.New("base delay must not be negative")

	// ErrInvalidJitterFactor is returned when the jitter factor is not between 0.0 and 1.0.
	ErrInvalidJitterFactor = errors.New("jitter factor must be between 0.0 and 1.0")
)

// RetryableFunc represents a function that can be retried.
type RetryableFunc func(ctx context.Context) error

// RetryMetadata describes how a retried call went.
type RetryMetadata struct {
	Attempts      int
	TotalDelay    time.Duration
	LastErrorType string
}

type retryConfig struct {
	maxAttempts  int
	baseDelay    time.Duration
	jitterFactor float64
	logger       eventstore.Logger
}

// RetryWithExponentialBackoff executes fn and retries it with exponential backoff
// as long as it fails with eventstore.ErrConcurrencyConflict, up to maxAttempts times.
//
// Retry Schedule (default): 0 ms, 2 ms, 4 ms, 8 ms (with 30% jitter)
//
// All other errors fail fast.
func RetryWithExponentialBackoff(
	ctx context.Context,
	fn RetryableFunc,
	options ...RetryOption,
) (RetryMetadata, error) {

	config := &retryConfig{
		maxAttempts:  defaultMaxAttempts,
		baseDelay:    defaultBaseDelay,
		jitterFactor: defaultJitterFactor,
	}

	for _, option := range options {
		if err := option(config); err != nil {
			return RetryMetadata{}, err
		}
	}

	meta := RetryMetadata{LastErrorType: errorTypeOf(nil)}
	var lastErr error

	for attempt := 0; attempt < config.maxAttempts; attempt++ {
		if attempt > 0 {
			// baseDelay * 2^(attempt-1)
			delay := config.baseDelay * time.Duration(1<<(attempt-1))
			jitter := rand.Float64() * float64(delay) * config.jitterFactor //nolint:gosec //math/rand is sufficient for jitter
			backoffDelay := delay + time.Duration(jitter)

			select {
			case <-time.After(backoffDelay):
				meta.TotalDelay += backoffDelay
			case <-ctx.Done():
				meta.LastErrorType = errorTypeOf(ctx.Err())
				return meta, ctx.Err()
			}
		}

		meta.Attempts++
		lastErr = fn(ctx)
		meta.LastErrorType = errorTypeOf(lastErr)

		if lastErr == nil {
			return meta, nil
		}

		if !errors.Is(lastErr, eventstore.ErrConcurrencyConflict) {
			return meta, lastErr
		}

		if config.logger != nil {
			config.logger.Debug("retrying after concurrency conflict", "attempt", meta.Attempts)
		}
	}

	return meta, lastErr
}

func errorTypeOf(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, eventstore.ErrConcurrencyConflict):
		return "concurrency_conflict"
	case errors.Is(err, context.Canceled):
		return "context_canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return "context_deadline_exceeded"
	default:
		return "other"
	}
}

// RetryOption configures retry behavior using the functional options pattern.
type RetryOption func(*retryConfig) error

// WithMaxAttempts sets the maximum number of attempts.
func WithMaxAttempts(attempts int) RetryOption {
	return func(config *retryConfig) error {
		if attempts <= 0 {
			return ErrInvalidMaxAttempts
		}

		config.maxAttempts = attempts

		return nil
	}
}

// WithBaseDelay sets the base delay for exponential backoff.
// Actual delays: baseDelay, baseDelay*2, baseDelay*4, etc.
func WithBaseDelay(delay time.Duration) RetryOption {
	return func(config *retryConfig) error {
		if delay < 0 {
			return ErrNegativeBaseDelay
		}

		config.baseDelay = delay

		return nil
	}
}

// WithJitterFactor sets the jitter as a fraction of the backoff delay, from 0.0 to 1.0.
func WithJitterFactor(factor float64) RetryOption {
	return func(config *retryConfig) error {
		if factor < 0.0 || factor > 1.0 {
			return ErrInvalidJitterFactor
		}

		config.jitterFactor = factor

		return nil
	}
}

// WithRetryLogger logs each retry at debug level.
func WithRetryLogger(logger eventstore.Logger) RetryOption {
	return func(config *retryConfig) error {
		config.logger = logger

		return nil
	}
}
