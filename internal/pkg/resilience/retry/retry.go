// Package retry wraps avast/retry-go behind a small functional-options API.
//
// The shell uses it to give the user a bounded number of attempts at each
// prompt: an operation is re-run only while the predicate set with
// WithRetryIf accepts the returned error.
//
//	r := retry.New(
//	    retry.WithAttempts(3),
//	    retry.WithDelay(0),
//	    retry.WithRetryIf(isInputError),
//	)
//	err := r.Execute(ctx, promptAndSubmit)
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry executes an operation with retry logic.
type Retry interface {
	// Execute runs operation until it succeeds, the attempts are exhausted, the
	// retry predicate rejects the error, or ctx is done.
	//
	// It returns nil on success and the last error otherwise.
	Execute(ctx context.Context, operation func() error) error
}

// config holds internal settings for the retry mechanism.
type config struct {
	attempts uint             // maximum number of attempts, the first one included
	delay    time.Duration    // base delay between attempts
	maxDelay time.Duration    // cap of the exponential backoff
	retryIf  func(error) bool // decides whether an error is worth another attempt
}

// Option configures the retry mechanism.
type Option func(*config)

// retrier implements Retry using retry-go.
type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New returns a Retry configured with opts.
//
// Defaults: 3 attempts, 1s base delay with exponential backoff capped at 5s,
// every error retried.
func New(opts ...Option) Retry {
	cfg := config{
		attempts: 3,
		delay:    1 * time.Second,
		maxDelay: 5 * time.Second,
		retryIf:  func(error) bool { return true },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	options := []retry.Option{
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(r.cfg.retryIf),
		retry.Context(ctx),
	}

	return retry.Do(operation, options...)
}

// WithAttempts sets the maximum number of attempts, the first one included.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay between attempts. Zero retries immediately.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the exponential growth of the delay.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithRetryIf restricts retries to errors accepted by fn. Other errors are
// returned immediately.
func WithRetryIf(fn func(error) bool) Option {
	return func(c *config) {
		c.retryIf = fn
	}
}
