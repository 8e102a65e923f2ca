package quiz

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/heartmarshall/wordtrainer/internal/domain"
)

const (
	defaultStoreTimeout   = 5 * time.Second
	defaultRetryBaseDelay = 100 * time.Millisecond
)

// read runs an idempotent store call with a per-attempt timeout and retries
// transient failures with exponential backoff.
func (e *Engine) read(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	base := e.cfg.RetryBaseDelay
	if base <= 0 {
		base = defaultRetryBaseDelay
	}
	retries := uint64(max(e.cfg.ReadAttempts-1, 0))
	backoff := retry.WithMaxRetries(retries, retry.NewExponential(base))

	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := e.call(ctx, fn)
		if err == nil || !isTransient(err) {
			return err
		}
		if uint64(attempt) <= retries {
			e.log.WarnContext(ctx, "store read failed, retrying",
				slog.String("op", op),
				slog.Int("attempt", attempt),
				slog.String("error", err.Error()),
			)
		}
		return retry.RetryableError(err)
	})
	return storeError(op, err)
}

// write runs a store call once with the configured timeout.
func (e *Engine) write(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	return storeError(op, e.call(ctx, fn))
}

func (e *Engine) call(ctx context.Context, fn func(ctx context.Context) error) error {
	timeout := e.cfg.StoreTimeout
	if timeout <= 0 {
		timeout = defaultStoreTimeout
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return fn(callCtx)
}

// isTransient reports whether a store error is worth retrying.
func isTransient(err error) bool {
	return !errors.Is(err, domain.ErrNotFound) &&
		!errors.Is(err, domain.ErrValidation) &&
		!errors.Is(err, domain.ErrAlreadyExists) &&
		!errors.Is(err, context.Canceled)
}

// storeError wraps a store failure. Anything that is not a domain answer
// (not found, validation) is reported as domain.ErrStoreUnavailable.
func storeError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case !isTransient(err), errors.Is(err, domain.ErrStoreUnavailable):
		return fmt.Errorf("%s: %w", op, err)
	default:
		return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
	}
}
