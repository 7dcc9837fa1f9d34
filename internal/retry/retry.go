package retry

import (
	"context"
	"fmt"
	"time"

	"golf_stats/internal/config"

	"github.com/rs/zerolog/log"
)

// Do runs fn until it succeeds, the attempts in cfg are exhausted, or ctx is done.
// Waits grow by cfg.Multiplier between attempts, capped at cfg.MaxWait.
func Do(ctx context.Context, cfg config.RetryConfig, operation string, fn func(ctx context.Context) error) error {
	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	wait := cfg.InitialWait

	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = runAttempt(ctx, cfg.Timeout, fn)
		if lastErr == nil {
			return nil
		}

		if ctx.Err() != nil {
			return fmt.Errorf("%s cancelled after %d attempts: %w", operation, attempt, lastErr)
		}

		if attempt == attempts {
			break
		}

		log.Debug().
			Err(lastErr).
			Str("operation", operation).
			Int("attempt", attempt).
			Dur("wait", wait).
			Msg("Retrying after failure")

		select {
		case <-ctx.Done():
			return fmt.Errorf("%s cancelled after %d attempts: %w", operation, attempt, lastErr)
		case <-time.After(wait):
		}

		wait = nextWait(wait, cfg)
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operation, attempts, lastErr)
}

func runAttempt(ctx context.Context, timeout time.Duration, fn func(ctx context.Context) error) error {
	if timeout <= 0 {
		return fn(ctx)
	}
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return fn(attemptCtx)
}

func nextWait(current time.Duration, cfg config.RetryConfig) time.Duration {
	multiplier := cfg.Multiplier
	if multiplier < 1 {
		multiplier = 1
	}
	next := time.Duration(float64(current) * multiplier)
	if cfg.MaxWait > 0 && next > cfg.MaxWait {
		next = cfg.MaxWait
	}
	return next
}
