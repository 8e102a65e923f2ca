package quiz

import (
	"context"
	"log/slog"
	"time"
)

// RunReaper evicts sessions idle longer than the configured timeout until
// ctx is done. It returns immediately when eviction is disabled.
func (e *Engine) RunReaper(ctx context.Context) error {
	if e.cfg.DisableReaper || e.cfg.IdleTimeout <= 0 || e.cfg.ReaperInterval <= 0 {
		return nil
	}

	ticker := time.NewTicker(e.cfg.ReaperInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := e.evictIdle(); n > 0 {
				e.log.InfoContext(ctx, "idle sessions evicted",
					slog.Int("evicted", n),
					slog.Int("active", e.ActiveSessions()),
				)
			}
		}
	}
}

// evictIdle drops sessions whose last activity is older than the idle timeout.
func (e *Engine) evictIdle() int {
	cutoff := e.clock().Add(-e.cfg.IdleTimeout)

	e.mu.Lock()
	defer e.mu.Unlock()

	evicted := 0
	for userID, s := range e.sessions {
		if s.idleSince().Before(cutoff) {
			delete(e.sessions, userID)
			evicted++
		}
	}
	return evicted
}
