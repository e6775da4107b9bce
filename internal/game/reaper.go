package game

import (
	"context"
	"time"

	"go.uber.org/zap"

	"bj-oracle/internal/logger"
)

// Reaper drops terminal sessions once their attestation has been out for
// longer than the retention window. Nothing can mutate a finished round,
// so keeping it in memory only serves replay queries for a while.
type Reaper struct {
	store     *Store
	retention time.Duration
	interval  time.Duration
}

func NewReaper(store *Store, retention time.Duration) *Reaper {
	return &Reaper{
		store:     store,
		retention: retention,
		interval:  10 * time.Minute,
	}
}

func (r *Reaper) Start(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.store.Reap(time.Now().Add(-r.retention)); n > 0 {
				logger.Log.Info("reaped finished sessions", zap.Int("count", n))
			}
		}
	}
}
