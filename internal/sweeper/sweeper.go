package sweeper

import (
	"context"
	"time"

	"samaritans-api/pkg/log"
)

// Store retires expired listings. Satisfied by the item use case.
type Store interface {
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}

// Sweeper periodically deactivates listings whose offer deadline has passed.
type Sweeper struct {
	store    Store
	interval time.Duration
	l        log.Logger
}

// New creates a Sweeper. A non-positive interval falls back to ten minutes.
func New(store Store, interval time.Duration, l log.Logger) *Sweeper {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &Sweeper{store: store, interval: interval, l: l}
}

// Run sweeps once immediately, then on every tick until ctx is cancelled.
// Sweep failures are logged and retried on the next tick, never fatal.
func (s *Sweeper) Run(ctx context.Context) {
	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	n, err := s.store.DeactivateExpired(ctx, time.Now())
	if err != nil {
		s.l.Errorf(ctx, "sweeper: %v", err)
		return
	}
	if n > 0 {
		s.l.Infof(ctx, "sweeper: deactivated %d expired listings", n)
	}
}
