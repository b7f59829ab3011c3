package usecase

import (
	"context"
	"time"
)

// DeactivateExpired retires unclaimed listings whose offer deadline has
// passed. Called by the background sweeper, not exposed over HTTP.
func (uc *implUseCase) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	n, err := uc.repo.DeactivateExpired(ctx, now)
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeactivateExpired: %v", err)
		return 0, err
	}
	if n > 0 {
		uc.views.Invalidate()
	}
	return n, nil
}
