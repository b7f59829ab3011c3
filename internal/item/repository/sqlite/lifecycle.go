package sqlite

import (
	"context"
	"time"

	"samaritans-api/internal/item/repository"
	"samaritans-api/internal/model"
)

// Reserve applies the Offered → Reserved transition as a single conditional
// UPDATE. Two organizations racing for the same item resolve to exactly one
// winner; the loser gets ErrNoTransition.
func (r *implRepository) Reserve(ctx context.Context, opt repository.ReserveOptions) (model.Item, error) {
	const query = `
		UPDATE items
		SET is_reserved = 1, reserved_by = ?, reserved_till = ?, updated_at = ?
		WHERE id = ? AND is_active = 1 AND is_reserved = 0 AND is_picked_up = 0`

	return r.transition(ctx, "Reserve", opt.ItemID, query,
		opt.ReservedBy, opt.ReservedTill.UTC(), time.Now().UTC(), opt.ItemID)
}

// Unreserve applies the Reserved → Offered transition, clearing all
// reservation metadata. The reserved_by guard restricts it to the holder.
func (r *implRepository) Unreserve(ctx context.Context, opt repository.UnreserveOptions) (model.Item, error) {
	const query = `
		UPDATE items
		SET is_reserved = 0, reserved_by = NULL, reserved_till = NULL, updated_at = ?
		WHERE id = ? AND is_reserved = 1 AND is_picked_up = 0 AND reserved_by = ?`

	return r.transition(ctx, "Unreserve", opt.ItemID, query,
		time.Now().UTC(), opt.ItemID, opt.ReservedBy)
}

// Pickup applies the Reserved → PickedUp transition. The reservation row
// keeps reserved_by so the claim chain stays auditable.
func (r *implRepository) Pickup(ctx context.Context, opt repository.PickupOptions) (model.Item, error) {
	const query = `
		UPDATE items
		SET is_picked_up = 1, picked_up_by = ?, pickup_time = ?, updated_at = ?
		WHERE id = ? AND is_reserved = 1 AND is_picked_up = 0 AND reserved_by = ?`

	return r.transition(ctx, "Pickup", opt.ItemID, query,
		opt.PickedUpBy, opt.PickupTime.UTC(), time.Now().UTC(), opt.ItemID, opt.PickedUpBy)
}

// transition runs a guarded UPDATE and re-reads the row on success so the
// caller always sees authoritative state, never an optimistic construction.
func (r *implRepository) transition(ctx context.Context, method, itemID, query string, args ...any) (model.Item, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
		return model.Item{}, repository.ErrFailedToUpdate
	}

	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn(method), err)
		return model.Item{}, repository.ErrFailedToUpdate
	}
	if n == 0 {
		return model.Item{}, repository.ErrNoTransition
	}

	return r.GetOneItem(ctx, repository.GetOneItemOptions{ID: itemID})
}
