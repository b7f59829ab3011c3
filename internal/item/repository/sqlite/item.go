package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"samaritans-api/internal/item/repository"
	"samaritans-api/internal/model"
)

const itemColumns = `id, category, description, weight_kg, volume_m3, best_before,
	pickup_lat, pickup_lon, pickup_window_start, pickup_window_end, image_url,
	posted_by, available_till, is_active,
	is_reserved, reserved_by, reserved_till,
	is_picked_up, picked_up_by, pickup_time,
	created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (model.Item, error) {
	var (
		it                   model.Item
		weightKg, volumeM3   sql.NullFloat64
		bestBefore           sql.NullString
		winStart, winEnd     sql.NullString
		imageURL             sql.NullString
		reservedBy, pickedBy sql.NullString
		reservedTill         sql.NullTime
		pickupTime           sql.NullTime
	)

	err := row.Scan(
		&it.ID, &it.Category, &it.Description, &weightKg, &volumeM3, &bestBefore,
		&it.PickupLocation.Lat, &it.PickupLocation.Lon, &winStart, &winEnd, &imageURL,
		&it.PostedBy, &it.AvailableTill, &it.IsActive,
		&it.IsReserved, &reservedBy, &reservedTill,
		&it.IsPickedUp, &pickedBy, &pickupTime,
		&it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return model.Item{}, err
	}

	if weightKg.Valid {
		it.WeightKg = &weightKg.Float64
	}
	if volumeM3.Valid {
		it.VolumeM3 = &volumeM3.Float64
	}
	if bestBefore.Valid && bestBefore.String != "" {
		if d, err := time.Parse(time.DateOnly, bestBefore.String); err == nil {
			it.BestBefore = &d
		}
	}
	it.PickupWindowStart = winStart.String
	it.PickupWindowEnd = winEnd.String
	it.ImageURL = imageURL.String
	it.ReservedBy = reservedBy.String
	if reservedTill.Valid {
		it.ReservedTill = &reservedTill.Time
	}
	it.PickedUpBy = pickedBy.String
	if pickupTime.Valid {
		it.PickupTime = &pickupTime.Time
	}
	return it, nil
}

// CreateItem inserts a new Item row in the Offered state and returns it.
func (r *implRepository) CreateItem(ctx context.Context, opt repository.CreateItemOptions) (model.Item, error) {
	id := uuid.NewString()
	now := time.Now().UTC()

	var bestBefore any
	if opt.BestBefore != nil {
		bestBefore = opt.BestBefore.Format(time.DateOnly)
	}

	const query = `
		INSERT INTO items (
			id, category, description, weight_kg, volume_m3, best_before,
			pickup_lat, pickup_lon, pickup_window_start, pickup_window_end, image_url,
			posted_by, available_till, is_active, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 1, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		id, opt.Category, opt.Description, opt.WeightKg, opt.VolumeM3, bestBefore,
		opt.PickupLocation.Lat, opt.PickupLocation.Lon,
		nullable(opt.PickupWindowStart), nullable(opt.PickupWindowEnd), nullable(opt.ImageURL),
		opt.PostedBy, opt.AvailableTill.UTC(), now, now,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return model.Item{}, repository.ErrFailedToInsert
	}

	return r.GetOneItem(ctx, repository.GetOneItemOptions{ID: id})
}

// GetOneItem retrieves a single Item by ID.
// Returns zero-value Item (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneItem(ctx context.Context, opt repository.GetOneItemOptions) (model.Item, error) {
	query := fmt.Sprintf(`SELECT %s FROM items WHERE id = ? LIMIT 1`, itemColumns)

	it, err := scanItem(r.db.QueryRowContext(ctx, query, opt.ID))
	if err == sql.ErrNoRows {
		return model.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return model.Item{}, repository.ErrFailedToGet
	}
	return it, nil
}

// ListOffered returns all active, unexpired, unclaimed items matching the
// category filter, newest first. Proximity and pagination are applied by the
// use case, which owns the geometry.
func (r *implRepository) ListOffered(ctx context.Context, opt repository.ListOfferedOptions) ([]model.Item, error) {
	conditions := []string{
		"is_active = 1",
		"is_reserved = 0",
		"is_picked_up = 0",
		"available_till > ?",
	}
	args := []any{opt.Now.UTC()}

	if opt.Category != model.CategoryAll {
		conditions = append(conditions, "category = ?")
		args = append(args, opt.Category)
	}

	query := fmt.Sprintf(`SELECT %s FROM items WHERE %s ORDER BY created_at DESC`,
		itemColumns, strings.Join(conditions, " AND "))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListOffered"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListOffered"), err)
			return nil, repository.ErrFailedToList
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// ListHistory returns a page of items matching the ownership filters plus the
// total match count.
func (r *implRepository) ListHistory(ctx context.Context, opt repository.ListHistoryOptions) ([]model.Item, int, error) {
	where, args := r.buildHistoryWhere(opt)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM items WHERE %s", where)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListHistory"), err)
		return nil, 0, repository.ErrFailedToList
	}

	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = "updated_at DESC"
	}

	query := fmt.Sprintf(`SELECT %s FROM items WHERE %s ORDER BY %s LIMIT ? OFFSET ?`,
		itemColumns, where, orderBy)
	pageArgs := append(append([]any{}, args...), opt.Limit, opt.Offset)

	rows, err := r.db.QueryContext(ctx, query, pageArgs...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListHistory"), err)
		return nil, 0, repository.ErrFailedToList
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListHistory"), err)
			return nil, 0, repository.ErrFailedToList
		}
		items = append(items, it)
	}
	return items, total, rows.Err()
}

// buildHistoryWhere builds the WHERE clause + args for ListHistory.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildHistoryWhere(opt repository.ListHistoryOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.PostedBy != "" {
		conditions = append(conditions, "posted_by = ?")
		args = append(args, opt.PostedBy)
	}
	if opt.ReservedBy != "" {
		conditions = append(conditions, "reserved_by = ?")
		args = append(args, opt.ReservedBy)
	}
	if opt.PickedUpBy != "" {
		conditions = append(conditions, "picked_up_by = ?")
		args = append(args, opt.PickedUpBy)
	}
	if opt.PickedUp != nil {
		conditions = append(conditions, "is_picked_up = ?")
		args = append(args, boolToInt(*opt.PickedUp))
	}
	if opt.Category != model.CategoryAll {
		conditions = append(conditions, "category = ?")
		args = append(args, opt.Category)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// DeactivateExpired clears the active flag on unclaimed items whose offer
// deadline has passed.
func (r *implRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	const query = `
		UPDATE items
		SET is_active = 0, updated_at = ?
		WHERE is_active = 1 AND is_reserved = 0 AND is_picked_up = 0 AND available_till <= ?`

	res, err := r.db.ExecContext(ctx, query, now.UTC(), now.UTC())
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeactivateExpired"), err)
		return 0, repository.ErrFailedToUpdate
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, repository.ErrFailedToUpdate
	}
	return n, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
