package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"samaritans-api/internal/auth/repository"
	"samaritans-api/internal/model"
)

const userColumns = `id, username, email, password_hash, user_type,
	name, location_lat, location_lon, address_line1, address_line2,
	city, province, postal_code, rating, created_at`

type userRow struct {
	user model.User

	name                       sql.NullString
	locationLat, locationLon   sql.NullFloat64
	addressLine1, addressLine2 sql.NullString
	city, province, postalCode sql.NullString
	rating                     sql.NullFloat64
}

func scanUser(row *sql.Row) (userRow, error) {
	var u userRow
	err := row.Scan(
		&u.user.ID, &u.user.Username, &u.user.Email, &u.user.PasswordHash, &u.user.UserType,
		&u.name, &u.locationLat, &u.locationLon, &u.addressLine1, &u.addressLine2,
		&u.city, &u.province, &u.postalCode, &u.rating, &u.user.CreatedAt,
	)
	return u, err
}

func (u userRow) organization() model.Organization {
	org := model.Organization{
		User:         u.user,
		Name:         u.name.String,
		AddressLine1: u.addressLine1.String,
		AddressLine2: u.addressLine2.String,
		City:         u.city.String,
		Province:     u.province.String,
		PostalCode:   u.postalCode.String,
	}
	org.Location.Lat = u.locationLat.Float64
	org.Location.Lon = u.locationLon.Float64
	return org
}

func (u userRow) samaritan() model.Samaritan {
	return model.Samaritan{
		User:     u.user,
		City:     u.city.String,
		Province: u.province.String,
		Rating:   u.rating.Float64,
	}
}

// CreateOrganization inserts a new organization account.
func (r *implRepository) CreateOrganization(ctx context.Context, opt repository.CreateOrganizationOptions) (model.Organization, error) {
	id := uuid.NewString()

	const query = `
		INSERT INTO users (
			id, username, email, password_hash, user_type,
			name, location_lat, location_lon, address_line1, address_line2,
			city, province, postal_code, created_at
		) VALUES (?, ?, ?, ?, 'organization', ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		id, opt.Username, opt.Email, opt.PasswordHash,
		opt.Name, opt.Location.Lat, opt.Location.Lon,
		nullable(opt.AddressLine1), nullable(opt.AddressLine2),
		opt.City, opt.Province, opt.PostalCode, time.Now().UTC(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Organization{}, repository.ErrDuplicate
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateOrganization"), err)
		return model.Organization{}, repository.ErrFailedToInsert
	}

	return r.GetOrganization(ctx, repository.GetOneUserOptions{ID: id})
}

// CreateSamaritan inserts a new samaritan account.
func (r *implRepository) CreateSamaritan(ctx context.Context, opt repository.CreateSamaritanOptions) (model.Samaritan, error) {
	id := uuid.NewString()

	const query = `
		INSERT INTO users (
			id, username, email, password_hash, user_type, city, province, created_at
		) VALUES (?, ?, ?, ?, 'samaritan', ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		id, opt.Username, opt.Email, opt.PasswordHash,
		opt.City, opt.Province, time.Now().UTC(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Samaritan{}, repository.ErrDuplicate
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateSamaritan"), err)
		return model.Samaritan{}, repository.ErrFailedToInsert
	}

	return r.GetSamaritan(ctx, repository.GetOneUserOptions{ID: id})
}

// GetOneUser retrieves a user by ID, username, or email.
// Returns zero-value User (ID == "") when not found.
func (r *implRepository) GetOneUser(ctx context.Context, opt repository.GetOneUserOptions) (model.User, error) {
	row, err := r.queryOne(ctx, opt)
	if err == sql.ErrNoRows {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return model.User{}, repository.ErrFailedToGet
	}
	return row.user, nil
}

// GetOrganization retrieves the full organization record.
// Returns zero-value Organization (ID == "") when not found.
func (r *implRepository) GetOrganization(ctx context.Context, opt repository.GetOneUserOptions) (model.Organization, error) {
	row, err := r.queryOne(ctx, opt)
	if err == sql.ErrNoRows || (err == nil && row.user.UserType != model.UserTypeOrganization) {
		return model.Organization{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOrganization"), err)
		return model.Organization{}, repository.ErrFailedToGet
	}
	return row.organization(), nil
}

// GetSamaritan retrieves the full samaritan record.
// Returns zero-value Samaritan (ID == "") when not found.
func (r *implRepository) GetSamaritan(ctx context.Context, opt repository.GetOneUserOptions) (model.Samaritan, error) {
	row, err := r.queryOne(ctx, opt)
	if err == sql.ErrNoRows || (err == nil && row.user.UserType != model.UserTypeSamaritan) {
		return model.Samaritan{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetSamaritan"), err)
		return model.Samaritan{}, repository.ErrFailedToGet
	}
	return row.samaritan(), nil
}

func (r *implRepository) queryOne(ctx context.Context, opt repository.GetOneUserOptions) (userRow, error) {
	var (
		column string
		value  string
	)
	switch {
	case opt.ID != "":
		column, value = "id", opt.ID
	case opt.Username != "":
		column, value = "username", opt.Username
	case opt.Email != "":
		column, value = "email", opt.Email
	default:
		return userRow{}, sql.ErrNoRows
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE ` + column + ` = ? LIMIT 1`
	return scanUser(r.db.QueryRowContext(ctx, query, value))
}

// isUniqueViolation reports whether err is a SQLite unique-constraint failure.
// modernc.org/sqlite wraps SQLITE_CONSTRAINT_UNIQUE in its error string.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
