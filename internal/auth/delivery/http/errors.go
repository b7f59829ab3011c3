package http

import (
	"errors"

	"samaritans-api/internal/auth"
	pkgErrors "samaritans-api/pkg/errors"
	"samaritans-api/pkg/geo"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, auth.ErrUsernameOrEmailTaken):
		return pkgErrors.NewHTTPError(409, "username or email already taken")
	case errors.Is(err, auth.ErrInvalidCredentials):
		return pkgErrors.NewHTTPError(401, "invalid username or password")

	case errors.Is(err, auth.ErrMissingUsername),
		errors.Is(err, auth.ErrInvalidEmail),
		errors.Is(err, auth.ErrPasswordTooShort),
		errors.Is(err, auth.ErrMissingName),
		errors.Is(err, auth.ErrInvalidProvince),
		errors.Is(err, auth.ErrInvalidPostalCode),
		errors.Is(err, geo.ErrLatitudeOutOfRange),
		errors.Is(err, geo.ErrLongitudeOutOfRange):
		return pkgErrors.NewHTTPError(400, err.Error())

	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
