package http

import (
	"errors"

	"samaritans-api/internal/item"
	pkgErrors "samaritans-api/pkg/errors"
	"samaritans-api/pkg/geo"
	"samaritans-api/pkg/paging"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, item.ErrItemNotFound):
		return pkgErrors.NewHTTPError(404, "item not found")
	case errors.Is(err, item.ErrInvalidStateTransition):
		return pkgErrors.NewHTTPError(409, "item is not in the required state for this transition")
	case errors.Is(err, item.ErrNotReservingOrg):
		return pkgErrors.NewHTTPError(403, "item is reserved by another organization")

	case errors.Is(err, item.ErrSamaritanOnly),
		errors.Is(err, item.ErrOrganizationOnly):
		return pkgErrors.NewHTTPError(403, err.Error())

	case errors.Is(err, item.ErrInvalidCategory),
		errors.Is(err, item.ErrMissingDescription),
		errors.Is(err, item.ErrInvalidQuantity),
		errors.Is(err, item.ErrUnknownUnit),
		errors.Is(err, item.ErrInvalidBestBefore),
		errors.Is(err, item.ErrBestBeforeInPast),
		errors.Is(err, item.ErrInvalidRadius),
		errors.Is(err, item.ErrNoLocation),
		errors.Is(err, geo.ErrLatitudeOutOfRange),
		errors.Is(err, geo.ErrLongitudeOutOfRange),
		errors.Is(err, paging.ErrInvalidPage),
		errors.Is(err, paging.ErrInvalidPerPage):
		return pkgErrors.NewHTTPError(400, err.Error())

	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
