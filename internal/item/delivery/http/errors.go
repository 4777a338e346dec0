package http

import (
	"shareit/internal/item"
	pkgErrors "shareit/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case item.ErrItemNotFound:
		return pkgErrors.NewHTTPError(404, "item not found")
	case item.ErrOwnerNotFound:
		return pkgErrors.NewHTTPError(404, "owner not found")
	case item.ErrRequestNotFound:
		return pkgErrors.NewHTTPError(404, "item request not found")
	case item.ErrNotOwner:
		return pkgErrors.NewHTTPError(403, "only the owner can edit an item")
	case item.ErrNoCompletedBooking:
		return pkgErrors.NewHTTPError(400, "commenting requires a completed booking of the item")
	case item.ErrBlankName:
		return pkgErrors.NewHTTPError(400, "item name must not be blank")
	case item.ErrBlankDescription:
		return pkgErrors.NewHTTPError(400, "item description must not be blank")
	case item.ErrBlankComment:
		return pkgErrors.NewHTTPError(400, "comment text must not be blank")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
