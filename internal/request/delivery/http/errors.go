package http

import (
	"shareit/internal/request"
	pkgErrors "shareit/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case request.ErrRequestNotFound:
		return pkgErrors.NewHTTPError(404, "item request not found")
	case request.ErrBlankDescription:
		return pkgErrors.NewHTTPError(400, "request description must not be blank")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
