package http

import (
	"shareit/internal/user"
	pkgErrors "shareit/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case user.ErrUserNotFound:
		return pkgErrors.NewHTTPError(404, "user not found")
	case user.ErrDuplicateEmail:
		return pkgErrors.NewHTTPError(409, "email already registered")
	case user.ErrInvalidEmail:
		return pkgErrors.NewHTTPError(400, "invalid email address")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
