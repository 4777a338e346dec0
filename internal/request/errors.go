package request

import "errors"

var (
	ErrRequestNotFound  = errors.New("item request not found")
	ErrBlankDescription = errors.New("request description must not be blank")
)
