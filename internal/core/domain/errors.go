package domain

import "errors"

var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTaskNotFound    = errors.New("task not found")
	ErrProductNotFound = errors.New("product not found")

	// ErrNotAuthorized covers both "authenticated but wrong role" and
	// "authenticated but not resource owner". The HTTP layer reports it as
	// 401, matching the existing client contract.
	ErrNotAuthorized = errors.New("not authorized")
)
