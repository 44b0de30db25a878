package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrRateLimited         = errors.New("rate limited by provider")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("provider internal error")

	ErrNotConfigured   = errors.New("adapter is not configured")
	ErrInvalidResponse = errors.New("invalid provider response")
)
