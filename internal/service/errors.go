package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrNoUserID            = errors.New("no user ID was given")

	ErrVersionIsNotSpecified   = errors.New("app version is not specified")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
