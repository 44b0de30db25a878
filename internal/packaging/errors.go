package packaging

import "errors"

var (
	ErrEmptyPackagingTypeID     = errors.New("packaging type id is empty")
	ErrDuplicatePackagingTypeID = errors.New("duplicate packaging type id")
	ErrInvalidTimeRange         = errors.New("invalid time range")
	ErrInvalidDate              = errors.New("invalid date, expected YYYY-MM-DD")
)
