package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLogNotFound is returned when a query or update targets a packaging
	// log (identified by id and user_id) that does not exist.
	ErrLogNotFound = errors.New("packaging log was not found")

	// ErrLogNotSaved is returned when an INSERT completes without error but
	// affects no rows.
	ErrLogNotSaved = errors.New("packaging log was not saved")

	// ErrLogAlreadyExists is returned when the generated id collides with an
	// existing row.
	ErrLogAlreadyExists = errors.New("packaging log already exists")

	// ErrFoodItemNotFound is returned when a food item does not exist or
	// belongs to another user.
	ErrFoodItemNotFound = errors.New("food item was not found")

	// ErrFoodItemNotSaved and ErrFoodItemAlreadyExists mirror the packaging
	// log insert errors for food items.
	ErrFoodItemNotSaved      = errors.New("food item was not saved")
	ErrFoodItemAlreadyExists = errors.New("food item already exists")

	// ErrMealNotFound is returned when a serving does not exist or belongs to
	// another user.
	ErrMealNotFound = errors.New("meal was not found")

	// ErrPortionNotFound is returned when a served portion does not exist or
	// belongs to another user.
	ErrPortionNotFound = errors.New("served portion was not found")

	// ErrUnsupportedDriver is returned by [NewConnectDB] for an unknown
	// database driver name.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	ErrBuildingSQLQuery   = errors.New("error building sql query")
	ErrExecutingQuery     = errors.New("error executing sql query")
	ErrExecutingStatement = errors.New("failed to executing statement")
	ErrScanningRow        = errors.New("failed to scan row")
	ErrScanningRows       = errors.New("failed to scan rows")
	ErrTransaction        = errors.New("transaction failed")
)
