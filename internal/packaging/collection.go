package packaging

import (
	"strings"

	"github.com/MKhiriev/go-waste-tracker/models"
)

// Collection is a snapshot of one user's packaging logs in any order.
// Functions of this package never modify a Collection.
type Collection []models.PackagingLog

// sameItem reports whether two food item names refer to the same item.
func sameItem(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// newer reports whether log a sorts after log b: later date first, then the
// later full created_at string, then the higher id.
func newer(a, b models.PackagingLog) bool {
	if da, db := a.Date(), b.Date(); da != db {
		return da > db
	}
	if a.CreatedAt != b.CreatedAt {
		return a.CreatedAt > b.CreatedAt
	}
	return a.ID > b.ID
}
