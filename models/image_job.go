package models

// ImageTarget names the table an image job writes its URL to.
type ImageTarget string

const (
	ImageTargetPackagingLog ImageTarget = "packaging_log"
	ImageTargetFoodItem     ImageTarget = "food_item"
)

// ImageJob asks the background resolver to find a photo for a freshly
// stored record. RecordID is the id of that record; a zero Target means a
// packaging log.
type ImageJob struct {
	Target       ImageTarget
	RecordID     string
	UserID       string
	FoodItemName string
}
