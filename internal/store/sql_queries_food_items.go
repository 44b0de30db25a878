package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-waste-tracker/models"
)

const foodItemsTable = "food_items"

var foodItemColumns = []string{
	"id",
	"user_id",
	"name",
	"expiry_date",
	"amount",
	"image_url",
	"created_at",
	"updated_at",
}

func buildInsertFoodItemQuery(b sq.StatementBuilderType, item models.FoodItem) (string, []any, error) {
	return b.Insert(foodItemsTable).
		Columns(foodItemColumns...).
		Values(
			item.ID,
			item.UserID,
			item.Name,
			item.ExpiryDate,
			nullString(item.Amount),
			nullString(item.ImageURL),
			item.CreatedAt,
			item.UpdatedAt,
		).
		ToSql()
}

func buildListFoodItemsQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Select(foodItemColumns...).
		From(foodItemsTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("expiry_date ASC", "name ASC", "id ASC").
		ToSql()
}

func buildGetFoodItemQuery(b sq.StatementBuilderType, userID, itemID string) (string, []any, error) {
	return b.Select(foodItemColumns...).
		From(foodItemsTable).
		Where(sq.Eq{"id": itemID, "user_id": userID}).
		Limit(1).
		ToSql()
}

func buildDeleteFoodItemQuery(b sq.StatementBuilderType, userID, itemID string) (string, []any, error) {
	return b.Delete(foodItemsTable).
		Where(sq.Eq{"id": itemID, "user_id": userID}).
		ToSql()
}

func buildSetFoodItemImageQuery(b sq.StatementBuilderType, userID, itemID, imageURL, updatedAt string) (string, []any, error) {
	return b.Update(foodItemsTable).
		Set("image_url", imageURL).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": itemID, "user_id": userID}).
		ToSql()
}

func scanFoodItem(row rowScanner) (models.FoodItem, error) {
	var (
		item             models.FoodItem
		amount, imageURL sql.NullString
	)

	err := row.Scan(
		&item.ID,
		&item.UserID,
		&item.Name,
		&item.ExpiryDate,
		&amount,
		&imageURL,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return models.FoodItem{}, err
	}

	item.Amount = stringPtr(amount)
	item.ImageURL = stringPtr(imageURL)
	return item, nil
}
