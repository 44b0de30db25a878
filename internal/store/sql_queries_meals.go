package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-waste-tracker/models"
)

const (
	foodServingsTable   = "food_servings"
	servedPortionsTable = "served_portions"
	wasteEntriesTable   = "food_waste_entries"
)

var servingColumns = []string{
	"id",
	"user_id",
	"meal_name",
	"served_at",
	"notes",
	"created_at",
}

var portionColumns = []string{
	"id",
	"serving_id",
	"user_id",
	"custom_food_item_name",
	"quantity_served",
	"unit_served",
	"description",
	"created_at",
}

var wasteColumns = []string{
	"id",
	"served_portion_id",
	"user_id",
	"quantity_wasted_as_fraction_of_served",
	"user_waste_description",
	"waste_reason",
	"disposal_action_taken",
	"created_at",
}

// portionWithWasteColumns selects a portion and its optional waste entry.
var portionWithWasteColumns = []string{
	"p.id",
	"p.serving_id",
	"p.user_id",
	"p.custom_food_item_name",
	"p.quantity_served",
	"p.unit_served",
	"p.description",
	"p.created_at",
	"w.id",
	"w.quantity_wasted_as_fraction_of_served",
	"w.user_waste_description",
	"w.waste_reason",
	"w.disposal_action_taken",
	"w.created_at",
}

func buildListServingsQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Select(servingColumns...).
		From(foodServingsTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("served_at DESC", "created_at DESC", "id DESC").
		ToSql()
}

func buildGetServingQuery(b sq.StatementBuilderType, userID, servingID string) (string, []any, error) {
	return b.Select(servingColumns...).
		From(foodServingsTable).
		Where(sq.Eq{"id": servingID, "user_id": userID}).
		Limit(1).
		ToSql()
}

// buildFindServingQuery matches served_at by its YYYY-MM-DD prefix.
func buildFindServingQuery(b sq.StatementBuilderType, userID, mealName, date string) (string, []any, error) {
	return b.Select(servingColumns...).
		From(foodServingsTable).
		Where(sq.Eq{"user_id": userID, "meal_name": mealName}).
		Where(sq.Like{"served_at": date + "%"}).
		OrderBy("created_at ASC", "id ASC").
		Limit(1).
		ToSql()
}

func buildInsertServingQuery(b sq.StatementBuilderType, s models.FoodServing) (string, []any, error) {
	return b.Insert(foodServingsTable).
		Columns(servingColumns...).
		Values(s.ID, s.UserID, s.MealName, s.ServedAt, nullString(s.Notes), s.CreatedAt).
		ToSql()
}

func buildUpdateServingNotesQuery(b sq.StatementBuilderType, s models.FoodServing) (string, []any, error) {
	return b.Update(foodServingsTable).
		Set("notes", nullString(s.Notes)).
		Where(sq.Eq{"id": s.ID, "user_id": s.UserID}).
		ToSql()
}

func buildInsertPortionsQuery(b sq.StatementBuilderType, portions []models.ServedPortion) (string, []any, error) {
	q := b.Insert(servedPortionsTable).Columns(portionColumns...)
	for _, p := range portions {
		q = q.Values(p.ID, p.ServingID, p.UserID, p.FoodItemName, p.QuantityServed, p.UnitServed, nullString(p.Description), p.CreatedAt)
	}
	return q.ToSql()
}

func buildPortionsWithWasteQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(portionWithWasteColumns...).
		From(servedPortionsTable + " p").
		LeftJoin(wasteEntriesTable + " w ON w.served_portion_id = p.id").
		Where(where).
		OrderBy("p.created_at ASC", "p.id ASC").
		ToSql()
}

func buildGetPortionQuery(b sq.StatementBuilderType, userID, portionID string) (string, []any, error) {
	return b.Select(portionColumns...).
		From(servedPortionsTable).
		Where(sq.Eq{"id": portionID, "user_id": userID}).
		Limit(1).
		ToSql()
}

// buildUpsertWasteQuery keeps the id and created_at of an existing entry for
// the same portion.
func buildUpsertWasteQuery(b sq.StatementBuilderType, w models.WasteEntry) (string, []any, error) {
	return b.Insert(wasteEntriesTable).
		Columns(wasteColumns...).
		Values(w.ID, w.ServedPortionID, w.UserID, w.WastedFraction, nullString(w.Description), w.Reason, w.DisposalAction, w.CreatedAt).
		Suffix("ON CONFLICT (served_portion_id) DO UPDATE SET " +
			"quantity_wasted_as_fraction_of_served = excluded.quantity_wasted_as_fraction_of_served, " +
			"user_waste_description = excluded.user_waste_description, " +
			"waste_reason = excluded.waste_reason, " +
			"disposal_action_taken = excluded.disposal_action_taken").
		ToSql()
}

func buildDeleteMealWasteQuery(b sq.StatementBuilderType, userID, servingID string) (string, []any, error) {
	return b.Delete(wasteEntriesTable).
		Where(sq.Expr("served_portion_id IN (SELECT id FROM "+servedPortionsTable+" WHERE serving_id = ? AND user_id = ?)", servingID, userID)).
		ToSql()
}

func buildDeleteMealPortionsQuery(b sq.StatementBuilderType, userID, servingID string) (string, []any, error) {
	return b.Delete(servedPortionsTable).
		Where(sq.Eq{"serving_id": servingID, "user_id": userID}).
		ToSql()
}

func buildDeleteServingQuery(b sq.StatementBuilderType, userID, servingID string) (string, []any, error) {
	return b.Delete(foodServingsTable).
		Where(sq.Eq{"id": servingID, "user_id": userID}).
		ToSql()
}

func scanServing(row rowScanner) (models.FoodServing, error) {
	var (
		s     models.FoodServing
		notes sql.NullString
	)

	if err := row.Scan(&s.ID, &s.UserID, &s.MealName, &s.ServedAt, &notes, &s.CreatedAt); err != nil {
		return models.FoodServing{}, err
	}

	s.Notes = stringPtr(notes)
	return s, nil
}

func scanPortion(row rowScanner) (models.ServedPortion, error) {
	var (
		p           models.ServedPortion
		description sql.NullString
	)

	err := row.Scan(&p.ID, &p.ServingID, &p.UserID, &p.FoodItemName, &p.QuantityServed, &p.UnitServed, &description, &p.CreatedAt)
	if err != nil {
		return models.ServedPortion{}, err
	}

	p.Description = stringPtr(description)
	return p, nil
}

func scanPortionWithWaste(row rowScanner) (models.PortionWithWaste, error) {
	var (
		p                         models.PortionWithWaste
		description               sql.NullString
		wasteID, wasteDescription sql.NullString
		reason, disposal, wasteAt sql.NullString
		fraction                  sql.NullFloat64
	)

	err := row.Scan(
		&p.ID,
		&p.ServingID,
		&p.UserID,
		&p.FoodItemName,
		&p.QuantityServed,
		&p.UnitServed,
		&description,
		&p.CreatedAt,
		&wasteID,
		&fraction,
		&wasteDescription,
		&reason,
		&disposal,
		&wasteAt,
	)
	if err != nil {
		return models.PortionWithWaste{}, err
	}

	p.Description = stringPtr(description)
	if wasteID.Valid {
		p.Waste = &models.WasteEntry{
			ID:              wasteID.String,
			ServedPortionID: p.ID,
			UserID:          p.UserID,
			WastedFraction:  fraction.Float64,
			Description:     stringPtr(wasteDescription),
			Reason:          reason.String,
			DisposalAction:  disposal.String,
			CreatedAt:       wasteAt.String,
		}
	}
	return p, nil
}
