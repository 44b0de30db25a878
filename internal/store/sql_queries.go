package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-waste-tracker/models"
)

const packagingLogsTable = "packaging_logs"

var packagingLogColumns = []string{
	"id",
	"user_id",
	"created_at",
	"food_item_name",
	"packaging_type",
	"is_low_waste",
	"quantity",
	"notes",
	"image_url",
	"made_switch",
	"previous_packaging_type",
}

func buildInsertLogQuery(b sq.StatementBuilderType, log models.PackagingLog) (string, []any, error) {
	return b.Insert(packagingLogsTable).
		Columns(packagingLogColumns...).
		Values(
			log.ID,
			log.UserID,
			log.CreatedAt,
			log.FoodItemName,
			log.PackagingType,
			log.IsLowWaste,
			log.Quantity,
			nullString(log.Notes),
			nullString(log.ImageURL),
			log.MadeSwitch,
			nullString(log.PreviousPackagingType),
		).
		ToSql()
}

// buildUpdateLogQuery leaves image_url alone; it is owned by the image
// resolver.
func buildUpdateLogQuery(b sq.StatementBuilderType, log models.PackagingLog) (string, []any, error) {
	return b.Update(packagingLogsTable).
		SetMap(map[string]any{
			"created_at":              log.CreatedAt,
			"food_item_name":          log.FoodItemName,
			"packaging_type":          log.PackagingType,
			"is_low_waste":            log.IsLowWaste,
			"quantity":                log.Quantity,
			"notes":                   nullString(log.Notes),
			"made_switch":             log.MadeSwitch,
			"previous_packaging_type": nullString(log.PreviousPackagingType),
		}).
		Where(sq.Eq{"id": log.ID, "user_id": log.UserID}).
		ToSql()
}

func buildDeleteLogQuery(b sq.StatementBuilderType, userID, logID string) (string, []any, error) {
	return b.Delete(packagingLogsTable).
		Where(sq.Eq{"id": logID, "user_id": userID}).
		ToSql()
}

func buildListByUserQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Select(packagingLogColumns...).
		From(packagingLogsTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func buildGetByIDQuery(b sq.StatementBuilderType, userID, logID string) (string, []any, error) {
	return b.Select(packagingLogColumns...).
		From(packagingLogsTable).
		Where(sq.Eq{"id": logID, "user_id": userID}).
		Limit(1).
		ToSql()
}

func buildSetImageURLQuery(b sq.StatementBuilderType, userID, logID, imageURL string) (string, []any, error) {
	return b.Update(packagingLogsTable).
		Set("image_url", imageURL).
		Where(sq.Eq{"id": logID, "user_id": userID}).
		ToSql()
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPackagingLog(row rowScanner) (models.PackagingLog, error) {
	var (
		log                          models.PackagingLog
		notes, imageURL, previousTyp sql.NullString
	)

	err := row.Scan(
		&log.ID,
		&log.UserID,
		&log.CreatedAt,
		&log.FoodItemName,
		&log.PackagingType,
		&log.IsLowWaste,
		&log.Quantity,
		&notes,
		&imageURL,
		&log.MadeSwitch,
		&previousTyp,
	)
	if err != nil {
		return models.PackagingLog{}, err
	}

	log.Notes = stringPtr(notes)
	log.ImageURL = stringPtr(imageURL)
	log.PreviousPackagingType = stringPtr(previousTyp)

	return log, nil
}
