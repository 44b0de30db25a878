package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"github.com/MKhiriev/go-waste-tracker/models"
)

// mealRepository is the SQL implementation of [MealRepository]. A meal is
// a row of "food_servings" with its "served_portions", each of which has at
// most one "food_waste_entries" row.
type mealRepository struct {
	*DB
	logger *logger.Logger
}

func NewMealRepository(db *DB, logger *logger.Logger) MealRepository {
	return &mealRepository{
		DB:     db,
		logger: logger,
	}
}

// ListMeals returns the user's meals, most recently served first. Portions
// keep the order they were added in.
func (m *mealRepository) ListMeals(ctx context.Context, userID string) ([]models.Meal, error) {
	query, args, err := buildListServingsQuery(m.builder, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	servings, err := queryAll(ctx, m.DB, "mealRepository.ListMeals", query, args, scanServing)
	if err != nil {
		return nil, err
	}

	query, args, err = buildPortionsWithWasteQuery(m.builder, sq.Eq{"p.user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	portions, err := queryAll(ctx, m.DB, "mealRepository.ListMeals", query, args, scanPortionWithWaste)
	if err != nil {
		return nil, err
	}

	meals := make([]models.Meal, len(servings))
	index := make(map[string]int, len(servings))
	for i, s := range servings {
		meals[i] = models.Meal{Serving: s, Portions: make([]models.PortionWithWaste, 0)}
		index[s.ID] = i
	}
	for _, p := range portions {
		if i, ok := index[p.ServingID]; ok {
			meals[i].Portions = append(meals[i].Portions, p)
		}
	}

	return meals, nil
}

func (m *mealRepository) GetMeal(ctx context.Context, userID, servingID string) (models.Meal, error) {
	query, args, err := buildGetServingQuery(m.builder, userID, servingID)
	if err != nil {
		return models.Meal{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	serving, err := m.scanOneServing(ctx, "mealRepository.GetMeal", query, args)
	if err != nil {
		return models.Meal{}, err
	}

	query, args, err = buildPortionsWithWasteQuery(m.builder, sq.Eq{"p.serving_id": servingID, "p.user_id": userID})
	if err != nil {
		return models.Meal{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	portions, err := queryAll(ctx, m.DB, "mealRepository.GetMeal", query, args, scanPortionWithWaste)
	if err != nil {
		return models.Meal{}, err
	}

	return models.Meal{Serving: serving, Portions: portions}, nil
}

// FindServing returns the user's earliest serving with the given meal name
// on date, or [ErrMealNotFound].
func (m *mealRepository) FindServing(ctx context.Context, userID, mealName, date string) (models.FoodServing, error) {
	query, args, err := buildFindServingQuery(m.builder, userID, mealName, date)
	if err != nil {
		return models.FoodServing{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return m.scanOneServing(ctx, "mealRepository.FindServing", query, args)
}

// SaveMeal inserts the serving when created is true, or rewrites its notes
// otherwise, and adds the portions. Everything happens in one transaction.
func (m *mealRepository) SaveMeal(ctx context.Context, serving models.FoodServing, created bool, portions []models.ServedPortion) error {
	build := buildUpdateServingNotesQuery
	if created {
		build = buildInsertServingQuery
	}
	servingQuery, servingArgs, err := build(m.builder, serving)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var portionsQuery string
	var portionsArgs []any
	if len(portions) > 0 {
		portionsQuery, portionsArgs, err = buildInsertPortionsQuery(m.builder, portions)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
	}

	return m.inTx(ctx, "mealRepository.SaveMeal", func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, servingQuery, servingArgs...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected, err := res.RowsAffected(); err == nil && affected == 0 {
			return ErrMealNotFound
		}

		if portionsQuery == "" {
			return nil
		}
		if _, err = tx.ExecContext(ctx, portionsQuery, portionsArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
}

func (m *mealRepository) GetPortion(ctx context.Context, userID, portionID string) (models.ServedPortion, error) {
	query, args, err := buildGetPortionQuery(m.builder, userID, portionID)
	if err != nil {
		return models.ServedPortion{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	portion, err := scanPortion(m.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.ServedPortion{}, ErrPortionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "mealRepository.GetPortion").Str("portion_id", portionID).Msg("failed to get served portion")
		return models.ServedPortion{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return portion, nil
}

// UpsertWaste creates the waste entry of a portion or replaces the values of
// the existing one.
func (m *mealRepository) UpsertWaste(ctx context.Context, entry models.WasteEntry) error {
	query, args, err := buildUpsertWasteQuery(m.builder, entry)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = m.withRetry(ctx, func() error {
		_, execErr := m.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "mealRepository.UpsertWaste").Str("portion_id", entry.ServedPortionID).Msg("failed to save waste entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteMeal removes the waste entries, the portions and the serving in one
// transaction.
func (m *mealRepository) DeleteMeal(ctx context.Context, userID, servingID string) error {
	builders := []func(sq.StatementBuilderType, string, string) (string, []any, error){
		buildDeleteMealWasteQuery,
		buildDeleteMealPortionsQuery,
		buildDeleteServingQuery,
	}

	type statement struct {
		query string
		args  []any
	}
	statements := make([]statement, 0, len(builders))
	for _, build := range builders {
		query, args, err := build(m.builder, userID, servingID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		statements = append(statements, statement{query: query, args: args})
	}

	return m.inTx(ctx, "mealRepository.DeleteMeal", func(tx *sql.Tx) error {
		var res sql.Result
		for _, st := range statements {
			var err error
			if res, err = tx.ExecContext(ctx, st.query, st.args...); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}

		if affected, err := res.RowsAffected(); err == nil && affected == 0 {
			return ErrMealNotFound
		}
		return nil
	})
}

func (m *mealRepository) scanOneServing(ctx context.Context, funcName, query string, args []any) (models.FoodServing, error) {
	serving, err := scanServing(m.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.FoodServing{}, ErrMealNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("failed to get serving")
		return models.FoodServing{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return serving, nil
}
