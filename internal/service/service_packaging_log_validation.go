package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"github.com/MKhiriev/go-waste-tracker/internal/packaging"
	"github.com/MKhiriev/go-waste-tracker/internal/validators"
	"github.com/MKhiriev/go-waste-tracker/models"
)

// PackagingLogValidationService validates caller input before delegating to
// the wrapped PackagingLogService.
type PackagingLogValidationService struct {
	inner     PackagingLogService
	validator validators.Validator
	logger    *logger.Logger
}

func NewPackagingLogValidationService(logger *logger.Logger) *PackagingLogValidationService {
	return &PackagingLogValidationService{
		validator: validators.NewPackagingLogValidator(),
		logger:    logger,
	}
}

func (v *PackagingLogValidationService) Wrap(inner PackagingLogService) PackagingLogService {
	v.inner = inner
	return v
}

func (v *PackagingLogValidationService) List(ctx context.Context, userID string) ([]packaging.LogView, error) {
	if err := v.validateUser(ctx, userID); err != nil {
		return nil, err
	}

	return v.inner.List(ctx, userID)
}

func (v *PackagingLogValidationService) ListByDay(ctx context.Context, userID string) ([]packaging.DayView, error) {
	if err := v.validateUser(ctx, userID); err != nil {
		return nil, err
	}

	return v.inner.ListByDay(ctx, userID)
}

func (v *PackagingLogValidationService) Create(ctx context.Context, userID string, input models.PackagingLogInput) (LogResult, error) {
	if err := v.validateUser(ctx, userID); err != nil {
		return LogResult{}, err
	}
	if err := v.validateInput(ctx, input); err != nil {
		return LogResult{}, err
	}

	return v.inner.Create(ctx, userID, input)
}

func (v *PackagingLogValidationService) Update(ctx context.Context, userID, logID string, input models.PackagingLogInput) (LogResult, error) {
	if err := v.validateIdentity(ctx, userID, logID); err != nil {
		return LogResult{}, err
	}
	if err := v.validateInput(ctx, input); err != nil {
		return LogResult{}, err
	}

	return v.inner.Update(ctx, userID, logID, input)
}

func (v *PackagingLogValidationService) Delete(ctx context.Context, userID, logID string) error {
	if err := v.validateIdentity(ctx, userID, logID); err != nil {
		return err
	}

	return v.inner.Delete(ctx, userID, logID)
}

func (v *PackagingLogValidationService) validateUser(ctx context.Context, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return ErrNoUserID
	}

	return nil
}

func (v *PackagingLogValidationService) validateIdentity(ctx context.Context, userID, logID string) error {
	if err := v.validateUser(ctx, userID); err != nil {
		return err
	}

	log := models.PackagingLog{ID: logID, UserID: userID}
	if err := v.validator.Validate(ctx, log, validators.FieldID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return nil
}

func (v *PackagingLogValidationService) validateInput(ctx context.Context, input models.PackagingLogInput) error {
	if err := v.validator.Validate(ctx, input); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "PackagingLogValidationService.validateInput").Msg("rejected packaging log input")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return nil
}
