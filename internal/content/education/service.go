package education

import (
	"context"
	"log/slog"

	"github.com/foliumhq/folium/internal/content/engine"
	"github.com/foliumhq/folium/internal/platform/validate"
)

type Service struct {
	store  engine.Store[Education]
	logger *slog.Logger
}

func NewService(store engine.Store[Education], logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

func (service *Service) ListEducation(ctx context.Context, ownerID string, filter Filter, limit, offset int) ([]*Education, int, error) {
	return service.store.List(ctx, ownerID, engine.ListOptions{
		Deleted: filter.Deleted,
		Limit:   limit,
		Offset:  offset,
	})
}

func (service *Service) GetEducation(ctx context.Context, ownerID, id string) (*Education, error) {
	return service.store.Get(ctx, ownerID, id)
}

func (service *Service) CreateEducation(ctx context.Context, ownerID string, input *Education) error {
	if err := validateEducation(input); err != nil {
		return err
	}

	if err := service.store.Create(ctx, ownerID, input); err != nil {
		return err
	}

	service.logger.Info("education_created",
		slog.String("owner_id", ownerID),
		slog.String("education_id", input.ID),
	)
	return nil
}

func (service *Service) UpdateEducation(ctx context.Context, ownerID, id string, input *Education) (*Education, error) {
	existing, err := service.store.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if err := validateEducation(input); err != nil {
		return nil, err
	}

	input.Base = existing.Base
	if err := service.store.Save(ctx, input); err != nil {
		return nil, err
	}

	service.logger.Info("education_updated",
		slog.String("owner_id", ownerID),
		slog.String("education_id", id),
	)
	return input, nil
}

func (service *Service) DeleteEducation(ctx context.Context, ownerID, id string) error {
	if err := service.store.Remove(ctx, ownerID, id); err != nil {
		return err
	}

	service.logger.Warn("education_deleted",
		slog.String("owner_id", ownerID),
		slog.String("education_id", id),
	)
	return nil
}

func (service *Service) RestoreEducation(ctx context.Context, ownerID, id string) error {
	if err := service.store.Restore(ctx, ownerID, id); err != nil {
		return err
	}

	service.logger.Info("education_restored",
		slog.String("owner_id", ownerID),
		slog.String("education_id", id),
	)
	return nil
}

func (service *Service) BulkDeleteEducation(ctx context.Context, ownerID string, ids []string) (engine.BulkResult, error) {
	result, err := service.store.BulkRemove(ctx, ownerID, ids)
	if err != nil {
		return engine.BulkResult{}, err
	}

	service.logger.Warn("education_bulk_deleted",
		slog.String("owner_id", ownerID),
		slog.Int("deleted", result.DeletedCount),
		slog.Int("failed", len(result.FailedIDs)),
	)
	return result, nil
}

func validateEducation(input *Education) error {
	validator := &validate.Validator{}

	validator.Required(FieldSchool, input.School).MaxLen(FieldSchool, input.School, 200)
	validator.Custom(FieldStartDate, input.StartDate.IsZero(), "This field is required")
	validator.DateOrder(FieldEndDate, input.StartDate, input.EndDate)

	if input.Degree != nil {
		validator.MaxLen(FieldDegree, *input.Degree, 200)
	}
	if input.Field != nil {
		validator.MaxLen(FieldField, *input.Field, 200)
	}
	if input.Summary != nil {
		validator.MaxLen(FieldSummary, *input.Summary, 2000)
	}

	return validator.Err()
}
