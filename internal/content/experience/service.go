package experience

import (
	"context"
	"log/slog"

	"github.com/foliumhq/folium/internal/content/company"
	"github.com/foliumhq/folium/internal/content/engine"
	"github.com/foliumhq/folium/internal/platform/apperr"
	"github.com/foliumhq/folium/internal/platform/validate"
)

// CompanyLookup resolves the weak company reference on reads.
// Satisfied by engine.Store[company.Company].
type CompanyLookup interface {
	Get(ctx context.Context, ownerID, id string) (*company.Company, error)
}

type Service struct {
	store     engine.Store[Experience]
	companies CompanyLookup
	logger    *slog.Logger
}

func NewService(store engine.Store[Experience], companies CompanyLookup, logger *slog.Logger) *Service {
	return &Service{
		store:     store,
		companies: companies,
		logger:    logger,
	}
}

func (service *Service) ListExperience(ctx context.Context, ownerID string, filter Filter, limit, offset int) ([]*Experience, int, error) {
	records, total, err := service.store.List(ctx, ownerID, engine.ListOptions{
		Deleted: filter.Deleted,
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		return nil, 0, err
	}

	for _, record := range records {
		if err := service.resolveCompany(ctx, ownerID, record); err != nil {
			return nil, 0, err
		}
	}
	return records, total, nil
}

func (service *Service) GetExperience(ctx context.Context, ownerID, id string) (*Experience, error) {
	record, err := service.store.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if err := service.resolveCompany(ctx, ownerID, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (service *Service) CreateExperience(ctx context.Context, ownerID string, input *Experience) error {
	if err := validateExperience(input); err != nil {
		return err
	}

	if err := service.store.Create(ctx, ownerID, input); err != nil {
		return err
	}

	service.logger.Info("experience_created",
		slog.String("owner_id", ownerID),
		slog.String("experience_id", input.ID),
	)
	return nil
}

func (service *Service) UpdateExperience(ctx context.Context, ownerID, id string, input *Experience) (*Experience, error) {
	existing, err := service.store.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if err := validateExperience(input); err != nil {
		return nil, err
	}

	input.Base = existing.Base
	if err := service.store.Save(ctx, input); err != nil {
		return nil, err
	}

	service.logger.Info("experience_updated",
		slog.String("owner_id", ownerID),
		slog.String("experience_id", id),
	)

	if err := service.resolveCompany(ctx, ownerID, input); err != nil {
		return nil, err
	}
	return input, nil
}

func (service *Service) DeleteExperience(ctx context.Context, ownerID, id string) error {
	if err := service.store.Remove(ctx, ownerID, id); err != nil {
		return err
	}

	service.logger.Warn("experience_deleted",
		slog.String("owner_id", ownerID),
		slog.String("experience_id", id),
	)
	return nil
}

func (service *Service) RestoreExperience(ctx context.Context, ownerID, id string) error {
	if err := service.store.Restore(ctx, ownerID, id); err != nil {
		return err
	}

	service.logger.Info("experience_restored",
		slog.String("owner_id", ownerID),
		slog.String("experience_id", id),
	)
	return nil
}

func (service *Service) BulkDeleteExperience(ctx context.Context, ownerID string, ids []string) (engine.BulkResult, error) {
	result, err := service.store.BulkRemove(ctx, ownerID, ids)
	if err != nil {
		return engine.BulkResult{}, err
	}

	service.logger.Warn("experience_bulk_deleted",
		slog.String("owner_id", ownerID),
		slog.Int("deleted", result.DeletedCount),
		slog.Int("failed", len(result.FailedIDs)),
	)
	return result, nil
}

// resolveCompany fills CompanyRef from the weak reference. A reference that
// no longer resolves (deleted company) or points outside the owner's data
// is rendered as absent, never as an error.
func (service *Service) resolveCompany(ctx context.Context, ownerID string, record *Experience) error {
	record.CompanyRef = nil
	if record.CompanyID == nil || *record.CompanyID == "" {
		return nil
	}

	resolved, err := service.companies.Get(ctx, ownerID, *record.CompanyID)
	if err != nil {
		if apperr.IsCode(err, apperr.CodeNotFound) || apperr.IsCode(err, apperr.CodeForbidden) {
			return nil
		}
		return err
	}

	record.CompanyRef = resolved
	return nil
}

func validateExperience(input *Experience) error {
	validator := &validate.Validator{}

	validator.Required(FieldTitle, input.Title).MaxLen(FieldTitle, input.Title, 200)
	validator.Required(FieldCompany, input.Company).MaxLen(FieldCompany, input.Company, 200)

	validator.Custom(FieldStartDate, input.StartDate.IsZero(), "This field is required")
	validator.DateOrder(FieldEndDate, input.StartDate, input.EndDate)
	validator.MutuallyExclusive(FieldCurrent, input.Current, input.EndDate != nil, "A current role cannot have an end date")

	if input.CompanyID != nil && *input.CompanyID != "" {
		validator.UUID(FieldCompanyID, *input.CompanyID)
	}
	if input.Location != nil {
		validator.MaxLen(FieldLocation, *input.Location, 200)
	}
	if input.Summary != nil {
		validator.MaxLen(FieldSummary, *input.Summary, 2000)
	}

	return validator.Err()
}
