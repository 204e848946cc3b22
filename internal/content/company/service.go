package company

import (
	"context"
	"log/slog"

	"github.com/foliumhq/folium/internal/content/engine"
	"github.com/foliumhq/folium/internal/platform/validate"
)

type Service struct {
	store  engine.Store[Company]
	logger *slog.Logger
}

func NewService(store engine.Store[Company], logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

func (service *Service) ListCompanies(ctx context.Context, ownerID string, limit, offset int) ([]*Company, int, error) {
	return service.store.List(ctx, ownerID, engine.ListOptions{Limit: limit, Offset: offset})
}

func (service *Service) GetCompany(ctx context.Context, ownerID, id string) (*Company, error) {
	return service.store.Get(ctx, ownerID, id)
}

func (service *Service) CreateCompany(ctx context.Context, ownerID string, input *Company) error {
	if err := validateCompany(input); err != nil {
		return err
	}

	if err := service.store.Create(ctx, ownerID, input); err != nil {
		return err
	}

	service.logger.Info("company_created",
		slog.String("owner_id", ownerID),
		slog.String("company_id", input.ID),
	)
	return nil
}

func (service *Service) UpdateCompany(ctx context.Context, ownerID, id string, input *Company) (*Company, error) {
	existing, err := service.store.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if err := validateCompany(input); err != nil {
		return nil, err
	}

	input.Base = existing.Base
	if err := service.store.Save(ctx, input); err != nil {
		return nil, err
	}

	service.logger.Info("company_updated",
		slog.String("owner_id", ownerID),
		slog.String("company_id", id),
	)
	return input, nil
}

// DeleteCompany removes the record permanently. Experience rows referencing
// it keep their company_id; readers treat the dangling reference as absent.
func (service *Service) DeleteCompany(ctx context.Context, ownerID, id string) error {
	if err := service.store.Remove(ctx, ownerID, id); err != nil {
		return err
	}

	service.logger.Warn("company_deleted",
		slog.String("owner_id", ownerID),
		slog.String("company_id", id),
	)
	return nil
}

func (service *Service) BulkDeleteCompanies(ctx context.Context, ownerID string, ids []string) (engine.BulkResult, error) {
	result, err := service.store.BulkRemove(ctx, ownerID, ids)
	if err != nil {
		return engine.BulkResult{}, err
	}

	service.logger.Warn("companies_bulk_deleted",
		slog.String("owner_id", ownerID),
		slog.Int("deleted", result.DeletedCount),
		slog.Int("failed", len(result.FailedIDs)),
	)
	return result, nil
}

func validateCompany(input *Company) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, 200)
	if input.LogoURL != nil {
		validator.URL(FieldLogoURL, *input.LogoURL)
	}
	if input.WebsiteURL != nil {
		validator.URL(FieldWebsiteURL, *input.WebsiteURL)
	}
	if input.Summary != nil {
		validator.MaxLen(FieldSummary, *input.Summary, 1000)
	}

	return validator.Err()
}
