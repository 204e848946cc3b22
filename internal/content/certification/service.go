package certification

import (
	"context"
	"log/slog"

	"github.com/foliumhq/folium/internal/content/engine"
	"github.com/foliumhq/folium/internal/platform/validate"
)

type Service struct {
	store  engine.Store[Certification]
	logger *slog.Logger
}

func NewService(store engine.Store[Certification], logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

func (service *Service) ListCertifications(ctx context.Context, ownerID string, limit, offset int) ([]*Certification, int, error) {
	return service.store.List(ctx, ownerID, engine.ListOptions{Limit: limit, Offset: offset})
}

func (service *Service) GetCertification(ctx context.Context, ownerID, id string) (*Certification, error) {
	return service.store.Get(ctx, ownerID, id)
}

func (service *Service) CreateCertification(ctx context.Context, ownerID string, input *Certification) error {
	if err := validateCertification(input); err != nil {
		return err
	}

	if err := service.store.Create(ctx, ownerID, input); err != nil {
		return err
	}

	service.logger.Info("certification_created",
		slog.String("owner_id", ownerID),
		slog.String("certification_id", input.ID),
	)
	return nil
}

func (service *Service) UpdateCertification(ctx context.Context, ownerID, id string, input *Certification) (*Certification, error) {
	existing, err := service.store.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if err := validateCertification(input); err != nil {
		return nil, err
	}

	input.Base = existing.Base
	if err := service.store.Save(ctx, input); err != nil {
		return nil, err
	}

	service.logger.Info("certification_updated",
		slog.String("owner_id", ownerID),
		slog.String("certification_id", id),
	)
	return input, nil
}

func (service *Service) DeleteCertification(ctx context.Context, ownerID, id string) error {
	if err := service.store.Remove(ctx, ownerID, id); err != nil {
		return err
	}

	service.logger.Warn("certification_deleted",
		slog.String("owner_id", ownerID),
		slog.String("certification_id", id),
	)
	return nil
}

func (service *Service) BulkDeleteCertifications(ctx context.Context, ownerID string, ids []string) (engine.BulkResult, error) {
	result, err := service.store.BulkRemove(ctx, ownerID, ids)
	if err != nil {
		return engine.BulkResult{}, err
	}

	service.logger.Warn("certifications_bulk_deleted",
		slog.String("owner_id", ownerID),
		slog.Int("deleted", result.DeletedCount),
		slog.Int("failed", len(result.FailedIDs)),
	)
	return result, nil
}

func validateCertification(input *Certification) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, 200)
	validator.Required(FieldIssuer, input.Issuer).MaxLen(FieldIssuer, input.Issuer, 200)
	validator.Custom(FieldIssuedDate, input.IssuedDate.IsZero(), "This field is required")
	validator.DateOrder(FieldExpiresDate, input.IssuedDate, input.ExpiresDate)

	if input.CredentialID != nil {
		validator.MaxLen(FieldCredentialID, *input.CredentialID, 200)
	}
	if input.CredentialURL != nil {
		validator.URL(FieldCredentialURL, *input.CredentialURL)
	}

	return validator.Err()
}
