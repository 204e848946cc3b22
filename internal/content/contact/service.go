package contact

import (
	"context"
	"log/slog"

	"github.com/foliumhq/folium/internal/content/engine"
	"github.com/foliumhq/folium/internal/platform/database/schema"
	"github.com/foliumhq/folium/internal/platform/validate"
)

type Service struct {
	store  engine.Store[Contact]
	logger *slog.Logger
}

func NewService(store engine.Store[Contact], logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

func (service *Service) ListContacts(ctx context.Context, ownerID string, filter Filter, limit, offset int) ([]*Contact, int, error) {
	opts := engine.ListOptions{
		Limit:  limit,
		Offset: offset,
	}
	if filter.Active != nil {
		opts.Filters = append(opts.Filters, engine.Filter{Column: schema.ContentContact.Active, Value: *filter.Active})
	}

	return service.store.List(ctx, ownerID, opts)
}

func (service *Service) GetContact(ctx context.Context, ownerID, id string) (*Contact, error) {
	return service.store.Get(ctx, ownerID, id)
}

func (service *Service) CreateContact(ctx context.Context, ownerID string, input *Contact) error {
	if err := validateContact(input); err != nil {
		return err
	}

	if err := service.store.Create(ctx, ownerID, input); err != nil {
		return err
	}

	service.logger.Info("contact_created",
		slog.String("owner_id", ownerID),
		slog.String("contact_id", input.ID),
	)
	return nil
}

func (service *Service) UpdateContact(ctx context.Context, ownerID, id string, input *Contact) (*Contact, error) {
	existing, err := service.store.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if err := validateContact(input); err != nil {
		return nil, err
	}

	input.Base = existing.Base
	input.SortOrder = existing.SortOrder
	if err := service.store.Save(ctx, input); err != nil {
		return nil, err
	}

	service.logger.Info("contact_updated",
		slog.String("owner_id", ownerID),
		slog.String("contact_id", id),
	)
	return input, nil
}

func (service *Service) DeleteContact(ctx context.Context, ownerID, id string) error {
	if err := service.store.Remove(ctx, ownerID, id); err != nil {
		return err
	}

	service.logger.Warn("contact_deleted",
		slog.String("owner_id", ownerID),
		slog.String("contact_id", id),
	)
	return nil
}

func (service *Service) BulkDeleteContacts(ctx context.Context, ownerID string, ids []string) (engine.BulkResult, error) {
	result, err := service.store.BulkRemove(ctx, ownerID, ids)
	if err != nil {
		return engine.BulkResult{}, err
	}

	service.logger.Warn("contacts_bulk_deleted",
		slog.String("owner_id", ownerID),
		slog.Int("deleted", result.DeletedCount),
		slog.Int("failed", len(result.FailedIDs)),
	)
	return result, nil
}

func (service *Service) ReorderContacts(ctx context.Context, ownerID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	if err := service.store.Reorder(ctx, ownerID, ids); err != nil {
		return err
	}

	service.logger.Info("contacts_reordered",
		slog.String("owner_id", ownerID),
		slog.Int("count", len(ids)),
	)
	return nil
}

func validateContact(input *Contact) error {
	validator := &validate.Validator{}

	validator.Required(FieldLabel, input.Label).MaxLen(FieldLabel, input.Label, 100)
	validator.OneOf(FieldKind, input.Kind, Kinds...)
	validator.Required(FieldValue, input.Value).MaxLen(FieldValue, input.Value, 500)

	if input.URL != nil {
		validator.URL(FieldURL, *input.URL)
	}

	return validator.Err()
}
