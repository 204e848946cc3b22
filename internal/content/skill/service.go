package skill

import (
	"context"
	"log/slog"

	"github.com/foliumhq/folium/internal/content/engine"
	"github.com/foliumhq/folium/internal/platform/database/schema"
	"github.com/foliumhq/folium/internal/platform/validate"
)

type Service struct {
	store  engine.Store[Skill]
	logger *slog.Logger
}

func NewService(store engine.Store[Skill], logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

func (service *Service) ListSkills(ctx context.Context, ownerID string, filter Filter, limit, offset int) ([]*Skill, int, error) {
	opts := engine.ListOptions{
		Deleted: filter.Deleted,
		Limit:   limit,
		Offset:  offset,
	}
	if filter.Category != "" {
		opts.Filters = append(opts.Filters, engine.Filter{Column: schema.ContentSkill.Category, Value: filter.Category})
	}

	return service.store.List(ctx, ownerID, opts)
}

func (service *Service) GetSkill(ctx context.Context, ownerID, id string) (*Skill, error) {
	return service.store.Get(ctx, ownerID, id)
}

func (service *Service) CreateSkill(ctx context.Context, ownerID string, input *Skill) error {
	if err := validateSkill(input); err != nil {
		return err
	}

	if err := service.store.Create(ctx, ownerID, input); err != nil {
		return err
	}

	service.logger.Info("skill_created",
		slog.String("owner_id", ownerID),
		slog.String("skill_id", input.ID),
	)
	return nil
}

func (service *Service) UpdateSkill(ctx context.Context, ownerID, id string, input *Skill) (*Skill, error) {
	existing, err := service.store.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if err := validateSkill(input); err != nil {
		return nil, err
	}

	input.Base = existing.Base
	input.SortOrder = existing.SortOrder
	if err := service.store.Save(ctx, input); err != nil {
		return nil, err
	}

	service.logger.Info("skill_updated",
		slog.String("owner_id", ownerID),
		slog.String("skill_id", id),
	)
	return input, nil
}

func (service *Service) DeleteSkill(ctx context.Context, ownerID, id string) error {
	if err := service.store.Remove(ctx, ownerID, id); err != nil {
		return err
	}

	service.logger.Warn("skill_deleted",
		slog.String("owner_id", ownerID),
		slog.String("skill_id", id),
	)
	return nil
}

func (service *Service) RestoreSkill(ctx context.Context, ownerID, id string) error {
	if err := service.store.Restore(ctx, ownerID, id); err != nil {
		return err
	}

	service.logger.Info("skill_restored",
		slog.String("owner_id", ownerID),
		slog.String("skill_id", id),
	)
	return nil
}

func (service *Service) BulkDeleteSkills(ctx context.Context, ownerID string, ids []string) (engine.BulkResult, error) {
	result, err := service.store.BulkRemove(ctx, ownerID, ids)
	if err != nil {
		return engine.BulkResult{}, err
	}

	service.logger.Warn("skills_bulk_deleted",
		slog.String("owner_id", ownerID),
		slog.Int("deleted", result.DeletedCount),
		slog.Int("failed", len(result.FailedIDs)),
	)
	return result, nil
}

func (service *Service) ReorderSkills(ctx context.Context, ownerID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	if err := service.store.Reorder(ctx, ownerID, ids); err != nil {
		return err
	}

	service.logger.Info("skills_reordered",
		slog.String("owner_id", ownerID),
		slog.Int("count", len(ids)),
	)
	return nil
}

func validateSkill(input *Skill) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, 100)
	validator.OneOf(FieldCategory, input.Category, Categories...)
	validator.Range(FieldLevel, input.Level, 1, 5)

	return validator.Err()
}
