package project

import (
	"context"
	"log/slog"

	"github.com/foliumhq/folium/internal/content/engine"
	"github.com/foliumhq/folium/internal/platform/database/schema"
	"github.com/foliumhq/folium/internal/platform/validate"
)

type Service struct {
	store  engine.Store[Project]
	logger *slog.Logger
}

func NewService(store engine.Store[Project], logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

func (service *Service) ListProjects(ctx context.Context, ownerID string, filter Filter, limit, offset int) ([]*Project, int, error) {
	opts := engine.ListOptions{
		Deleted: filter.Deleted,
		Limit:   limit,
		Offset:  offset,
	}
	if filter.Featured != nil {
		opts.Filters = append(opts.Filters, engine.Filter{Column: schema.ContentProject.Featured, Value: *filter.Featured})
	}

	return service.store.List(ctx, ownerID, opts)
}

func (service *Service) GetProject(ctx context.Context, ownerID, id string) (*Project, error) {
	return service.store.Get(ctx, ownerID, id)
}

func (service *Service) CreateProject(ctx context.Context, ownerID string, input *Project) error {
	if err := validateProject(input); err != nil {
		return err
	}

	if err := service.store.Create(ctx, ownerID, input); err != nil {
		return err
	}

	service.logger.Info("project_created",
		slog.String("owner_id", ownerID),
		slog.String("project_id", input.ID),
	)
	return nil
}

func (service *Service) UpdateProject(ctx context.Context, ownerID, id string, input *Project) (*Project, error) {
	existing, err := service.store.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if err := validateProject(input); err != nil {
		return nil, err
	}

	input.Base = existing.Base
	input.SortOrder = existing.SortOrder
	if err := service.store.Save(ctx, input); err != nil {
		return nil, err
	}

	service.logger.Info("project_updated",
		slog.String("owner_id", ownerID),
		slog.String("project_id", id),
	)
	return input, nil
}

func (service *Service) DeleteProject(ctx context.Context, ownerID, id string) error {
	if err := service.store.Remove(ctx, ownerID, id); err != nil {
		return err
	}

	service.logger.Warn("project_deleted",
		slog.String("owner_id", ownerID),
		slog.String("project_id", id),
	)
	return nil
}

func (service *Service) RestoreProject(ctx context.Context, ownerID, id string) error {
	if err := service.store.Restore(ctx, ownerID, id); err != nil {
		return err
	}

	service.logger.Info("project_restored",
		slog.String("owner_id", ownerID),
		slog.String("project_id", id),
	)
	return nil
}

func (service *Service) BulkDeleteProjects(ctx context.Context, ownerID string, ids []string) (engine.BulkResult, error) {
	result, err := service.store.BulkRemove(ctx, ownerID, ids)
	if err != nil {
		return engine.BulkResult{}, err
	}

	service.logger.Warn("projects_bulk_deleted",
		slog.String("owner_id", ownerID),
		slog.Int("deleted", result.DeletedCount),
		slog.Int("failed", len(result.FailedIDs)),
	)
	return result, nil
}

func (service *Service) ReorderProjects(ctx context.Context, ownerID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	if err := service.store.Reorder(ctx, ownerID, ids); err != nil {
		return err
	}

	service.logger.Info("projects_reordered",
		slog.String("owner_id", ownerID),
		slog.Int("count", len(ids)),
	)
	return nil
}

func validateProject(input *Project) error {
	validator := &validate.Validator{}

	validator.Required(FieldTitle, input.Title).MaxLen(FieldTitle, input.Title, 200)

	if input.Summary != nil {
		validator.MaxLen(FieldSummary, *input.Summary, 500)
	}
	if input.ImageURL != nil {
		validator.URL(FieldImageURL, *input.ImageURL)
	}
	if input.DemoURL != nil {
		validator.URL(FieldDemoURL, *input.DemoURL)
	}
	if input.RepoURL != nil {
		validator.URL(FieldRepoURL, *input.RepoURL)
	}
	for _, tech := range input.Technologies {
		validator.MaxLen(FieldTechnologies, tech, 100)
	}

	return validator.Err()
}
