package testimonial

import (
	"context"
	"log/slog"

	"github.com/foliumhq/folium/internal/content/engine"
	"github.com/foliumhq/folium/internal/platform/validate"
)

type Service struct {
	store  engine.Store[Testimonial]
	logger *slog.Logger
}

func NewService(store engine.Store[Testimonial], logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

func (service *Service) ListTestimonials(ctx context.Context, ownerID string, limit, offset int) ([]*Testimonial, int, error) {
	return service.store.List(ctx, ownerID, engine.ListOptions{Limit: limit, Offset: offset})
}

func (service *Service) GetTestimonial(ctx context.Context, ownerID, id string) (*Testimonial, error) {
	return service.store.Get(ctx, ownerID, id)
}

func (service *Service) CreateTestimonial(ctx context.Context, ownerID string, input *Testimonial) error {
	if err := validateTestimonial(input); err != nil {
		return err
	}

	if err := service.store.Create(ctx, ownerID, input); err != nil {
		return err
	}

	service.logger.Info("testimonial_created",
		slog.String("owner_id", ownerID),
		slog.String("testimonial_id", input.ID),
	)
	return nil
}

func (service *Service) UpdateTestimonial(ctx context.Context, ownerID, id string, input *Testimonial) (*Testimonial, error) {
	existing, err := service.store.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if err := validateTestimonial(input); err != nil {
		return nil, err
	}

	input.Base = existing.Base
	input.SortOrder = existing.SortOrder
	if err := service.store.Save(ctx, input); err != nil {
		return nil, err
	}

	service.logger.Info("testimonial_updated",
		slog.String("owner_id", ownerID),
		slog.String("testimonial_id", id),
	)
	return input, nil
}

func (service *Service) DeleteTestimonial(ctx context.Context, ownerID, id string) error {
	if err := service.store.Remove(ctx, ownerID, id); err != nil {
		return err
	}

	service.logger.Warn("testimonial_deleted",
		slog.String("owner_id", ownerID),
		slog.String("testimonial_id", id),
	)
	return nil
}

func (service *Service) BulkDeleteTestimonials(ctx context.Context, ownerID string, ids []string) (engine.BulkResult, error) {
	result, err := service.store.BulkRemove(ctx, ownerID, ids)
	if err != nil {
		return engine.BulkResult{}, err
	}

	service.logger.Warn("testimonials_bulk_deleted",
		slog.String("owner_id", ownerID),
		slog.Int("deleted", result.DeletedCount),
		slog.Int("failed", len(result.FailedIDs)),
	)
	return result, nil
}

func (service *Service) ReorderTestimonials(ctx context.Context, ownerID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	if err := service.store.Reorder(ctx, ownerID, ids); err != nil {
		return err
	}

	service.logger.Info("testimonials_reordered",
		slog.String("owner_id", ownerID),
		slog.Int("count", len(ids)),
	)
	return nil
}

func validateTestimonial(input *Testimonial) error {
	validator := &validate.Validator{}

	validator.Required(FieldAuthorName, input.AuthorName).MaxLen(FieldAuthorName, input.AuthorName, 200)
	validator.Required(FieldQuote, input.Quote).MaxLen(FieldQuote, input.Quote, 2000)

	if input.AuthorTitle != nil {
		validator.MaxLen(FieldAuthorTitle, *input.AuthorTitle, 200)
	}
	if input.AuthorCompany != nil {
		validator.MaxLen(FieldAuthorCompany, *input.AuthorCompany, 200)
	}
	if input.AvatarURL != nil {
		validator.URL(FieldAvatarURL, *input.AvatarURL)
	}
	if input.Rating != nil {
		validator.Range(FieldRating, *input.Rating, 1, 5)
	}

	return validator.Err()
}
