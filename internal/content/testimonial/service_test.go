package testimonial_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliumhq/folium/internal/content/engine/enginetest"
	"github.com/foliumhq/folium/internal/content/testimonial"
	"github.com/foliumhq/folium/internal/platform/apperr"
	"github.com/foliumhq/folium/pkg/pointer"
)

const owner = "11111111-1111-1111-1111-111111111111"

func newService() (*testimonial.Service, *enginetest.Store[testimonial.Testimonial, *testimonial.Testimonial]) {
	store := enginetest.New[testimonial.Testimonial, *testimonial.Testimonial]("Testimonial", false, true)
	return testimonial.NewService(store, slog.Default()), store
}

func TestCreateTestimonial_Validation(t *testing.T) {
	service, _ := newService()

	tests := []struct {
		name  string
		input testimonial.Testimonial
		field string
	}{
		{"missing_author", testimonial.Testimonial{Quote: "Great work"}, "author_name"},
		{"missing_quote", testimonial.Testimonial{AuthorName: "Dana"}, "quote"},
		{"rating_too_low", testimonial.Testimonial{AuthorName: "Dana", Quote: "Great work", Rating: pointer.To(0)}, "rating"},
		{"rating_too_high", testimonial.Testimonial{AuthorName: "Dana", Quote: "Great work", Rating: pointer.To(6)}, "rating"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := service.CreateTestimonial(context.Background(), owner, &tc.input)
			require.Error(t, err)
			require.True(t, apperr.IsCode(err, apperr.CodeValidation))

			appError := apperr.As(err)
			require.Len(t, appError.Details, 1)
			assert.Equal(t, tc.field, appError.Details[0].Field)
		})
	}
}

func TestCreateTestimonial_RatingIsOptional(t *testing.T) {
	service, _ := newService()

	unrated := testimonial.Testimonial{AuthorName: "Dana", Quote: "Great work"}
	require.NoError(t, service.CreateTestimonial(context.Background(), owner, &unrated))
	assert.NotEmpty(t, unrated.ID)

	for rating := 1; rating <= 5; rating++ {
		input := testimonial.Testimonial{AuthorName: "Dana", Quote: "Great work", Rating: pointer.To(rating)}
		require.NoError(t, service.CreateTestimonial(context.Background(), owner, &input))
	}
}

func TestUpdateTestimonial_KeepsSortOrder(t *testing.T) {
	service, store := newService()

	ctx := context.Background()
	first := testimonial.Testimonial{AuthorName: "Dana", Quote: "Great work"}
	second := testimonial.Testimonial{AuthorName: "Lee", Quote: "Solid delivery"}
	require.NoError(t, service.CreateTestimonial(ctx, owner, &first))
	require.NoError(t, service.CreateTestimonial(ctx, owner, &second))
	require.NoError(t, service.ReorderTestimonials(ctx, owner, []string{second.ID, first.ID}))

	updated, err := service.UpdateTestimonial(ctx, owner, first.ID, &testimonial.Testimonial{AuthorName: "Dana R.", Quote: "Still great"})
	require.NoError(t, err)
	assert.Equal(t, "Dana R.", updated.AuthorName)
	assert.Equal(t, 1, store.Order(first.ID))
}
