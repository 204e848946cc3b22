package education_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliumhq/folium/internal/content/education"
	"github.com/foliumhq/folium/internal/content/engine/enginetest"
	"github.com/foliumhq/folium/internal/platform/apperr"
	"github.com/foliumhq/folium/pkg/pointer"
)

const owner = "11111111-1111-1111-1111-111111111111"

func newService() (*education.Service, *enginetest.Store[education.Education, *education.Education]) {
	store := enginetest.New[education.Education, *education.Education]("Education", true, false)
	return education.NewService(store, slog.Default()), store
}

func TestCreateEducation_Validation(t *testing.T) {
	service, _ := newService()

	start := time.Date(2018, 9, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input education.Education
		field string
	}{
		{"missing_school", education.Education{StartDate: start}, "school"},
		{"missing_start_date", education.Education{School: "MIT"}, "start_date"},
		{"end_before_start", education.Education{School: "MIT", StartDate: start, EndDate: pointer.To(start.AddDate(-1, 0, 0))}, "end_date"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := service.CreateEducation(context.Background(), owner, &tc.input)
			require.Error(t, err)
			require.True(t, apperr.IsCode(err, apperr.CodeValidation))

			appError := apperr.As(err)
			require.Len(t, appError.Details, 1)
			assert.Equal(t, tc.field, appError.Details[0].Field)
		})
	}
}

func TestCreateEducation_OngoingStudyHasNoEndDate(t *testing.T) {
	service, _ := newService()

	start := time.Date(2018, 9, 1, 0, 0, 0, 0, time.UTC)
	input := education.Education{School: "MIT", StartDate: start}
	require.NoError(t, service.CreateEducation(context.Background(), owner, &input))
	assert.NotEmpty(t, input.ID)
}
