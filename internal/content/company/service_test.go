package company_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliumhq/folium/internal/content/company"
	"github.com/foliumhq/folium/internal/content/engine/enginetest"
	"github.com/foliumhq/folium/internal/platform/apperr"
	"github.com/foliumhq/folium/pkg/pointer"
)

const owner = "11111111-1111-1111-1111-111111111111"

func newService() (*company.Service, *enginetest.Store[company.Company, *company.Company]) {
	store := enginetest.New[company.Company, *company.Company]("Company", false, false)
	return company.NewService(store, slog.Default()), store
}

func TestCreateCompany_Validation(t *testing.T) {
	service, _ := newService()

	tests := []struct {
		name  string
		input company.Company
		field string
	}{
		{"missing_name", company.Company{}, "name"},
		{"bad_logo_url", company.Company{Name: "Acme", LogoURL: pointer.To("not a url")}, "logo_url"},
		{"bad_website_url", company.Company{Name: "Acme", WebsiteURL: pointer.To("also not a url")}, "website_url"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := service.CreateCompany(context.Background(), owner, &tc.input)
			require.Error(t, err)
			require.True(t, apperr.IsCode(err, apperr.CodeValidation))

			appError := apperr.As(err)
			require.Len(t, appError.Details, 1)
			assert.Equal(t, tc.field, appError.Details[0].Field)
		})
	}
}

func TestDeleteCompany_IsIdempotentlyGone(t *testing.T) {
	service, _ := newService()

	ctx := context.Background()
	input := company.Company{Name: "Acme"}
	require.NoError(t, service.CreateCompany(ctx, owner, &input))

	require.NoError(t, service.DeleteCompany(ctx, owner, input.ID))

	_, err := service.GetCompany(ctx, owner, input.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))
}
