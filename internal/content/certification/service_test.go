package certification_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliumhq/folium/internal/content/certification"
	"github.com/foliumhq/folium/internal/content/engine/enginetest"
	"github.com/foliumhq/folium/internal/platform/apperr"
	"github.com/foliumhq/folium/pkg/pointer"
)

const owner = "11111111-1111-1111-1111-111111111111"

func newService() (*certification.Service, *enginetest.Store[certification.Certification, *certification.Certification]) {
	store := enginetest.New[certification.Certification, *certification.Certification]("Certification", false, false)
	return certification.NewService(store, slog.Default()), store
}

func TestCreateCertification_Validation(t *testing.T) {
	service, _ := newService()

	issued := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	expiredBefore := issued.AddDate(-1, 0, 0)

	tests := []struct {
		name  string
		input certification.Certification
		field string
	}{
		{"missing_name", certification.Certification{Issuer: "AWS", IssuedDate: issued}, "name"},
		{"missing_issuer", certification.Certification{Name: "Solutions Architect", IssuedDate: issued}, "issuer"},
		{"missing_issued_date", certification.Certification{Name: "Solutions Architect", Issuer: "AWS"}, "issued_date"},
		{"expires_before_issued", certification.Certification{Name: "Solutions Architect", Issuer: "AWS", IssuedDate: issued, ExpiresDate: pointer.To(expiredBefore)}, "expires_date"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := service.CreateCertification(context.Background(), owner, &tc.input)
			require.Error(t, err)
			require.True(t, apperr.IsCode(err, apperr.CodeValidation))

			appError := apperr.As(err)
			require.Len(t, appError.Details, 1)
			assert.Equal(t, tc.field, appError.Details[0].Field)
		})
	}
}

func TestCreateCertification_ExpiryIsOptional(t *testing.T) {
	service, store := newService()

	issued := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	perpetual := certification.Certification{Name: "CKA", Issuer: "CNCF", IssuedDate: issued}
	require.NoError(t, service.CreateCertification(context.Background(), owner, &perpetual))

	expiring := certification.Certification{Name: "CKA", Issuer: "CNCF", IssuedDate: issued, ExpiresDate: pointer.To(issued.AddDate(3, 0, 0))}
	require.NoError(t, service.CreateCertification(context.Background(), owner, &expiring))

	assert.Equal(t, 2, store.Len())
}
