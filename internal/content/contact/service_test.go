package contact_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliumhq/folium/internal/content/contact"
	"github.com/foliumhq/folium/internal/content/engine/enginetest"
	"github.com/foliumhq/folium/internal/platform/apperr"
)

const owner = "11111111-1111-1111-1111-111111111111"

func newService() (*contact.Service, *enginetest.Store[contact.Contact, *contact.Contact]) {
	store := enginetest.New[contact.Contact, *contact.Contact]("Contact", false, true)
	return contact.NewService(store, slog.Default()), store
}

func TestCreateContact_Validation(t *testing.T) {
	service, _ := newService()

	tests := []struct {
		name  string
		input contact.Contact
		field string
	}{
		{"missing_label", contact.Contact{Kind: "email", Value: "dana@example.com"}, "label"},
		{"unknown_kind", contact.Contact{Label: "Mail", Kind: "carrier-pigeon", Value: "dana@example.com"}, "kind"},
		{"missing_value", contact.Contact{Label: "Mail", Kind: "email"}, "value"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := service.CreateContact(context.Background(), owner, &tc.input)
			require.Error(t, err)
			require.True(t, apperr.IsCode(err, apperr.CodeValidation))

			appError := apperr.As(err)
			require.Len(t, appError.Details, 1)
			assert.Equal(t, tc.field, appError.Details[0].Field)
		})
	}
}

func TestCreateContact_AcceptsEveryKind(t *testing.T) {
	service, store := newService()

	for _, kind := range contact.Kinds {
		input := contact.Contact{Label: "Reach me", Kind: kind, Value: "somewhere"}
		require.NoError(t, service.CreateContact(context.Background(), owner, &input))
	}
	assert.Equal(t, len(contact.Kinds), store.Len())
}
