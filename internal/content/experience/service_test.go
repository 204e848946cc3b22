package experience_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliumhq/folium/internal/content/company"
	"github.com/foliumhq/folium/internal/content/engine/enginetest"
	"github.com/foliumhq/folium/internal/content/experience"
	"github.com/foliumhq/folium/internal/platform/apperr"
	"github.com/foliumhq/folium/pkg/pointer"
	"github.com/foliumhq/folium/pkg/uuidv7"
)

const owner = "11111111-1111-1111-1111-111111111111"

type fixture struct {
	service   *experience.Service
	store     *enginetest.Store[experience.Experience, *experience.Experience]
	companies *enginetest.Store[company.Company, *company.Company]
}

func newFixture() fixture {
	store := enginetest.New[experience.Experience, *experience.Experience]("Experience", true, false)
	companies := enginetest.New[company.Company, *company.Company]("Company", false, false)
	return fixture{
		service:   experience.NewService(store, companies, slog.Default()),
		store:     store,
		companies: companies,
	}
}

func date(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func TestCreateExperience_DateRules(t *testing.T) {
	f := newFixture()

	end := date("2020-01-01")
	tests := []struct {
		name  string
		input experience.Experience
		field string
	}{
		{
			"start_after_end",
			experience.Experience{Title: "Engineer", Company: "Acme", StartDate: date("2021-06-01"), EndDate: &end},
			"end_date",
		},
		{
			"current_with_end_date",
			experience.Experience{Title: "Engineer", Company: "Acme", StartDate: date("2019-01-01"), EndDate: &end, Current: true},
			"current",
		},
		{
			"missing_start",
			experience.Experience{Title: "Engineer", Company: "Acme"},
			"start_date",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := f.service.CreateExperience(context.Background(), owner, &tc.input)
			require.Error(t, err)
			require.True(t, apperr.IsCode(err, apperr.CodeValidation))

			appError := apperr.As(err)
			require.Len(t, appError.Details, 1)
			assert.Equal(t, tc.field, appError.Details[0].Field)
		})
	}
}

func TestCreateExperience_CurrentRoleWithoutEnd(t *testing.T) {
	f := newFixture()

	input := experience.Experience{Title: "Engineer", Company: "Acme", StartDate: date("2022-03-01"), Current: true}
	require.NoError(t, f.service.CreateExperience(context.Background(), owner, &input))
	assert.NotEmpty(t, input.ID)
}

func TestGetExperience_ResolvesCompany(t *testing.T) {
	f := newFixture()

	acme := &company.Company{Name: "Acme"}
	acme.ID = uuidv7.New()
	acme.OwnerID = owner
	f.companies.Seed(acme)

	ctx := context.Background()
	input := experience.Experience{
		Title:     "Engineer",
		Company:   "Acme",
		CompanyID: pointer.To(acme.ID),
		StartDate: date("2020-01-01"),
		Current:   true,
	}
	require.NoError(t, f.service.CreateExperience(ctx, owner, &input))

	record, err := f.service.GetExperience(ctx, owner, input.ID)
	require.NoError(t, err)
	require.NotNil(t, record.CompanyRef)
	assert.Equal(t, "Acme", record.CompanyRef.Name)
}

func TestGetExperience_DanglingCompanyIsAbsent(t *testing.T) {
	f := newFixture()

	ctx := context.Background()
	input := experience.Experience{
		Title:     "Engineer",
		Company:   "Gone Inc",
		CompanyID: pointer.To(uuidv7.New()),
		StartDate: date("2018-01-01"),
		Current:   true,
	}
	require.NoError(t, f.service.CreateExperience(ctx, owner, &input))

	record, err := f.service.GetExperience(ctx, owner, input.ID)
	require.NoError(t, err)
	assert.Nil(t, record.CompanyRef)
}

func TestListExperience_ResolvesPerRecord(t *testing.T) {
	f := newFixture()

	acme := &company.Company{Name: "Acme"}
	acme.ID = uuidv7.New()
	acme.OwnerID = owner
	f.companies.Seed(acme)

	ctx := context.Background()
	linked := experience.Experience{Title: "Engineer", Company: "Acme", CompanyID: pointer.To(acme.ID), StartDate: date("2020-01-01"), Current: true}
	plain := experience.Experience{Title: "Intern", Company: "Elsewhere", StartDate: date("2017-01-01"), EndDate: pointer.To(date("2017-09-01"))}
	require.NoError(t, f.service.CreateExperience(ctx, owner, &linked))
	require.NoError(t, f.service.CreateExperience(ctx, owner, &plain))

	records, total, err := f.service.ListExperience(ctx, owner, experience.Filter{}, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	byID := map[string]*experience.Experience{}
	for _, record := range records {
		byID[record.ID] = record
	}
	require.NotNil(t, byID[linked.ID].CompanyRef)
	assert.Nil(t, byID[plain.ID].CompanyRef)
}
