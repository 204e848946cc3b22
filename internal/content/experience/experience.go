package experience

import (
	"time"

	"github.com/foliumhq/folium/internal/content/company"
	"github.com/foliumhq/folium/internal/content/engine"
	"github.com/foliumhq/folium/internal/platform/database/schema"
)

// Experience is one employment entry. The company name is free text;
// CompanyID is an optional weak reference to a [company.Company] record.
// A dangling reference is not an error: CompanyRef simply stays absent.
type Experience struct {
	engine.Base
	Title     string     `db:"title" json:"title"`
	Company   string     `db:"company" json:"company"`
	CompanyID *string    `db:"company_id" json:"company_id"`
	Location  *string    `db:"location" json:"location"`
	StartDate time.Time  `db:"start_date" json:"start_date"`
	EndDate   *time.Time `db:"end_date" json:"end_date"`
	Current   bool       `db:"current" json:"current"`
	Summary   *string    `db:"summary" json:"summary"`

	// CompanyRef is the resolved company record, populated on reads.
	CompanyRef *company.Company `db:"-" json:"company_ref,omitempty"`
}

// Filter holds the parameters for a paginated experience search.
type Filter struct {
	Deleted engine.DeletedVisibility
}

// Global field names for validation
const (
	FieldTitle     = "title"
	FieldCompany   = "company"
	FieldCompanyID = "company_id"
	FieldLocation  = "location"
	FieldStartDate = "start_date"
	FieldEndDate   = "end_date"
	FieldCurrent   = "current"
	FieldSummary   = "summary"
)

// Definition binds the Experience type to its table for the shared store.
var Definition = engine.Config[Experience]{
	Table:    schema.ContentExperience.Table,
	Resource: "Experience",
	Columns: []string{
		schema.ContentExperience.Title,
		schema.ContentExperience.Company,
		schema.ContentExperience.CompanyID,
		schema.ContentExperience.Location,
		schema.ContentExperience.StartDate,
		schema.ContentExperience.EndDate,
		schema.ContentExperience.Current,
		schema.ContentExperience.Summary,
	},
	Args: func(e *Experience) []any {
		return []any{e.Title, e.Company, e.CompanyID, e.Location, e.StartDate, e.EndDate, e.Current, e.Summary}
	},
	Delete:      engine.SoftDelete,
	DefaultSort: "start_date DESC",
}
