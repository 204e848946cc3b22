package education

import (
	"time"

	"github.com/foliumhq/folium/internal/content/engine"
	"github.com/foliumhq/folium/internal/platform/database/schema"
)

// Education is one study entry (degree, bootcamp, course).
type Education struct {
	engine.Base
	School    string     `db:"school" json:"school"`
	Degree    *string    `db:"degree" json:"degree"`
	Field     *string    `db:"field" json:"field"`
	StartDate time.Time  `db:"start_date" json:"start_date"`
	EndDate   *time.Time `db:"end_date" json:"end_date"`
	Summary   *string    `db:"summary" json:"summary"`
}

// Filter holds the parameters for a paginated education search.
type Filter struct {
	Deleted engine.DeletedVisibility
}

// Global field names for validation
const (
	FieldSchool    = "school"
	FieldDegree    = "degree"
	FieldField     = "field"
	FieldStartDate = "start_date"
	FieldEndDate   = "end_date"
	FieldSummary   = "summary"
)

// Definition binds the Education type to its table for the shared store.
var Definition = engine.Config[Education]{
	Table:    schema.ContentEducation.Table,
	Resource: "Education",
	Columns: []string{
		schema.ContentEducation.School,
		schema.ContentEducation.Degree,
		schema.ContentEducation.Field,
		schema.ContentEducation.StartDate,
		schema.ContentEducation.EndDate,
		schema.ContentEducation.Summary,
	},
	Args: func(e *Education) []any {
		return []any{e.School, e.Degree, e.Field, e.StartDate, e.EndDate, e.Summary}
	},
	Delete:      engine.SoftDelete,
	DefaultSort: "start_date DESC",
}
