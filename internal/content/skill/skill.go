package skill

import (
	"github.com/foliumhq/folium/internal/content/engine"
	"github.com/foliumhq/folium/internal/platform/database/schema"
)

// Skill is a single proficiency entry. Soft-deleted and manually orderable.
type Skill struct {
	engine.Base
	Name      string `db:"name" json:"name"`
	Category  string `db:"category" json:"category"`
	Level     int    `db:"level" json:"level"`
	SortOrder int    `db:"sort_order" json:"sort_order"`
}

// Filter holds the parameters for a paginated skill search.
type Filter struct {
	Category string
	Deleted  engine.DeletedVisibility
}

// Categories is the closed set of accepted skill categories.
var Categories = []string{"language", "framework", "database", "tool", "cloud", "practice"}

// Global field names for validation
const (
	FieldName     = "name"
	FieldCategory = "category"
	FieldLevel    = "level"
)

// Definition binds the Skill type to its table for the shared store.
var Definition = engine.Config[Skill]{
	Table:    schema.ContentSkill.Table,
	Resource: "Skill",
	Columns: []string{
		schema.ContentSkill.Name,
		schema.ContentSkill.Category,
		schema.ContentSkill.Level,
	},
	Args: func(s *Skill) []any {
		return []any{s.Name, s.Category, s.Level}
	},
	Orderable: true,
	Delete:    engine.SoftDelete,
}
