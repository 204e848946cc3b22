package project

import (
	"github.com/foliumhq/folium/internal/content/engine"
	"github.com/foliumhq/folium/internal/platform/database/schema"
)

// Project is a portfolio work item. Soft-deleted and manually orderable.
type Project struct {
	engine.Base
	Title        string   `db:"title" json:"title"`
	Summary      *string  `db:"summary" json:"summary"`
	Description  *string  `db:"description" json:"description"`
	ImageURL     *string  `db:"image_url" json:"image_url"`
	DemoURL      *string  `db:"demo_url" json:"demo_url"`
	RepoURL      *string  `db:"repo_url" json:"repo_url"`
	Technologies []string `db:"technologies" json:"technologies"`
	Featured     bool     `db:"featured" json:"featured"`
	SortOrder    int      `db:"sort_order" json:"sort_order"`
}

// Filter holds the parameters for a paginated project search.
type Filter struct {
	Featured *bool
	Deleted  engine.DeletedVisibility
}

// Global field names for validation
const (
	FieldTitle        = "title"
	FieldSummary      = "summary"
	FieldDescription  = "description"
	FieldImageURL     = "image_url"
	FieldDemoURL      = "demo_url"
	FieldRepoURL      = "repo_url"
	FieldTechnologies = "technologies"
)

// Definition binds the Project type to its table for the shared store.
var Definition = engine.Config[Project]{
	Table:    schema.ContentProject.Table,
	Resource: "Project",
	Columns: []string{
		schema.ContentProject.Title,
		schema.ContentProject.Summary,
		schema.ContentProject.Description,
		schema.ContentProject.ImageURL,
		schema.ContentProject.DemoURL,
		schema.ContentProject.RepoURL,
		schema.ContentProject.Technologies,
		schema.ContentProject.Featured,
	},
	Args: func(p *Project) []any {
		return []any{p.Title, p.Summary, p.Description, p.ImageURL, p.DemoURL, p.RepoURL, p.Technologies, p.Featured}
	},
	Orderable: true,
	Delete:    engine.SoftDelete,
}
