package company

import (
	"github.com/foliumhq/folium/internal/content/engine"
	"github.com/foliumhq/folium/internal/platform/database/schema"
)

// Company is an employer record referenced by experience entries.
// Hard-deleted; experience rows keep a weak reference that may dangle.
type Company struct {
	engine.Base
	Name       string  `db:"name" json:"name"`
	LogoURL    *string `db:"logo_url" json:"logo_url"`
	WebsiteURL *string `db:"website_url" json:"website_url"`
	Summary    *string `db:"summary" json:"summary"`
}

// Global field names for validation
const (
	FieldName       = "name"
	FieldLogoURL    = "logo_url"
	FieldWebsiteURL = "website_url"
	FieldSummary    = "summary"
)

// Definition binds the Company type to its table for the shared store.
var Definition = engine.Config[Company]{
	Table:    schema.ContentCompany.Table,
	Resource: "Company",
	Columns: []string{
		schema.ContentCompany.Name,
		schema.ContentCompany.LogoURL,
		schema.ContentCompany.WebsiteURL,
		schema.ContentCompany.Summary,
	},
	Args: func(c *Company) []any {
		return []any{c.Name, c.LogoURL, c.WebsiteURL, c.Summary}
	},
	Delete: engine.HardDelete,
}
