package contact

import (
	"github.com/foliumhq/folium/internal/content/engine"
	"github.com/foliumhq/folium/internal/platform/database/schema"
)

// Contact is one way to reach the owner (email, phone, social handle, site).
// Hard-deleted and manually orderable; only active entries appear publicly.
type Contact struct {
	engine.Base
	Label     string  `db:"label" json:"label"`
	Kind      string  `db:"kind" json:"kind"`
	Value     string  `db:"value" json:"value"`
	URL       *string `db:"url" json:"url"`
	Active    bool    `db:"active" json:"active"`
	SortOrder int     `db:"sort_order" json:"sort_order"`
}

// Filter holds the parameters for a paginated contact search.
type Filter struct {
	Active *bool
}

// Kinds is the closed set of accepted contact kinds.
var Kinds = []string{"email", "phone", "social", "site"}

// Global field names for validation
const (
	FieldLabel = "label"
	FieldKind  = "kind"
	FieldValue = "value"
	FieldURL   = "url"
)

// Definition binds the Contact type to its table for the shared store.
var Definition = engine.Config[Contact]{
	Table:    schema.ContentContact.Table,
	Resource: "Contact",
	Columns: []string{
		schema.ContentContact.Label,
		schema.ContentContact.Kind,
		schema.ContentContact.Value,
		schema.ContentContact.URL,
		schema.ContentContact.Active,
	},
	Args: func(c *Contact) []any {
		return []any{c.Label, c.Kind, c.Value, c.URL, c.Active}
	},
	Orderable: true,
	Delete:    engine.HardDelete,
}
