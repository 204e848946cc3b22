package schema

// ContentContactTable represents the 'content.contact' table
type ContentContactTable struct {
	Table     string
	ID        string
	OwnerID   string
	Label     string
	Kind      string
	Value     string
	URL       string
	Active    string
	SortOrder string
	CreatedAt string
	UpdatedAt string
}

// ContentContact is the schema definition for content.contact
var ContentContact = ContentContactTable{
	Table:     "content.contact",
	ID:        "id",
	OwnerID:   "owner_id",
	Label:     "label",
	Kind:      "kind",
	Value:     "value",
	URL:       "url",
	Active:    "active",
	SortOrder: "sort_order",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}

func (t ContentContactTable) Columns() []string {
	return []string{
		t.ID, t.OwnerID, t.Label, t.Kind, t.Value, t.URL, t.Active,
		t.SortOrder, t.CreatedAt, t.UpdatedAt,
	}
}
