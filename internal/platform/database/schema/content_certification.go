package schema

// ContentCertificationTable represents the 'content.certification' table
type ContentCertificationTable struct {
	Table         string
	ID            string
	OwnerID       string
	Name          string
	Issuer        string
	CredentialID  string
	CredentialURL string
	IssuedDate    string
	ExpiresDate   string
	CreatedAt     string
	UpdatedAt     string
}

// ContentCertification is the schema definition for content.certification
var ContentCertification = ContentCertificationTable{
	Table:         "content.certification",
	ID:            "id",
	OwnerID:       "owner_id",
	Name:          "name",
	Issuer:        "issuer",
	CredentialID:  "credential_id",
	CredentialURL: "credential_url",
	IssuedDate:    "issued_date",
	ExpiresDate:   "expires_date",
	CreatedAt:     "created_at",
	UpdatedAt:     "updated_at",
}

func (t ContentCertificationTable) Columns() []string {
	return []string{
		t.ID, t.OwnerID, t.Name, t.Issuer, t.CredentialID, t.CredentialURL,
		t.IssuedDate, t.ExpiresDate, t.CreatedAt, t.UpdatedAt,
	}
}
