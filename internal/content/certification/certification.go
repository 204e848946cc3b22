package certification

import (
	"time"

	"github.com/foliumhq/folium/internal/content/engine"
	"github.com/foliumhq/folium/internal/platform/database/schema"
)

// Certification is a professional credential. Hard-deleted.
type Certification struct {
	engine.Base
	Name          string     `db:"name" json:"name"`
	Issuer        string     `db:"issuer" json:"issuer"`
	CredentialID  *string    `db:"credential_id" json:"credential_id"`
	CredentialURL *string    `db:"credential_url" json:"credential_url"`
	IssuedDate    time.Time  `db:"issued_date" json:"issued_date"`
	ExpiresDate   *time.Time `db:"expires_date" json:"expires_date"`
}

// Global field names for validation
const (
	FieldName          = "name"
	FieldIssuer        = "issuer"
	FieldCredentialID  = "credential_id"
	FieldCredentialURL = "credential_url"
	FieldIssuedDate    = "issued_date"
	FieldExpiresDate   = "expires_date"
)

// Definition binds the Certification type to its table for the shared store.
var Definition = engine.Config[Certification]{
	Table:    schema.ContentCertification.Table,
	Resource: "Certification",
	Columns: []string{
		schema.ContentCertification.Name,
		schema.ContentCertification.Issuer,
		schema.ContentCertification.CredentialID,
		schema.ContentCertification.CredentialURL,
		schema.ContentCertification.IssuedDate,
		schema.ContentCertification.ExpiresDate,
	},
	Args: func(c *Certification) []any {
		return []any{c.Name, c.Issuer, c.CredentialID, c.CredentialURL, c.IssuedDate, c.ExpiresDate}
	},
	Delete:      engine.HardDelete,
	DefaultSort: "issued_date DESC",
}
