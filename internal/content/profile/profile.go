package profile

import (
	"strings"

	"github.com/foliumhq/folium/internal/content/engine"
)

// Profile is the singleton public-facing record of an owner: the handle the
// public surface resolves, the headline card, and the per-section visibility
// switches. Exactly one row per owner, created lazily on first access.
type Profile struct {
	engine.Base
	Handle      string  `db:"handle" json:"handle"`
	DisplayName *string `db:"display_name" json:"display_name"`
	Headline    *string `db:"headline" json:"headline"`
	Bio         *string `db:"bio" json:"bio"`
	Location    *string `db:"location" json:"location"`
	AvatarURL   *string `db:"avatar_url" json:"avatar_url"`
	ResumeURL   *string `db:"resume_url" json:"resume_url"`
	WebsiteURL  *string `db:"website_url" json:"website_url"`
	GithubURL   *string `db:"github_url" json:"github_url"`
	LinkedinURL *string `db:"linkedin_url" json:"linkedin_url"`

	Visibility
}

// Visibility is the set of public-section switches, flattened into the
// profile record. Everything defaults to visible; the owner opts sections out.
type Visibility struct {
	ShowProjects     bool `db:"show_projects" json:"show_projects"`
	ShowExperience   bool `db:"show_experience" json:"show_experience"`
	ShowEducation    bool `db:"show_education" json:"show_education"`
	ShowSkills       bool `db:"show_skills" json:"show_skills"`
	ShowCerts        bool `db:"show_certifications" json:"show_certifications"`
	ShowBlog         bool `db:"show_blog" json:"show_blog"`
	ShowTestimonials bool `db:"show_testimonials" json:"show_testimonials"`
	ShowContacts     bool `db:"show_contacts" json:"show_contacts"`
}

// DefaultVisibility is applied to newly created profiles.
var DefaultVisibility = Visibility{
	ShowProjects:     true,
	ShowExperience:   true,
	ShowEducation:    true,
	ShowSkills:       true,
	ShowCerts:        true,
	ShowBlog:         true,
	ShowTestimonials: true,
	ShowContacts:     true,
}

// Global field names for validation
const (
	FieldHandle      = "handle"
	FieldDisplayName = "display_name"
	FieldHeadline    = "headline"
	FieldBio         = "bio"
	FieldAvatarURL   = "avatar_url"
	FieldResumeURL   = "resume_url"
	FieldWebsiteURL  = "website_url"
	FieldGithubURL   = "github_url"
	FieldLinkedinURL = "linkedin_url"
	FieldLocation    = "location"
)

// DefaultHandle derives the handle assigned at lazy creation. It is unique
// by construction (a prefix of the owner uuid) and replaceable by the owner.
func DefaultHandle(ownerID string) string {
	return "u-" + strings.ReplaceAll(ownerID, "-", "")[:12]
}
