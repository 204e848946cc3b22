package schema

// ContentProfileTable represents the 'content.profile' table
type ContentProfileTable struct {
	Table            string
	ID               string
	OwnerID          string
	Handle           string
	DisplayName      string
	Headline         string
	Bio              string
	Location         string
	AvatarURL        string
	ResumeURL        string
	WebsiteURL       string
	GithubURL        string
	LinkedinURL      string
	ShowProjects     string
	ShowExperience   string
	ShowEducation    string
	ShowSkills       string
	ShowCerts        string
	ShowBlog         string
	ShowTestimonials string
	ShowContacts     string
	CreatedAt        string
	UpdatedAt        string
}

// ContentProfile is the schema definition for content.profile
var ContentProfile = ContentProfileTable{
	Table:            "content.profile",
	ID:               "id",
	OwnerID:          "owner_id",
	Handle:           "handle",
	DisplayName:      "display_name",
	Headline:         "headline",
	Bio:              "bio",
	Location:         "location",
	AvatarURL:        "avatar_url",
	ResumeURL:        "resume_url",
	WebsiteURL:       "website_url",
	GithubURL:        "github_url",
	LinkedinURL:      "linkedin_url",
	ShowProjects:     "show_projects",
	ShowExperience:   "show_experience",
	ShowEducation:    "show_education",
	ShowSkills:       "show_skills",
	ShowCerts:        "show_certifications",
	ShowBlog:         "show_blog",
	ShowTestimonials: "show_testimonials",
	ShowContacts:     "show_contacts",
	CreatedAt:        "created_at",
	UpdatedAt:        "updated_at",
}

func (t ContentProfileTable) Columns() []string {
	return []string{
		t.ID, t.OwnerID, t.Handle, t.DisplayName, t.Headline, t.Bio, t.Location,
		t.AvatarURL, t.ResumeURL, t.WebsiteURL, t.GithubURL, t.LinkedinURL,
		t.ShowProjects, t.ShowExperience, t.ShowEducation, t.ShowSkills,
		t.ShowCerts, t.ShowBlog, t.ShowTestimonials, t.ShowContacts,
		t.CreatedAt, t.UpdatedAt,
	}
}
