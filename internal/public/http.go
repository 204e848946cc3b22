// Copyright (c) 2026 Folium. All rights reserved.

package public

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/foliumhq/folium/internal/content/blog"
	"github.com/foliumhq/folium/internal/content/certification"
	"github.com/foliumhq/folium/internal/content/contact"
	"github.com/foliumhq/folium/internal/content/education"
	"github.com/foliumhq/folium/internal/content/experience"
	"github.com/foliumhq/folium/internal/content/profile"
	"github.com/foliumhq/folium/internal/content/project"
	"github.com/foliumhq/folium/internal/content/skill"
	"github.com/foliumhq/folium/internal/content/testimonial"
	"github.com/foliumhq/folium/internal/platform/apperr"
	requestutil "github.com/foliumhq/folium/internal/platform/request"
	"github.com/foliumhq/folium/internal/platform/respond"
	"github.com/foliumhq/folium/pkg/pagination"
	"github.com/foliumhq/folium/pkg/pointer"
)

// Services bundles the per-collection services the public surface reads from.
type Services struct {
	Projects       *project.Service
	Experience     *experience.Service
	Education      *education.Service
	Skills         *skill.Service
	Certifications *certification.Service
	Blog           *blog.Service
	Testimonials   *testimonial.Service
	Contacts       *contact.Service
}

type Handler struct {
	directory *Directory
	services  Services
}

func NewHandler(directory *Directory, services Services) *Handler {
	return &Handler{
		directory: directory,
		services:  services,
	}
}

// RegisterRoutes mounts the anonymous read surface under /{handle}.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Route("/{handle}", func(r chi.Router) {
		r.Get("/profile", handler.getProfile)
		r.Get("/projects", handler.listProjects)
		r.Get("/experience", handler.listExperience)
		r.Get("/education", handler.listEducation)
		r.Get("/skills", handler.listSkills)
		r.Get("/certifications", handler.listCertifications)
		r.Get("/blog", handler.listBlogPosts)
		r.Get("/blog/{slug}", handler.getBlogPost)
		r.Get("/testimonials", handler.listTestimonials)
		r.Get("/contacts", handler.listContacts)
	})
}

// errSectionHidden renders a hidden section exactly like a missing handle,
// so visibility settings are not probeable.
func errSectionHidden() error {
	return apperr.NotFound("Page")
}

// resolveSection resolves the handle and applies one visibility switch.
func (handler *Handler) resolveSection(request *http.Request, visible func(*profile.Profile) bool) (*profile.Profile, error) {
	record, err := handler.directory.Resolve(request.Context(), requestutil.Param(request, "handle"))
	if err != nil {
		return nil, err
	}
	if !visible(record) {
		return nil, errSectionHidden()
	}
	return record, nil
}

func (handler *Handler) getProfile(writer http.ResponseWriter, request *http.Request) {
	handle := requestutil.Param(request, "handle")

	if payload := handler.directory.CachedProfilePayload(request.Context(), handle); payload != nil {
		writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		writer.WriteHeader(http.StatusOK)
		_, _ = writer.Write(payload)
		return
	}

	record, err := handler.directory.Resolve(request.Context(), handle)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if payload, marshalErr := json.Marshal(respond.SuccessEnvelope{Data: record}); marshalErr == nil {
		handler.directory.StoreProfilePayload(request.Context(), handle, payload)
	}
	respond.OK(writer, record)
}

func (handler *Handler) listProjects(writer http.ResponseWriter, request *http.Request) {
	record, err := handler.resolveSection(request, func(p *profile.Profile) bool { return p.ShowProjects })
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)
	projects, total, err := handler.services.Projects.ListProjects(request.Context(), record.OwnerID, project.Filter{}, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, projects, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) listExperience(writer http.ResponseWriter, request *http.Request) {
	record, err := handler.resolveSection(request, func(p *profile.Profile) bool { return p.ShowExperience })
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)
	records, total, err := handler.services.Experience.ListExperience(request.Context(), record.OwnerID, experience.Filter{}, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, records, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) listEducation(writer http.ResponseWriter, request *http.Request) {
	record, err := handler.resolveSection(request, func(p *profile.Profile) bool { return p.ShowEducation })
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)
	records, total, err := handler.services.Education.ListEducation(request.Context(), record.OwnerID, education.Filter{}, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, records, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) listSkills(writer http.ResponseWriter, request *http.Request) {
	record, err := handler.resolveSection(request, func(p *profile.Profile) bool { return p.ShowSkills })
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)
	filter := skill.Filter{Category: request.URL.Query().Get("category")}
	records, total, err := handler.services.Skills.ListSkills(request.Context(), record.OwnerID, filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, records, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) listCertifications(writer http.ResponseWriter, request *http.Request) {
	record, err := handler.resolveSection(request, func(p *profile.Profile) bool { return p.ShowCerts })
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)
	records, total, err := handler.services.Certifications.ListCertifications(request.Context(), record.OwnerID, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, records, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) listBlogPosts(writer http.ResponseWriter, request *http.Request) {
	record, err := handler.resolveSection(request, func(p *profile.Profile) bool { return p.ShowBlog })
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)
	filter := blog.Filter{Published: pointer.To(true)}
	posts, total, err := handler.services.Blog.ListPosts(request.Context(), record.OwnerID, filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, posts, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getBlogPost(writer http.ResponseWriter, request *http.Request) {
	record, err := handler.resolveSection(request, func(p *profile.Profile) bool { return p.ShowBlog })
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	post, err := handler.services.Blog.GetPublishedBySlug(request.Context(), requestutil.Param(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Slugs are global; a post reachable under the wrong handle would leak
	// another owner's content.
	if post.OwnerID != record.OwnerID {
		respond.Error(writer, request, apperr.NotFound("Blog post"))
		return
	}
	respond.OK(writer, post)
}

func (handler *Handler) listTestimonials(writer http.ResponseWriter, request *http.Request) {
	record, err := handler.resolveSection(request, func(p *profile.Profile) bool { return p.ShowTestimonials })
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)
	records, total, err := handler.services.Testimonials.ListTestimonials(request.Context(), record.OwnerID, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, records, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) listContacts(writer http.ResponseWriter, request *http.Request) {
	record, err := handler.resolveSection(request, func(p *profile.Profile) bool { return p.ShowContacts })
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)
	filter := contact.Filter{Active: pointer.To(true)}
	records, total, err := handler.services.Contacts.ListContacts(request.Context(), record.OwnerID, filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, records, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}
